package atlas

import (
	"testing"
)

func TestDefaultTableFitsDefaultGrid(t *testing.T) {
	// 256/16 grid
	if err := DefaultTable.Validate(16); err != nil {
		t.Fatalf("default table invalid: %v", err)
	}

	if _, ok := DefaultTable.Lookup(SentinelName); !ok {
		t.Fatalf("default table is missing the %q sentinel", SentinelName)
	}

	slot, ok := DefaultTable.Lookup("dirt")
	if !ok {
		t.Fatalf("default table is missing dirt")
	}
	if slot.Index != 2 {
		t.Fatalf("dirt index = %d, want 2", slot.Index)
	}
}

func TestTableValidate(t *testing.T) {
	tests := []struct {
		name        string
		table       Table
		tilesPerRow int
		wantErr     bool
	}{
		{
			name:        "valid table",
			table:       Table{{Name: "air", Index: 0}, {Name: "dirt", Index: 2}},
			tilesPerRow: 16,
			wantErr:     false,
		},
		{
			name:        "boundary indices",
			table:       Table{{Name: "first", Index: 0}, {Name: "last", Index: 255}},
			tilesPerRow: 16,
			wantErr:     false,
		},
		{
			name:        "index out of range",
			table:       Table{{Name: "dirt", Index: 256}},
			tilesPerRow: 16,
			wantErr:     true,
		},
		{
			name:        "negative index",
			table:       Table{{Name: "dirt", Index: -1}},
			tilesPerRow: 16,
			wantErr:     true,
		},
		{
			name:        "duplicate index",
			table:       Table{{Name: "dirt", Index: 2}, {Name: "sand", Index: 2}},
			tilesPerRow: 16,
			wantErr:     true,
		},
		{
			name:        "duplicate name",
			table:       Table{{Name: "dirt", Index: 2}, {Name: "dirt", Index: 3}},
			tilesPerRow: 16,
			wantErr:     true,
		},
		{
			name:        "empty name",
			table:       Table{{Name: "", Index: 2}},
			tilesPerRow: 16,
			wantErr:     true,
		},
		{
			name:        "zero tiles per row",
			table:       Table{{Name: "dirt", Index: 0}},
			tilesPerRow: 0,
			wantErr:     true,
		},
		{
			name:        "empty table",
			table:       Table{},
			tilesPerRow: 16,
			wantErr:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate(tt.tilesPerRow)
			if tt.wantErr && err == nil {
				t.Errorf("Validate() expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestTableFromMapOrdersByIndex(t *testing.T) {
	table := TableFromMap(map[string]int{
		"ice":  17,
		"air":  0,
		"dirt": 2,
	})

	want := Table{
		{Name: "air", Index: 0},
		{Name: "dirt", Index: 2},
		{Name: "ice", Index: 17},
	}

	if len(table) != len(want) {
		t.Fatalf("table length = %d, want %d", len(table), len(want))
	}
	for i := range want {
		if table[i] != want[i] {
			t.Errorf("table[%d] = %+v, want %+v", i, table[i], want[i])
		}
	}
}

func TestLookupIndex(t *testing.T) {
	table := Table{{Name: "air", Index: 0}, {Name: "dirt", Index: 2}}

	if slot, ok := table.LookupIndex(2); !ok || slot.Name != "dirt" {
		t.Fatalf("LookupIndex(2) = %+v, %v; want dirt", slot, ok)
	}
	if _, ok := table.LookupIndex(5); ok {
		t.Fatalf("LookupIndex(5) expected miss")
	}
}
