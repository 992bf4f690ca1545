package main

import "github.com/voxelkit/atlasgen/internal/cmd"

func main() {
	cmd.Execute()
}
