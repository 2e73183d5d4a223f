package main

import (
	"github.com/Matthias-Fauconneau/spirv-gen/cmd"
)

func main() {
	cmd.Execute()
}
