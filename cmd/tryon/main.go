package main

import "github.com/tair/virtual-tryon/internal/cmd"

func main() {
	cmd.Execute()
}
