package main

import "github.com/katalvlaran/polycube/internal/cli"

func main() {
	cli.Execute()
}
