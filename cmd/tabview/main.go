package main

import "github.com/vegasq/tabview/internal/cli"

func main() {
	cli.Execute()
}
