package main

import "github.com/gogotex/docstore/internal/cli"

func main() {
	cli.Execute()
}
