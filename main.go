package main

import "github.com/zlobste/ip4calc/internal/cli"

func main() {
	cli.Execute()
}
