package main

import "github.com/vfg2006/market-analyzer-api/internal/cli"

func main() {
	cli.Execute()
}
