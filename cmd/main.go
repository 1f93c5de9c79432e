package main

import "github.com/hotsim-network/hotsim/cmd/cli"

func main() {
	cli.Execute()
}
