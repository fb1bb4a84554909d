package main

import "github.com/deicod/springhex/cli"

func main() {
	cli.Execute()
}
