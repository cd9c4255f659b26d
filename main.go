package main

import "devcheck/internal/cli"

func main() {
	cli.Execute()
}
