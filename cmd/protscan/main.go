package main

import "protscan/internal/cli"

func main() {
	cli.Execute()
}
