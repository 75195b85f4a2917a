package main

import "pet-intake/internal/cli"

func main() {
	cli.Execute()
}
