package main

import "github.com/adnsv/gradexl/internal/cli"

func main() {
	cli.Execute()
}
