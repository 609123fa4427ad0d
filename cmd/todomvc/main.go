package main

import "github.com/idilsaglam/todomvc/internal/cli"

func main() {
	cli.Execute()
}
