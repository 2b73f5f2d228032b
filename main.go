package main

import "github.com/devankur/portfolio/cmd"

func main() {
	cmd.Execute()
}
