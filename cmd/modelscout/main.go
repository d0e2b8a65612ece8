package main

import "github.com/crimson-sun/modelscout/internal/cli"

func main() {
	cli.Execute()
}
