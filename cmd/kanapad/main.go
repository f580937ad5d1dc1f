package main

import "github.com/iw2rmb/kanapad/internal/cli"

func main() {
	cli.Execute()
}
