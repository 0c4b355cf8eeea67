package main

// symcalc is the command line driver of a small computer algebra system.

import "github.com/letung3105/symcalc/internal/cli"

func main() {
	cli.Execute()
}
