package main

import "github.com/tealeaves/wordstats/internal/cli"

func main() {
	cli.Execute()
}
