package main

import "github.com/aalvaropc/drills/internal/cli"

func main() {
	cli.Execute()
}
