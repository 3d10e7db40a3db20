package main

import (
	"github.com/monokrome/bl4-sub000/cli"
)

func main() {
	cli.Start()
}
