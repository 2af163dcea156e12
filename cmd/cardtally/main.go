package main

import (
	"github.com/mcoot/cardtally-go/internal/cli"
)

func main() {
	cli.Execute()
}
