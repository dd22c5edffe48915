package main

import (
	"github.com/mfield/memorymatch/internal/cli"
)

func main() {
	cli.Execute()
}
