package main

import (
	"github.com/courtside/draftboard/internal/cli"
)

func main() {
	cli.Execute()
}
