package main

import (
	"os"

	"github.com/schemeconv/schemeconv/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
