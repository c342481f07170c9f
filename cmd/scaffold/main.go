package main

import (
	"os"

	"github.com/tacogips/scaffold/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
