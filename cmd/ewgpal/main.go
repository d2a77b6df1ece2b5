package main

import (
	"os"

	"github.com/ewgtools/ewgpal/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
