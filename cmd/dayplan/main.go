package main

import (
	"context"
	"os"

	"github.com/Makepad-fr/dayplan/internal/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args[1:], cli.Options{}))
}
