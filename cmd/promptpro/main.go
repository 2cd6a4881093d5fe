package main

import (
	"os"

	"github.com/jahboukie/promptpro/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.Execute(version))
}
