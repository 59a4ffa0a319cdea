package main

import (
	"os"

	"github.com/thenoetrevino/adflow/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
