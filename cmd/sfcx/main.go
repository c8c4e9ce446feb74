package main

import (
	"os"

	"github.com/GriffinCanCode/sfc-extends/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
