// shipcheck is the pre-release consistency checker for StockenBoard.
package main

import (
	"os"

	"github.com/stockenboard/shipcheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
