// Command horcrux splits and reconstructs secrets with GF(2^n) Shamir
// Secret Sharing.
package main

import (
	"os"

	"github.com/gendx/horcrux/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
