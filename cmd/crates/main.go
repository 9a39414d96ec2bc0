// crates - replay crate moves over a stack drawing
package main

import (
	"os"

	"github.com/itchyny/crates/cli"
)

func main() {
	os.Exit(cli.Run())
}
