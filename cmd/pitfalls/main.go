// Command pitfalls prints demonstrations of decimal arithmetic and error
// handling.
package main

import (
	"os"

	"github.com/calebcase/pitfalls/cmd/pitfalls/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
