// main holds the entry logic for the pagetrend CLI.
package main

import (
	"fmt"
	"os"

	"github.com/renderlab/pagetrend/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
