// main is the entry point for the talentmatch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/talentco/talentmatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
