// Command ipsim runs a single interacting-particle-system simulation
// from command-line arguments and writes the result as an image. See
// package cli for the argument grammar.
package main

import (
	"fmt"
	"os"

	"github.com/samuelfneumann/ips/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
