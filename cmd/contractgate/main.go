package main

import (
	"fmt"
	"os"

	"github.com/contractgate/contractgate/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "contractgate:", err)
		os.Exit(1)
	}
}
