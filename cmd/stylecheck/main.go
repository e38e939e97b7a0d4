package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ppiankov/stylecheck/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var fErr *cli.FindingsError
		if errors.As(err, &fErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
