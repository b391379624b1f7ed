package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		var logged *reportedError
		if !errors.Is(err, context.Canceled) && !errors.As(err, &logged) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
