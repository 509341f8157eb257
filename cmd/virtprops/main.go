package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/yetorm/virtprops/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}
