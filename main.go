package main

import (
	"fmt"
	"os"

	"github.com/persim/boardlife/utils"
)

func main() {
	config, err := utils.ParseArgs(os.Args[1:])
	if err != nil {
		if utils.IsUsage(err) {
			fmt.Fprintln(os.Stderr, utils.Usage)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	if err = runSimulation(config); err != nil {
		fmt.Fprintf(os.Stderr, "boardlife: %v\n", err)
		os.Exit(1)
	}
}
