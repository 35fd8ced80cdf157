package main

import (
	"fmt"

	"github.com/fwojciec/optcg"
)

// Run executes the locales command.
func (c *LocalesCmd) Run(deps *Dependencies) error {
	langs, err := deps.Locales.List()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", optcg.ErrorMessage(err))
		return err
	}

	if len(langs) == 0 {
		fmt.Fprintln(deps.Stdout, "No locale tables found. Set OPTCG_LOCALES to the directory holding them.")
		return nil
	}

	for _, lang := range langs {
		fmt.Fprintf(deps.Stdout, "- %s\n", lang)
	}
	return nil
}
