package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/optcg"
)

// Run executes the packs command.
func (c *PacksCmd) Run(deps *Dependencies) error {
	packs, err := deps.Scraper.FetchPacks(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", optcg.ErrorMessage(err))
		return err
	}

	if c.Save {
		if err := deps.Packs.SavePacks(deps.Ctx, packs); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", optcg.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved %d packs.\n", len(packs))
		return nil
	}

	out, err := json.Marshal(packs)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}
