package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/optcg"
	"github.com/fwojciec/optcg/scrape"
)

// Run executes the cards command.
func (c *CardsCmd) Run(deps *Dependencies) error {
	failed := 0
	progress := func(p optcg.CardProgress) {
		if p.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s\n", optcg.ErrorMessage(p.Err))
		}
	}

	cards, err := deps.Scraper.FetchCards(deps.Ctx, c.PackID, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", optcg.ErrorMessage(err))
		return err
	}
	if len(cards) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no cards found for pack %q. Use 'optcg packs' to see available packs.\n", c.PackID)
		return optcg.Errorf(optcg.ENOTFOUND, "no cards found for pack %q", c.PackID)
	}
	if failed > 0 {
		fmt.Fprintf(deps.Stderr, "%d of %d cards failed to parse\n", failed, failed+len(cards))
	}

	if c.Save || c.Images {
		if err := deps.Cards.SaveCards(deps.Ctx, c.PackID, cards); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", optcg.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved %d cards for pack %s.\n", len(cards), c.PackID)
	}

	if c.Images {
		saved, err := scrape.DownloadImages(deps.Ctx, deps.Scraper, deps.Images, cards, scrape.DefaultConcurrency)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", optcg.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Downloaded %d images.\n", saved)
	}

	if !c.Save && !c.Images {
		out, err := json.Marshal(cards)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(out))
	}

	return nil
}
