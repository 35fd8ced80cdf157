package main

import (
	"context"
	"io"

	"github.com/fwojciec/optcg"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Locales optcg.LocaleSource
	Scraper optcg.Scraper
	Packs   optcg.PackService
	Cards   optcg.CardService
	Images  optcg.ImageWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Packs   PacksCmd   `cmd:"" help:"Fetch the list of all existing packs"`
	Cards   CardsCmd   `cmd:"" help:"Fetch all cards within the given pack"`
	Locales LocalesCmd `cmd:"" help:"List available locale tables"`

	Lang    string `short:"l" default:"en" help:"Display language of the vendor site (en, en_asia, jp, zh_cn, zh_hk, zh_tw, th)"`
	Files   bool   `help:"Persist to locale-scoped JSON files instead of SQLite"`
	Verbose bool   `short:"v" help:"Enable debug logging"`
}

// PacksCmd is the "packs" subcommand.
type PacksCmd struct {
	Save bool `short:"s" help:"Persist the pack list instead of printing JSON"`
}

// CardsCmd is the "cards" subcommand.
type CardsCmd struct {
	PackID string `arg:"" name:"pack-id" help:"ID of the pack"`
	Save   bool   `short:"s" help:"Persist the cards instead of printing JSON"`
	Images bool   `short:"i" help:"Also download card images (implies --save)"`
}

// LocalesCmd is the "locales" subcommand.
type LocalesCmd struct{}
