package main

import (
	"context"
	"io"

	"github.com/mpickford/folkweb"
	"github.com/mpickford/folkweb/mcp"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Service folkweb.FolkService
	Warmer  folkweb.Warmer
	MCP     *mcp.Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Origin    string `help:"Site origin to fetch from." default:"${origin}" env:"FOLKWEB_ORIGIN"`
	CacheSize int    `help:"Maximum number of cached pages." default:"256"`
	Verbose   bool   `short:"v" help:"Log fetches to stderr."`

	Serve       ServeCmd       `cmd:"" help:"Expose the operations as MCP tools over stdio"`
	Search      SearchCmd      `cmd:"" help:"Search the site indexes for songs, artists and ballads"`
	Page        PageCmd        `cmd:"" help:"Fetch one page as readable text"`
	Ballads     BalladsCmd     `cmd:"" help:"Browse the Child ballad index"`
	Laws        LawsCmd        `cmd:"" help:"Browse the Laws ballad index"`
	Discography DiscographyCmd `cmd:"" help:"Show an artist's biography and record list"`
	Labels      LabelsCmd      `cmd:"" help:"List known folk record labels"`
	Warm        WarmCmd        `cmd:"" help:"Prefetch the index documents into the cache"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Text to search for"`
}

// PageCmd is the "page" subcommand.
type PageCmd struct {
	Path string `arg:"" help:"Site-absolute page path, e.g. /folk/songs/reynardine.html"`
}

// BalladsCmd is the "ballads" subcommand.
type BalladsCmd struct {
	Filter string `arg:"" optional:"" help:"Numeric range (\"12-40\") or free text"`
}

// LawsCmd is the "laws" subcommand.
type LawsCmd struct {
	Filter string `arg:"" optional:"" help:"Code prefix (\"L\") or free text"`
}

// DiscographyCmd is the "discography" subcommand.
type DiscographyCmd struct {
	Artist string `arg:"" help:"Artist name or site-absolute page path"`
}

// LabelsCmd is the "labels" subcommand.
type LabelsCmd struct{}

// WarmCmd is the "warm" subcommand.
type WarmCmd struct{}
