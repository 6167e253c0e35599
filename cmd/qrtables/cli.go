package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/qrtables"
	"github.com/fwojciec/qrtables/generate"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Generator *generate.Generator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool             `short:"v" help:"Log pipeline stages to stderr"`
	Timeout time.Duration    `short:"t" default:"10s" help:"HTTP timeout for fetching the source page"`
	Dialect qrtables.Dialect `default:"rust" enum:"rust,go" help:"Declaration language (rust, go)"`

	Capacity CapacityCmd `cmd:"" help:"Generate character capacity tables (NUMERIC_SIZE, ALPHANUMERIC_SIZE, BYTE_SIZE, KANJI_SIZE)"`
	ECSize   ECSizeCmd   `cmd:"" name:"ec-size" help:"Generate data codeword tables per error correction level (SIZE_EC_L..SIZE_EC_H)"`
	All      AllCmd      `cmd:"" help:"Generate every table"`
}

// CapacityCmd is the "capacity" subcommand.
type CapacityCmd struct{}

// ECSizeCmd is the "ec-size" subcommand.
type ECSizeCmd struct{}

// AllCmd is the "all" subcommand.
type AllCmd struct{}
