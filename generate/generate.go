// Package generate runs the extraction pipeline for a source table:
// fetch, read rows, extract buckets and write declarations.
package generate

import (
	"context"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/qrtables"
)

// Result holds the declarations generated from one source table.
type Result struct {
	Table        qrtables.Table
	Digest       uint64
	Declarations []qrtables.Declaration
}

// Header returns the generated-code header for the result.
func (r *Result) Header() string {
	return qrtables.FormatHeader(r.Table.URL, r.Digest)
}

// Generator extracts declarations from source tables. Each call is a single
// synchronous pass that stops at the first error.
type Generator struct {
	Fetcher qrtables.Fetcher
	Tables  qrtables.TableReader
	Dialect qrtables.Dialect
}

// Generate fetches t's page and extracts its buckets.
func (g *Generator) Generate(ctx context.Context, t qrtables.Table) (*Result, error) {
	html, err := g.Fetcher.Fetch(ctx, t.URL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.Name, err)
	}

	rows, err := g.Tables.ReadTable(html, t.Selector)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.Name, err)
	}

	buckets, err := qrtables.Extract(t, rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.Name, err)
	}

	return &Result{
		Table:        t,
		Digest:       xxhash.Sum64String(html),
		Declarations: qrtables.Declarations(t, buckets),
	}, nil
}

// Run generates t and writes its declarations to w. Nothing is written
// unless extraction succeeds.
func (g *Generator) Run(ctx context.Context, t qrtables.Table, w io.Writer) error {
	result, err := g.Generate(ctx, t)
	if err != nil {
		return err
	}
	return qrtables.WriteDeclarations(w, result.Header(), result.Declarations, g.Dialect)
}
