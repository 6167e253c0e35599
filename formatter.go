package qrtables

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dialect selects the language the declarations are rendered in.
type Dialect string

// Supported declaration dialects.
const (
	DialectRust Dialect = "rust"
	DialectGo   Dialect = "go"
)

// Declaration is a named, fixed-length array of unsigned 32-bit values.
type Declaration struct {
	Keyword string
	Name    string
	Values  []uint32
}

// Declarations pairs the buckets extracted from t with t's keyword.
func Declarations(t Table, buckets []Bucket) []Declaration {
	decls := make([]Declaration, 0, len(buckets))
	for _, b := range buckets {
		decls = append(decls, Declaration{
			Keyword: t.Keyword,
			Name:    b.Name,
			Values:  b.Values,
		})
	}
	return decls
}

// FormatDeclaration renders d as a single declaration. The Rust dialect is
// the default.
func FormatDeclaration(d Declaration, dialect Dialect) string {
	values := make([]string, len(d.Values))
	for i, v := range d.Values {
		values[i] = strconv.FormatUint(uint64(v), 10)
	}
	list := strings.Join(values, ", ")

	if dialect == DialectGo {
		return fmt.Sprintf("var %s = [%d]uint32{%s}", GoName(d.Name), len(d.Values), list)
	}

	keyword := d.Keyword
	if keyword == "" {
		keyword = "const"
	}
	return fmt.Sprintf("%s %s: [u32; %d] = [%s];", keyword, d.Name, len(d.Values), list)
}

// FormatDigest renders an xxhash64 page digest as fixed-width hex.
func FormatDigest(digest uint64) string {
	return fmt.Sprintf("%016x", digest)
}

// FormatHeader returns the generated-code marker naming the source page and
// the xxhash64 digest of its content.
func FormatHeader(url string, digest uint64) string {
	return fmt.Sprintf("// Code generated by qrtables from %s (xxhash %s). DO NOT EDIT.", url, FormatDigest(digest))
}

// WriteDeclarations writes header, if any, followed by every declaration,
// each followed by a blank line.
func WriteDeclarations(w io.Writer, header string, decls []Declaration, dialect Dialect) error {
	var b strings.Builder
	if header != "" {
		b.WriteString(header)
		b.WriteString("\n\n")
	}
	for _, d := range decls {
		b.WriteString(FormatDeclaration(d, dialect))
		b.WriteString("\n\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// GoName converts a SCREAMING_SNAKE_CASE name to MixedCaps. Words of up to
// two letters are treated as initialisms: SIZE_EC_L becomes SizeECL.
func GoName(name string) string {
	var b strings.Builder
	for _, word := range strings.Split(name, "_") {
		if word == "" {
			continue
		}
		if len(word) <= 2 {
			b.WriteString(strings.ToUpper(word))
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(strings.ToLower(word[1:]))
	}
	return b.String()
}
