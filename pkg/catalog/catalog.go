// Package catalog holds the versioned registry that maps an RPC error code
// and normalized message template to an error kind.
//
// A Catalog is immutable once built. Lookups take no locks and are safe for
// any number of concurrent callers.
package catalog

import (
	"sort"

	"github.com/Goden-Gun/rpcerr-lib/pkg/rpcerr"
)

// Entry is one resolvable error kind.
type Entry struct {
	// ID is the template as authored, e.g. FLOOD_WAIT_X.
	ID   string
	Kind rpcerr.Kind
	// Message is the human readable text; "{x}" marks the parameter.
	Message string
}

// Table groups all entries registered under one numeric code.
type Table struct {
	code    int32
	name    string
	def     Entry
	entries map[string]Entry
}

// Code returns the numeric code of the table.
func (t *Table) Code() int32 { return t.code }

// Name returns the symbolic name of the code family.
func (t *Table) Name() string { return t.name }

// Default returns the entry used when no template under this code matches.
func (t *Table) Default() Entry { return t.def }

// Match returns the entry registered for a normalized template.
func (t *Table) Match(template string) (Entry, bool) {
	e, ok := t.entries[template]
	return e, ok
}

// Len returns the number of template entries, excluding the default.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns the template entries sorted by ID.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Catalog is the full registry.
type Catalog struct {
	version string
	tables  map[int32]*Table
}

// Version returns the protocol version the catalog was authored against.
func (c *Catalog) Version() string { return c.version }

// Lookup returns the table registered under code.
func (c *Catalog) Lookup(code int32) (*Table, bool) {
	if c == nil {
		return nil, false
	}
	t, ok := c.tables[code]
	return t, ok
}

// Codes returns the registered codes in ascending order.
func (c *Catalog) Codes() []int32 {
	out := make([]int32, 0, len(c.tables))
	for code := range c.tables {
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the total number of template entries across all codes.
func (c *Catalog) Len() int {
	n := 0
	for _, t := range c.tables {
		n += len(t.entries)
	}
	return n
}
