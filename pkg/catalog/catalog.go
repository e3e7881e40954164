// Package catalog holds the ordered set of file artifacts a generation run
// materializes: relative paths paired with verbatim content.
//
// A catalog may contain two entries whose paths normalize to the same file.
// That is not an error: the later entry wins on disk (last-write-wins), and
// materialization surfaces the collision as a warning. Callers relying on
// this should treat it as a documented caveat, not a feature.
package catalog

import "github.com/scafflab/scaffgen/pkg/paths"

// Entry is a single artifact: a forward-slash path relative to the base
// directory, and its literal content. Content is opaque to scaffgen and is
// written byte-for-byte with no substitution.
type Entry struct {
	Path    string `toml:"path" yaml:"path"`
	Content string `toml:"content" yaml:"content"`
}

// Catalog is an ordered sequence of entries. Order matters: entries are
// materialized first to last, which is what gives duplicate paths their
// last-write-wins semantics.
type Catalog struct {
	entries []Entry
}

// New builds a catalog from the given entries, preserving order.
// Construction never fails; content is not validated.
func New(entries ...Entry) *Catalog {
	c := &Catalog{entries: make([]Entry, 0, len(entries))}
	c.entries = append(c.entries, entries...)
	return c
}

// Add appends an entry to the catalog.
func (c *Catalog) Add(path, content string) {
	c.entries = append(c.entries, Entry{Path: path, Content: content})
}

// Size returns the number of entries. Every entry reaches the materializer,
// so this equals the number of materialization attempts exactly.
func (c *Catalog) Size() int {
	return len(c.entries)
}

// Entries returns a copy of the entries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Duplicates returns the normalized paths that occur more than once, in
// first-occurrence order. Used to surface integrity warnings; duplicate
// detection costs nothing at construction time.
func (c *Catalog) Duplicates() []string {
	seen := make(map[string]int, len(c.entries))
	var dups []string
	for _, e := range c.entries {
		norm := paths.Normalize(e.Path)
		seen[norm]++
		if seen[norm] == 2 {
			dups = append(dups, norm)
		}
	}
	return dups
}
