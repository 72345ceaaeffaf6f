package extraction

import "strings"

type catalogPattern struct {
	field      string
	normalized string
}

// Catalog is the canonical field catalog with patterns pre-normalized for
// matching. Immutable after construction and safe for concurrent use.
type Catalog struct {
	entries  []CatalogEntry
	patterns []catalogPattern
	exact    map[string]string
}

// NewCatalog builds a catalog from the given entries, preserving their order.
func NewCatalog(entries []CatalogEntry) *Catalog {
	c := &Catalog{
		entries: entries,
		exact:   make(map[string]string),
	}
	for _, e := range entries {
		for _, syn := range e.Synonyms {
			n := NormalizeFieldName(syn)
			if n == "" {
				continue
			}
			c.patterns = append(c.patterns, catalogPattern{field: e.Field, normalized: n})
			if _, seen := c.exact[n]; !seen {
				c.exact[n] = e.Field
			}
		}
		n := NormalizeFieldName(e.Field)
		if _, seen := c.exact[n]; !seen {
			c.exact[n] = e.Field
		}
	}
	return c
}

var defaultCatalog = NewCatalog(catalogEntries)

// DefaultCatalog returns the process-wide canonical catalog.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// Entries returns the catalog entries in declaration order.
func (c *Catalog) Entries() []CatalogEntry {
	return c.entries
}

// FindBestFieldMatch resolves a free-form extracted field label to a
// canonical field identifier. An exact match on the normalized label wins
// outright. Otherwise every pattern that contains, or is contained in, the
// normalized label is scored by its own length and the highest score wins;
// on a tie the pattern declared first keeps the match.
func (c *Catalog) FindBestFieldMatch(extracted string) (string, bool) {
	n := NormalizeFieldName(extracted)
	if n == "" {
		return "", false
	}
	if field, ok := c.exact[n]; ok {
		return field, true
	}

	best := ""
	bestScore := 0
	for _, p := range c.patterns {
		if !strings.Contains(n, p.normalized) && !strings.Contains(p.normalized, n) {
			continue
		}
		if len(p.normalized) > bestScore {
			best = p.field
			bestScore = len(p.normalized)
		}
	}
	return best, best != ""
}
