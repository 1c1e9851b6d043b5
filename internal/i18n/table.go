package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strconv"
	"strings"

	appErrors "github.com/sadsen/saad/internal/errors"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Table is an immutable flat mapping from dotted key path to text.
type Table struct {
	locale  Locale
	entries map[string]string
}

// ParseTable flattens a YAML document into a Table. Nested mappings become
// dotted paths ("hero.role") and sequence items are addressed by index
// ("experience.items.0.title"). Scalars must be strings.
func ParseTable(locale Locale, data []byte) (*Table, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("parse %s translations: %v", locale, err), err)
	}
	t := &Table{locale: locale, entries: make(map[string]string)}
	if len(root.Content) == 0 {
		return t, nil
	}
	if err := t.flatten("", root.Content[0]); err != nil {
		return nil, appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("%s translations: %v", locale, err), err)
	}
	return t, nil
}

func (t *Table) flatten(prefix string, n *yaml.Node) error {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			if key == "" || strings.Contains(key, ".") {
				return fmt.Errorf("invalid key %q under %q", key, prefix)
			}
			if err := t.flatten(join(prefix, key), n.Content[i+1]); err != nil {
				return err
			}
		}
	case yaml.SequenceNode:
		for i, item := range n.Content {
			if err := t.flatten(join(prefix, strconv.Itoa(i)), item); err != nil {
				return err
			}
		}
	case yaml.ScalarNode:
		if prefix == "" {
			return fmt.Errorf("top-level scalar")
		}
		if _, dup := t.entries[prefix]; dup {
			return fmt.Errorf("duplicate key %q", prefix)
		}
		t.entries[prefix] = n.Value
	case yaml.AliasNode:
		return t.flatten(prefix, n.Alias)
	default:
		return fmt.Errorf("unsupported node at %q", prefix)
	}
	return nil
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// Locale returns the table's language.
func (t *Table) Locale() Locale {
	return t.locale
}

// Lookup returns the text stored at path.
func (t *Table) Lookup(path string) (string, bool) {
	v, ok := t.entries[path]
	return v, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Keys returns every path in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Count returns how many consecutive indexed children exist under prefix,
// e.g. Count("projects.items") for a list of projects.
func (t *Table) Count(prefix string) int {
	n := 0
	for t.has(join(prefix, strconv.Itoa(n))) {
		n++
	}
	return n
}

// has reports whether path is a leaf or the parent of any leaf.
func (t *Table) has(path string) bool {
	if _, ok := t.entries[path]; ok {
		return true
	}
	p := path + "."
	for k := range t.entries {
		if strings.HasPrefix(k, p) {
			return true
		}
	}
	return false
}

// Catalog holds one table per locale.
type Catalog struct {
	tables map[Locale]*Table
}

// NewCatalog builds a catalog from already parsed tables.
func NewCatalog(tables ...*Table) *Catalog {
	c := &Catalog{tables: make(map[Locale]*Table, len(tables))}
	for _, t := range tables {
		c.tables[t.locale] = t
	}
	return c
}

// LoadCatalog parses the embedded translation files.
func LoadCatalog() (*Catalog, error) {
	var tables []*Table
	for _, l := range Locales {
		data, err := localeFS.ReadFile("locales/" + string(l) + ".yaml")
		if err != nil {
			return nil, appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("read %s translations", l), err)
		}
		t, err := ParseTable(l, data)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return NewCatalog(tables...), nil
}

// Table returns the table for l, or nil.
func (c *Catalog) Table(l Locale) *Table {
	return c.tables[l]
}

// CheckParity verifies every key present in one locale's table is present in
// every other one. The error lists each missing key per locale.
func (c *Catalog) CheckParity() error {
	var missing []string
	for _, l := range Locales {
		t := c.tables[l]
		if t == nil {
			missing = append(missing, fmt.Sprintf("%s: table missing", l))
			continue
		}
		for _, other := range Locales {
			if other == l || c.tables[other] == nil {
				continue
			}
			for _, k := range c.tables[other].Keys() {
				if _, ok := t.Lookup(k); !ok {
					missing = append(missing, fmt.Sprintf("%s: %s", l, k))
				}
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return appErrors.New(appErrors.CodeMissingTranslationKey,
		"translation tables out of parity:\n  "+strings.Join(missing, "\n  "), nil)
}
