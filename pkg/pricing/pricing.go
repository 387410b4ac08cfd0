// Package pricing quotes registration prices for a domain from a static
// per-TLD table and picks the cheapest registrar over two years.
package pricing

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"domainintel/pkg/domain"

	"golang.org/x/net/publicsuffix"
	"gopkg.in/yaml.v3"
)

// DefaultTLD is the table used for TLDs without their own entry.
const DefaultTLD = ".com"

//go:embed default.yml
var defaultTable []byte

// Table maps a TLD, including its leading dot, to registrar quotes.
type Table map[string][]domain.RegistrarQuote

// Parse decodes a YAML table. It must contain DefaultTLD.
func Parse(b []byte) (Table, error) {
	raw := Table{}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("could not decode pricing table: %w", err)
	}

	t := make(Table, len(raw))
	for tld, quotes := range raw {
		t[normalizeTLD(tld)] = quotes
	}
	if len(t[DefaultTLD]) == 0 {
		return nil, fmt.Errorf("pricing table has no %s entry", DefaultTLD)
	}

	return t, nil
}

// Default returns the embedded table.
func Default() Table {
	t, err := Parse(defaultTable)
	if err != nil {
		panic(err)
	}

	return t
}

// Load reads the table from path, or returns Default when path is empty.
func Load(path string) (Table, error) {
	if path == "" {
		return Default(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read pricing table: %w", err)
	}

	return Parse(b)
}

func normalizeTLD(tld string) string {
	tld = strings.ToLower(strings.TrimSpace(tld))
	if !strings.HasPrefix(tld, ".") {
		tld = "." + tld
	}

	return tld
}

// TLD returns the last label of domainName with a leading dot, e.g. ".ai"
// or ".uk" for shop.example.co.uk.
func TLD(domainName string) string {
	name := trimName(domainName)
	if name == "" {
		return ""
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}

	return "." + name
}

// Suffix returns the ICANN public suffix of domainName with a leading dot,
// e.g. ".co.uk". Private suffixes such as github.io resolve to their ICANN
// TLD. It returns "" when the name has no ICANN suffix.
func Suffix(domainName string) string {
	name := trimName(domainName)
	if name == "" {
		return ""
	}
	suffix, icann := publicsuffix.PublicSuffix(name)
	for !icann {
		i := strings.IndexByte(suffix, '.')
		if i < 0 {
			return ""
		}
		suffix, icann = publicsuffix.PublicSuffix(suffix[i+1:])
	}

	return "." + suffix
}

func trimName(domainName string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(domainName)), ".")
}

// Quote returns the quotes for domainName and the index of the recommended
// one. A table entry for the full public suffix wins over the TLD entry and
// DefaultTLD covers the rest. Ties go to the first registrar listed.
func (t Table) Quote(domainName string) ([]domain.RegistrarQuote, int) {
	quotes := t[Suffix(domainName)]
	if len(quotes) == 0 {
		quotes = t[TLD(domainName)]
	}
	if len(quotes) == 0 {
		quotes = t[DefaultTLD]
	}
	out := make([]domain.RegistrarQuote, len(quotes))
	copy(out, quotes)

	return out, Recommend(out)
}

// Recommend returns the index of the quote with the lowest Total, or -1 for
// an empty slice.
func Recommend(quotes []domain.RegistrarQuote) int {
	best := -1
	for i, q := range quotes {
		if best < 0 || q.Total() < quotes[best].Total() {
			best = i
		}
	}

	return best
}
