package pricing_test

import (
	"os"
	"path/filepath"
	"testing"

	"domainintel/pkg/domain"
	"domainintel/pkg/pricing"

	"github.com/stretchr/testify/require"
)

func TestDefault_Quote(t *testing.T) {
	table := pricing.Default()

	tests := []struct {
		domain      string
		recommended string
		total       float64
	}{
		{domain: "example.com", recommended: "Cloudflare", total: 18.30},
		{domain: "brainy.AI", recommended: "Cloudflare", total: 96},
		{domain: "example.io", recommended: "Cloudflare", total: 18.30},
		{domain: "localhost", recommended: "Cloudflare", total: 18.30},
	}
	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			quotes, idx := table.Quote(tt.domain)
			require.Len(t, quotes, 5)
			require.Equal(t, tt.recommended, quotes[idx].Registrar)
			require.InDelta(t, tt.total, quotes[idx].Total(), 0.001)
		})
	}
}

func TestDefault_ComTable(t *testing.T) {
	quotes, _ := pricing.Default().Quote("example.com")
	require.Equal(t, domain.RegistrarQuote{
		Registrar:      "Namecheap",
		FirstYearPrice: 11.28,
		RenewalPrice:   16.98,
		WhoisPrivacy:   "Free",
		URL:            "https://www.namecheap.com",
	}, quotes[0])
	require.Equal(t, "Free with hosting", quotes[4].WhoisPrivacy)
}

func TestQuote_doesNotShareTable(t *testing.T) {
	table := pricing.Default()
	quotes, _ := table.Quote("example.com")
	quotes[0].Registrar = "changed"

	again, _ := table.Quote("example.com")
	require.Equal(t, "Namecheap", again[0].Registrar)
}

func TestRecommend(t *testing.T) {
	require.Equal(t, -1, pricing.Recommend(nil))
	require.Equal(t, 0, pricing.Recommend([]domain.RegistrarQuote{
		{Registrar: "first", FirstYearPrice: 5, RenewalPrice: 5},
		{Registrar: "tie", FirstYearPrice: 2, RenewalPrice: 8},
	}))
	require.Equal(t, 1, pricing.Recommend([]domain.RegistrarQuote{
		{Registrar: "a", FirstYearPrice: 5, RenewalPrice: 5},
		{Registrar: "b", FirstYearPrice: 1, RenewalPrice: 8},
	}))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prices.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
com:
  - registrar: Only
    first_year: 1
    renewal: 2
    whois_privacy: Free
    url: https://only.example
.dev:
  - registrar: Dev
    first_year: 10
    renewal: 10
    whois_privacy: Free
    url: https://dev.example
`), 0o600))

	table, err := pricing.Load(path)
	require.NoError(t, err)

	quotes, idx := table.Quote("site.dev")
	require.Equal(t, "Dev", quotes[idx].Registrar)
	quotes, idx = table.Quote("site.xyz")
	require.Equal(t, "Only", quotes[idx].Registrar)

	def, err := pricing.Load("")
	require.NoError(t, err)
	require.Contains(t, def, ".ai")
}

func TestParse_errors(t *testing.T) {
	_, err := pricing.Parse([]byte("{not yaml"))
	require.Error(t, err)

	_, err = pricing.Parse([]byte(".ai: []\n"))
	require.ErrorContains(t, err, "no .com entry")

	_, err = pricing.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestTLD(t *testing.T) {
	tests := map[string]string{
		"Example.COM":        ".com",
		"brainy.ai.":         ".ai",
		"shop.example.co.uk": ".uk",
		"foo.github.io":      ".io",
		"localhost":          ".localhost",
		" ":                  "",
	}
	for name, want := range tests {
		require.Equal(t, want, pricing.TLD(name), name)
	}
}

func TestSuffix(t *testing.T) {
	tests := map[string]string{
		"shop.example.co.uk": ".co.uk",
		"foo.github.io":      ".io",
		"Example.COM":        ".com",
		"localhost":          "",
		"":                   "",
	}
	for name, want := range tests {
		require.Equal(t, want, pricing.Suffix(name), name)
	}
}

func TestQuote_multiLabelSuffix(t *testing.T) {
	quote := func(registrar string) []domain.RegistrarQuote {
		return []domain.RegistrarQuote{{Registrar: registrar, FirstYearPrice: 1, RenewalPrice: 1}}
	}
	table := pricing.Table{
		".com":   quote("dotcom"),
		".uk":    quote("dotuk"),
		".co.uk": quote("dotcouk"),
		".io":    quote("dotio"),
	}

	tests := map[string]string{
		"shop.example.co.uk": "dotcouk",
		"example.org.uk":     "dotuk",
		"foo.github.io":      "dotio",
		"example.dev":        "dotcom",
	}
	for name, want := range tests {
		quotes, idx := table.Quote(name)
		require.Equal(t, want, quotes[idx].Registrar, name)
	}
}
