// Package domaintools implements provider.ThreatIntel on top of the
// DomainTools risk evidence API.
package domaintools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"domainintel/pkg/domain"
	"domainintel/pkg/provider"
)

const (
	DefaultBaseURL     = "https://api.domaintools.com/v1/"
	MissingCredentials = "DomainTools credentials missing"
	defaultTimeout     = 10 * time.Second
)

type Options struct {
	Username string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
}

type Client struct {
	httpClient *http.Client
	username   string
	apiKey     string
	baseURL    string
}

var _ provider.ThreatIntel = (*Client)(nil)

func New(httpClient *http.Client, options Options) *Client {
	if options.Timeout <= 0 {
		options.Timeout = defaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.Timeout}
	}
	if options.BaseURL == "" {
		options.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(options.BaseURL, "/") {
		options.BaseURL += "/"
	}

	return &Client{
		httpClient: httpClient,
		username:   strings.TrimSpace(options.Username),
		apiKey:     strings.TrimSpace(options.APIKey),
		baseURL:    options.BaseURL,
	}
}

// Enabled reports whether credentials were configured.
func (c *Client) Enabled() bool {
	return c.username != "" && c.apiKey != ""
}

type riskEvidence struct {
	Response struct {
		Domain     string   `json:"domain"`
		RiskScore  *float64 `json:"risk_score"`
		Components []struct {
			Name      string  `json:"name"`
			RiskScore float64 `json:"risk_score"`
		} `json:"components"`
	} `json:"response"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) fetch(ctx context.Context, domainName string) (*riskEvidence, error) {
	q := url.Values{}
	q.Set("api_username", c.username)
	q.Set("api_key", c.apiKey)
	endpoint := c.baseURL + url.PathEscape(domainName) + "/risk/evidence/?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	var rs riskEvidence
	decodeErr := json.Unmarshal(b, &rs)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decodeErr == nil && rs.Error != nil && rs.Error.Message != "" {
			return nil, fmt.Errorf("risk evidence failed: %s", rs.Error.Message)
		}

		return nil, fmt.Errorf("risk evidence failed: %d %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("could not decode response: %w", decodeErr)
	}

	return &rs, nil
}

// Profile returns the risk score of domainName and a profile built from the
// individual risk components, e.g. "phishing: 12, malware: 3".
func (c *Client) Profile(ctx context.Context, domainName string) domain.ThreatResult {
	res := domain.ThreatResult{Domain: domainName}
	if !c.Enabled() {
		res.Error = MissingCredentials

		return res
	}

	rs, err := c.fetch(ctx, domainName)
	if err != nil {
		res.Error = err.Error()

		return res
	}

	parts := make([]string, 0, len(rs.Response.Components))
	for _, comp := range rs.Response.Components {
		parts = append(parts, comp.Name+": "+strconv.FormatFloat(comp.RiskScore, 'f', -1, 64))
	}
	profile := strings.Join(parts, ", ")
	if profile == "" {
		profile = domain.NotAvailable
	}
	res.Info = &domain.ThreatInfo{RiskScore: rs.Response.RiskScore, Profile: profile}

	return res
}
