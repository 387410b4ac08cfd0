// Package gemini implements provider.NameGenerator on top of the Gemini API
// client from google.golang.org/genai.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"domainintel/pkg/provider"
	"domainintel/pkg/serrors"

	"google.golang.org/genai"
)

const (
	DefaultBaseURL    = "https://generativelanguage.googleapis.com/"
	DefaultAPIVersion = "v1beta"
	DefaultModel      = "gemini-2.0-flash"
	defaultTimeout    = 30 * time.Second
)

type Options struct {
	APIKey     string
	Model      string
	BaseURL    string
	APIVersion string
	Timeout    time.Duration
}

type Client struct {
	httpClient *http.Client
	options    Options

	once    sync.Once
	models  *genai.Models
	initErr error
}

var _ provider.NameGenerator = (*Client)(nil)

func New(httpClient *http.Client, options Options) *Client {
	if options.Timeout <= 0 {
		options.Timeout = defaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.Timeout}
	}
	if options.Model == "" {
		options.Model = DefaultModel
	}
	if options.BaseURL == "" {
		options.BaseURL = DefaultBaseURL
	}
	if options.APIVersion == "" {
		options.APIVersion = DefaultAPIVersion
	}
	options.APIKey = strings.TrimSpace(options.APIKey)

	return &Client{httpClient: httpClient, options: options}
}

// Enabled reports whether an API key was configured.
func (c *Client) Enabled() bool { return c.options.APIKey != "" }

// Prompt renders the instruction sent to the model.
func Prompt(prompt string, tlds []string, count int) string {
	return fmt.Sprintf("Generate %d domain name ideas for: %s, using TLDs: %s. "+
		"Return each domain on a new line, in the format 'name.tld'.", count, prompt, strings.Join(tlds, ", "))
}

// FilterNames keeps trimmed, non-empty lines of text that end with one of tlds,
// stopping after count names.
func FilterNames(text string, tlds []string, count int) []string {
	out := make([]string, 0, count)
	for _, line := range strings.Split(text, "\n") {
		if len(out) >= count {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, tld := range tlds {
			if tld != "" && strings.HasSuffix(line, tld) {
				out = append(out, line)

				break
			}
		}
	}

	return out
}

// client builds the genai client on first use. Building it needs no network.
func (c *Client) client(ctx context.Context) (*genai.Models, error) {
	c.once.Do(func() {
		gc, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:     c.options.APIKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: c.httpClient,
			HTTPOptions: genai.HTTPOptions{
				BaseURL:    c.options.BaseURL,
				APIVersion: c.options.APIVersion,
			},
		})
		if err != nil {
			c.initErr = fmt.Errorf("could not create gemini client: %w", err)

			return
		}
		c.models = gc.Models
	})

	return c.models, c.initErr
}

func (c *Client) Generate(ctx context.Context, prompt string, tlds []string, count int) ([]string, error) {
	if !c.Enabled() {
		return nil, serrors.With(serrors.ErrConfigurationMissing, "Gemini API key missing")
	}
	if count <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "count must be positive")
	}
	if len(tlds) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "at least one tld is required")
	}

	models, err := c.client(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := models.GenerateContent(ctx, c.options.Model, genai.Text(Prompt(prompt, tlds, count)), nil)
	if err != nil {
		return nil, fmt.Errorf("could not generate names: %w", apiError(err))
	}

	return FilterNames(resp.Text(), tlds, count), nil
}

// apiError maps a quota error to serrors.ErrRateLimited and keeps the API
// message of any other status.
func apiError(err error) error {
	var (
		value   genai.APIError
		pointer *genai.APIError
		apiErr  *genai.APIError
	)
	switch {
	case errors.As(err, &value):
		apiErr = &value
	case errors.As(err, &pointer):
		apiErr = pointer
	default:
		return err
	}

	if apiErr.Code == http.StatusTooManyRequests {
		return serrors.With(serrors.ErrRateLimited, "rate limited: %s", apiErr.Message)
	}

	return fmt.Errorf("generate content failed: %s", apiErr.Message)
}
