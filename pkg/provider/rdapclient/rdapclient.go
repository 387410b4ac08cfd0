// Package rdapclient implements provider.RDAP with github.com/openrdap/rdap.
// Servers are found through the IANA bootstrap registry. A configured TLD map
// overrides it and a fallback server covers bootstrap misses.
package rdapclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"domainintel/pkg/domain"
	"domainintel/pkg/logger"
	"domainintel/pkg/provider"

	"github.com/openrdap/rdap"
	"github.com/openrdap/rdap/bootstrap"
	"go.uber.org/zap"
)

const (
	DefaultFallback  = "https://rdap.org/"
	DefaultBootstrap = "https://data.iana.org/rdap/"
	defaultTimeout   = 10 * time.Second
)

// DefaultServers maps a TLD, without the leading dot, to its RDAP base URL.
func DefaultServers() map[string]string {
	return map[string]string{
		"com": "https://rdap.verisign.com/com/v1/",
		"net": "https://rdap.verisign.com/net/v1/",
	}
}

type Options struct {
	// Servers overrides DefaultServers when not empty.
	Servers map[string]string
	// Fallback is queried when bootstrap has no server for a TLD.
	Fallback string
	// Bootstrap is the base URL of the IANA registry files.
	Bootstrap string
	Timeout   time.Duration
}

type Client struct {
	rdap     *rdap.Client
	servers  map[string]*url.URL
	fallback *url.URL
	timeout  time.Duration
}

var _ provider.RDAP = (*Client)(nil)

// New creates a Client. A nil httpClient gets one with options.Timeout.
// Invalid server URLs are logged and skipped.
func New(httpClient *http.Client, options Options) *Client {
	if options.Timeout <= 0 {
		options.Timeout = defaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.Timeout}
	}
	raw := DefaultServers()
	if len(options.Servers) > 0 {
		raw = options.Servers
	}
	if options.Fallback == "" {
		options.Fallback = DefaultFallback
	}
	if options.Bootstrap == "" {
		options.Bootstrap = DefaultBootstrap
	}

	servers := make(map[string]*url.URL, len(raw))
	for tld, server := range raw {
		u, err := baseURL(server)
		if err != nil {
			logger.Warn(context.Background(), "skipping RDAP server", zap.String("tld", tld), zap.Error(err))

			continue
		}
		servers[strings.ToLower(strings.TrimPrefix(tld, "."))] = u
	}
	fallback, err := baseURL(options.Fallback)
	if err != nil {
		logger.Warn(context.Background(), "RDAP fallback disabled", zap.Error(err))
	}

	bc := &bootstrap.Client{HTTP: httpClient}
	if u, err := baseURL(options.Bootstrap); err == nil {
		bc.BaseURL = u
	}

	return &Client{
		rdap:     &rdap.Client{HTTP: httpClient, Bootstrap: bc},
		servers:  servers,
		fallback: fallback,
		timeout:  options.Timeout,
	}
}

func baseURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("could not parse %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%q is not an absolute URL", raw)
	}

	return u, nil
}

// ServerFor returns the configured RDAP base URL for domainName. It reports
// false when the server is left to bootstrap.
func (c *Client) ServerFor(domainName string) (string, bool) {
	if u := c.server(domainName); u != nil {
		return u.String(), true
	}

	return "", false
}

func (c *Client) server(domainName string) *url.URL {
	name := strings.TrimSuffix(strings.ToLower(domainName), ".")
	if i := strings.LastIndex(name, "."); i >= 0 {
		return c.servers[name[i+1:]]
	}

	return nil
}

func (c *Client) do(ctx context.Context, domainName string, server *url.URL) (*rdap.Domain, error) {
	req := rdap.NewDomainRequest(domainName).WithContext(ctx)
	if server != nil {
		req = req.WithServer(server)
	}

	resp, err := c.rdap.Do(req)
	if err != nil {
		return nil, queryError(resp, err)
	}

	d, ok := resp.Object.(*rdap.Domain)
	if !ok {
		return nil, fmt.Errorf("unexpected RDAP object %T", resp.Object)
	}

	return d, nil
}

// query asks the configured server, or bootstrap and then the fallback.
func (c *Client) query(ctx context.Context, domainName string) (*rdap.Domain, error) {
	if server := c.server(domainName); server != nil {
		return c.do(ctx, domainName, server)
	}

	d, err := c.do(ctx, domainName, nil)
	if err == nil || errors.Is(err, errNotFound) || c.fallback == nil {
		return d, err
	}
	logger.Debug(ctx, "RDAP bootstrap failed, trying fallback", zap.String("domain", domainName), zap.Error(err))

	return c.do(ctx, domainName, c.fallback)
}

var (
	errNotFound = errors.New("resource not found")
	errDenied   = errors.New("the registry denied the query")
)

func queryError(resp *rdap.Response, err error) error {
	var ce *rdap.ClientError
	if errors.As(err, &ce) && ce.Type == rdap.ObjectDoesNotExist {
		return errNotFound
	}
	if resp != nil {
		for _, hr := range resp.HTTP {
			if hr.Response == nil {
				continue
			}
			switch hr.Response.StatusCode {
			case http.StatusNotFound:
				return errNotFound
			case http.StatusForbidden:
				return errDenied
			}
		}
	}

	return fmt.Errorf("could not query RDAP: %w", err)
}

func registrar(entities []rdap.Entity) (string, bool) {
	for _, e := range entities {
		for _, role := range e.Roles {
			if role != "registrar" || e.VCard == nil {
				continue
			}
			if name := e.VCard.Name(); name != "" {
				return name, true
			}
		}
		if name, ok := registrar(e.Entities); ok {
			return name, true
		}
	}

	return "", false
}

func (c *Client) Lookup(ctx context.Context, domainName string) domain.RDAPResult {
	res := domain.RDAPResult{Domain: domainName, Registrar: domain.NotAvailable, Status: []string{}}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	d, err := c.query(ctx, domainName)
	if err != nil {
		res.Error = err.Error()

		return res
	}
	if name, ok := registrar(d.Entities); ok {
		res.Registrar = name
	}
	if d.Status != nil {
		res.Status = d.Status
	}

	return res
}
