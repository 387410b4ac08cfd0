// Package whoislookup implements provider.Whois on top of likexian/whois.
package whoislookup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"domainintel/pkg/cache"
	"domainintel/pkg/domain"
	"domainintel/pkg/logger"
	"domainintel/pkg/provider"

	lwhois "github.com/likexian/whois"
	"go.uber.org/zap"
)

const cachePrefix = "whois:"

// Querier fetches a raw WHOIS response. *lwhois.Client implements it.
type Querier interface {
	Whois(domain string, servers ...string) (string, error)
}

type Options struct {
	// Timeout bounds a single lookup including referrals.
	Timeout time.Duration
	// Server overrides the WHOIS server; empty means automatic discovery.
	Server string
	// CacheTTL is how long raw responses are kept. Zero disables caching.
	CacheTTL time.Duration
}

type Client struct {
	options Options
	querier Querier
	cache   cache.Cache
}

var _ provider.Whois = (*Client)(nil)

// New builds a Client using the likexian/whois client. c may be nil.
func New(options Options, c cache.Cache) *Client {
	q := lwhois.NewClient()
	if options.Timeout > 0 {
		q.SetTimeout(options.Timeout)
	}

	return NewWithQuerier(q, options, c)
}

func NewWithQuerier(q Querier, options Options, c cache.Cache) *Client {
	return &Client{options: options, querier: q, cache: c}
}

func (c *Client) raw(ctx context.Context, domainName string) (string, error) {
	key := cachePrefix + domainName
	if c.cache != nil && c.options.CacheTTL > 0 {
		if v, ok, err := c.cache.Get(ctx, key); err == nil && ok {
			return v, nil
		}
	}

	type result struct {
		raw string
		err error
	}
	done := make(chan result, 1)
	go func() {
		var servers []string
		if c.options.Server != "" {
			servers = append(servers, c.options.Server)
		}
		raw, err := c.querier.Whois(domainName, servers...)
		done <- result{raw: raw, err: err}
	}()

	var res result
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-done:
	}
	if res.err != nil {
		return "", res.err
	}

	if c.cache != nil && c.options.CacheTTL > 0 {
		if err := c.cache.Set(ctx, key, res.raw, c.options.CacheTTL); err != nil {
			logger.Warn(ctx, "could not cache whois response", zap.String("domain", domainName), zap.Error(err))
		}
	}

	return res.raw, nil
}

// Lookup never returns an error; failures are reported in the result.
func (c *Client) Lookup(ctx context.Context, domainName string) domain.WhoisResult {
	raw, err := c.raw(ctx, strings.ToLower(domainName))
	if err != nil {
		return domain.NewFailedWhois(domainName, fmt.Sprintf("WHOIS lookup failed: %s", err))
	}

	res, err := Parse(domainName, raw)
	if err != nil {
		return domain.NewFailedWhois(domainName, fmt.Sprintf("WHOIS lookup failed: %s", err))
	}

	return res
}
