// Package httpprobe implements provider.Liveness: a domain is live when
// GET https://{domain} answers 200.
package httpprobe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"domainintel/pkg/domain"
	"domainintel/pkg/provider"
)

const (
	DefaultTimeout = 5 * time.Second
	maxDrain       = 64 << 10
)

type Options struct {
	Timeout time.Duration
	// Scheme defaults to https.
	Scheme string
}

type Prober struct {
	httpClient *http.Client
	scheme     string
}

var _ provider.Liveness = (*Prober)(nil)

func New(httpClient *http.Client, options Options) *Prober {
	if options.Timeout <= 0 {
		options.Timeout = DefaultTimeout
	}
	if options.Scheme == "" {
		options.Scheme = "https"
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	c := *httpClient
	c.Timeout = options.Timeout

	return &Prober{httpClient: &c, scheme: options.Scheme}
}

func (p *Prober) Probe(ctx context.Context, domainName string) domain.LivenessStatus {
	status := domain.LivenessStatus{Domain: domainName}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.scheme+"://"+domainName, nil)
	if err != nil {
		status.Error = fmt.Sprintf("could not create request: %v", err)
		status.CheckedAt = time.Now().UTC()

		return status
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		status.Error = err.Error()
		status.CheckedAt = time.Now().UTC()

		return status
	}
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, maxDrain)
		_ = resp.Body.Close()
	}()

	code := resp.StatusCode
	status.HTTPCode = &code
	status.Live = code == http.StatusOK
	status.CheckedAt = time.Now().UTC()

	return status
}
