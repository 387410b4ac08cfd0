package v1handler

import (
	"domainintel/internal/aggregator"
	"domainintel/internal/history"
	"domainintel/pkg/domain"
)

type CheckRequest struct {
	Domains  []string `json:"domains"`
	Kinds    []string `json:"kinds,omitempty"`
	DNSTypes []string `json:"dns_types,omitempty"`
	// Async queues the run as a background job instead of waiting for it.
	Async bool `json:"async,omitempty"`
}

type EnqueueResponse struct {
	Enqueued bool `json:"enqueued"`
}

type GenerateRequest struct {
	Prompt string   `json:"prompt"`
	TLDs   []string `json:"tlds,omitempty"`
	Count  int      `json:"count"`
}

type RefreshRequest struct {
	Domains []string `json:"domains,omitempty"`
}

// ListResponse wraps read results. Warning is set when the record store could
// not be reached and Items is empty.
type ListResponse[T any] struct {
	Items   T      `json:"items"`
	Warning string `json:"warning,omitempty"`
}

type DeleteResponse struct {
	Deleted int64  `json:"deleted"`
	Warning string `json:"warning,omitempty"`
}

type QuoteResponse struct {
	Domain string               `json:"domain"`
	TLD    string               `json:"tld"`
	Items  []history.Suggestion `json:"items"`
}

func (c CheckRequest) toRequest() (aggregator.Request, error) {
	kinds, err := domain.ParseCheckKinds(c.Kinds...)
	if err != nil {
		return aggregator.Request{}, badRequest(err)
	}

	return aggregator.Request{Domains: c.Domains, Kinds: kinds, DNSTypes: c.DNSTypes}, nil
}
