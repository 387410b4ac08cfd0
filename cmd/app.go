package main

import (
	"context"

	"domainintel/internal/aggregator"
	"domainintel/internal/config"
	"domainintel/pkg/cache"
	"domainintel/pkg/logger"
	"domainintel/pkg/provider/dnsresolver"
	"domainintel/pkg/provider/domaintools"
	"domainintel/pkg/provider/gemini"
	"domainintel/pkg/provider/httpprobe"
	"domainintel/pkg/provider/rdapclient"
	"domainintel/pkg/provider/whoislookup"
	"domainintel/pkg/storage"
	"domainintel/pkg/storage/noop"
	"domainintel/pkg/storage/postgres"

	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func(), error) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		return nil, nil, err //nolint: wrapcheck
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}, nil
}

// openStorage connects to postgres. When the database cannot be reached the
// record store degrades to noop.Storage and pg is nil.
func openStorage(ctx context.Context, cfg *config.Config) (storage.Storage, *postgres.PgSQL, func()) {
	pg, closeStrg, err := getPostgres(ctx, cfg)
	if err == nil {
		if err = pg.Ping(ctx); err == nil {
			return pg, pg, closeStrg
		}
		closeStrg()
	}
	logger.Warn(ctx, "record store unavailable, history will not be persisted", zap.Error(err))

	return noop.Storage{}, nil, func() {}
}

// newProviders builds every lookup from cfg. The returned function releases
// the WHOIS cache.
func newProviders(ctx context.Context, cfg *config.Config) (aggregator.Providers, func()) {
	c, closeCache := cache.New(ctx, cache.Options{
		RedisAddr:       cfg.Cache.RedisAddr,
		RedisPassword:   cfg.Cache.RedisPassword,
		RedisDB:         cfg.Cache.RedisDB,
		CleanupInterval: cfg.Cache.CleanupInterval,
		HealthRetry:     cfg.Cache.HealthRetry,
	})

	p := cfg.Providers
	threat := domaintools.New(nil, domaintools.Options{
		Username: p.DomainTools.Username,
		APIKey:   p.DomainTools.APIKey,
		BaseURL:  p.DomainTools.BaseURL,
		Timeout:  p.DomainTools.Timeout,
	})
	if !threat.Enabled() {
		logger.Info(ctx, "DomainTools credentials missing, threat checks will report it")
	}
	names := gemini.New(nil, gemini.Options{
		APIKey:     p.Gemini.APIKey,
		Model:      p.Gemini.Model,
		BaseURL:    p.Gemini.BaseURL,
		APIVersion: p.Gemini.APIVersion,
		Timeout:    p.Gemini.Timeout,
	})
	if !names.Enabled() {
		logger.Info(ctx, "Gemini API key missing, name generation is disabled")
	}

	providers := aggregator.Providers{
		Whois: whoislookup.New(whoislookup.Options{
			Timeout:  p.Whois.Timeout,
			Server:   p.Whois.Server,
			CacheTTL: cfg.Cache.TTL,
		}, c),
		DNS: dnsresolver.New(dnsresolver.Options{Server: p.DNS.Server, Timeout: p.DNS.Timeout}),
		RDAP: rdapclient.New(nil, rdapclient.Options{
			Servers:   p.RDAP.Servers,
			Fallback:  p.RDAP.Fallback,
			Bootstrap: p.RDAP.Bootstrap,
			Timeout:   p.RDAP.Timeout,
		}),
		Threat: threat,
		Names:  names,
	}

	return providers, func() {
		if err := closeCache(); err != nil {
			logger.Warn(ctx, "could not close cache", zap.Error(err))
		}
	}
}

func newProber(cfg *config.Config) *httpprobe.Prober {
	return httpprobe.New(nil, httpprobe.Options{
		Timeout: cfg.Providers.HTTPProbe.Timeout,
		Scheme:  cfg.Providers.HTTPProbe.Scheme,
	})
}

func newAggregator(st storage.Storage, providers aggregator.Providers, cfg *config.Config) aggregator.Aggregator {
	return aggregator.New(st, providers, aggregator.Options{
		Concurrency: cfg.Checks.Concurrency,
		DNSTypes:    cfg.Checks.DNSTypes,
	})
}
