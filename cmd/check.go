package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"domainintel/internal/aggregator"
	"domainintel/internal/config"
	"domainintel/internal/session"
	"domainintel/pkg/domain"

	"github.com/spf13/cobra"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "    ")

	return enc.Encode(v) //nolint: wrapcheck
}

func checkCommand(cfg *config.Config) *cobra.Command {
	var (
		kinds    []string
		dnsTypes []string
		export   bool
	)

	cmd := &cobra.Command{
		Use:   "check DOMAIN...",
		Short: "Runs checks for the given domains and stores the results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			enabled, err := domain.ParseCheckKinds(kinds...)
			if err != nil {
				return err //nolint: wrapcheck
			}

			strg, _, closeStrg := openStorage(ctx, cfg)
			defer closeStrg()
			providers, closeProviders := newProviders(ctx, cfg)
			defer closeProviders()

			agg := newAggregator(strg, providers, cfg)
			sess := session.New("cli")
			batch, err := agg.RunChecks(ctx, sess, aggregator.Request{
				Domains:  args,
				Kinds:    enabled,
				DNSTypes: dnsTypes,
			})
			if err != nil {
				return fmt.Errorf("could not run checks: %w", err)
			}
			for _, w := range batch.Warnings {
				fmt.Fprintln(os.Stderr, "warning:", w)
			}

			if !export {
				return printJSON(batch.Records)
			}

			path := filepath.Join(cfg.Export.Dir, aggregator.ExportFileName)
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("could not create export file: %w", err)
			}
			defer f.Close()
			if err := agg.Export(f, sess.LastRun()); err != nil {
				return fmt.Errorf("could not export results: %w", err)
			}
			fmt.Fprintln(os.Stderr, "results written to", path)

			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&kinds, "kinds", "k", nil,
		"check kinds: whois, dns, expiration, rdap, dnssec, threat, availability or security (default all)")
	cmd.Flags().StringSliceVar(&dnsTypes, "dns-types", nil, "DNS record types (default from config)")
	cmd.Flags().BoolVar(&export, "export", false, "write the results to "+aggregator.ExportFileName)

	return cmd
}
