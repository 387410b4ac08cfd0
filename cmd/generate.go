package main

import (
	"context"
	"fmt"
	"os"

	"domainintel/internal/aggregator"
	"domainintel/internal/config"

	"github.com/spf13/cobra"
)

func generateCommand(cfg *config.Config) *cobra.Command {
	var (
		tlds  []string
		count int
	)

	cmd := &cobra.Command{
		Use:   "generate PROMPT",
		Short: "Generates domain name ideas and keeps the available ones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			strg, _, closeStrg := openStorage(ctx, cfg)
			defer closeStrg()
			providers, closeProviders := newProviders(ctx, cfg)
			defer closeProviders()

			out, err := newAggregator(strg, providers, cfg).Generate(ctx, aggregator.GenerateRequest{
				Prompt: args[0],
				TLDs:   tlds,
				Count:  count,
			})
			if err != nil {
				return fmt.Errorf("could not generate names: %w", err)
			}
			for _, w := range out.Warnings {
				fmt.Fprintln(os.Stderr, "warning:", w)
			}

			return printJSON(out.Available)
		},
	}
	cmd.Flags().StringSliceVarP(&tlds, "tlds", "t", []string{".com"}, "allowed TLDs")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of names to request")

	return cmd
}
