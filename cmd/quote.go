package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"domainintel/internal/config"
	"domainintel/pkg/pricing"

	"github.com/spf13/cobra"
)

func quoteCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote DOMAIN",
		Short: "Shows registrar prices for the domain's TLD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := pricing.Load(cfg.Pricing.Path)
			if err != nil {
				return fmt.Errorf("could not load pricing table: %w", err)
			}

			quotes, best := table.Quote(args[0])
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "REGISTRAR\tFIRST YEAR\tRENEWAL\tWHOIS PRIVACY\tRECOMMENDED\tURL")
			for i, q := range quotes {
				mark := ""
				if i == best {
					mark = "yes"
				}
				fmt.Fprintf(w, "%s\t$%.2f\t$%.2f\t%s\t%s\t%s\n",
					q.Registrar, q.FirstYearPrice, q.RenewalPrice, q.WhoisPrivacy, mark, q.URL)
			}

			return w.Flush() //nolint: wrapcheck
		},
	}

	return cmd
}
