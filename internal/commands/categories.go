package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/forecast/internal/catalog"
)

func newCategoriesCommand(opts *rootOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List expense and revenue categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := catalog.Load(opts.ws.Root)
			if err != nil {
				return err
			}

			cats := svc.All()
			if kind != "" {
				k := catalog.Kind(kind)
				if k != catalog.KindExpense && k != catalog.KindRevenue {
					return fmt.Errorf("invalid kind %q: want expense or revenue", kind)
				}
				cats = svc.ByKind(k)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tNAME\tCOLOR")
			for _, c := range cats {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Kind, c.Name, c.Color)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "only show expense or revenue categories")
	return cmd
}
