package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/forecast/internal/export"
	"github.com/cleared-dev/forecast/internal/multiplier"
)

func newMultiplierCommand() *cobra.Command {
	var expenses, revenues []string

	cmd := &cobra.Command{
		Use:   "multiplier",
		Short: "Tabulate flat monthly amounts over months and years",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var items []multiplier.Item
			for _, arg := range expenses {
				it, err := parseMonthlyItem(arg, multiplier.KindExpense)
				if err != nil {
					return err
				}
				items = append(items, it)
			}
			for _, arg := range revenues {
				it, err := parseMonthlyItem(arg, multiplier.KindRevenue)
				if err != nil {
					return err
				}
				items = append(items, it)
			}
			if len(items) == 0 {
				return fmt.Errorf("at least one --expense or --revenue is required")
			}
			return printMultiplier(cmd.OutOrStdout(), items)
		},
	}

	cmd.Flags().StringArrayVar(&expenses, "expense", nil, "monthly expense as name=amount (repeatable)")
	cmd.Flags().StringArrayVar(&revenues, "revenue", nil, "monthly revenue as name=amount (repeatable)")
	return cmd
}

// parseMonthlyItem parses "name=amount".
func parseMonthlyItem(arg string, kind multiplier.Kind) (multiplier.Item, error) {
	name, amount, ok := strings.Cut(arg, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return multiplier.Item{}, fmt.Errorf("invalid %s %q: want name=amount", kind, arg)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return multiplier.Item{}, fmt.Errorf("invalid %s amount %q: %w", kind, amount, err)
	}
	return multiplier.Item{Name: name, Amount: v, Kind: kind}, nil
}

func printMultiplier(w io.Writer, items []multiplier.Item) error {
	rows := multiplier.ExpandAll(items)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "Item\tKind\t")
	for m := 1; m <= len(rows[0].Months); m++ {
		fmt.Fprintf(tw, "M%d\t", m)
	}
	fmt.Fprintln(tw)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t", r.Item.Name, r.Item.Kind)
		for _, v := range r.Months {
			fmt.Fprintf(tw, "%s\t", export.Money(v))
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "Item\tKind\t")
	for y := 1; y <= len(rows[0].Years); y++ {
		fmt.Fprintf(tw, "Y%d\t", y)
	}
	fmt.Fprintln(tw)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t", r.Item.Name, r.Item.Kind)
		for _, v := range r.Years {
			fmt.Fprintf(tw, "%s\t", export.Money(v))
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "Months\t")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t", it.Name)
	}
	fmt.Fprintln(tw)
	for _, cp := range multiplier.Checkpoints(items) {
		fmt.Fprintf(tw, "%d\t", cp.Month)
		for _, it := range items {
			fmt.Fprintf(tw, "%s\t", export.Money(cp.Totals[it.Name]))
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nNet per month: %s\n", export.Money(multiplier.Net(items)))
	return nil
}
