package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/cleared-dev/forecast/internal/projection"
	"github.com/cleared-dev/forecast/internal/scenario"
)

func newCompareCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <scenario> <scenario>",
		Short: "Compare the metrics of two saved scenarios",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, opts.ws, args[0], args[1])
		},
	}
}

func runCompare(cmd *cobra.Command, ws *workspace, refA, refB string) error {
	st, err := ws.openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	refs := [2]string{refA, refB}
	var names [2]string
	var results [2]projection.Result

	g, ctx := errgroup.WithContext(cmd.Context())
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			s, err := scenario.Resolve(ctx, st, ref)
			if err != nil {
				return fmt.Errorf("loading scenario %q: %w", ref, err)
			}
			res, err := projection.Run(s.Params())
			if err != nil {
				return fmt.Errorf("projecting %s: %w", s.Name, err)
			}
			names[i] = s.Name
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	loggerFrom(cmd).Debug().Str("a", names[0]).Str("b", names[1]).Msg("compared scenarios")

	rowsA := metricRows(results[0].Metrics)
	rowsB := metricRows(results[1].Metrics)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Metric\t%s\t%s\n", names[0], names[1])
	for i := range rowsA {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", rowsA[i][0], rowsA[i][1], rowsB[i][1])
	}
	fmt.Fprintf(tw, "Years\t%d\t%d\n", len(results[0].Series)-1, len(results[1].Series)-1)
	return tw.Flush()
}
