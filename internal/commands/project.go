package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/forecast/internal/export"
	"github.com/cleared-dev/forecast/internal/model"
	"github.com/cleared-dev/forecast/internal/projection"
	"github.com/cleared-dev/forecast/internal/runlog"
	"github.com/cleared-dev/forecast/internal/scenario"
)

type projectFlags struct {
	params    string
	scenario  string
	csvOut    string
	breakdown string
	years     int
}

func newProjectCommand(opts *rootOptions) *cobra.Command {
	var f projectFlags

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a parameter file or a saved scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(cmd, opts.ws, f)
		},
	}

	cmd.Flags().StringVar(&f.params, "params", "", "parameter file (.yaml or .json)")
	cmd.Flags().StringVar(&f.scenario, "scenario", "", "saved scenario ID or name")
	cmd.Flags().StringVar(&f.csvOut, "csv", "", "also write the yearly table as CSV to this path (relative to the workspace)")
	cmd.Flags().StringVar(&f.breakdown, "breakdown", "", "print a per-year breakdown as CSV: expense-name, revenue-name, expense-category or revenue-category")
	cmd.Flags().IntVar(&f.years, "years", 0, "override the projection horizon")
	cmd.MarkFlagsOneRequired("params", "scenario")
	cmd.MarkFlagsMutuallyExclusive("params", "scenario")

	return cmd
}

func runProject(cmd *cobra.Command, ws *workspace, f projectFlags) error {
	ctx := cmd.Context()
	logger := loggerFrom(cmd)

	label, params, err := resolveParams(ctx, ws, f.params, f.scenario)
	if err != nil {
		return err
	}
	if f.years > 0 {
		params.HorizonYears = f.years
	}
	if problems := scenario.Validate(scenario.Scenario{Name: label, ScenarioParameters: params}); len(problems) > 0 {
		return fmt.Errorf("invalid parameters: %v", problems)
	}

	start := time.Now()
	res, err := projection.Run(params)
	if err != nil {
		return fmt.Errorf("projecting %s: %w", label, err)
	}
	logger.Debug().
		Str("scenario", label).
		Int("years", params.HorizonYears).
		Dur("took", time.Since(start)).
		Msg("projection complete")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Projection: %s (%d years)\n\n", label, params.HorizonYears)
	if err := printSeries(out, res.Series); err != nil {
		return err
	}
	fmt.Fprintln(out)
	if err := printMetrics(out, res.Metrics); err != nil {
		return err
	}

	if f.breakdown != "" {
		fmt.Fprintln(out)
		if err := export.WriteBreakdownCSV(out, res.Series, export.Breakdown(f.breakdown)); err != nil {
			return err
		}
	}

	if f.csvOut != "" {
		path := ws.resolve(f.csvOut)
		if err := writeProjectionCSV(path, res.Series); err != nil {
			return err
		}
		logger.Info().Str("path", path).Msg("wrote projection CSV")
	}

	if ws.Initialized {
		entry := runlog.NewEntry(time.Now(), label, params.HorizonYears, res.Metrics)
		if err := runlog.Append(ws.Root, []runlog.Entry{entry}); err != nil {
			return fmt.Errorf("appending run log: %w", err)
		}
	}
	return nil
}

// resolveParams loads projection input from a file or the scenario store and
// returns a label for it.
func resolveParams(ctx context.Context, ws *workspace, paramsPath, ref string) (string, model.ScenarioParameters, error) {
	if paramsPath != "" {
		p, err := loadParams(paramsPath, ws.Config.Defaults)
		if err != nil {
			return "", model.ScenarioParameters{}, err
		}
		return filepath.Base(paramsPath), p, nil
	}

	st, err := ws.openStore(ctx)
	if err != nil {
		return "", model.ScenarioParameters{}, err
	}
	defer st.Close()

	s, err := scenario.Resolve(ctx, st, ref)
	if err != nil {
		return "", model.ScenarioParameters{}, fmt.Errorf("loading scenario %q: %w", ref, err)
	}
	return s.Name, s.Params(), nil
}

func writeProjectionCSV(path string, series []model.YearSnapshot) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := export.WriteCSV(f, series); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
