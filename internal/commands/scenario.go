package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/forecast/internal/catalog"
	"github.com/cleared-dev/forecast/internal/export"
	"github.com/cleared-dev/forecast/internal/id"
	"github.com/cleared-dev/forecast/internal/scenario"
)

func newScenarioCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Manage saved scenarios",
	}

	cmd.AddCommand(
		newScenarioSaveCommand(opts),
		newScenarioListCommand(opts),
		newScenarioShowCommand(opts),
		newScenarioDeleteCommand(opts),
		newScenarioExportCommand(opts),
		newScenarioImportCommand(opts),
		newScenarioLintCommand(opts),
	)
	return cmd
}

func newScenarioSaveCommand(opts *rootOptions) *cobra.Command {
	var paramsPath, name, description, scenarioID string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a parameter file as a named scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := opts.ws
			ctx := cmd.Context()

			params, err := loadParams(paramsPath, ws.Config.Defaults)
			if err != nil {
				return err
			}

			sid := id.NewScenarioID()
			if scenarioID != "" {
				if sid, err = id.ParseScenarioID(scenarioID); err != nil {
					return err
				}
			}

			s := scenario.Scenario{
				ID:                 sid,
				Name:               strings.TrimSpace(name),
				Description:        description,
				Date:               time.Now().UTC(),
				ScenarioParameters: params,
			}
			if problems := scenario.Validate(s); len(problems) > 0 {
				return fmt.Errorf("invalid scenario: %s", strings.Join(problems, "; "))
			}

			st, err := ws.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Save(ctx, s); err != nil {
				return err
			}
			loggerFrom(cmd).Debug().Str("id", s.ID).Str("name", s.Name).Msg("saved scenario")
			fmt.Fprintf(cmd.OutOrStdout(), "Saved scenario %q (%s)\n", s.Name, s.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&paramsPath, "params", "", "parameter file (.yaml or .json)")
	cmd.Flags().StringVar(&name, "name", "", "scenario name")
	cmd.Flags().StringVar(&description, "description", "", "scenario description")
	cmd.Flags().StringVar(&scenarioID, "id", "", "replace the scenario with this ID")
	_ = cmd.MarkFlagRequired("params")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newScenarioListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.ws.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			all, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(all) == 0 {
				fmt.Fprintln(out, "No saved scenarios.")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSAVED\tYEARS\tDESCRIPTION")
			for _, s := range all {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
					id.ShortScenarioID(s.ID), s.Name, s.Date.Format("2006-01-02 15:04"), s.HorizonYears, s.Description)
			}
			return tw.Flush()
		},
	}
}

func newScenarioShowCommand(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id|name>",
		Short: "Show a saved scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := opts.ws.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			s, err := scenario.Resolve(ctx, st, args[0])
			if err != nil {
				return fmt.Errorf("loading scenario %q: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return scenario.Export(out, []scenario.Scenario{s})
			}

			fmt.Fprintf(out, "%s (%s)\n", s.Name, s.ID)
			if s.Description != "" {
				fmt.Fprintln(out, s.Description)
			}
			fmt.Fprintf(out, "Saved %s\n\n", s.Date.Format(time.RFC3339))

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Initial capital:\t%s\n", export.Money(s.InitialCapital))
			fmt.Fprintf(tw, "Tax rate:\t%s\n", export.Percent(s.TaxRatePercent))
			fmt.Fprintf(tw, "Inflation rate:\t%s\n", export.Percent(s.InflationRatePercent))
			fmt.Fprintf(tw, "Years:\t%d\n", s.HorizonYears)
			fmt.Fprintf(tw, "Employees:\t%g at %s (%s growth)\n", s.EmployeeCount, export.Money(s.AvgSalary), export.Percent(s.SalaryGrowthPercent))
			if err := tw.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(out)
			tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tNAME\tAMOUNT\tFREQUENCY\tGROWTH\tCATEGORY\tTYPE\tUNITS")
			for _, e := range s.Expenses {
				fmt.Fprintf(tw, "expense\t%s\t%s\t%s\t%s\t%s\t\t\n",
					e.Name, export.Money(e.Amount), e.Frequency, export.Percent(e.GrowthRatePercent), e.CategoryOrDefault())
			}
			for _, r := range s.Revenues {
				fmt.Fprintf(tw, "revenue\t%s\t%s\t%s\t%s\t%s\t%s\t%g\n",
					r.Name, export.Money(r.Amount), r.Frequency, export.Percent(r.GrowthRatePercent), r.CategoryOrDefault(), r.RevenueType, r.EstimatedUnits)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print in the export format")
	return cmd
}

func newScenarioDeleteCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id|name>",
		Short: "Delete a saved scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := opts.ws.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			s, err := scenario.Resolve(ctx, st, args[0])
			if err != nil {
				return fmt.Errorf("loading scenario %q: %w", args[0], err)
			}
			if err := st.Delete(ctx, s.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted scenario %q (%s)\n", s.Name, s.ID)
			return nil
		},
	}
}

func newScenarioExportCommand(opts *rootOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every saved scenario to JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := opts.ws
			ctx := cmd.Context()
			st, err := ws.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			all, err := st.List(ctx)
			if err != nil {
				return err
			}

			path := ws.resolve(outPath)
			if path == "" {
				path = filepath.Join(ws.Config.ExportDir(ws.Root), scenario.ExportFileName)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("creating export dir: %w", err)
			}
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			if err := scenario.Export(f, all); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d scenarios to %s\n", len(all), path)
			return ws.commit(ctx, fmt.Sprintf("export: %d scenarios", len(all)))
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "output file, relative to the workspace (default <export dir>/"+scenario.ExportFileName+")")
	return cmd
}

func newScenarioImportCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import scenarios from a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := opts.ws
			ctx := cmd.Context()
			logger := loggerFrom(cmd)

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			res, err := scenario.Import(f)
			if err != nil {
				return err
			}

			st, err := ws.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			for _, s := range res.Scenarios {
				if err := st.Save(ctx, s); err != nil {
					return fmt.Errorf("saving %q: %w", s.Name, err)
				}
			}

			out := cmd.OutOrStdout()
			for _, rej := range res.Rejected {
				logger.Warn().Int("index", rej.Index).Str("id", rej.ID).Strs("problems", rej.Problems).Msg("rejected record")
				fmt.Fprintf(out, "Skipped %s\n", rej.Error())
			}
			fmt.Fprintf(out, "Imported %d scenarios (%d rejected)\n", len(res.Scenarios), len(res.Rejected))

			if len(res.Scenarios) == 0 {
				return nil
			}
			return ws.commit(ctx, fmt.Sprintf("import: %d scenarios from %s", len(res.Scenarios), filepath.Base(args[0])))
		},
	}
}

// errLintFailed reports that lint found blocking problems.
var errLintFailed = errors.New("scenario has problems")

func newScenarioLintCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lint <id|name>",
		Short: "Check a saved scenario for invalid values and unknown categories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := opts.ws
			ctx := cmd.Context()
			st, err := ws.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			s, err := scenario.Resolve(ctx, st, args[0])
			if err != nil {
				return fmt.Errorf("loading scenario %q: %w", args[0], err)
			}
			cats, err := catalog.Load(ws.Root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			problems := scenario.Validate(s)
			for _, p := range problems {
				fmt.Fprintf(out, "error: %s\n", p)
			}
			for _, w := range categoryWarnings(cats, s) {
				fmt.Fprintf(out, "warning: %s\n", w)
			}
			if len(problems) > 0 {
				return errLintFailed
			}
			fmt.Fprintf(out, "%s: ok\n", s.Name)
			return nil
		},
	}
}

func categoryWarnings(cats *catalog.Service, s scenario.Scenario) []string {
	var warnings []string
	for _, e := range s.Expenses {
		if c := e.CategoryOrDefault(); !cats.Known(catalog.KindExpense, c) {
			warnings = append(warnings, fmt.Sprintf("expense %q: unknown category %q", e.Name, c))
		}
	}
	for _, r := range s.Revenues {
		if c := r.CategoryOrDefault(); !cats.Known(catalog.KindRevenue, c) {
			warnings = append(warnings, fmt.Sprintf("revenue %q: unknown category %q", r.Name, c))
		}
	}
	return warnings
}
