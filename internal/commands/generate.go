// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dacolabs/esgen/internal/dates"
	"github.com/dacolabs/esgen/internal/export"
	"github.com/dacolabs/esgen/internal/generate"
	"github.com/dacolabs/esgen/internal/mapping"
	"github.com/dacolabs/esgen/internal/prompts"
	"github.com/dacolabs/esgen/internal/random"
	"github.com/dacolabs/esgen/internal/session"
)

type generateOptions struct {
	count       int
	format      string
	output      string
	seed        int64
	start       string
	end         string
	rate        float64
	granularity string
	dist        string
	dateField   string
	interactive bool
}

func registerGenerateCmd(parent *cobra.Command) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:               "generate",
		Short:             "Generate a batch of synthetic documents",
		PersistentPreRunE: session.PreRunLoad,
		Long: `Generate synthetic documents shaped by the project's mapping and rules.

With --rate, documents are produced per sampled timestamp instead of as a
flat count: the time range is walked in granularity-sized steps and each
step emits a fixed (uniform) or Poisson-distributed number of events.`,
		Example: `  # Use the project defaults from esgen.yaml
  esgen generate

  # 10k documents as CSV, reproducibly
  esgen generate --count 10000 --format csv --seed 7

  # Poisson arrivals, 50 events/hour over a day
  esgen generate --start 2024-05-01T00:00:00Z --end 2024-05-02T00:00:00Z \
    --rate 50 --granularity hour --distribution poisson`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "c", 0, "Number of documents (default from esgen.yaml)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(export.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Random seed; 0 seeds from the clock")
	cmd.Flags().StringVar(&opts.start, "start", "", "Time range start (RFC3339)")
	cmd.Flags().StringVar(&opts.end, "end", "", "Time range end (RFC3339)")
	cmd.Flags().Float64Var(&opts.rate, "rate", 0, "Events per step; enables timestamp-distribution mode")
	cmd.Flags().StringVar(&opts.granularity, "granularity", "hour", "Sampling step (hour, minute, second)")
	cmd.Flags().StringVar(&opts.dist, "distribution", "uniform", "Per-step count model (uniform, poisson)")
	cmd.Flags().StringVar(&opts.dateField, "date-field", "", "Date field to carry sampled timestamps (default: first date field)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Prompt for count, format, and output")

	parent.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	count := opts.count
	if count <= 0 {
		count = ctx.Config.Count
	}
	format := opts.format
	if format == "" {
		format = ctx.Config.Format
	}
	output := opts.output
	if output == "" {
		output = ctx.Config.Output
	}

	if opts.interactive {
		count, format, output = 0, "", ""
		if err := prompts.RunGenerateForm(&count, &format, &output, export.Available()); err != nil {
			return err
		}
	}

	exporter, err := export.Get(format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			format, strings.Join(export.Available(), ", "))
	}

	timeRange, err := parseRange(opts.start, opts.end)
	if err != nil {
		return err
	}

	g := generate.New(random.New(opts.seed), ctx.Rules, timeRange)

	var docs []generate.Document
	if opts.rate > 0 {
		docs, err = generateAtRate(g, ctx.Mapping, timeRange, opts)
		if err != nil {
			return err
		}
	} else {
		docs = g.Documents(ctx.Mapping, count)
	}

	data, err := exporter.Export(docs)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(output, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	outFile := filepath.Join(output, "documents"+exporter.FileExtension())
	if err := os.WriteFile(outFile, data, 0o600); err != nil {
		return err
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Documents", Value: fmt.Sprintf("%d", len(docs))},
		{Label: "Format", Value: exporter.Name()},
		{Label: "File", Value: outFile},
	}, "Generation completed")

	return nil
}

func generateAtRate(g *generate.Generator, m mapping.Mapping, timeRange *dates.Range, opts *generateOptions) ([]generate.Document, error) {
	dateField := opts.dateField
	if dateField == "" {
		dateFields := mapping.FieldsOfType(m, mapping.TypeDate)
		if len(dateFields) == 0 {
			return nil, fmt.Errorf("mapping has no date field to distribute timestamps over")
		}
		dateField = dateFields[0]
	}

	r := dates.LastDay()
	if timeRange != nil {
		r = *timeRange
	}

	stamps := generate.SampleTimestamps(
		random.New(opts.seed), r,
		generate.Granularity(opts.granularity),
		opts.rate,
		generate.Distribution(opts.dist),
	)
	return g.DocumentsAt(m, stamps, dateField), nil
}

func parseRange(start, end string) (*dates.Range, error) {
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, fmt.Errorf("--start and --end must be given together")
	}

	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return nil, fmt.Errorf("invalid --start: %w", err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return nil, fmt.Errorf("invalid --end: %w", err)
	}

	r := dates.Range{Start: s, End: e}.Normalize()
	return &r, nil
}
