// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dacolabs/esgen/internal/generate"
	"github.com/dacolabs/esgen/internal/geo"
	"github.com/dacolabs/esgen/internal/random"
	"github.com/dacolabs/esgen/internal/rules"
	"github.com/dacolabs/esgen/internal/session"
)

type liveOptions struct {
	interval float64
	ticks    int
	seed     int64
}

func registerLiveCmd(parent *cobra.Command) {
	opts := &liveOptions{}

	cmd := &cobra.Command{
		Use:               "live",
		Short:             "Stream documents continuously, advancing geo paths each tick",
		PersistentPreRunE: session.PreRunLoad,
		Long: `Emit one NDJSON document per tick on stdout.

Fields with a geo_path rule hold a position that moves from the route's
source toward its destination at the configured speed, covering
speed * interval worth of distance per tick. On arrival the position
resets to the source and the route restarts.`,
		Example: `  # One document per second until interrupted
  esgen live

  # Ten documents at five-second ticks
  esgen live --interval 5 --ticks 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.interval, "interval", 1, "Seconds between documents")
	cmd.Flags().IntVar(&opts.ticks, "ticks", 0, "Number of documents to emit; 0 runs until interrupted")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Random seed; 0 seeds from the clock")

	parent.AddCommand(cmd)
}

// route tracks the live position of one geo_path field between ticks.
type route struct {
	rule rules.GeoPath
	pos  geo.Point
}

func runLive(cmd *cobra.Command, opts *liveOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	routes := map[string]*route{}
	for path, r := range ctx.Rules {
		if gp, ok := r.(rules.GeoPath); ok {
			routes[path] = &route{
				rule: gp,
				pos:  geo.Point{Lat: gp.SrcLat, Lon: gp.SrcLon},
			}
		}
	}

	rnd := random.New(opts.seed)
	enc := json.NewEncoder(os.Stdout)
	ticker := time.NewTicker(time.Duration(opts.interval * float64(time.Second)))
	defer ticker.Stop()

	for emitted := 0; opts.ticks <= 0 || emitted < opts.ticks; emitted++ {
		set := ctx.Rules
		for path, rt := range routes {
			step := geo.Step(rt.pos, geo.Point{Lat: rt.rule.DstLat, Lon: rt.rule.DstLon}, rt.rule.SpeedKmh, opts.interval)
			if step.Arrived {
				rt.pos = geo.Point{Lat: rt.rule.SrcLat, Lon: rt.rule.SrcLon}
			} else {
				rt.pos = step.Position
			}
			set = set.With(path, rules.Manual{Value: step.Position})
		}

		g := generate.New(rnd, set, nil)
		if err := enc.Encode(g.Document(ctx.Mapping)); err != nil {
			return err
		}

		if opts.ticks > 0 && emitted+1 >= opts.ticks {
			break
		}
		select {
		case <-cmd.Context().Done():
			return nil
		case <-ticker.C:
		}
	}

	return nil
}
