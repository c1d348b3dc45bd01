package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/netroute/builder"
	"github.com/katalvlaran/netroute/chart"
	"github.com/katalvlaran/netroute/compare"
	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/internal/cli"
	"github.com/katalvlaran/netroute/internal/ctxlog"
	"github.com/katalvlaran/netroute/layout"
	"github.com/katalvlaran/netroute/snapshot"
)

func runGenerate(ctx context.Context, outW io.Writer, inv *cli.Invocation) error {
	logger := ctxlog.FromContext(ctx)
	gc := inv.Config.Generate

	policy, err := builder.ParsePolicy(gc.Policy)
	if err != nil {
		return err
	}
	g, err := builder.Generate(policy, gc.Nodes, gc.Edges, gc.Seed,
		builder.WithUniformWeight(gc.MinWeight, gc.MaxWeight))
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	provider, err := layout.Parse(gc.Layout, gc.Seed)
	if err != nil {
		return err
	}
	pos := provider.Layout(g)

	if err := snapshot.SaveFile(inv.Out, g, pos); err != nil {
		return err
	}
	size := "?"
	if fi, err := os.Stat(inv.Out); err == nil {
		size = humanize.Bytes(uint64(fi.Size()))
	}
	logger.Info("Snapshot written.", "path", inv.Out, "policy", policy.String(),
		"nodes", g.VertexCount(), "edges", g.EdgeCount(), "compression", snapshot.CompressionFor(inv.Out).String())

	fmt.Fprintf(outW, "Wrote %s (%s): %s nodes, %s edges, policy %s, seed %d\n",
		inv.Out, size, humanize.Comma(int64(g.VertexCount())), humanize.Comma(int64(g.EdgeCount())),
		policy, gc.Seed)

	if inv.HTMLPath != "" {
		if err := chart.RenderFile(inv.HTMLPath, g, pos, nil); err != nil {
			return err
		}
		fmt.Fprintf(outW, "Wrote %s\n", inv.HTMLPath)
	}

	return nil
}

func runCompare(ctx context.Context, outW io.Writer, inv *cli.Invocation) error {
	logger := ctxlog.FromContext(ctx)

	g, pos, err := snapshot.LoadFile(inv.GraphPath)
	if err != nil {
		return err
	}
	if !pos.Covers(g) {
		provider, err := layout.Parse(inv.Config.Generate.Layout, inv.Config.Generate.Seed)
		if err != nil {
			return err
		}
		pos = provider.Layout(g)
		logger.Debug("Snapshot has no usable positions; computed a layout.", "layout", inv.Config.Generate.Layout)
	}

	rep, err := compare.Compare(ctx, g, inv.From, inv.To, inv.Kinds,
		compare.WithParallel(inv.Config.Compare.Parallel),
		compare.WithTimeout(inv.Timeout()),
		compare.WithCoordinates(pos.Lookup),
		compare.WithLogger(logger),
	)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}
	if err := rep.WriteText(outW); err != nil {
		return err
	}

	if inv.HTMLPath != "" {
		title := fmt.Sprintf("%s → %s", inv.From, inv.To)
		if err := chart.RenderFile(inv.HTMLPath, g, pos, rep, chart.WithTitle(title)); err != nil {
			return err
		}
		fmt.Fprintf(outW, "Wrote %s\n", inv.HTMLPath)
	}

	return nil
}

func runStats(_ context.Context, outW io.Writer, inv *cli.Invocation) error {
	g, _, err := snapshot.LoadFile(inv.GraphPath)
	if err != nil {
		return err
	}
	writeStats(outW, g.Stats())

	return nil
}

func writeStats(w io.Writer, s core.GraphStats) {
	fmt.Fprintf(w, "Nodes:        %s\n", humanize.Comma(int64(s.Vertices)))
	fmt.Fprintf(w, "Edges:        %s\n", humanize.Comma(int64(s.Edges)))
	fmt.Fprintf(w, "Density:      %.4f\n", s.Density)
	fmt.Fprintf(w, "Connected:    %t\n", s.Connected)
	fmt.Fprintf(w, "Components:   %d\n", s.Components)
	if s.Edges > 0 {
		fmt.Fprintf(w, "Weights:      %d..%d (total %s)\n", s.MinWeight, s.MaxWeight, humanize.Comma(s.TotalWeight))
	}
}
