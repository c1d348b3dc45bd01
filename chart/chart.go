// Package chart exports a graph and, optionally, a comparison report as a
// static HTML page built with go-echarts.
//
// The page holds a graph view drawn at the supplied layout positions, with
// each algorithm's path painted in its own colour, and bar charts of cost,
// hop count and running time per algorithm.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/netroute/compare"
	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/layout"
	"github.com/katalvlaran/netroute/routing"
)

// ErrNilGraph is returned by Render for a nil graph.
var ErrNilGraph = errors.New("chart: graph is nil")

// canvas is the side of the square the positions are scaled into.
const canvas = 800

// KindColors are the path colours per algorithm.
var KindColors = map[routing.Kind]string{
	routing.KindBFS:         "#3498db",
	routing.KindDFS:         "#e74c3c",
	routing.KindDijkstra:    "#2ecc71",
	routing.KindBellmanFord: "#9b59b6",
	routing.KindAStar:       "#f39c12",
}

const (
	nodeColor   = "#00d4ff"
	sourceColor = "#00ff88"
	destColor   = "#ff6b6b"
	edgeColor   = "#b8c6db"
)

// Option configures Render.
type Option func(*config)

type config struct {
	title string
}

// WithTitle sets the page title.
func WithTitle(s string) Option {
	return func(c *config) { c.title = s }
}

// Render writes the HTML page to w. Vertices without a position are placed
// by layout.Circular. rep may be nil, in which case only the graph is drawn.
func Render(w io.Writer, g *core.Graph, pos layout.Positions, rep *compare.Report, options ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	cfg := config{title: "netroute"}
	for _, opt := range options {
		opt(&cfg)
	}
	if !pos.Covers(g) {
		fallback := layout.Circular{}.Layout(g)
		for id, p := range pos {
			fallback[id] = p
		}
		pos = fallback
	}

	page := components.NewPage()
	page.PageTitle = cfg.title
	page.AddCharts(graphChart(cfg.title, g, pos, rep))
	if rep != nil {
		page.AddCharts(costChart(rep), timeChart(rep))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("chart: render: %w", err)
	}

	return nil
}

// RenderFile is Render into a newly created file.
func RenderFile(path string, g *core.Graph, pos layout.Positions, rep *compare.Report, options ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("chart: close %s: %w", path, cerr)
		}
	}()

	return Render(f, g, pos, rep, options...)
}

func graphChart(title string, g *core.Graph, pos layout.Positions, rep *compare.Report) *charts.Graph {
	scale := scaler(pos)
	src, dst := "", ""
	if rep != nil {
		src, dst = rep.Source, rep.Destination
	}

	ids := g.Vertices()
	nodes := make([]opts.GraphNode, 0, len(ids))
	for _, id := range ids {
		x, y := scale(pos[id])
		color := nodeColor
		switch id {
		case src:
			color = sourceColor
		case dst:
			color = destColor
		}
		nodes = append(nodes, opts.GraphNode{
			Name:       id,
			X:          x,
			Y:          y,
			SymbolSize: 14,
			ItemStyle:  &opts.ItemStyle{Color: color},
		})
	}

	onPath := pathEdges(rep)
	links := make([]opts.GraphLink, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		color, width := edgeColor, float32(1)
		if k, ok := onPath[pairKey(e.From, e.To)]; ok {
			color, width = KindColors[k], 4
		}
		links = append(links, opts.GraphLink{
			Source:    e.From,
			Target:    e.To,
			Value:     float32(e.Weight),
			LineStyle: &opts.LineStyle{Color: color, Width: width},
		})
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle(g, rep)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	graph.AddSeries("graph", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout:    "none",
			Roam:      opts.Bool(true),
			Draggable: opts.Bool(true),
		}),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Position: "right",
		}),
	)

	return graph
}

func subtitle(g *core.Graph, rep *compare.Report) string {
	s := fmt.Sprintf("%d nodes, %d edges", g.VertexCount(), g.EdgeCount())
	if rep != nil {
		s += fmt.Sprintf(" | %s → %s", rep.Source, rep.Destination)
	}

	return s
}

// pathEdges maps every edge on a found path to the first kind, in
// requested order, whose path uses it.
func pathEdges(rep *compare.Report) map[string]routing.Kind {
	out := make(map[string]routing.Kind)
	if rep == nil {
		return out
	}
	for _, k := range rep.Order {
		res := rep.Results[k]
		if res == nil || res.Status != compare.StatusFound {
			continue
		}
		for i := 1; i < len(res.Path); i++ {
			key := pairKey(res.Path[i-1], res.Path[i])
			if _, taken := out[key]; !taken {
				out[key] = k
			}
		}
	}

	return out
}

func pairKey(u, v string) string {
	if core.LessID(v, u) {
		u, v = v, u
	}

	return u + "\x00" + v
}

// scaler maps positions into the [0, canvas] square, flipping Y so that
// larger Y is drawn higher.
func scaler(pos layout.Positions) func(layout.Point) (float32, float32) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pos {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	span := max(maxX-minX, maxY-minY)
	if span <= 0 || math.IsInf(span, 0) {
		span = 1
	}

	return func(p layout.Point) (float32, float32) {
		x := (p.X - minX) / span * canvas
		y := (maxY - p.Y) / span * canvas
		return float32(x), float32(y)
	}
}

func costChart(rep *compare.Report) *charts.Bar {
	labels := make([]string, len(rep.Order))
	costs := make([]opts.BarData, len(rep.Order))
	hops := make([]opts.BarData, len(rep.Order))
	for i, k := range rep.Order {
		res := rep.Results[k]
		labels[i] = k.Label()
		costs[i] = opts.BarData{Value: res.Cost, ItemStyle: &opts.ItemStyle{Color: KindColors[k]}}
		hops[i] = opts.BarData{Value: res.Hops}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Path cost and hops"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("cost", costs).
		AddSeries("hops", hops)

	return bar
}

func timeChart(rep *compare.Report) *charts.Bar {
	labels := make([]string, len(rep.Order))
	times := make([]opts.BarData, len(rep.Order))
	for i, k := range rep.Order {
		res := rep.Results[k]
		labels[i] = k.Label()
		times[i] = opts.BarData{
			Value:     math.Round(float64(res.Elapsed.Nanoseconds())/100) / 10,
			ItemStyle: &opts.ItemStyle{Color: KindColors[k]},
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Running time (µs)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries("time", times)

	return bar
}
