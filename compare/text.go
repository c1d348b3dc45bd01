package compare

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/katalvlaran/netroute/routing"
)

// maxPathShown bounds the number of vertices printed per path.
const maxPathShown = 12

var statusColor = map[Status]*color.Color{
	StatusFound:    color.New(color.FgGreen),
	StatusNoPath:   color.New(color.FgYellow),
	StatusFailed:   color.New(color.FgRed),
	StatusTimedOut: color.New(color.FgMagenta),
}

// WriteText renders the report as a human-readable table followed by the
// cost ranking. Status cells are coloured unless color.NoColor is set.
func (r *Report) WriteText(w io.Writer) error {
	tw := &errWriter{w: w}

	conn := "connected"
	if !r.Connected {
		conn = "disconnected"
	}
	tw.printf("Comparison %s: %s → %s\n", r.ID, r.Source, r.Destination)
	tw.printf("Graph: %s nodes, %s edges, density %.3f, %s\n\n",
		humanize.Comma(int64(r.NodeCount)), humanize.Comma(int64(r.EdgeCount)), r.Density, conn)

	tw.printf("%-13s %-10s %8s %5s %10s %6s  %s\n", "ALGORITHM", "STATUS", "COST", "HOPS", "TIME", "EFF", "PATH")
	for _, k := range r.Order {
		res := r.Results[k]
		status := fmt.Sprintf("%-10s", res.Status)
		if c, ok := statusColor[res.Status]; ok {
			status = c.Sprint(status)
		}
		cost, hops, eff, path := "-", "-", "-", ""
		if res.Status == StatusFound {
			cost = strconv.FormatInt(res.Cost, 10)
			hops = strconv.Itoa(res.Hops)
			eff = fmt.Sprintf("%.2f", res.Efficiency)
			path = formatPath(res.Path)
		} else if res.Err != nil {
			path = res.Err.Error()
		}
		tw.printf("%-13s %s %8s %5s %10s %6s  %s\n",
			k.Label(), status, cost, hops, formatDuration(res.Elapsed), eff, path)
	}

	tw.printf("\n")
	if len(r.Ranking) == 0 {
		tw.printf("Ranking: no algorithm found a path\n")
		return tw.err
	}
	parts := make([]string, len(r.Ranking))
	for i, k := range r.Ranking {
		parts[i] = fmt.Sprintf("%s %s (%d)", humanize.Ordinal(i+1), k.Label(), r.Results[k].Cost)
	}
	tw.printf("Ranking: %s\n", strings.Join(parts, ", "))

	return tw.err
}

// formatDuration renders d with an SI prefix, e.g. "12.3 µs".
func formatDuration(d time.Duration) string {
	return humanize.SIWithDigits(d.Seconds(), 1, "s")
}

func formatPath(p routing.Path) string {
	if len(p) <= maxPathShown {
		return strings.Join(p, " → ")
	}
	head := strings.Join(p[:maxPathShown-2], " → ")

	return fmt.Sprintf("%s → … (%d more) → %s", head, len(p)-maxPathShown+1, p[len(p)-1])
}

// errWriter remembers the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
