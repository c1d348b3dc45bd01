package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/netroute/builder"
	"github.com/katalvlaran/netroute/config"
	"github.com/katalvlaran/netroute/internal/logging"
	"github.com/katalvlaran/netroute/layout"
	"github.com/katalvlaran/netroute/routing"
)

// ExitError carries the process exit code for main.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Subcommand names.
const (
	CmdGenerate = "generate"
	CmdCompare  = "compare"
	CmdStats    = "stats"
)

// Invocation is a fully parsed command line.
type Invocation struct {
	Command    string
	ConfigPath string
	Config     config.Config

	// generate
	Out string

	// compare, stats
	GraphPath string
	From, To  string
	Kinds     []routing.Kind
	HTMLPath  string
}

const usageText = `
netroute - compare shortest-path algorithms on generated or hand-made graphs.

Usage:
  netroute [global options] <command> [command options]

Commands:
  generate   build a graph and save it as a snapshot
  compare    run pathfinding algorithms between two nodes of a snapshot
  stats      print metrics of a snapshot

Run 'netroute <command> -h' for command options.

Global options:
`

// Parse processes command-line arguments. It returns the Invocation, a
// boolean telling the caller to exit cleanly (help was printed), or an
// error; usage problems are *ExitError with code 2.
func Parse(args []string, output io.Writer) (*Invocation, bool, error) {
	global := flag.NewFlagSet("netroute", flag.ContinueOnError)
	global.SetOutput(output)
	global.Usage = func() {
		fmt.Fprint(output, usageText)
		global.PrintDefaults()
	}
	configPath := global.String("config", "", "Path to a TOML configuration file.")
	logLevel := global.String("log-level", "", "Logging level: 'debug', 'info', 'warn' or 'error'. Overrides the config file.")
	logFormat := global.String("log-format", "", "Log output format: 'text' or 'json'. Overrides the config file.")
	logFile := global.String("log-file", "", "Write logs to this rotating file instead of stderr.")

	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err)
	}
	if global.NArg() == 0 {
		global.Usage()
		return nil, true, nil
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if *logLevel != "" {
		cfg.Log.Level = strings.ToLower(*logLevel)
	}
	if *logFormat != "" {
		cfg.Log.Format = strings.ToLower(*logFormat)
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	if f := cfg.Log.Format; f != "" && f != "text" && f != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	inv := &Invocation{Command: global.Arg(0), ConfigPath: *configPath, Config: cfg}
	rest := global.Args()[1:]

	var exit bool
	switch inv.Command {
	case CmdGenerate:
		exit, err = parseGenerate(inv, rest, output)
	case CmdCompare:
		exit, err = parseCompare(inv, rest, output)
	case CmdStats:
		exit, err = parseStats(inv, rest, output)
	default:
		return nil, false, usageError("unknown command %q: want generate, compare or stats", inv.Command)
	}
	if err != nil || exit {
		return nil, exit, err
	}

	return inv, false, nil
}

func newSub(name, synopsis string, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("netroute "+name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "\nUsage:\n  netroute %s %s\n\nOptions:\n", name, synopsis)
		fs.PrintDefaults()
	}

	return fs
}

// parseSub runs fs.Parse and maps help and stray arguments.
func parseSub(fs *flag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, usageError("%s", err)
	}
	if fs.NArg() > 0 {
		return false, usageError("%s: unexpected arguments %q", fs.Name(), fs.Args())
	}

	return false, nil
}

func parseGenerate(inv *Invocation, args []string, output io.Writer) (bool, error) {
	gc := &inv.Config.Generate
	fs := newSub(CmdGenerate, "-out FILE [options]", output)
	fs.StringVar(&gc.Policy, "policy", gc.Policy, "Generation policy: "+policyList()+".")
	fs.IntVar(&gc.Nodes, "nodes", gc.Nodes, "Number of nodes (grid rounds down to a square).")
	fs.IntVar(&gc.Edges, "edges", gc.Edges, "Target number of edges.")
	fs.Int64Var(&gc.Seed, "seed", gc.Seed, "Random seed.")
	fs.StringVar(&gc.Layout, "layout", gc.Layout, "Layout stored with the snapshot: "+strings.Join(layout.Names(), ", ")+".")
	fs.Int64Var(&gc.MinWeight, "min-weight", gc.MinWeight, "Smallest edge weight.")
	fs.Int64Var(&gc.MaxWeight, "max-weight", gc.MaxWeight, "Largest edge weight.")
	fs.StringVar(&inv.Out, "out", "", "Snapshot file to write (.json, .json.gz or .json.zst).")
	fs.StringVar(&inv.HTMLPath, "html", "", "Also write an HTML view of the graph.")

	if exit, err := parseSub(fs, args); err != nil || exit {
		return exit, err
	}
	if inv.Out == "" {
		return false, usageError("generate: -out is required")
	}
	if err := inv.Config.Validate(); err != nil {
		return false, usageError("generate: %s", err)
	}

	return false, nil
}

func parseCompare(inv *Invocation, args []string, output io.Writer) (bool, error) {
	cc := &inv.Config.Compare
	algos := joinKinds(cc.Algorithms)
	timeout := cc.Timeout.Duration

	fs := newSub(CmdCompare, "-graph FILE -from ID -to ID [options]", output)
	fs.StringVar(&inv.GraphPath, "graph", "", "Snapshot file to load.")
	fs.StringVar(&inv.From, "from", "", "Source node ID.")
	fs.StringVar(&inv.To, "to", "", "Destination node ID.")
	fs.StringVar(&algos, "algos", algos, "Comma-separated algorithms: bfs, dfs, dijkstra, bellman-ford, astar, or 'all'.")
	fs.DurationVar(&timeout, "timeout", timeout, "Per-algorithm time limit; 0 disables it.")
	fs.BoolVar(&cc.Parallel, "parallel", cc.Parallel, "Run the algorithms concurrently.")
	fs.StringVar(&inv.Config.Generate.Layout, "layout", inv.Config.Generate.Layout,
		"Layout for A* coordinates when the snapshot has no positions.")
	fs.StringVar(&inv.HTMLPath, "html", "", "Write an HTML report with the graph and charts.")

	if exit, err := parseSub(fs, args); err != nil || exit {
		return exit, err
	}
	if inv.GraphPath == "" || inv.From == "" || inv.To == "" {
		return false, usageError("compare: -graph, -from and -to are required")
	}
	kinds, err := routing.ParseKinds(algos)
	if err != nil {
		return false, usageError("compare: %s", err)
	}
	if len(kinds) == 0 {
		return false, usageError("compare: -algos selects no algorithm")
	}
	if timeout < 0 {
		return false, usageError("compare: -timeout must not be negative")
	}
	if _, err := layout.Parse(inv.Config.Generate.Layout, 0); err != nil {
		return false, usageError("compare: %s", err)
	}
	inv.Kinds = kinds
	cc.Algorithms = kinds
	cc.Timeout = config.Duration{Duration: timeout}

	return false, nil
}

func parseStats(inv *Invocation, args []string, output io.Writer) (bool, error) {
	fs := newSub(CmdStats, "-graph FILE", output)
	fs.StringVar(&inv.GraphPath, "graph", "", "Snapshot file to load.")

	if exit, err := parseSub(fs, args); err != nil || exit {
		return exit, err
	}
	if inv.GraphPath == "" {
		return false, usageError("stats: -graph is required")
	}

	return false, nil
}

func policyList() string {
	names := make([]string, 0, 4)
	for _, p := range builder.Policies() {
		names = append(names, p.String())
	}

	return strings.Join(names, ", ")
}

func joinKinds(ks []routing.Kind) string {
	parts := make([]string, len(ks))
	for i, k := range ks {
		parts[i] = k.String()
	}

	return strings.Join(parts, ",")
}

// Timeout returns the per-algorithm limit of a compare invocation.
func (inv *Invocation) Timeout() time.Duration {
	return inv.Config.Compare.Timeout.Duration
}
