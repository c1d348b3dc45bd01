// Package config loads the netroute TOML configuration file.
//
// A file may set any subset of keys; everything else keeps its default.
// Command-line flags are applied on top by the caller.
//
//	[generate]
//	policy = "small_world"
//	nodes  = 50
//	edges  = 120
//	seed   = 7
//	layout = "circular"
//
//	[compare]
//	algorithms = ["bfs", "dijkstra", "astar"]
//	timeout    = "2s"
//	parallel   = true
//
//	[log]
//	level  = "debug"
//	format = "json"
//	file   = "/var/log/netroute.log"
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/netroute/builder"
	"github.com/katalvlaran/netroute/internal/logging"
	"github.com/katalvlaran/netroute/layout"
	"github.com/katalvlaran/netroute/routing"
)

var (
	// ErrUnknownKey is returned when the file contains keys Config does not know.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid is returned by Validate.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the whole file.
type Config struct {
	Generate Generate       `toml:"generate"`
	Compare  Compare        `toml:"compare"`
	Log      logging.Config `toml:"log"`
}

// Generate holds the defaults of the generate subcommand.
type Generate struct {
	Policy    string `toml:"policy"`
	Nodes     int    `toml:"nodes"`
	Edges     int    `toml:"edges"`
	Seed      int64  `toml:"seed"`
	Layout    string `toml:"layout"`
	MinWeight int64  `toml:"min_weight"`
	MaxWeight int64  `toml:"max_weight"`
}

// Compare holds the defaults of the compare subcommand.
type Compare struct {
	Algorithms []routing.Kind `toml:"algorithms"`
	Timeout    Duration       `toml:"timeout"`
	Parallel   bool           `toml:"parallel"`
}

// Duration decodes TOML strings such as "1500ms" or "2s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Generate: Generate{
			Policy:    builder.PolicyRandom.String(),
			Nodes:     20,
			Edges:     40,
			Seed:      1,
			Layout:    "circular",
			MinWeight: builder.DefaultMinWeight,
			MaxWeight: builder.DefaultMaxWeight,
		},
		Compare: Compare{
			Algorithms: routing.Kinds(),
			Parallel:   true,
		},
		Log: logging.Defaults(),
	}
}

// Load decodes path over Defaults. An empty path returns Defaults.
func Load(path string) (Config, error) {
	c := Defaults()
	if path == "" {
		return c, nil
	}
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("config: could not decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Validate checks the values that would otherwise fail late.
func (c Config) Validate() error {
	if _, err := builder.ParsePolicy(c.Generate.Policy); err != nil {
		return fmt.Errorf("%w: generate.policy: %v", ErrInvalid, err)
	}
	if c.Generate.Nodes < 2 {
		return fmt.Errorf("%w: generate.nodes=%d (must be ≥ 2)", ErrInvalid, c.Generate.Nodes)
	}
	if c.Generate.Edges < 0 {
		return fmt.Errorf("%w: generate.edges=%d", ErrInvalid, c.Generate.Edges)
	}
	if c.Generate.MinWeight < 1 || c.Generate.MaxWeight < c.Generate.MinWeight {
		return fmt.Errorf("%w: weights [%d,%d]", ErrInvalid, c.Generate.MinWeight, c.Generate.MaxWeight)
	}
	if _, err := layout.Parse(c.Generate.Layout, 0); err != nil {
		return fmt.Errorf("%w: generate.layout: %v", ErrInvalid, err)
	}
	if c.Compare.Timeout.Duration < 0 {
		return fmt.Errorf("%w: compare.timeout=%s", ErrInvalid, c.Compare.Timeout)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}

	return nil
}
