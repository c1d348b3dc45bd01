// Package cli parses the netroute command line: global flags, the config
// file they point at, and one subcommand with its own flags. Values from
// the config file become flag defaults, so explicit flags always win.
package cli
