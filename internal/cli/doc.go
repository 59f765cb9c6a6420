// Package cli implements the dotfetch command-line interface.
//
// The root command draws the dashboard: it loads config, collects a
// HostSnapshot, renders it next to the logo, optionally starts a delayed
// screenshot and waits for one key press before exiting.
//
//	dotfetch                 - draw the dashboard
//	dotfetch snapshot        - print the collected facts as YAML
//	dotfetch version         - print build information
//
// # Flag Handling
//
// Global flags (--config, --no-color) are defined on the root command and
// apply to every subcommand. --no-screenshot and --no-wait only affect the
// dashboard. Flags override the matching config keys after the config file
// and DOTFETCH_* environment variables are applied.
//
// # Exit Codes
//
// 0 on success, including partial collection. 1 when no facts could be
// collected, the config is invalid, or drawing fails.
package cli
