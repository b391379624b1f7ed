// Package main hosts the contentindex CLI entrypoint and command graph.
//
// Running the binary with no arguments regenerates the site data file and the
// README's auto-managed regions from the content folders. Subcommands expose a
// dry-run check, an item listing, and configuration scaffolding. Any failure
// exits with status 1.
package main
