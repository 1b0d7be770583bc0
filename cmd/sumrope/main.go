// Package main is the entry point for the sumrope CLI: a small shell
// around the core data structure for inspecting a file's per-line
// metrics and replaying edit notifications against it.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "stats":
		return runStats(args[1:])
	case "query":
		return runQuery(args[1:])
	case "inspect":
		return runInspect(args[1:])
	case "version", "-version", "--version":
		fmt.Printf("sumrope %s (commit %s, built %s)\n", version, commit, date)
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", args[0])
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: sumrope <command> [flags]

commands:
  stats    print line/char/byte totals for a file
  query    resolve an offset, or replay edit notifications, against a file
  inspect  open an interactive terminal viewer
  version  print version information`)
}

func baseFlags(name string) (*flag.FlagSet, *string, *string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	configPath := fs.String("config", "", "path to a YAML tuning config")
	file := fs.String("file", "", "path to the text file to load")
	return fs, configPath, file
}

func readFile(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
