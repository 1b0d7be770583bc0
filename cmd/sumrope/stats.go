package main

import (
	"fmt"
	"os"

	"github.com/rivo/uniseg"
	"github.com/tidwall/sjson"

	"github.com/tbttfox/sumrope/internal/adapter"
	"github.com/tbttfox/sumrope/internal/tuning"
)

func runStats(args []string) int {
	fs, configPath, file := baseFlags("stats")
	jsonOut := fs.Bool("json", false, "emit machine-readable JSON")
	widest := fs.Bool("widest-line", false, "also report the display-widest line")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	text, err := readFile(*file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cfg, err := tuning.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	a, err := adapter.New(text, cfg.Options()...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	a.WithNormalization(cfg.Normalize)

	lines, chars, bytes := a.TotalLines(), a.TotalChars(), a.TotalBytes()

	var widestLine int
	var widestWidth int
	if *widest {
		for i := 0; i < lines; i++ {
			s, err := a.Document().LineText(i)
			if err != nil {
				continue
			}
			w := uniseg.StringWidth(s)
			if w > widestWidth {
				widestWidth = w
				widestLine = i
			}
		}
	}

	if *jsonOut || cfg.JSON {
		out := "{}"
		out, _ = sjson.Set(out, "lines", lines)
		out, _ = sjson.Set(out, "chars", chars)
		out, _ = sjson.Set(out, "bytes", bytes)
		if *widest {
			out, _ = sjson.Set(out, "widest_line", widestLine)
			out, _ = sjson.Set(out, "widest_width", widestWidth)
		}
		fmt.Println(out)
		return 0
	}

	fmt.Printf("lines: %d\nchars: %d\nbytes: %d\n", lines, chars, bytes)
	if *widest {
		fmt.Printf("widest line: %d (display width %d)\n", widestLine, widestWidth)
	}
	return 0
}
