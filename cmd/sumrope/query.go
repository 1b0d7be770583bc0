package main

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/tbttfox/sumrope/internal/adapter"
	"github.com/tbttfox/sumrope/internal/lenpair"
	"github.com/tbttfox/sumrope/internal/tuning"
)

func runQuery(args []string) int {
	fs, configPath, file := baseFlags("query")
	charOffset := fs.Int("char", -1, "resolve a character offset to a line/position")
	byteOffset := fs.Int("byte", -1, "resolve a byte offset to a line/position")
	edits := fs.String("edits", "", `JSON array of edit notifications, e.g. [{"char_pos":4,"chars_removed":0,"new_text":"x\n"}]`)
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

	if *edits != "" {
		if !gjson.Valid(*edits) {
			fmt.Fprintln(os.Stderr, "--edits is not valid JSON")
			return 1
		}
		for _, e := range gjson.Parse(*edits).Array() {
			charPos := int(e.Get("char_pos").Int())
			charsRemoved := int(e.Get("chars_removed").Int())
			newText := e.Get("new_text").String()
			if err := a.ApplyEdit(charPos, charsRemoved, newText); err != nil {
				fmt.Fprintf(os.Stderr, "edit %v: %v\n", e.Raw, err)
				return 1
			}
		}
		printTotals(a)
		return 0
	}

	if *charOffset >= 0 {
		return queryAndPrint(a, *charOffset, lenpair.Char)
	}
	if *byteOffset >= 0 {
		return queryAndPrint(a, *byteOffset, lenpair.Byte)
	}

	fmt.Fprintln(os.Stderr, "query requires one of -char, -byte, or -edits")
	return 1
}

func queryAndPrint(a *adapter.Adapter, offset int, dim lenpair.Dimension) int {
	q, err := a.Rope().Query(offset, dim)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	out := "{}"
	out, _ = sjson.Set(out, "line", q.Line)
	out, _ = sjson.Set(out, "char", q.Position.CharLen)
	out, _ = sjson.Set(out, "byte", q.Position.ByteLen)
	fmt.Println(out)
	return 0
}

func printTotals(a *adapter.Adapter) {
	out := "{}"
	out, _ = sjson.Set(out, "lines", a.TotalLines())
	out, _ = sjson.Set(out, "chars", a.TotalChars())
	out, _ = sjson.Set(out, "bytes", a.TotalBytes())
	fmt.Println(out)
}
