package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/tbttfox/sumrope/internal/adapter"
	"github.com/tbttfox/sumrope/internal/lenpair"
	"github.com/tbttfox/sumrope/internal/tuning"
)

// runInspect opens an interactive terminal viewer: each row shows a
// line's index, text and display width, and the bottom status line shows
// the cursor line's starting char/byte offsets, the document totals and
// the line the positional query resolves to, updated live as the cursor
// moves.
func runInspect(args []string) int {
	fs, configPath, file := baseFlags("inspect")
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

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer screen.Fini()

	cursorLine := 0
	draw := func() {
		screen.Clear()
		_, height := screen.Size()
		for row := 0; row < height-2 && row < a.TotalLines(); row++ {
			line := row
			text, err := a.Document().LineText(line)
			if err != nil {
				continue
			}
			style := tcell.StyleDefault
			if line == cursorLine {
				style = style.Reverse(true)
			}
			drawText(screen, 0, row, style, fmt.Sprintf("%4d  %-40s w=%d", line, text, uniseg.StringWidth(text)))
		}

		lineStart, _ := a.LineToChar(cursorLine)
		byteStart, _ := a.LineToByte(cursorLine)
		q, _ := a.Rope().Query(lineStart, lenpair.Char)
		status := fmt.Sprintf("line=%d char_start=%d byte_start=%d total_lines=%d total_chars=%d total_bytes=%d (q.line=%d)",
			cursorLine, lineStart, byteStart, a.TotalLines(), a.TotalChars(), a.TotalBytes(), q.Line)
		drawText(screen, 0, height-1, tcell.StyleDefault.Bold(true), status)
		screen.Show()
	}

	draw()
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyDown:
				if cursorLine < a.TotalLines()-1 {
					cursorLine++
				}
			case tcell.KeyUp:
				if cursorLine > 0 {
					cursorLine--
				}
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return 0
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					return 0
				}
			}
			draw()
		case *tcell.EventResize:
			screen.Sync()
			draw()
		}
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
