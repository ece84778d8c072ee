// Package reportdiff compares a saved inventory report against a fresh
// rendering, line by line.
package reportdiff

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Op classifies one line of a comparison.
type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

// Line is one report line and what happened to it.
type Line struct {
	Op   Op
	Text string
}

// Result is the line diff between a baseline and a current report.
type Result struct {
	Lines []Line
}

// Compare diffs baseline against current at line granularity.
func Compare(baseline, current string) *Result {
	dmp := diffpatch.New()
	from, to, lines := dmp.DiffLinesToChars(baseline, current)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(from, to, false), lines)

	res := &Result{}
	for _, d := range diffs {
		var op Op
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		default:
			op = Equal
		}
		for _, text := range splitLines(d.Text) {
			res.Lines = append(res.Lines, Line{Op: op, Text: text})
		}
	}
	return res
}

func splitLines(text string) []string {
	parts := strings.SplitAfter(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\n")
	}
	return parts
}

// Changed reports whether any line was inserted or deleted.
func (r *Result) Changed() bool {
	for _, l := range r.Lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Counts returns the number of inserted and deleted lines.
func (r *Result) Counts() (inserted, deleted int) {
	for _, l := range r.Lines {
		switch l.Op {
		case Insert:
			inserted++
		case Delete:
			deleted++
		}
	}
	return inserted, deleted
}

// Write prints the diff with "+ " and "- " markers on changed lines and two
// spaces on unchanged ones. With colorize set, insertions are green and
// deletions red.
func (r *Result) Write(w io.Writer, colorize bool) error {
	insert := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	if colorize {
		insert.EnableColor()
		del.EnableColor()
	} else {
		insert.DisableColor()
		del.DisableColor()
	}

	for _, l := range r.Lines {
		var err error
		switch l.Op {
		case Insert:
			_, err = fmt.Fprintln(w, insert.Sprint("+ "+l.Text))
		case Delete:
			_, err = fmt.Fprintln(w, del.Sprint("- "+l.Text))
		default:
			_, err = fmt.Fprintln(w, "  "+l.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ColorEnabled reports whether w is a terminal that should get coloured
// output.
func ColorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
