// Package util holds small terminal and string helpers shared by the CLI.
package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

// Quantify returns "1 entry" or "3 entries".
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// Capitalize uppercases the first byte of s.
func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Humanize turns snake_case enum values into words, "plan_to_watch" becomes "Plan to watch".
func Humanize(s string) string {
	return Capitalize(strings.ReplaceAll(s, "_", " "))
}

// TerminalSize reports the character dimensions of stdout.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// TerminalWidth reports the width of stdout, or fallback when it is not a terminal.
func TerminalWidth(fallback int) int {
	width, _, err := TerminalSize()
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// Wrap word-wraps s at width columns, never below 20.
func Wrap(s string, width int) string {
	return wordwrap.String(s, Max(width, 20))
}

// Max returns the largest argument.
func Max[T constraints.Ordered](items ...T) (max T) {
	if len(items) == 0 {
		return
	}
	max = items[0]
	for _, item := range items[1:] {
		if item > max {
			max = item
		}
	}
	return
}

// Min returns the smallest argument.
func Min[T constraints.Ordered](items ...T) (min T) {
	if len(items) == 0 {
		return
	}
	min = items[0]
	for _, item := range items[1:] {
		if item < min {
			min = item
		}
	}
	return
}
