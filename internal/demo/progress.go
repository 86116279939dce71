// Package demo contains the diagnostic drivers: each one walks a bounded
// image sequence, invokes an external predictor, and either fills a subplot
// grid or accumulates a running score.
package demo

import (
	"fmt"
	"io"
	"os"
)

// ProgressFunc reports progress after processing item i of n (0-based i).
type ProgressFunc func(i, n int)

// Console returns a progress callback that overwrites a single console line
// with "<msg> i/N", padded to constant width, and finalizes it with a newline
// on the last item.
func Console(msg string) ProgressFunc {
	return ConsoleTo(os.Stdout, msg)
}

// ConsoleTo is Console writing to w.
func ConsoleTo(w io.Writer, msg string) ProgressFunc {
	return func(i, n int) {
		width := len(fmt.Sprintf("%s %d/%d", msg, n, n))
		line := fmt.Sprintf("%s %d/%d", msg, i+1, n)

		end := ""
		if i == n-1 {
			end = "\n"
		}
		fmt.Fprintf(w, "\r%-*s%s", width, line, end)
	}
}

func report(p ProgressFunc, i, n int) {
	if p != nil {
		p(i, n)
	}
}
