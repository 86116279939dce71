// Package curve extracts loss curves from training logs and renders them on a
// log-scaled axis.
package curve

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
)

// DefaultSmoothingAlpha is the exponential smoothing factor applied to the
// raw loss sequence.
const DefaultSmoothingAlpha = 0.05

// Curve holds a raw loss sequence and its exponentially smoothed version.
// Samples are implicitly indexed by 1-based iteration.
type Curve struct {
	Losses   []float64
	Smoothed []float64
}

// FromLog scans a training log line by line. Every line matching pattern
// contributes one loss sample from the pattern's first capture group; lines
// that do not match are skipped silently. The samples keep file order.
func FromLog(r io.Reader, pattern *regexp.Regexp, alpha float64) (*Curve, error) {
	if pattern.NumSubexp() < 1 {
		return nil, fmt.Errorf("loss pattern %q needs a capture group", pattern)
	}

	var losses []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m := pattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		loss, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, fmt.Errorf("loss pattern captured %q: %w", m[1], err)
		}
		losses = append(losses, loss)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan log: %w", err)
	}

	return &Curve{Losses: losses, Smoothed: Smooth(losses, alpha)}, nil
}

// Smooth applies exponential smoothing: the first sample passes through, and
// each following sample is alpha*loss + (1-alpha)*previous.
func Smooth(losses []float64, alpha float64) []float64 {
	if len(losses) == 0 {
		return nil
	}
	smoothed := make([]float64, len(losses))
	smoothed[0] = losses[0]
	for i := 1; i < len(losses); i++ {
		smoothed[i] = alpha*losses[i] + (1-alpha)*smoothed[i-1]
	}
	return smoothed
}
