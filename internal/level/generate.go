package level

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-tiles/internal/level/formats"
)

// Generate fills the layout of lvl from its generator: every cell picks a
// tile name from Fill with probability proportional to its weight. The same
// seed always gives the same layout. The result goes through Build like a
// drawn level.
func Generate(lvl formats.Level) formats.Level {
	g := lvl.Generate
	if g == nil {
		return lvl
	}

	names := sortedKeys(g.Fill)
	weights := make([]float64, 0, len(names))
	var total float64
	for _, name := range names {
		weights = append(weights, g.Fill[name])
		total += g.Fill[name]
	}

	legend := make(map[rune]string, len(lvl.Legend)+len(names))
	for r, name := range lvl.Legend {
		legend[r] = name
	}
	chars := make([]rune, len(names))
	for i, name := range names {
		chars[i] = legendRune(legend, name)
	}

	rng := rand.New(rand.NewSource(g.Seed))
	layout := make([]string, g.Rows)
	var row strings.Builder
	for r := 0; r < g.Rows; r++ {
		row.Reset()
		for c := 0; c < g.Cols; c++ {
			row.WriteRune(chars[pick(rng.Float64()*total, weights)])
		}
		layout[r] = row.String()
	}

	lvl.Legend = legend
	lvl.Layout = layout
	return lvl
}

// pick returns the index whose cumulative weight range contains x.
func pick(x float64, weights []float64) int {
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if x < w {
			return i
		}
		x -= w
		last = i
	}
	return last
}

// legendRune returns the lowest character mapped to name, claiming the
// first free one from 'a' upward when the legend has none.
func legendRune(legend map[rune]string, name string) rune {
	found := rune(-1)
	for r, n := range legend {
		if n == name && (found < 0 || r < found) {
			found = r
		}
	}
	if found >= 0 {
		return found
	}

	r := 'a'
	for {
		if _, taken := legend[r]; !taken {
			legend[r] = name
			return r
		}
		r++
	}
}
