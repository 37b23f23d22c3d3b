package rest

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/wordexplorer/internal/domain"
)

const (
	chartWidth  = 600
	chartHeight = 120
)

type wordView struct {
	Page        *domain.WordPage
	Sparkline   string
	ChartWidth  int
	ChartHeight int
	FirstYear   int
	LastYear    int
	PeakYear    int
}

func newWordView(page *domain.WordPage) wordView {
	v := wordView{
		Page:        page,
		ChartWidth:  chartWidth,
		ChartHeight: chartHeight,
	}

	if len(page.Ngram) < 2 {
		return v
	}

	v.FirstYear = page.Ngram[0].Year
	v.LastYear = page.Ngram[len(page.Ngram)-1].Year
	v.Sparkline, v.PeakYear = sparkline(page.Ngram, chartWidth, chartHeight)
	return v
}

// sparkline scales a frequency series into SVG polyline points within a
// width x height box (y grows downwards) and returns the year of the peak.
// A flat zero series yields no points.
func sparkline(series []domain.FrequencyPoint, width, height int) (string, int) {
	peak := series[0]
	for _, p := range series[1:] {
		if p.Freq > peak.Freq {
			peak = p
		}
	}
	if peak.Freq <= 0 {
		return "", 0
	}

	step := float64(width) / float64(len(series)-1)

	var b strings.Builder
	for i, p := range series {
		if i > 0 {
			b.WriteByte(' ')
		}
		x := float64(i) * step
		y := float64(height) * (1 - p.Freq/peak.Freq)
		b.WriteString(strconv.FormatFloat(x, 'f', 1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(y, 'f', 1, 64))
	}

	return b.String(), peak.Year
}
