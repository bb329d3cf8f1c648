package report

import (
	"math"
	"strconv"

	"codeberg.org/mutker/pemon/internal/errors"
	"codeberg.org/mutker/pemon/internal/telemetry"
)

// Bucket is the share of samples falling into [Lower, Upper).
type Bucket struct {
	Label   string
	Lower   float64
	Upper   float64
	Count   int
	Percent float64
}

// Summary holds the distribution statistics of one metric.
type Summary struct {
	Name    string
	Unit    string
	Mean    float64
	Min     float64
	Max     float64
	Buckets []Bucket
}

// Report is the aggregate of a whole session.
type Report struct {
	Samples int
	Cores   int
	Metrics []Summary
}

// Metric returns the summary with the given name.
func (r Report) Metric(name string) (Summary, bool) {
	for _, m := range r.Metrics {
		if m.Name == name {
			return m, true
		}
	}

	return Summary{}, false
}

// Summarize aggregates a session with the default metric table.
func Summarize(log telemetry.SessionLog) (Report, error) {
	return SummarizeWith(log, DefaultMetrics())
}

// SummarizeWith aggregates a session over the given metrics. Each metric
// is computed independently of the others.
func SummarizeWith(log telemetry.SessionLog, metrics []Metric) (Report, error) {
	errFactory := errors.New()

	if log.Len() == 0 {
		return Report{}, errFactory.New(ErrEmptySessionLog)
	}

	report := Report{
		Samples: log.Len(),
		Cores:   log.CoreCount(),
		Metrics: make([]Summary, 0, len(metrics)),
	}

	for _, m := range metrics {
		if !validBounds(m.Bounds) {
			return Report{}, errFactory.WithData(ErrInvalidBuckets, m.Name)
		}

		values := make([]float64, 0, log.Len())
		log.Each(func(s telemetry.Sample) {
			values = append(values, m.Value(s))
		})

		report.Metrics = append(report.Metrics, summarize(m, values))
	}

	return report, nil
}

func summarize(m Metric, values []float64) Summary {
	buckets := newBuckets(m.Bounds)

	lo, hi := math.Inf(1), math.Inf(-1)
	var sum float64
	for _, v := range values {
		sum += v
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		buckets[bucketIndex(m.Bounds, v)].Count++
	}

	n := float64(len(values))
	for i := range buckets {
		buckets[i].Percent = 100 * float64(buckets[i].Count) / n
	}

	return Summary{
		Name:    m.Name,
		Unit:    m.Unit,
		Mean:    sum / n,
		Min:     lo,
		Max:     hi,
		Buckets: buckets,
	}
}

func newBuckets(bounds []float64) []Bucket {
	buckets := make([]Bucket, len(bounds)+1)

	for i := range buckets {
		lower, upper := math.Inf(-1), math.Inf(1)
		if i > 0 {
			lower = bounds[i-1]
		}
		if i < len(bounds) {
			upper = bounds[i]
		}

		buckets[i] = Bucket{
			Label: bucketLabel(lower, upper),
			Lower: lower,
			Upper: upper,
		}
	}

	return buckets
}

// bucketIndex returns the half-open bucket holding v.
func bucketIndex(bounds []float64, v float64) int {
	for i, b := range bounds {
		if v < b {
			return i
		}
	}

	return len(bounds)
}

func bucketLabel(lower, upper float64) string {
	switch {
	case math.IsInf(lower, -1):
		return "<" + formatBound(upper)
	case math.IsInf(upper, 1):
		return ">=" + formatBound(lower)
	default:
		return formatBound(lower) + "-" + formatBound(upper)
	}
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func validBounds(bounds []float64) bool {
	if len(bounds) == 0 {
		return false
	}

	for i := 1; i < len(bounds); i++ {
		if !(bounds[i] > bounds[i-1]) {
			return false
		}
	}

	return true
}
