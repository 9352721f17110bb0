package schema

import "sort"

// Cases returns the series' case names in ascending order.
func (s MetricSeries) Cases() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Samples flattens the series into MetricSample rows tagged with the given
// metric name, ordered by case name and then file order within a case.
func (s MetricSeries) Samples(metric string) []MetricSample {
	var out []MetricSample
	for _, name := range s.Cases() {
		for _, pt := range s[name] {
			out = append(out, MetricSample{Time: pt.Time, Case: name, Metric: metric, Value: pt.Value})
		}
	}
	return out
}
