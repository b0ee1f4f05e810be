package metrics

// Discard drops every metric.
var Discard Service = discard{}

type discard struct{}

func (discard) BumpAvg(key string, val float64, tags ...string)       {}
func (discard) BumpSum(key string, val float64, tags ...string)       {}
func (discard) BumpHistogram(key string, val float64, tags ...string) {}
func (discard) BumpTime(key string, tags ...string) Ender             { return noopEnder{} }
