/*
Package metrics reports engine and infrastructure measurements to a datadog agent.

Naming:
  - duration of internal work: *.time
  - failures: *.err, tagged with the error kind
  - plain counters: <noun>.<verb>

Every key is prefixed with the package name given to New. Bumps are dropped
while datadog_host is empty, so tests and sandbox runs need no agent.
*/
package metrics

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/x-xyz/goauction/base/env"
)

// Ender stops a timer started by BumpTime.
type Ender interface {
	End()
}

type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	// BumpTime starts a timer, meant for
	//
	//     defer met.BumpTime("settle.time").End()
	BumpTime(key string, tags ...string) Ender
}

type Option func(*opt)

type opt struct {
	withPodName bool
	level       int
}

// WithoutPodName drops the pod tag. Use it for high-cardinality keys that do
// not need a per-instance breakdown.
func WithoutPodName() Option {
	return func(o *opt) {
		o.withPodName = false
	}
}

// WithLevel sets the verbosity of the service. Bumps above metrics.level are dropped.
func WithLevel(level int) Option {
	return func(o *opt) {
		o.level = level
	}
}

func New(pkgName string, options ...Option) Service {
	o := opt{withPodName: true, level: 3}
	for _, option := range options {
		option(&o)
	}

	// an empty host tag strips the agent's host tags
	tags := []string{
		"host:",
		"env:" + viper.GetString("env_name"),
		"app:" + viper.GetString("app_name"),
	}
	if o.withPodName {
		tags = append(tags, "pod:"+env.PodName())
	}

	return &Metrics{
		pkgName: pkgName,
		level:   o.level,
		sink:    &ddSink{tags: tags},
	}
}

type bumpKind string

const (
	kindAvg       bumpKind = "avg"
	kindSum       bumpKind = "sum"
	kindHistogram bumpKind = "histogram"
)

// Metrics prefixes keys with the package name and forwards them to a sink.
type Metrics struct {
	pkgName string
	level   int
	sink    sink
}

type sink interface {
	send(kind bumpKind, key string, val, rate float64, tags []string)
	timer(key string, rate float64, tags []string) Ender
}

func (mt *Metrics) enabled() bool {
	if viper.GetString("datadog_host") == "" {
		return false
	}
	max := viper.GetInt("metrics.level")
	return max <= 0 || mt.level <= max
}

// sampleRate reads metrics.sampleRate.<pkg>, 1 by default.
func (mt *Metrics) sampleRate() float64 {
	if rate := viper.GetFloat64("metrics.sampleRate." + mt.pkgName); rate > 0 {
		return rate
	}
	return 1.0
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + "." + key
}

// recoverBump turns a panicking bump, e.g. odd tags, into a counter.
func (mt *Metrics) recoverBump(kind bumpKind, key string, tags []string) {
	if r := recover(); r != nil {
		mt.sink.send(kindSum, "bump.panic", 1, 1, parseTag([]string{
			"kind", string(kind),
			"key", mt.key(key) + "#" + strings.Join(tags, "#"),
		}))
	}
}

func (mt *Metrics) bump(kind bumpKind, key string, val float64, tags []string) {
	if !mt.enabled() {
		return
	}
	defer mt.recoverBump(kind, key, tags)
	mt.sink.send(kind, mt.key(key), val, mt.sampleRate(), parseTag(tags))
}

func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	mt.bump(kindAvg, key, val, tags)
}

func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	mt.bump(kindSum, key, val, tags)
}

func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	mt.bump(kindHistogram, key, val, tags)
}

func (mt *Metrics) BumpTime(key string, tags ...string) (e Ender) {
	e = noopEnder{}
	if !mt.enabled() {
		return e
	}
	defer mt.recoverBump("time", key, tags)
	return mt.sink.timer(mt.key(key), mt.sampleRate(), parseTag(tags))
}

type noopEnder struct{}

func (noopEnder) End() {}

// parseTag pairs up key, value, key, value... into datadog "key:value" tags.
func parseTag(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	if len(tags)%2 != 0 {
		panic("metrics: tags must come in key value pairs")
	}
	res := make([]string, 0, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		res = append(res, tags[i]+":"+tags[i+1])
	}
	return res
}

// timer measures one BumpTime call.
type timer struct {
	start time.Time
	end   func(elapsed time.Duration)
}

func (t *timer) End() {
	t.end(time.Since(t.start))
}
