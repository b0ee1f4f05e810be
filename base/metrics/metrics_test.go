package metrics

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
)

type sent struct {
	kind bumpKind
	key  string
	val  float64
	rate float64
	tags []string
}

type recordSink struct {
	sent []sent
}

func (r *recordSink) send(kind bumpKind, key string, val, rate float64, tags []string) {
	r.sent = append(r.sent, sent{kind, key, val, rate, tags})
}

func (r *recordSink) timer(key string, rate float64, tags []string) Ender {
	return &timer{start: time.Now(), end: func(elapsed time.Duration) {
		r.sent = append(r.sent, sent{"time", key, float64(elapsed), rate, tags})
	}}
}

type metricsSuite struct {
	suite.Suite

	sink *recordSink
	mt   *Metrics
}

func (s *metricsSuite) SetupTest() {
	s.sink = &recordSink{}
	s.mt = &Metrics{pkgName: "auction", level: 3, sink: s.sink}
	viper.Set("datadog_host", "localhost")
}

func (s *metricsSuite) TearDownTest() {
	viper.Reset()
}

func (s *metricsSuite) TestNewWithoutAgent() {
	viper.Reset()
	svc := New("auction")
	// must not dial anything
	svc.BumpSum("bid.err", 1, "kind", "bid too low")
	svc.BumpTime("bid.time").End()
	s.Nil(ddClients)
}

func (s *metricsSuite) TestBumpPrefixesAndTags() {
	s.mt.BumpSum("settle.err", 1, "kind", "transfer failed")
	s.mt.BumpAvg("lock.queue", 2)
	s.mt.BumpHistogram("bid.usd", 3, "unit", "native")

	s.Equal([]sent{
		{kindSum, "auction.settle.err", 1, 1, []string{"kind:transfer failed"}},
		{kindAvg, "auction.lock.queue", 2, 1, nil},
		{kindHistogram, "auction.bid.usd", 3, 1, []string{"unit:native"}},
	}, s.sink.sent)
}

func (s *metricsSuite) TestBumpTime() {
	viper.Set("metrics.sampleRate.auction", 0.5)
	s.mt.BumpTime("create.time", "driver", "memory").End()

	s.Require().Len(s.sink.sent, 1)
	s.Equal("auction.create.time", s.sink.sent[0].key)
	s.Equal(0.5, s.sink.sent[0].rate)
	s.Equal([]string{"driver:memory"}, s.sink.sent[0].tags)
}

func (s *metricsSuite) TestLevel() {
	viper.Set("metrics.level", 2)
	s.mt.BumpSum("bid.err", 1)
	s.Empty(s.sink.sent)

	s.mt.level = 2
	s.mt.BumpSum("bid.err", 1)
	s.Len(s.sink.sent, 1)
}

func (s *metricsSuite) TestOddTagsCountedAsPanic() {
	s.NotPanics(func() { s.mt.BumpSum("bid.err", 1, "kind") })
	s.Require().Len(s.sink.sent, 1)
	s.Equal("bump.panic", s.sink.sent[0].key)
}

func (s *metricsSuite) TestParseTag() {
	s.Nil(parseTag(nil))
	s.Equal([]string{"kind:ok", "unit:native"}, parseTag([]string{"kind", "ok", "unit", "native"}))
	s.Panics(func() { parseTag([]string{"odd"}) })
}

func (s *metricsSuite) TestDiscard() {
	Discard.BumpSum("x", 1)
	Discard.BumpTime("x").End()
}

func TestMetrics(t *testing.T) {
	suite.Run(t, new(metricsSuite))
}
