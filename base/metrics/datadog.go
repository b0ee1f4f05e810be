package metrics

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/goauction/base/log"
)

const (
	// ddClientsSize must be a power of two
	ddClientsSize    = 16
	ddClientsIdxMask = ddClientsSize - 1
	ddBufferMetrics  = 10
	ddDefaultPort    = 8125
)

var (
	ddOnce    sync.Once
	ddIdx     int32
	ddClients []statsCli
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// dialDatadog opens the buffered statsd clients once per process. Bumps are
// spread over them round robin.
func dialDatadog() {
	port := viper.GetInt("datadog_port")
	if port <= 0 {
		port = ddDefaultPort
	}
	addr := fmt.Sprintf("%s:%d", viper.GetString("datadog_host"), port)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")

	ddClients = make([]statsCli, ddClientsSize)
	for i := range ddClients {
		cli, err := statsd.NewBuffered(addr, ddBufferMetrics)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("statsd.NewBuffered failed")
		}
		ddClients[i] = cli
	}
}

func nextClient() statsCli {
	ddOnce.Do(dialDatadog)
	return ddClients[atomic.AddInt32(&ddIdx, 1)&ddClientsIdxMask]
}

// ddSink writes to the shared statsd clients with the service tags appended.
type ddSink struct {
	tags []string
}

func (s *ddSink) allTags(tags []string) []string {
	res := make([]string, 0, len(s.tags)+len(tags))
	res = append(res, s.tags...)
	return append(res, tags...)
}

func (s *ddSink) send(kind bumpKind, key string, val, rate float64, tags []string) {
	cli := nextClient()
	all := s.allTags(tags)

	var err error
	switch kind {
	case kindAvg:
		// statsd has no average type, a gauge keeps the last value per flush
		err = cli.Gauge(key, val, all, rate)
	case kindSum:
		err = cli.Count(key, int64(val), all, rate)
	case kindHistogram:
		err = cli.Histogram(key, val, all, rate)
	}
	if err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "kind": kind}).Error("bump failed")
	}
}

func (s *ddSink) timer(key string, rate float64, tags []string) Ender {
	all := s.allTags(tags)
	return &timer{
		start: time.Now(),
		end: func(elapsed time.Duration) {
			msec := float64(elapsed) / float64(time.Millisecond)
			if err := nextClient().TimeInMilliseconds(key, msec, all, rate); err != nil {
				log.Log().WithFields(log.Fields{"err": err, "key": key}).Error("bump time failed")
			}
		},
	}
}
