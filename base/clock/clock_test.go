package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFixed(t *testing.T) {
	req := require.New(t)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("x", 3600))
	c := NewFixed(at)
	req.True(c.Now().Equal(at))
	req.Equal(time.UTC, c.Now().Location())
}

func TestManual(t *testing.T) {
	req := require.New(t)
	at := time.Unix(1700000000, 0)
	c := NewManual(at)
	c.Advance(time.Hour)
	req.Equal(at.Add(time.Hour).Unix(), c.Now().Unix())
	c.Set(at)
	req.Equal(at.Unix(), c.Now().Unix())
}
