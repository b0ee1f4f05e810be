package goroutine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverableGo(t *testing.T) {
	res := []string{}

	ev := <-RecoverableGo(
		func() {
			res = append(res, "settle batch")
			panic("keeper crashed")
		},
		WithBeforeStart(func() {
			res = append(res, "before start")
		}),
		WithAfterEnded(func() {
			res = append(res, "after ended")
		}),
		WithAfterRecovered(func(p interface{}, stack []byte) {
			res = append(res, "after recovered")
			res = append(res, p.(string))
		}),
	)

	assert.Equal(t, []string{
		"before start",
		"settle batch",
		"after ended",
		"after recovered",
		"keeper crashed",
	}, res)
	assert.Equal(t, "keeper crashed", ev.Panic)
	assert.NotEmpty(t, ev.Stack)
}

func TestRecoverableGoNoPanic(t *testing.T) {
	done := false
	ev, ok := <-RecoverableGo(func() { done = true })
	assert.Nil(t, ev)
	assert.False(t, ok)
	assert.True(t, done)
}
