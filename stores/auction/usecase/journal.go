package usecase

import (
	"context"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
)

type undoStep struct {
	name string
	undo func(c ctx.Ctx) error
}

// journal collects compensations for the effects of one operation.
// rollback replays them newest first.
type journal struct {
	steps []undoStep
}

func (j *journal) add(name string, undo func(c ctx.Ctx) error) {
	j.steps = append(j.steps, undoStep{name: name, undo: undo})
}

// rollback runs every step even when one fails. It detaches from the caller's
// cancellation so a dropped request still gets compensated.
func (j *journal) rollback(c ctx.Ctx) {
	rc := ctx.From(c, context.Background())
	for i := len(j.steps) - 1; i >= 0; i-- {
		step := j.steps[i]
		if err := step.undo(rc); err != nil {
			met.BumpSum("rollback.err", 1, "step", step.name)
			rc.WithFields(log.Fields{
				"err":  err,
				"step": step.name,
			}).Error("rollback step failed")
		}
	}
	j.steps = nil
}
