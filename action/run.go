package action

import (
	"context"
	"time"
)

// Run enumerates until no further points can be found. The BFS discovers
// points in (point, then generator registration) order; this order is
// externally observable and determines every index the engine hands out.
func (a *Action[E, P]) Run() {
	a.run(never)
}

// RunFor enumerates for at most d, checking the deadline between full
// generator sweeps of successive points. A later Run resumes at the frontier.
func (a *Action[E, P]) RunFor(d time.Duration) {
	deadline := time.Now().Add(d)
	a.run(func() bool { return !time.Now().Before(deadline) })
}

// RunUntil enumerates until stop reports true or the enumeration finishes.
// stop is checked between full generator sweeps of successive points.
func (a *Action[E, P]) RunUntil(stop func() bool) {
	if stop == nil {
		stop = never
	}
	a.run(stop)
}

// RunContext enumerates until ctx is done or the enumeration finishes.
// Returns ctx.Err() when the context stopped an unfinished enumeration.
func (a *Action[E, P]) RunContext(ctx context.Context) error {
	a.run(func() bool {
		select {
		case <-ctx.Done():
			return true
		default:
			return false
		}
	})
	if !a.Finished() {
		return ctx.Err()
	}
	return nil
}

// Started reports whether enumeration has ever been started.
func (a *Action[E, P]) Started() bool { return a.started }

// Stopped reports whether the last run was interrupted before finishing.
func (a *Action[E, P]) Stopped() bool { return a.st == stateStopped }

// Finished reports whether the enumeration is complete: the frontier has
// consumed every point and every point has one edge per generator.
func (a *Action[E, P]) Finished() bool {
	return a.started && a.finishedNow()
}

func (a *Action[E, P]) finishedNow() bool {
	return a.pos == len(a.orb) && a.graph.OutDegree() == len(a.gens)
}

func never() bool { return false }

// run drives the state machine around one runImpl invocation.
func (a *Action[E, P]) run(stop func() bool) {
	if a.started && a.finishedNow() {
		a.st = stateFinished
		return
	}
	a.st = stateRunning
	a.runImpl(stop)
	if a.finishedNow() {
		a.st = stateFinished
	} else {
		a.st = stateStopped
	}
	a.reportWhyStopped()
}

// runImpl advances the enumeration from the frontier. When generators were
// added after a previous run, the already-discovered points are first swept
// with only the new generators, retroactively widening the out-degree.
func (a *Action[E, P]) runImpl(stop func() bool) {
	oldDegree := a.graph.OutDegree()
	a.graph.AddToOutDegree(len(a.gens) - oldDegree)
	if a.started && oldDegree < len(a.gens) {
		for i := 0; i < a.pos; i++ {
			for j := oldDegree; j < len(a.gens); j++ {
				a.apply(i, j)
			}
		}
	}
	a.started = true

	for a.pos < len(a.orb) && !stop() {
		for j := range a.gens {
			a.apply(a.pos, j)
		}
		a.pos++
		a.maybeReport()
	}
}

// apply acts on point i with generator j, recording the edge and inserting
// the image when it is new.
func (a *Action[E, P]) apply(i, j int) {
	a.tmp = a.tr.Act(a.tmp, a.orb[i], a.gens[j])
	if k := a.lookup(a.tmp); k != Undefined {
		_ = a.graph.AddEdge(i, k, j)
		return
	}
	a.graph.AddNodes(1)
	_ = a.graph.AddEdge(i, len(a.orb), j)
	a.insert(a.store.Clone(a.tmp))
}

func (a *Action[E, P]) maybeReport() {
	if a.logger == nil {
		return
	}
	if len(a.orb)-a.reported >= a.reportEvery {
		a.reported = len(a.orb)
		a.logger.Info("found points, so far", "points", len(a.orb), "frontier", a.pos)
	}
}

func (a *Action[E, P]) reportWhyStopped() {
	if a.logger == nil {
		return
	}
	if a.st == stateFinished {
		a.logger.Info("orbit fully enumerated", "points", len(a.orb))
		return
	}
	a.logger.Info("enumeration stopped", "points", len(a.orb), "frontier", a.pos)
}
