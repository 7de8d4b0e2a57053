package tuning

import (
	"fmt"
	"sync/atomic"

	"colorgate/internal/logger"
	"colorgate/internal/threshold"

	"github.com/google/uuid"
)

// Sample domain of every tuned value.
const (
	minSample = 0
	maxSample = 255
)

// Surface is the minimal control-surface capability the tuner needs:
// create a numeric control with a change callback. The fyne panel in
// internal/gui implements it; tests use a recording fake.
type Surface interface {
	CreateControl(label string, initial, min, max float64, onChanged func(float64))
}

// SessionState tracks the lifecycle of a tuning session.
type SessionState int32

const (
	Active SessionState = iota
	Closed
)

// Session is a live binding between a spec's bound vectors and a
// control surface. It mutates bounds only; the spec's spaces and
// conversion stay fixed.
type Session struct {
	id    string
	spec  *threshold.Spec
	state int32
	log   logger.Logger
}

// Attach creates one control per (bound kind, channel) pair on the
// surface, initialized from the spec's current values, and returns the
// active session driving them.
func Attach(spec *threshold.Spec, surface Surface, log logger.Logger) *Session {
	if log == nil {
		log = logger.Nop{}
	}

	session := &Session{
		id:   uuid.NewString(),
		spec: spec,
		log:  log,
	}

	bound := spec.Snapshot()
	for i := range bound.Low {
		channel := i
		surface.CreateControl(
			fmt.Sprintf("low %d", channel), bound.Low[channel], minSample, maxSample,
			func(value float64) { session.OnChange(threshold.LowBound, channel, value) },
		)
	}
	for i := range bound.High {
		channel := i
		surface.CreateControl(
			fmt.Sprintf("high %d", channel), bound.High[channel], minSample, maxSample,
			func(value float64) { session.OnChange(threshold.HighBound, channel, value) },
		)
	}

	log.Debug("tuning", "session attached", map[string]interface{}{
		"session":  session.id,
		"channels": len(bound.Low),
	})

	return session
}

// OnChange clamps the value to the sample domain and writes it into
// the spec. It never fails: out-of-range values are clamped, writes on
// a closed session are dropped. The low<=high invariant is not
// re-checked here; tuning may cross the bounds transiently.
func (s *Session) OnChange(kind threshold.BoundKind, channel int, value float64) {
	if s.State() == Closed {
		return
	}

	clamped := value
	if clamped < minSample {
		clamped = minSample
	}
	if clamped > maxSample {
		clamped = maxSample
	}

	if err := s.spec.SetBound(kind, channel, clamped); err != nil {
		s.log.Error("tuning", err, map[string]interface{}{
			"session": s.id,
			"kind":    kind.String(),
			"channel": channel,
		})
	}
}

// Detach closes the session. Idempotent; subsequent OnChange calls are
// no-ops.
func (s *Session) Detach() {
	if atomic.CompareAndSwapInt32(&s.state, int32(Active), int32(Closed)) {
		s.log.Debug("tuning", "session detached", map[string]interface{}{
			"session": s.id,
		})
	}
}

// State reports whether the session still accepts changes.
func (s *Session) State() SessionState {
	return SessionState(atomic.LoadInt32(&s.state))
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }
