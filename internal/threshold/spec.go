package threshold

import (
	"fmt"
	"sync"

	"colorgate/internal/colorspace"
	"colorgate/internal/logger"
)

// BoundKind selects which bound vector of a spec an operation targets.
type BoundKind int

const (
	LowBound BoundKind = iota
	HighBound
)

func (k BoundKind) String() string {
	if k == HighBound {
		return "high"
	}
	return "low"
}

// Bound holds an immutable copy of a spec's per-channel bounds. Values
// are 8-bit samples in [0,255], one element per channel.
type Bound struct {
	Low  []float64
	High []float64
}

// Spec binds per-channel low/high bounds to a source and threshold
// color space. The spaces and the resolved conversion are fixed after
// construction; only the bound vectors may change, through SetBound.
//
// Concurrency: bounds live behind an RWMutex. Classify takes one
// Snapshot per call and works on the copy, so a tuning write can never
// tear a mask across channels.
type Spec struct {
	mu   sync.RWMutex
	low  []float64
	high []float64

	sourceSpace colorspace.Space
	threshSpace colorspace.Space
	conversion  *colorspace.Conversion
}

type specOptions struct {
	conversion *colorspace.Conversion
	log        logger.Logger
}

// Option adjusts spec construction.
type Option func(*specOptions)

// WithConversion supplies an explicit conversion routine instead of
// resolving one from the registry.
func WithConversion(c *colorspace.Conversion) Option {
	return func(o *specOptions) { o.conversion = c }
}

// WithLogger routes construction diagnostics to the given logger.
func WithLogger(log logger.Logger) Option {
	return func(o *specOptions) { o.log = log }
}

// NewSpec builds a fully validated Spec from literal bounds. Low and
// high must be equal-length vectors with at least one channel. When no
// explicit conversion is supplied and the spaces differ, the registry
// resolves one; an unregistered pair fails here, never during
// classification.
func NewSpec(low, high []float64, source, thresh colorspace.Space, opts ...Option) (*Spec, error) {
	o := specOptions{log: logger.Nop{}}
	for _, opt := range opts {
		opt(&o)
	}

	if len(low) == 0 || len(high) == 0 {
		return nil, newValidationError("bound vectors must have at least one channel")
	}
	if len(low) != len(high) {
		return nil, newValidationError("bound length mismatch: low has %d channels, high has %d", len(low), len(high))
	}

	for i := range low {
		if low[i] > high[i] {
			// Legacy behavior: inverted bounds are permitted (the
			// per-channel range is simply empty), but worth flagging.
			o.log.Warning("threshold", "low bound exceeds high bound", map[string]interface{}{
				"channel": i,
				"low":     low[i],
				"high":    high[i],
			})
		}
	}

	conversion := o.conversion
	if conversion == nil && source != thresh {
		resolved, err := colorspace.Resolve(source, thresh)
		if err != nil {
			return nil, err
		}
		conversion = resolved
	}

	spec := &Spec{
		low:         append([]float64(nil), low...),
		high:        append([]float64(nil), high...),
		sourceSpace: source,
		threshSpace: thresh,
		conversion:  conversion,
	}

	return spec, nil
}

// SourceSpace returns the color space of images handed to Classify.
func (s *Spec) SourceSpace() colorspace.Space { return s.sourceSpace }

// ThreshSpace returns the color space the bounds are expressed in.
func (s *Spec) ThreshSpace() colorspace.Space { return s.threshSpace }

// Conversion returns the resolved conversion routine, or nil when the
// source and threshold spaces match.
func (s *Spec) Conversion() *colorspace.Conversion { return s.conversion }

// Channels returns the channel count of the bound vectors.
func (s *Spec) Channels() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.low)
}

// Snapshot copies both bound vectors under the read lock. Callers work
// on the copy, so later SetBound writes cannot tear an in-flight
// classification.
func (s *Spec) Snapshot() Bound {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Bound{
		Low:  append([]float64(nil), s.low...),
		High: append([]float64(nil), s.high...),
	}
}

// SetBound writes one channel of one bound vector. The channel index
// must address an existing channel; the spec's shape never changes
// after construction.
func (s *Spec) SetBound(kind BoundKind, channel int, value float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if channel < 0 || channel >= len(s.low) {
		return newValidationError("channel %d out of range for %d-channel bounds", channel, len(s.low))
	}

	if kind == HighBound {
		s.high[channel] = value
	} else {
		s.low[channel] = value
	}
	return nil
}

func (s *Spec) String() string {
	bound := s.Snapshot()
	if s.conversion != nil {
		return fmt.Sprintf("threshold %v..%v in %s (converted from %s)", bound.Low, bound.High, s.threshSpace, s.sourceSpace)
	}
	return fmt.Sprintf("threshold %v..%v in %s", bound.Low, bound.High, s.threshSpace)
}
