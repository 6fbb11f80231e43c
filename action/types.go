// Package action defines the option types, trait adapters, and sentinel
// errors for orbit enumeration.
package action

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/orbita/points"
)

// Undefined is the sentinel returned by Position for a point that does not
// (yet) belong to the action. Absence is not an error, so hot paths can
// branch without unwrapping anything.
const Undefined = -1

// Sentinel errors for action operations.
var (
	// ErrInvalidTraits is returned by New when a required adapter (Act, Hash,
	// Equal) is nil, and by multiplier queries when Product or One is nil.
	ErrInvalidTraits = errors.New("action: missing required trait adapter")

	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("action: invalid option supplied")

	// ErrDegreeMismatch is returned by AddGenerator when the new generator's
	// degree differs from that of the generators already registered. The
	// action is left unmodified.
	ErrDegreeMismatch = errors.New("action: generator degree mismatch")

	// ErrIndexOutOfRange is returned when a position is not in [0, CurrentSize()).
	ErrIndexOutOfRange = errors.New("action: index out of range")

	// ErrNoGenerators is returned by component and multiplier queries made
	// before any generator has been added.
	ErrNoGenerators = errors.New("action: no generators defined")

	// ErrPointNotFound is returned by RootOfSCCPoint for a point that does
	// not belong to the action.
	ErrPointNotFound = errors.New("action: point does not belong to the action")
)

// Side selects whether elements act by right multiplication (point·element)
// or left multiplication (element·point). It determines the order in which
// multiplier queries compose generators.
type Side int

const (
	// Right denotes a right action: generators apply on the right of a point.
	Right Side = iota
	// Left denotes a left action: generators apply on the left of a point.
	Left
)

// String returns "right" or "left".
func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// ApplyFunc computes the action of gen on pt and returns the result. dst is a
// scratch point of the right shape that the implementation may write into and
// return, so reference-holding point types avoid an allocation per step.
type ApplyFunc[E, P any] func(dst P, pt P, gen E) P

// ProductFunc computes x·y and returns the result. dst is a scratch element
// the implementation may write into and return. The product must be
// associative.
type ProductFunc[E any] func(dst E, x, y E) E

// Traits bundles the caller-supplied adapters the engine consumes. Act, Hash,
// and Equal are required for enumeration; Product and One additionally for
// multiplier queries; Degree is optional and enables the checked AddGenerator.
type Traits[E, P any] struct {
	// Act applies a generator to a point; see ApplyFunc.
	Act ApplyFunc[E, P]

	// Hash hashes the external view of a point.
	Hash func(P) uint64

	// Equal compares the external views of two points.
	Equal func(P, P) bool

	// Product multiplies two elements; see ProductFunc. Required only by
	// multiplier queries.
	Product ProductFunc[E]

	// One returns the identity element, given any registered generator as a
	// shape sample. Required only by multiplier queries.
	One func(sample E) E

	// Degree reports the domain size of a generator. When non-nil,
	// AddGenerator rejects generators whose degree differs from the first
	// registered one.
	Degree func(E) int
}

// validate checks the adapters required for enumeration.
func (tr Traits[E, P]) validate() error {
	switch {
	case tr.Act == nil:
		return errors.New("action: Traits.Act is nil")
	case tr.Hash == nil:
		return errors.New("action: Traits.Hash is nil")
	case tr.Equal == nil:
		return errors.New("action: Traits.Equal is nil")
	}
	return nil
}

// Option configures an Action at construction time.
type Option[P any] func(*Options[P])

// Options holds construction parameters for an Action.
type Options[P any] struct {
	// Store is the point ownership strategy; defaults to points.Value.
	Store points.Store[P]

	// Logger, when non-nil, receives enumeration progress reports. The
	// engine never logs without one.
	Logger *log.Logger

	// ReportInterval is the number of newly discovered points between two
	// progress reports. Ignored without a Logger.
	ReportInterval int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the inline point store, no logger, and
// a report interval of 1000 points.
func DefaultOptions[P any]() Options[P] {
	return Options[P]{
		Store:          points.Value[P](),
		ReportInterval: 1000,
	}
}

// WithStore selects the point ownership strategy.
func WithStore[P any](s points.Store[P]) Option[P] {
	return func(o *Options[P]) {
		if s != nil {
			o.Store = s
		}
	}
}

// WithLogger attaches a structured logger for enumeration progress reports.
func WithLogger[P any](l *log.Logger) Option[P] {
	return func(o *Options[P]) { o.Logger = l }
}

// WithReportInterval sets how many newly discovered points elapse between
// progress reports. n must be positive.
func WithReportInterval[P any](n int) Option[P] {
	return func(o *Options[P]) {
		if n <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.ReportInterval = n
	}
}

// state is the lifecycle of one enumeration.
type state uint8

const (
	stateIdle state = iota
	stateRunning
	stateStopped
	stateFinished
)
