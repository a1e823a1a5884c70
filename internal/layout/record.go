package layout

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// Phase is one stage of the incremental fill solver.
type Phase uint8

const (
	PhaseMin       Phase = iota // Grow toward Min
	PhasePreferred              // Grow toward Preferred
	PhaseMax                    // Grow toward Max
	PhaseOverfill               // Overfill segments grow without bound
	PhaseForced                 // Every flexible segment grows until the axis is full
)

var phaseNames = [...]string{
	PhaseMin:       "min",
	PhasePreferred: "preferred",
	PhaseMax:       "max",
	PhaseOverfill:  "overfill",
	PhaseForced:    "forced",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Step records one growth of one segment.
type Step struct {
	Phase   Phase
	Segment int // index into the solved segment list
	Before  int
	After   int

	// StepSize is the shared fixed-point step in 1/32 cell units.
	StepSize int
}

func (s Step) String() string {
	return fmt.Sprintf("%s seg=%d %d->%d step=%d/32", s.Phase, s.Segment, s.Before, s.After, s.StepSize)
}

// Recorder receives every step the solver takes. Recording never changes
// the solver's result.
type Recorder interface {
	Record(Step)
}

// StepLog is a Recorder that keeps every step in memory.
// It is safe for concurrent use.
type StepLog struct {
	mu    sync.Mutex
	steps []Step
}

// Record appends s.
func (l *StepLog) Record(s Step) {
	l.mu.Lock()
	l.steps = append(l.steps, s)
	l.mu.Unlock()
}

// Steps returns a copy of the recorded steps.
func (l *StepLog) Steps() []Step {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Step, len(l.steps))
	copy(out, l.steps)
	return out
}

// Len returns the number of recorded steps.
func (l *StepLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.steps)
}

// Reset discards all recorded steps.
func (l *StepLog) Reset() {
	l.mu.Lock()
	l.steps = l.steps[:0]
	l.mu.Unlock()
}

// LogRecorder returns a Recorder that writes each step to logger at debug level.
func LogRecorder(logger *log.Logger) Recorder {
	return logRecorder{logger: logger}
}

type logRecorder struct {
	logger *log.Logger
}

func (r logRecorder) Record(s Step) {
	r.logger.Debug("layout step",
		"phase", s.Phase,
		"segment", s.Segment,
		"before", s.Before,
		"after", s.After,
		"step", s.StepSize,
	)
}

// multiRecorder fans steps out to several recorders.
type multiRecorder []Recorder

func (m multiRecorder) Record(s Step) {
	for _, r := range m {
		r.Record(s)
	}
}

// MultiRecorder returns a Recorder that forwards to every non-nil recorder.
func MultiRecorder(recorders ...Recorder) Recorder {
	var out multiRecorder
	for _, r := range recorders {
		if r != nil {
			out = append(out, r)
		}
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}
