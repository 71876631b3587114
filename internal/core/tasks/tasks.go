// Package tasks models suspendable step sequences: handler logic that
// pauses for simulated frames or for an animation/sound cue and resumes at
// the same point. Sequences are driven by a single-threaded Scheduler, so
// the sequential, non-interleaved semantics of the rule chain are kept; no
// goroutines are involved.
package tasks

// WaitKind classifies what a step is waiting on
type WaitKind int

const (
	// WaitNone continues to the next step immediately
	WaitNone WaitKind = iota

	// WaitFrames suspends until N simulated frames have elapsed
	WaitFrames

	// WaitCue suspends until a named presentation cue finishes
	WaitCue

	// WaitDone ends the sequence early
	WaitDone
)

// Wait is the descriptor a step returns to tell the scheduler how to
// proceed
type Wait struct {
	Kind   WaitKind
	Frames int
	Cue    string
}

// Continue proceeds to the next step without suspending
func Continue() Wait {
	return Wait{Kind: WaitNone}
}

// Frames suspends the sequence for n simulated frames
func Frames(n int) Wait {
	return Wait{Kind: WaitFrames, Frames: n}
}

// Cue suspends the sequence until the named cue is reported finished
func Cue(name string) Wait {
	return Wait{Kind: WaitCue, Cue: name}
}

// Done ends the sequence, skipping any remaining steps
func Done() Wait {
	return Wait{Kind: WaitDone}
}

// Step is one resumable unit of a sequence
type Step func() Wait

// Seq is an ordered sequence of steps with a saved resume position
type Seq struct {
	steps   []Step
	next    int
	pending Wait
	done    bool
}

// NewSeq builds a sequence from steps
func NewSeq(steps ...Step) *Seq {
	return &Seq{steps: steps}
}

// Done reports whether the sequence has finished
func (s *Seq) Done() bool {
	return s.done
}

// Scheduler drives suspended sequences. It is single-threaded by design:
// Start, Tick and Cue all run sequence steps inline on the caller's
// goroutine, and a resumed sequence runs until its next wait before the
// call returns.
type Scheduler struct {
	waiting []*Seq
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Start runs a sequence until it first suspends or completes
func (sch *Scheduler) Start(seq *Seq) {
	sch.advance(seq)
}

// Waiting returns the number of suspended sequences
func (sch *Scheduler) Waiting() int {
	return len(sch.waiting)
}

// Tick reports that n simulated frames elapsed, resuming any sequence
// whose frame wait has run out
func (sch *Scheduler) Tick(n int) {
	still := sch.waiting[:0]
	var resumed []*Seq
	for _, seq := range sch.waiting {
		if seq.pending.Kind == WaitFrames {
			seq.pending.Frames -= n
			if seq.pending.Frames <= 0 {
				resumed = append(resumed, seq)
				continue
			}
		}
		still = append(still, seq)
	}
	sch.waiting = still
	for _, seq := range resumed {
		sch.advance(seq)
	}
}

// Cue reports that a named presentation cue finished, resuming sequences
// waiting on it
func (sch *Scheduler) Cue(name string) {
	still := sch.waiting[:0]
	var resumed []*Seq
	for _, seq := range sch.waiting {
		if seq.pending.Kind == WaitCue && seq.pending.Cue == name {
			resumed = append(resumed, seq)
			continue
		}
		still = append(still, seq)
	}
	sch.waiting = still
	for _, seq := range resumed {
		sch.advance(seq)
	}
}

func (sch *Scheduler) advance(seq *Seq) {
	for seq.next < len(seq.steps) {
		step := seq.steps[seq.next]
		seq.next++
		wait := step()
		switch wait.Kind {
		case WaitNone:
			continue
		case WaitDone:
			seq.done = true
			return
		default:
			seq.pending = wait
			sch.waiting = append(sch.waiting, seq)
			return
		}
	}
	seq.done = true
}
