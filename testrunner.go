package fling

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action    string  `json:"action"`
	X         float64 `json:"x,omitempty"`
	Y         float64 `json:"y,omitempty"`
	FromX     float64 `json:"fromX,omitempty"`
	FromY     float64 `json:"fromY,omitempty"`
	ToX       float64 `json:"toX,omitempty"`
	ToY       float64 `json:"toY,omitempty"`
	Frames    int     `json:"frames,omitempty"`
	Edge      string  `json:"edge,omitempty"`
	Pointer   int     `json:"pointer,omitempty"`
	Remaining int     `json:"remaining,omitempty"`

	edge Edge
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected gestures across frames for replays and
// automated tests. Attach it to an Injector, then call Step once per frame
// or Run to completion.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	frames    int
	done      bool

	inj  *Injector
	anim *TweenAnimator
}

// LoadGestureScript parses a JSON gesture script. Unknown actions and edge
// names are rejected here rather than mid-replay.
func LoadGestureScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := sonic.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		switch st.Action {
		case "press", "move", "release", "tap", "drag", "cancel", "wait", "pointerUp":
		case "dismiss":
			e, err := ParseEdge(st.Edge)
			if err != nil {
				return nil, fmt.Errorf("parse gesture script: step %d: %w", i, err)
			}
			st.edge = e
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Attach binds the runner to the injector it feeds and, optionally, the
// animator it ticks after every frame.
func (r *ScriptRunner) Attach(inj *Injector, anim *TweenAnimator) {
	r.inj = inj
	r.anim = anim
}

// Done reports whether all steps ran, every injected event was dispatched
// and no animation is left in flight.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Frames returns the number of frames stepped so far.
func (r *ScriptRunner) Frames() int {
	return r.frames
}

// Step advances the runner by one frame: it queues the next action when the
// injector is idle, dispatches one event and ticks the animator.
func (r *ScriptRunner) Step() {
	if r.done || r.inj == nil {
		return
	}
	r.advance()
	r.inj.Step()
	if r.anim != nil {
		r.anim.Update(float32(r.inj.FrameInterval.Seconds()))
	}
	r.frames++

	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.inj.Pending() == 0 &&
		(r.anim == nil || r.anim.Active() == 0) {
		r.done = true
	}
}

// Run steps until the script is done. It fails when the runner is not
// attached or the script is still running after maxFrames frames.
func (r *ScriptRunner) Run(maxFrames int) error {
	if r.inj == nil {
		return fmt.Errorf("script runner: not attached")
	}
	for !r.done {
		if r.frames >= maxFrames {
			return fmt.Errorf("script runner: not done after %d frames", maxFrames)
		}
		r.Step()
	}
	return nil
}

func (r *ScriptRunner) advance() {
	// Wait for pending injections to drain before advancing.
	if r.inj.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		if st.Pointer != 0 {
			r.inj.Pointer = st.Pointer
		}
		r.inj.InjectPress(st.X, st.Y)
	case "move":
		r.inj.InjectMove(st.X, st.Y)
	case "release":
		r.inj.InjectRelease(st.X, st.Y)
	case "tap":
		r.inj.InjectTap(st.X, st.Y)
	case "drag":
		r.inj.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "cancel":
		r.inj.InjectCancel()
	case "pointerUp":
		r.inj.InjectPointerUp(st.Pointer, st.Remaining, st.X, st.Y)
	case "dismiss":
		r.inj.Controller().Dismiss(st.edge)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
