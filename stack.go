package kindling

// A stackFrame is one entry of the execution stack. A paused frame hides
// whatever runs below it from dependency gathering; Untracked pushes one.
type stackFrame struct {
	sub    WeakEffect
	paused bool
}

// effectStack tracks which effect is currently executing. The top frame is
// the implicit subscriber for every Signal or Trigger read during that run.
//
// All methods require the owning World's lock to be held.
type effectStack struct {
	frames []stackFrame
}

func (s *effectStack) push(f stackFrame) {
	s.frames = append(s.frames, f)
}

func (s *effectStack) pop() {
	if len(s.frames) == 0 {
		panic(ErrStackImbalance)
	}
	s.frames[len(s.frames)-1] = stackFrame{}
	s.frames = s.frames[:len(s.frames)-1]
}

// top returns the current implicit subscriber, or false when the stack is
// empty or gathering is paused.
func (s *effectStack) top() (WeakEffect, bool) {
	if len(s.frames) == 0 {
		return WeakEffect{}, false
	}
	f := s.frames[len(s.frames)-1]
	if f.paused {
		return WeakEffect{}, false
	}
	return f.sub, true
}
