package domain

// Trace is a recorded multithreaded execution: for every thread, the ordered
// list of instructions it executed and the memory or synchronization operations
// they performed.
type Trace struct {
	Threads []ThreadTrace
}

// ThreadTrace is the per-thread part of a Trace.
type ThreadTrace struct {
	ID     ThreadID
	Events []TraceEvent
}

// TraceEvent is one executed instruction. Type is zero for instructions that
// perform no tracked operation.
type TraceEvent struct {
	Image  string
	Offset uint64
	Type   AccessType
	Addr   uint64
	Size   uint64
}

// Inst returns the static instruction of the event.
func (e TraceEvent) Inst() Inst {
	return NewInst(e.Image, e.Offset)
}

// Access converts the event into an Access performed by tid.
func (e TraceEvent) Access(tid ThreadID) Access {
	return Access{
		Thread: tid,
		Inst:   e.Inst(),
		Type:   e.Type,
		Addr:   e.Addr,
		Size:   e.Size,
	}
}
