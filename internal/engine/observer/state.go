package observer

// ThreadState is the observation state of one application thread.
type ThreadState string

const (
	// StateIdle indicates the thread has not performed a tracked access yet.
	StateIdle ThreadState = "Idle"
	// StateTracking indicates the thread is maintaining its access window.
	StateTracking ThreadState = "TrackingWindow"
	// StateCandidateFound indicates a new access matched an idiom pattern and
	// the candidates are being checked against the ledger.
	StateCandidateFound ThreadState = "CandidateFound"
	// StatePerturbing indicates the thread is being delayed to force an ordering.
	StatePerturbing ThreadState = "Perturbing"
	// StateExited indicates the thread has finished.
	StateExited ThreadState = "Exited"
)
