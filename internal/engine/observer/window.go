package observer

import "go.trai.ch/iroot/internal/core/domain"

// entry is an access recorded in a thread window, stamped with the global
// logical clock at the time it was observed.
type entry struct {
	acc domain.Access
	seq uint64
}

// window is a fixed capacity ring of the most recent entries of one thread.
type window struct {
	buf   []entry
	start int
	n     int
}

func newWindow(size int) *window {
	return &window{buf: make([]entry, max(size, 1))}
}

func (w *window) push(e entry) {
	if w.n < len(w.buf) {
		w.buf[(w.start+w.n)%len(w.buf)] = e
		w.n++
		return
	}
	w.buf[w.start] = e
	w.start = (w.start + 1) % len(w.buf)
}

// each visits entries from newest to oldest until fn returns false.
func (w *window) each(fn func(entry) bool) {
	for i := w.n - 1; i >= 0; i-- {
		if !fn(w.buf[(w.start+i)%len(w.buf)]) {
			return
		}
	}
}

func (w *window) len() int {
	return w.n
}
