package domain

import (
	"fmt"
	"strings"
)

// ThreadID identifies an application thread of the monitored program.
type ThreadID uint64

// AccessType classifies a memory or synchronization operation.
type AccessType uint8

const (
	// AccessRead is a memory load.
	AccessRead AccessType = iota + 1
	// AccessWrite is a memory store.
	AccessWrite
	// AccessLock is a mutex acquisition.
	AccessLock
	// AccessUnlock is a mutex release.
	AccessUnlock
)

var accessTypeNames = map[AccessType]string{
	AccessRead:   "read",
	AccessWrite:  "write",
	AccessLock:   "lock",
	AccessUnlock: "unlock",
}

func (t AccessType) String() string {
	if name, ok := accessTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("access(%d)", uint8(t))
}

// IsSync reports whether the access is a synchronization operation.
func (t AccessType) IsSync() bool {
	return t == AccessLock || t == AccessUnlock
}

// IsMem reports whether the access touches ordinary memory.
func (t AccessType) IsMem() bool {
	return t == AccessRead || t == AccessWrite
}

// ParseAccessType converts a textual access type into an AccessType.
func ParseAccessType(s string) (AccessType, error) {
	for t, name := range accessTypeNames {
		if strings.EqualFold(s, name) {
			return t, nil
		}
	}
	return 0, ErrUnknownAccessType
}

// MarshalText implements encoding.TextMarshaler.
func (t AccessType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *AccessType) UnmarshalText(text []byte) error {
	parsed, err := ParseAccessType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Access is a single dynamic memory or synchronization operation delivered by
// the instrumentation layer.
type Access struct {
	Thread ThreadID
	Inst   Inst
	Type   AccessType
	Addr   uint64
	Size   uint64
}

// Event returns the static part of the access.
func (a Access) Event() Event {
	return Event{Inst: a.Inst.ID, Type: a.Type}
}

// Overlaps reports whether the byte ranges of two accesses intersect.
func (a Access) Overlaps(b Access) bool {
	return RangesOverlap(a.Addr, a.Size, b.Addr, b.Size)
}

// RangesOverlap reports whether [a, a+as) and [b, b+bs) intersect.
// A zero size is treated as a single byte.
func RangesOverlap(a, as, b, bs uint64) bool {
	if as == 0 {
		as = 1
	}
	if bs == 0 {
		bs = 1
	}
	return a < b+bs && b < a+as
}

// Conflicts reports whether two operations form an ordering-sensitive pair when
// executed by different threads, with a happening first.
// Memory accesses conflict when at least one is a write. Synchronization
// operations only pair as unlock followed by lock.
func Conflicts(a, b AccessType) bool {
	if a.IsSync() || b.IsSync() {
		return a == AccessUnlock && b == AccessLock
	}
	return a == AccessWrite || b == AccessWrite
}
