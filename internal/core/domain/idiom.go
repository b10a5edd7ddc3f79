package domain

import (
	"fmt"
	"strings"
)

// IdiomKind classifies the access pattern an iRoot realizes.
type IdiomKind uint8

const (
	// Idiom1 is a two-access pattern: an access in one thread followed by a
	// conflicting access in another thread. It covers data races and order
	// violations.
	Idiom1 IdiomKind = iota + 1
	// Idiom2 is a three-access pattern: two accesses of one thread to the same
	// location with a conflicting remote access in between. It covers
	// single-variable atomicity violations.
	Idiom2
)

// Arity returns the number of events that make up an iRoot of this kind.
func (k IdiomKind) Arity() int {
	switch k {
	case Idiom1:
		return 2
	case Idiom2:
		return 3
	default:
		return 0
	}
}

// Valid reports whether k is a known idiom.
func (k IdiomKind) Valid() bool {
	return k.Arity() > 0
}

func (k IdiomKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("idiom(%d)", uint8(k))
	}
	return fmt.Sprintf("idiom%d", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k IdiomKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, ErrInvalidCandidate
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *IdiomKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "idiom1":
		*k = Idiom1
	case "idiom2":
		*k = Idiom2
	default:
		return ErrInvalidCandidate
	}
	return nil
}

// Unserializable reports whether the local-remote-local access types form one of
// the interleavings that no serial execution of the two threads can produce.
func Unserializable(local, remote, next AccessType) bool {
	if !local.IsMem() || !remote.IsMem() || !next.IsMem() {
		return false
	}
	switch {
	case local == AccessRead && remote == AccessWrite && next == AccessRead:
		return true
	case local == AccessWrite && remote == AccessWrite && next == AccessRead:
		return true
	case local == AccessRead && remote == AccessWrite && next == AccessWrite:
		return true
	case local == AccessWrite && remote == AccessRead && next == AccessWrite:
		return true
	default:
		return false
	}
}
