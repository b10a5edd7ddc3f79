package domain

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// InstID is the static identity of a code location. It is a stable hash of the
// image name and the offset inside that image, so the same instruction maps to
// the same id in every run regardless of where the image was loaded.
type InstID uint64

// String renders the id as a fixed-width hex string.
func (id InstID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

// MarshalText implements encoding.TextMarshaler. Ids are written as hex strings
// so they survive JSON number handling.
func (id InstID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *InstID) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 16, 64)
	if err != nil {
		return err
	}
	*id = InstID(v)
	return nil
}

// Inst is a static instruction together with the image it was found in.
type Inst struct {
	ID     InstID `json:"id"`
	Image  string `json:"image"`
	Offset uint64 `json:"offset,string"`
}

// NewInst builds an Inst and derives its id from image and offset.
func NewInst(image string, offset uint64) Inst {
	return Inst{
		ID:     HashInst(image, offset),
		Image:  image,
		Offset: offset,
	}
}

// HashInst computes the InstID for an image name and offset.
func HashInst(image string, offset uint64) InstID {
	d := xxhash.New()
	_, _ = d.WriteString(image)
	_, _ = d.Write([]byte{0})
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], offset)
	_, _ = d.Write(buf[:])
	return InstID(d.Sum64())
}

func (i Inst) String() string {
	return fmt.Sprintf("%s+0x%x", i.Image, i.Offset)
}
