// Package image classifies loaded binary images by name.
package image

import (
	"path"
	"strings"
	"sync"

	"go.trai.ch/iroot/internal/core/domain"
	"go.trai.ch/iroot/internal/core/ports"
)

var _ ports.ImageClassifier = (*Classifier)(nil)

const pthreadPrefix = "libpthread"

var commonLibPrefixes = []string{
	"libc.",
	"libc-",
	"libstdc++",
	"libm.",
	"libm-",
	"libgcc_s",
	"ld-linux",
	"libdl",
	"librt",
}

// Classifier resolves image names and caches the result per name.
type Classifier struct {
	cache sync.Map // string -> domain.Image
}

// NewClassifier creates an empty classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the classification of the named image.
func (c *Classifier) Classify(name string) domain.Image {
	if v, ok := c.cache.Load(name); ok {
		if img, ok := v.(domain.Image); ok {
			return img
		}
	}
	img := classify(name)
	c.cache.Store(name, img)
	return img
}

func classify(name string) domain.Image {
	img := domain.Image{Name: name}
	if name == "" || strings.HasPrefix(name, "[") {
		return img
	}
	img.Valid = true

	base := path.Base(name)
	if strings.HasPrefix(base, pthreadPrefix) {
		img.Pthread = true
		return img
	}
	for _, prefix := range commonLibPrefixes {
		if strings.HasPrefix(base, prefix) {
			img.CommonLib = true
			break
		}
	}
	return img
}
