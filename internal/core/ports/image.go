package ports

import "go.trai.ch/iroot/internal/core/domain"

// ImageClassifier resolves an image name to its classification.
type ImageClassifier interface {
	Classify(name string) domain.Image
}
