package domain

// Image describes a loaded binary image (the main executable or a shared library).
type Image struct {
	Name      string
	Valid     bool
	Pthread   bool
	CommonLib bool
}
