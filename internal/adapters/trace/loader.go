// Package trace loads recorded executions and replays them through the
// instrumentation callbacks.
package trace

import (
	"os"
	"strconv"
	"strings"

	"go.trai.ch/iroot/internal/core/domain"
	"go.trai.ch/iroot/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.TraceLoader = (*Loader)(nil)

// File is the on-disk trace format.
//
//	images:
//	  app: /usr/bin/app
//	threads:
//	  - id: 1
//	    events:
//	      - app+0x40 write 0x1000 4
//	      - app+0x44
type File struct {
	// Images maps short aliases used in events to full image names.
	Images  map[string]string `yaml:"images"`
	Threads []ThreadDTO       `yaml:"threads"`
}

// ThreadDTO is one thread of the trace file.
type ThreadDTO struct {
	ID     uint64   `yaml:"id"`
	Events []string `yaml:"events"`
}

// Loader implements ports.TraceLoader for YAML trace files.
type Loader struct{}

// NewLoader creates a trace loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the trace at path.
func (l *Loader) Load(path string) (*domain.Trace, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTraceReadFailed.Error()), "path", path)
	}
	tr, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return tr, nil
}

// Parse decodes a trace document.
func Parse(data []byte) (*domain.Trace, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrTraceParseFailed.Error())
	}

	tr := &domain.Trace{Threads: make([]domain.ThreadTrace, 0, len(file.Threads))}
	seen := make(map[uint64]bool, len(file.Threads))
	for _, th := range file.Threads {
		if seen[th.ID] {
			return nil, zerr.With(domain.ErrTraceParseFailed, "duplicate_thread", th.ID)
		}
		seen[th.ID] = true

		tt := domain.ThreadTrace{
			ID:     domain.ThreadID(th.ID),
			Events: make([]domain.TraceEvent, 0, len(th.Events)),
		}
		for i, line := range th.Events {
			ev, err := parseEvent(line, file.Images)
			if err != nil {
				return nil, zerr.With(zerr.With(err, "thread", th.ID), "event", i)
			}
			tt.Events = append(tt.Events, ev)
		}
		tr.Threads = append(tr.Threads, tt)
	}
	return tr, nil
}

// parseEvent parses "image+offset [type addr [size]]". Size defaults to 1.
func parseEvent(line string, images map[string]string) (domain.TraceEvent, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || len(fields) == 2 || len(fields) > 4 {
		return domain.TraceEvent{}, zerr.With(domain.ErrTraceParseFailed, "line", line)
	}

	image, off, ok := strings.Cut(fields[0], "+")
	if !ok || image == "" {
		return domain.TraceEvent{}, zerr.With(domain.ErrTraceParseFailed, "line", line)
	}
	if full, ok := images[image]; ok {
		image = full
	}
	offset, err := strconv.ParseUint(off, 0, 64)
	if err != nil {
		return domain.TraceEvent{}, zerr.With(zerr.Wrap(err, domain.ErrTraceParseFailed.Error()), "line", line)
	}

	ev := domain.TraceEvent{Image: image, Offset: offset}
	if len(fields) == 1 {
		return ev, nil
	}

	if ev.Type, err = domain.ParseAccessType(fields[1]); err != nil {
		return domain.TraceEvent{}, zerr.With(err, "line", line)
	}
	if ev.Addr, err = strconv.ParseUint(fields[2], 0, 64); err != nil {
		return domain.TraceEvent{}, zerr.With(zerr.Wrap(err, domain.ErrTraceParseFailed.Error()), "line", line)
	}
	ev.Size = 1
	if len(fields) == 4 {
		if ev.Size, err = strconv.ParseUint(fields[3], 0, 64); err != nil || ev.Size == 0 {
			return domain.TraceEvent{}, zerr.With(domain.ErrTraceParseFailed, "line", line)
		}
	}
	return ev, nil
}
