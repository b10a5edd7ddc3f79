package domain

import "go.trai.ch/zerr"

var (
	// ErrConflictingObservers is returned when both observer strategies are enabled at once.
	ErrConflictingObservers = zerr.New("please choose an observer: enable_observer and enable_observer_new are exclusive")

	// ErrSetupOrder is returned when a lifecycle stage is invoked before the stage it depends on.
	ErrSetupOrder = zerr.New("controller lifecycle stage called out of order")

	// ErrInvalidOptions is returned when the loaded options fail validation.
	ErrInvalidOptions = zerr.New("invalid options")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrStoreReadFailed is returned when a store file exists but cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read store file")

	// ErrStoreDecodeFailed is returned when a store file cannot be decoded.
	ErrStoreDecodeFailed = zerr.New("failed to decode store file")

	// ErrStoreEncodeFailed is returned when a store cannot be encoded.
	ErrStoreEncodeFailed = zerr.New("failed to encode store")

	// ErrStoreWriteFailed is returned when a store file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write store file")

	// ErrStoreVersionMismatch is returned when a store file has an unsupported format version.
	ErrStoreVersionMismatch = zerr.New("unsupported store format version")

	// ErrInvalidCandidate is returned when a candidate key does not match its idiom arity.
	ErrInvalidCandidate = zerr.New("invalid candidate")

	// ErrTraceReadFailed is returned when a trace file cannot be read.
	ErrTraceReadFailed = zerr.New("failed to read trace file")

	// ErrTraceParseFailed is returned when a trace file cannot be parsed.
	ErrTraceParseFailed = zerr.New("failed to parse trace file")

	// ErrUnknownAccessType is returned when a trace event names an unknown access type.
	ErrUnknownAccessType = zerr.New("unknown access type")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics file")

	// ErrReplayFailed is returned when replaying a trace fails.
	ErrReplayFailed = zerr.New("trace replay failed")
)
