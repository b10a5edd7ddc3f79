package domain

import "time"

// Options is the full configuration consumed at setup.
type Options struct {
	// IgnoreInstCountPthread excludes the threading library from instruction counting.
	IgnoreInstCountPthread bool `yaml:"ignore_ic_pthread"`
	// IgnoreLib excludes common shared libraries from memory access tracking.
	IgnoreLib bool `yaml:"ignore_lib"`
	// MemoFailed prunes repeatedly failed candidates during refinement.
	MemoFailed bool `yaml:"memo_failed"`

	IRootIn  string `yaml:"iroot_in" validate:"required"`
	IRootOut string `yaml:"iroot_out" validate:"required"`
	MemoIn   string `yaml:"memo_in" validate:"required"`
	MemoOut  string `yaml:"memo_out" validate:"required"`
	SinstIn  string `yaml:"sinst_in" validate:"required"`
	SinstOut string `yaml:"sinst_out" validate:"required"`

	EnableSharedInst  bool `yaml:"enable_sinst"`
	EnableObserver    bool `yaml:"enable_observer"`
	EnableObserverNew bool `yaml:"enable_observer_new"`

	// WindowSize bounds the number of recent shared accesses kept per thread.
	WindowSize int `yaml:"window_size" validate:"gte=1,lte=4096"`
	// WindowAge bounds, in global access events, how old a remote access may be
	// to still pair with a new one. Only the heuristic observer uses it.
	WindowAge uint64 `yaml:"window_age" validate:"gte=1"`
	// ComplexIdioms enables discovery of three-access idioms.
	ComplexIdioms bool `yaml:"complex_idioms"`

	// MaxDelay bounds how long a single perturbation may hold a thread.
	MaxDelay time.Duration `yaml:"max_delay" validate:"gt=0"`
	// FailureThreshold is the number of failed attempts after which a candidate
	// is given up on.
	FailureThreshold uint32 `yaml:"failure_threshold" validate:"gte=1"`
	// PerturbRate limits heuristic perturbations per second. Zero disables the limit.
	PerturbRate float64 `yaml:"perturb_rate" validate:"gte=0"`
	// PerturbBurst is the token bucket size for PerturbRate.
	PerturbBurst int `yaml:"perturb_burst" validate:"gte=1"`

	// MetricsOut, when set, receives a prometheus textfile at program exit.
	MetricsOut string `yaml:"metrics_out"`
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		IgnoreInstCountPthread: true,
		IgnoreLib:              false,
		MemoFailed:             true,
		IRootIn:                DefaultIRootDB,
		IRootOut:               DefaultIRootDB,
		MemoIn:                 DefaultMemoDB,
		MemoOut:                DefaultMemoDB,
		SinstIn:                DefaultSharedInstDB,
		SinstOut:               DefaultSharedInstDB,
		EnableSharedInst:       true,
		WindowSize:             16,
		WindowAge:              256,
		ComplexIdioms:          true,
		MaxDelay:               50 * time.Millisecond,
		FailureThreshold:       3,
		PerturbRate:            0,
		PerturbBurst:           1,
	}
}
