package app

import (
	"reflect"

	"github.com/spf13/pflag"
	"go.trai.ch/iroot/internal/core/domain"
)

// registerOptionFlags binds one flag per option to dst, named after the yaml
// key and defaulting to the built-in default.
func registerOptionFlags(fs *pflag.FlagSet, dst *domain.Options) {
	d := domain.DefaultOptions()

	fs.BoolVar(&dst.IgnoreInstCountPthread, "ignore_ic_pthread", d.IgnoreInstCountPthread,
		"Exclude the threading library from instruction counting")
	fs.BoolVar(&dst.IgnoreLib, "ignore_lib", d.IgnoreLib,
		"Exclude common shared libraries from memory access tracking")
	fs.BoolVar(&dst.MemoFailed, "memo_failed", d.MemoFailed,
		"Prune candidates that failed repeatedly at program exit")

	fs.StringVar(&dst.IRootIn, "iroot_in", d.IRootIn, "Input candidate store file")
	fs.StringVar(&dst.IRootOut, "iroot_out", d.IRootOut, "Output candidate store file")
	fs.StringVar(&dst.MemoIn, "memo_in", d.MemoIn, "Input memoization ledger file")
	fs.StringVar(&dst.MemoOut, "memo_out", d.MemoOut, "Output memoization ledger file")
	fs.StringVar(&dst.SinstIn, "sinst_in", d.SinstIn, "Input shared instruction file")
	fs.StringVar(&dst.SinstOut, "sinst_out", d.SinstOut, "Output shared instruction file")

	fs.BoolVar(&dst.EnableSharedInst, "enable_sinst", d.EnableSharedInst,
		"Learn shared instructions during the run")
	fs.BoolVar(&dst.EnableObserver, "enable_observer", d.EnableObserver,
		"Enable the baseline observer")
	fs.BoolVar(&dst.EnableObserverNew, "enable_observer_new", d.EnableObserverNew,
		"Enable the heuristic observer")

	fs.IntVar(&dst.WindowSize, "window_size", d.WindowSize,
		"Recent shared accesses kept per thread")
	fs.Uint64Var(&dst.WindowAge, "window_age", d.WindowAge,
		"Maximum age in global accesses of a remote access (heuristic observer)")
	fs.BoolVar(&dst.ComplexIdioms, "complex_idioms", d.ComplexIdioms,
		"Discover three-access idioms")

	fs.DurationVar(&dst.MaxDelay, "max_delay", d.MaxDelay,
		"Upper bound of a single perturbation delay")
	fs.Uint32Var(&dst.FailureThreshold, "failure_threshold", d.FailureThreshold,
		"Failed attempts after which a candidate is given up")
	fs.Float64Var(&dst.PerturbRate, "perturb_rate", d.PerturbRate,
		"Heuristic perturbations per second, 0 for no limit")
	fs.IntVar(&dst.PerturbBurst, "perturb_burst", d.PerturbBurst,
		"Burst size for perturb_rate")

	fs.StringVar(&dst.MetricsOut, "metrics_out", d.MetricsOut,
		"Write a prometheus textfile here at program exit")
}

var optionFields = func() map[string]int {
	t := reflect.TypeFor[domain.Options]()
	fields := make(map[string]int, t.NumField())
	for i := range t.NumField() {
		if key := t.Field(i).Tag.Get("yaml"); key != "" {
			fields[key] = i
		}
	}
	return fields
}()

// overlayChanged copies into dst every option whose flag was set explicitly.
func overlayChanged(fs *pflag.FlagSet, dst *domain.Options, flags *domain.Options) {
	to := reflect.ValueOf(dst).Elem()
	from := reflect.ValueOf(flags).Elem()
	fs.Visit(func(f *pflag.Flag) {
		if i, ok := optionFields[f.Name]; ok {
			to.Field(i).Set(from.Field(i))
		}
	})
}
