package bezmesh

// DefaultBudget is the number of elements at which [Refine] stops refining by
// default.
const DefaultBudget = 5000

// DefaultSplit is the parameter at which elements are split by default.
const DefaultSplit = 0.5

// Option configures [Refine], [Tessellate] and [TessellatePatches].
//
// Example:
//
//	// Quarter a patch exactly three times, using all CPUs.
//	leaves := bezmesh.Refine([]bezmesh.Patch[bezmesh.Vec3]{p},
//		bezmesh.WithBudget(math.MaxInt),
//		bezmesh.WithMaxPasses(3),
//		bezmesh.WithWorkers(runtime.GOMAXPROCS(0)))
type Option func(*refineOptions)

type refineOptions struct {
	budget    int
	split     float64
	maxPasses int
	workers   int
}

func defaultOptions() refineOptions {
	return refineOptions{
		budget:    DefaultBudget,
		split:     DefaultSplit,
		maxPasses: -1,
		workers:   1,
	}
}

func buildOptions(opts []Option) refineOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBudget sets the number of elements at which refinement stops. A pass is
// only started while there are fewer elements than the budget, and every pass
// splits all elements, so the result may exceed the budget by the branching
// factor of the elements.
func WithBudget(n int) Option {
	return func(o *refineOptions) {
		o.budget = n
	}
}

// WithSplit sets the parameter at which elements are split. It defaults to
// 0.5, which splits elements into equal halves in parameter space.
func WithSplit(t float64) Option {
	return func(o *refineOptions) {
		o.split = t
	}
}

// WithMaxPasses limits the number of refinement passes. A negative value, the
// default, means no limit.
func WithMaxPasses(k int) Option {
	return func(o *refineOptions) {
		o.maxPasses = k
	}
}

// WithWorkers sets how many elements are split concurrently during a pass.
// Values less than 1 are treated as 1. The result does not depend on the
// number of workers.
func WithWorkers(n int) Option {
	return func(o *refineOptions) {
		o.workers = max(n, 1)
	}
}
