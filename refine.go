package bezmesh

import (
	"slices"

	"golang.org/x/sync/errgroup"
)

// Refinable describes elements that can be split at a parameter into smaller
// elements of the same type.
//
// [Patch] splits into its four quadrants and [Curve] into two halves.
type Refinable[S any] interface {
	// Refine splits the element at parameter t. It must not modify the
	// receiver.
	Refine(t float64) []S
}

// Refine uniformly refines elems. As long as there are fewer elements than
// the budget (see [WithBudget]), every element is replaced by its children,
// in order. Elements are never refined selectively, so after k passes a
// single patch has become exactly 4^k patches.
//
// The elems slice is not modified. Refinement stops early if a pass does not
// increase the number of elements, or when the pass limit set with
// [WithMaxPasses] is reached.
func Refine[S Refinable[S]](elems []S, opts ...Option) []S {
	o := buildOptions(opts)
	log := Logger()

	set := slices.Clone(elems)
	for pass := 1; len(set) > 0 && len(set) < o.budget; pass++ {
		if o.maxPasses >= 0 && pass > o.maxPasses {
			break
		}
		next := refinePass(set, o)
		log.Debug("refinement pass", "pass", pass, "elements", len(next))
		if len(next) <= len(set) {
			log.Warn("refinement pass did not increase the number of elements; stopping",
				"pass", pass, "before", len(set), "after", len(next))
			set = next
			break
		}
		set = next
	}
	if len(set) > o.budget {
		log.Debug("refinement exceeded budget", "budget", o.budget, "elements", len(set))
	}
	return set
}

// refinePass replaces every element of set by its children.
func refinePass[S Refinable[S]](set []S, o refineOptions) []S {
	if o.workers <= 1 || len(set) < 2 {
		var out []S
		for _, e := range set {
			out = append(out, e.Refine(o.split)...)
		}
		return out
	}

	// Each element's children go into their own slot, so workers never
	// share memory and the output order matches the serial order.
	workers := min(o.workers, len(set))
	children := make([][]S, len(set))
	chunk := max(len(set)/(4*workers), 1)
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(set); lo += chunk {
		hi := min(lo+chunk, len(set))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				children[i] = set[i].Refine(o.split)
			}
			return nil
		})
	}
	// Refine cannot fail.
	_ = g.Wait()

	n := 0
	for _, c := range children {
		n += len(c)
	}
	out := make([]S, 0, n)
	for _, c := range children {
		out = append(out, c...)
	}
	return out
}

// Tessellate refines elems with [Refine] and converts every resulting element
// to triangles with flatten. The triangles are returned in element order.
func Tessellate[S Refinable[S]](elems []S, flatten func(S) []Triangle, opts ...Option) []Triangle {
	leaves := Refine(elems, opts...)
	var tris []Triangle
	for _, leaf := range leaves {
		tris = append(tris, flatten(leaf)...)
	}
	return tris
}

// TessellatePatches refines patches and flattens every resulting patch into
// two triangles with [FlattenPatch], returning the assembled mesh.
func TessellatePatches(patches []Patch[Vec3], opts ...Option) *Mesh {
	return NewMesh(Tessellate(patches, flattenPatch, opts...))
}
