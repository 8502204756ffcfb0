// Package bezmesh approximates Bézier surfaces by flat-shaded triangle meshes.
//
// # Control values
//
// Curves and patches are generic over their control values. Any type
// implementing [Vector] (addition and scaling by a real number) can be used.
// The package provides [Vec3] for points in space, [Scalar] for
// one-dimensional values, and [Color], which is interpolated alongside the
// control points of a patch. Only patches over [Vec3] can be turned into
// triangles.
//
// # de Casteljau
//
// Everything in this package is built on one primitive, [TriangularScheme],
// which runs the de Casteljau construction on a row of control points. The
// last value it computes is the point on the curve; the two edges of the
// triangle it builds are the control points of the two halves of the curve
// (see [SchemeLeft] and [SchemeRight]). This gives both evaluation and exact
// subdivision from a single computation.
//
// # Entities
//
//   - [Curve] is a Bézier curve of any degree. It can be evaluated and
//     subdivided.
//   - [Patch] is a rectangular tensor-product patch of degree n × m with four
//     corner colors. Subdividing it along [U] or [V] applies the curve
//     subdivision to every row or column of the control grid, producing two
//     patches of the same degree that share their common edge exactly.
//     [Patch.SubdivideCross] splits along both axes, producing four quadrants.
//   - [TriPatch] is a triangular patch. It can be evaluated, but not
//     subdivided.
//
// # From patches to meshes
//
// [FlattenPatch] replaces a patch by the two triangles spanned by its corners,
// with per-vertex colors and the normals from [CornerNormals]. That is a poor
// approximation of a curved patch, but a good one of a small patch, so
// patches are first made small by [Refine]. Refinement is uniform: every pass
// replaces every element by its children until the number of elements reaches
// a budget. There is no curvature-dependent refinement.
//
// [TessellatePatches] combines these steps and assembles the triangles into a
// [Mesh] of single-precision vertex buffers, ready to be uploaded to a GPU.
//
// Refinement is controlled with [Option] values, which can also be loaded from
// TOML via [ParseConfig].
//
// # Concurrency
//
// All entities are immutable values, and all operations return new values.
// They are safe for concurrent use. [WithWorkers] uses this to split the
// elements of a refinement pass in parallel.
//
// # Logging
//
// The package logs through [log/slog], but is silent by default. Use
// [SetLogger] to enable logging.
package bezmesh
