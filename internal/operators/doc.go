// Package operators maps graph nodes to backend operations.
//
// Each operator reads its attributes once when it is constructed from a Node,
// validates input dtypes before any computation runs, and then delegates to
// the backend carried by the execution Context. Setup failures are returned
// as errors wrapping the package's sentinel values; the kernels themselves
// have no run-time failure modes.
package operators
