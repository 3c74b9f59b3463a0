// Package backend manages pluggable rendering drivers.
//
// Drivers register themselves with a name and a priority; New picks
// the highest-priority driver that is available on the current system,
// and NewByName selects one explicitly. The built-in software driver
// is always registered. GPU-backed drivers register from their own
// packages via blank imports:
//
//	import _ "github.com/qdgfx/qd/backend/gpu"
package backend
