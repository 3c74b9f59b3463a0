// Package gpu provides a wgpu-backed rendering driver.
//
// Importing the package registers the driver under the name "gpu" at
// priority 100, so backend.New prefers it wherever a usable adapter
// exists:
//
//	import _ "github.com/qdgfx/qd/backend/gpu"
//
// Rasterization currently runs on the CPU and is composited through
// the GPU device; native GPU tessellation will replace the CPU path
// once wgpu texture readback lands.
package gpu
