package backend

import (
	"github.com/qdgfx/qd"
)

// Built-in driver names.
const (
	// DriverSoftware is the pure-Go CPU rasterizer. Always available.
	DriverSoftware = "software"

	// DriverGPU is the wgpu-backed driver registered by backend/gpu.
	DriverGPU = "gpu"
)

// DriverFactory creates a driver sized for the given dimensions.
// Implementations should validate dimensions and return descriptive
// errors.
type DriverFactory func(width, height int) (qd.Driver, error)

func init() {
	Register(DriverSoftware, 10, func(width, height int) (qd.Driver, error) {
		return qd.NewSoftwareDriver(qd.NewPixmap(width, height)), nil
	}, nil)
}
