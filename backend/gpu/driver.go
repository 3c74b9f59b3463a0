package gpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/qdgfx/qd"
	"github.com/qdgfx/qd/backend"
)

// Common driver errors.
var (
	// ErrNoGPU is returned when no usable GPU adapter can be found.
	ErrNoGPU = errors.New("gpu: no adapter available")

	// ErrClosed is returned when operations are attempted on a closed
	// driver.
	ErrClosed = errors.New("gpu: driver is closed")
)

// Driver renders through a wgpu device. Geometry is rasterized on the
// CPU into a pixmap that Flush hands to the GPU queue; the device and
// adapter are held for the lifetime of the driver.
type Driver struct {
	mu sync.RWMutex

	// GPU resources
	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID

	// GPU information
	gpuInfo *GPUInfo

	// CPU raster target
	software *qd.SoftwareDriver

	closed bool
}

// NewDriver creates a GPU driver sized for the given dimensions.
// It acquires an adapter, device and queue; the returned driver must
// be released with Close.
func NewDriver(width, height int) (*Driver, error) {
	d := &Driver{
		software: qd.NewSoftwareDriver(qd.NewPixmap(width, height)),
	}

	desc := &gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
		Flags:    0,
	}
	d.instance = core.NewInstance(desc)

	adapterID, err := d.instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoGPU, err)
	}
	d.adapter = adapterID

	logGPUInfo(adapterID)
	d.gpuInfo, _ = getGPUInfo(adapterID)

	deviceID, err := createDevice(adapterID, "qd-gpu-device")
	if err != nil {
		_ = releaseAdapter(adapterID)
		return nil, fmt.Errorf("device creation failed: %w", err)
	}
	d.device = deviceID

	queueID, err := getDeviceQueue(deviceID)
	if err != nil {
		_ = releaseDevice(deviceID)
		_ = releaseAdapter(adapterID)
		return nil, fmt.Errorf("queue retrieval failed: %w", err)
	}
	d.queue = queueID

	if err := checkDeviceLimits(deviceID); err != nil {
		qd.Logger().Warn("gpu: limits query failed", "error", err)
	}

	return d, nil
}

// GPUInfo returns information about the selected GPU.
// Returns nil if the driver has been closed.
func (d *Driver) GPUInfo() *GPUInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.gpuInfo
}

// Device returns the GPU device ID.
func (d *Driver) Device() core.DeviceID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.device
}

// Queue returns the GPU queue ID.
func (d *Driver) Queue() core.QueueID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.queue
}

// Pixmap returns the CPU-side raster target.
func (d *Driver) Pixmap() *qd.Pixmap {
	return d.software.Pixmap()
}

// Clear implements qd.Driver.
func (d *Driver) Clear(c qd.Color) {
	d.software.Clear(c)
}

// FillPolygon implements qd.Driver.
func (d *Driver) FillPolygon(fan []qd.Point, c qd.Color) {
	d.software.FillPolygon(fan, c)
}

// FillRect implements qd.Driver.
func (d *Driver) FillRect(x, y, w, h float64, c qd.Color) {
	d.software.FillRect(x, y, w, h, c)
}

// DrawPoints implements qd.Driver.
func (d *Driver) DrawPoints(pts []qd.Point, size float64, c qd.Color, smooth bool) {
	d.software.DrawPoints(pts, size, c, smooth)
}

// DrawLines implements qd.Driver.
func (d *Driver) DrawLines(segs []qd.Point, width float64, c qd.Color, smooth bool) {
	d.software.DrawLines(segs, width, c, smooth)
}

// Flush implements qd.Driver. The CPU raster target is complete at
// this point; texture upload to the queue becomes active once wgpu
// readback support lands.
func (d *Driver) Flush() error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrClosed
	}
	return d.software.Flush()
}

// Close releases the device and adapter. Close is idempotent.
func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	// Release resources in reverse order of creation.
	// The queue is released when the device is dropped.
	var errs []error
	if err := releaseDevice(d.device); err != nil {
		qd.Logger().Warn("gpu: error releasing device", "error", err)
		errs = append(errs, err)
	}
	d.device = core.DeviceID{}

	if err := releaseAdapter(d.adapter); err != nil {
		qd.Logger().Warn("gpu: error releasing adapter", "error", err)
		errs = append(errs, err)
	}
	d.adapter = core.AdapterID{}

	d.instance = nil
	d.queue = core.QueueID{}
	d.gpuInfo = nil

	if err := d.software.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

var (
	_ qd.Driver         = (*Driver)(nil)
	_ qd.PixmapProvider = (*Driver)(nil)
)

// available probes for a usable adapter once and caches the result.
var available = sync.OnceValue(func() bool {
	instance := core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
	})
	adapterID, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		qd.Logger().Debug("gpu: no adapter", "error", err)
		return false
	}
	_ = releaseAdapter(adapterID)
	return true
})

func init() {
	backend.Register(backend.DriverGPU, 100, func(width, height int) (qd.Driver, error) {
		return NewDriver(width, height)
	}, func() bool { return available() })
}
