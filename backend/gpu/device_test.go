package gpu

import (
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestGPUInfoString(t *testing.T) {
	info := &GPUInfo{
		Name:       "Test GPU 3080",
		Vendor:     "testvendor",
		DeviceType: gputypes.DeviceTypeDiscreteGPU,
		Backend:    gputypes.BackendVulkan,
		Driver:     "1.0",
	}

	s := info.String()
	if !strings.Contains(s, "Test GPU 3080") {
		t.Errorf("String() = %q, want it to contain the GPU name", s)
	}
}
