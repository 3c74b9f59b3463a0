// Copyright 2026 The qdgfx Authors
// SPDX-License-Identifier: MIT

package qdcanvas

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/qdgfx/qd"
)

// mockDevice implements gpucontext.Device for testing.
type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

// mockQueue implements gpucontext.Queue for testing.
type mockQueue struct{}

// mockAdapter implements gpucontext.Adapter for testing.
type mockAdapter struct{}

// mockProvider implements gpucontext.DeviceProvider for testing.
type mockProvider struct {
	device  gpucontext.Device
	queue   gpucontext.Queue
	adapter gpucontext.Adapter
	format  gputypes.TextureFormat
}

func newMockProvider() *mockProvider {
	return &mockProvider{
		device:  &mockDevice{},
		queue:   &mockQueue{},
		adapter: &mockAdapter{},
		format:  gputypes.TextureFormatBGRA8Unorm,
	}
}

func (m *mockProvider) Device() gpucontext.Device             { return m.device }
func (m *mockProvider) Queue() gpucontext.Queue               { return m.queue }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return m.adapter }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return m.format }
func (m *mockProvider) AdapterInfo() gpucontext.AdapterInfo   { return gpucontext.AdapterInfo{} }

var _ gpucontext.DeviceProvider = (*mockProvider)(nil)

// TestNew tests canvas creation.
func TestNew(t *testing.T) {
	provider := newMockProvider()

	tests := []struct {
		name      string
		provider  gpucontext.DeviceProvider
		width     int
		height    int
		wantErr   error
		checkFunc func(*testing.T, *Canvas)
	}{
		{
			name:     "valid creation",
			provider: provider,
			width:    800,
			height:   600,
			wantErr:  nil,
			checkFunc: func(t *testing.T, c *Canvas) {
				if c.Width() != 800 {
					t.Errorf("Width() = %d, want 800", c.Width())
				}
				if c.Height() != 600 {
					t.Errorf("Height() = %d, want 600", c.Height())
				}
				if c.Qd() == nil {
					t.Error("Qd() = nil, want non-nil")
				}
				if !c.IsDirty() {
					t.Error("IsDirty() = false, want true (newly created)")
				}
			},
		},
		{
			name:     "nil provider",
			provider: nil,
			width:    800,
			height:   600,
			wantErr:  ErrNilProvider,
		},
		{
			name:     "zero width",
			provider: provider,
			width:    0,
			height:   600,
			wantErr:  ErrInvalidDimensions,
		},
		{
			name:     "negative height",
			provider: provider,
			width:    800,
			height:   -1,
			wantErr:  ErrInvalidDimensions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.provider, tt.width, tt.height)

			if tt.wantErr != nil {
				if err == nil {
					t.Errorf("New() error = nil, want %v", tt.wantErr)
					return
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("New() unexpected error = %v", err)
				return
			}

			defer c.Close()

			if tt.checkFunc != nil {
				tt.checkFunc(t, c)
			}
		})
	}
}

// TestMustNew tests panic behavior.
func TestMustNew(t *testing.T) {
	provider := newMockProvider()

	t.Run("success", func(t *testing.T) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("MustNew() panicked unexpectedly: %v", r)
			}
		}()

		c := MustNew(provider, 100, 100)
		defer c.Close()

		if c == nil {
			t.Error("MustNew() returned nil")
		}
	})

	t.Run("panic on nil provider", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("MustNew() did not panic with nil provider")
			}
		}()

		_ = MustNew(nil, 100, 100)
	})
}

// TestDraw tests the draw helper and dirty tracking.
func TestDraw(t *testing.T) {
	provider := newMockProvider()
	c, err := New(provider, 100, 100)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	c.dirty = false
	err = c.Draw(func(qc *qd.Canvas) {
		qc.Clear(qd.Black)
		qc.DrawCircle(50, 50, 25, qd.Red, 90)
	})
	if err != nil {
		t.Errorf("Draw() error = %v", err)
	}
	if !c.IsDirty() {
		t.Error("Draw() should mark canvas dirty")
	}

	pm := c.Qd().Pixmap()
	if pm == nil {
		t.Fatal("wrapped canvas has no pixmap")
	}
	if got := pm.GetPixel(50, 50); got != qd.Red {
		t.Errorf("drawn pixel = %#06x, want red", uint32(got))
	}
}

// TestCanvasResize tests resize functionality.
func TestCanvasResize(t *testing.T) {
	provider := newMockProvider()
	c, err := New(provider, 100, 100)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	w, h := c.Size()
	if w != 100 || h != 100 {
		t.Errorf("Size() = %dx%d, want 100x100", w, h)
	}

	if err := c.Resize(200, 150); err != nil {
		t.Errorf("Resize() error = %v", err)
	}

	w, h = c.Size()
	if w != 200 || h != 150 {
		t.Errorf("Size() after resize = %dx%d, want 200x150", w, h)
	}

	if !c.IsDirty() {
		t.Error("IsDirty() after resize = false, want true")
	}

	// Resize to same size should be no-op
	c.dirty = false
	if err := c.Resize(200, 150); err != nil {
		t.Errorf("Resize() same size error = %v", err)
	}
	if c.IsDirty() {
		t.Error("IsDirty() after same-size resize = true, want false")
	}

	// Invalid resize
	if err := c.Resize(0, 100); err == nil {
		t.Error("Resize(0, 100) error = nil, want error")
	}
}

// TestCanvasDirtyTracking tests the dirty flag behavior.
func TestCanvasDirtyTracking(t *testing.T) {
	provider := newMockProvider()
	c, err := New(provider, 100, 100)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	if !c.IsDirty() {
		t.Error("new canvas should be dirty")
	}

	c.dirty = false
	c.MarkDirty()
	if !c.IsDirty() {
		t.Error("MarkDirty() should set dirty flag")
	}
}

// TestCanvasFlush tests the flush operation.
func TestCanvasFlush(t *testing.T) {
	provider := newMockProvider()
	c, err := New(provider, 50, 50)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	// First flush should create pending texture
	tex, err := c.Flush()
	if err != nil {
		t.Errorf("Flush() error = %v", err)
	}
	if tex == nil {
		t.Error("Flush() returned nil texture")
	}

	// Should be pending
	if _, ok := tex.(*pendingTexture); !ok {
		t.Error("First flush should return pending texture")
	}

	// Dirty should be cleared
	if c.IsDirty() {
		t.Error("IsDirty() after flush = true, want false")
	}

	// Second flush without dirty should return same texture
	tex2, err := c.Flush()
	if err != nil {
		t.Errorf("Second Flush() error = %v", err)
	}
	if tex2 != tex {
		t.Error("Second flush should return same texture when not dirty")
	}
}

// TestCanvasClose tests cleanup behavior.
func TestCanvasClose(t *testing.T) {
	provider := newMockProvider()
	c, err := New(provider, 100, 100)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	if c.Qd() != nil {
		t.Error("Qd() after close should return nil")
	}

	if c.Provider() != nil {
		t.Error("Provider() after close should return nil")
	}

	// Double close should be safe
	if err := c.Close(); err != nil {
		t.Errorf("Second Close() error = %v", err)
	}

	// Operations on closed canvas should fail
	if err := c.Resize(200, 200); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Resize() on closed canvas error = %v, want %v", err, ErrCanvasClosed)
	}

	if _, err := c.Flush(); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Flush() on closed canvas error = %v, want %v", err, ErrCanvasClosed)
	}
}

// TestRenderOptions tests default options.
func TestRenderOptions(t *testing.T) {
	opts := DefaultRenderOptions()

	if opts.X != 0 || opts.Y != 0 {
		t.Errorf("Default position = (%f, %f), want (0, 0)", opts.X, opts.Y)
	}
	if opts.ScaleX != 1 || opts.ScaleY != 1 {
		t.Errorf("Default scale = (%f, %f), want (1, 1)", opts.ScaleX, opts.ScaleY)
	}
	if opts.Alpha != 1 {
		t.Errorf("Default alpha = %f, want 1", opts.Alpha)
	}
}
