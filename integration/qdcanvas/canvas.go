// Copyright 2026 The qdgfx Authors
// SPDX-License-Identifier: MIT

package qdcanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/qdgfx/qd"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("qdcanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("qdcanvas: invalid dimensions")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("qdcanvas: nil DeviceProvider")

	// ErrNoPixmap is returned when the wrapped canvas has no CPU-side pixmap.
	ErrNoPixmap = errors.New("qdcanvas: canvas driver has no pixmap")
)

// textureDestroyer is the interface for destroying textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Canvas wraps qd.Canvas with gogpu integration.
// It manages the CPU-to-GPU pipeline automatically.
//
// Canvas is NOT safe for concurrent use. Create one Canvas per goroutine,
// or use external synchronization.
type Canvas struct {
	canvas      *qd.Canvas
	provider    gpucontext.DeviceProvider
	texture     any  // Lazy-created texture (*gogpu.Texture)
	oldTexture  any  // Previous texture awaiting deferred destruction
	dirty       bool // Needs GPU upload
	sizeChanged bool // Resize pending — texture must be recreated
	width       int
	height      int
	closed      bool
}

// New creates a Canvas for integrated mode.
// The provider should come from gogpu.App.GPUContextProvider().
//
// The wrapped qd.Canvas renders through the software driver so its
// pixmap can be uploaded as a texture. Use Qd() or Draw() to access it.
//
// Returns error if dimensions are invalid or provider is nil.
func New(provider gpucontext.DeviceProvider, width, height int) (*Canvas, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	qc, err := qd.NewCanvas(width, height)
	if err != nil {
		return nil, fmt.Errorf("qdcanvas: %w", err)
	}

	return &Canvas{
		canvas:   qc,
		provider: provider,
		width:    width,
		height:   height,
		dirty:    true, // Mark dirty so first Flush creates texture
	}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(provider gpucontext.DeviceProvider, width, height int) *Canvas {
	c, err := New(provider, width, height)
	if err != nil {
		panic(err)
	}
	return c
}

// Qd returns the wrapped drawing canvas.
// All qd drawing methods are available through it.
//
// After drawing, call MarkDirty() to flag the canvas for GPU upload,
// or use Draw() which handles this automatically.
//
// Returns nil if the canvas is closed.
func (c *Canvas) Qd() *qd.Canvas {
	if c.closed {
		return nil
	}
	return c.canvas
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns width and height as a convenience.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// MarkDirty flags the canvas for GPU upload on next Flush().
// Call this after drawing operations if you want explicit control
// over when uploads happen.
func (c *Canvas) MarkDirty() {
	c.dirty = true
}

// Draw calls fn with the drawing canvas and marks the canvas as dirty.
// This is the recommended way to update canvas content, as it ensures
// the dirty flag is set correctly for GPU upload on next Flush/RenderTo.
func (c *Canvas) Draw(fn func(*qd.Canvas)) error {
	if c.closed {
		return ErrCanvasClosed
	}
	fn(c.canvas)
	c.dirty = true
	return nil
}

// IsDirty returns true if the canvas has pending changes
// that need to be uploaded to the GPU.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Resize changes canvas dimensions.
// This recreates the drawing canvas and clears its content.
//
// Returns error if dimensions are invalid or canvas is closed.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	// No-op if dimensions haven't changed
	if c.width == width && c.height == height {
		return nil
	}

	qc, err := qd.NewCanvas(width, height)
	if err != nil {
		return fmt.Errorf("qdcanvas: canvas resize failed: %w", err)
	}
	_ = c.canvas.Close()
	c.canvas = qc

	c.width = width
	c.height = height
	c.sizeChanged = true
	c.dirty = true

	return nil
}

// Flush uploads the canvas content to GPU texture if dirty.
// Returns the texture for manual drawing if needed.
//
// The texture is created lazily on first Flush().
// Subsequent calls only upload data if dirty flag is set.
//
// Returns error if texture creation or update fails, or if canvas is closed.
func (c *Canvas) Flush() (any, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}

	// If size changed, defer old texture destruction until after GPU is idle.
	// The old texture may still be referenced by in-flight GPU command buffers.
	// Destroying it now would free descriptor heap entries that the GPU is reading,
	// causing it to sample zeros (transparent). Instead, keep it alive and destroy
	// it in RenderToEx after WriteTexture (which calls waitForGPU internally).
	if c.sizeChanged {
		if c.texture != nil {
			// Destroy any previously deferred texture first
			if c.oldTexture != nil {
				if destroyer, ok := c.oldTexture.(textureDestroyer); ok {
					destroyer.Destroy()
				}
			}
			c.oldTexture = c.texture
			c.texture = nil
		}
		c.sizeChanged = false
	}

	// Skip if not dirty
	if !c.dirty && c.texture != nil {
		return c.texture, nil
	}

	if err := c.canvas.Flush(); err != nil {
		return nil, fmt.Errorf("qdcanvas: canvas flush failed: %w", err)
	}

	pixmap := c.canvas.Pixmap()
	if pixmap == nil {
		return nil, ErrNoPixmap
	}
	data := pixmap.Data()

	// Create texture if needed (lazy initialization)
	if c.texture == nil {
		c.texture = c.createTexture(data)
		c.dirty = false
		return c.texture, nil
	}

	// Update existing texture
	if updater, ok := c.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(data); err != nil {
			return nil, fmt.Errorf("qdcanvas: texture update failed: %w", err)
		}
	}

	c.dirty = false
	return c.texture, nil
}

// Texture returns the current GPU texture without flushing.
// Returns nil if texture hasn't been created yet.
//
// Use Flush() to ensure the texture exists and is up-to-date.
func (c *Canvas) Texture() any {
	return c.texture
}

// Close releases all resources associated with the Canvas.
// After Close, the Canvas should not be used.
// Close is idempotent - multiple calls are safe.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	// Destroy textures (current and any deferred old texture)
	if c.oldTexture != nil {
		if destroyer, ok := c.oldTexture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		c.oldTexture = nil
	}
	if c.texture != nil {
		if destroyer, ok := c.texture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		c.texture = nil
	}

	if c.canvas != nil {
		_ = c.canvas.Close()
		c.canvas = nil
	}

	c.provider = nil
	return nil
}

// createTexture creates a pending texture placeholder from pixel data.
// This is called lazily on first Flush().
// The actual GPU texture is created during RenderTo when a renderer is available.
func (c *Canvas) createTexture(data []byte) *pendingTexture {
	// The creation request is stored and resolved in RenderTo, which
	// has access to the texture creator.
	return &pendingTexture{
		width:  c.width,
		height: c.height,
		data:   data,
	}
}

// pendingTexture is a placeholder for texture creation.
// It holds the data needed to create a real texture when we have
// access to a textureCreator (during RenderTo).
type pendingTexture struct {
	width  int
	height int
	data   []byte
}

// Provider returns the DeviceProvider associated with this canvas.
// Returns nil if the canvas is closed.
func (c *Canvas) Provider() gpucontext.DeviceProvider {
	if c.closed {
		return nil
	}
	return c.provider
}
