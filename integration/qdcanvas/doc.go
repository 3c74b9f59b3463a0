// Copyright 2026 The qdgfx Authors
// SPDX-License-Identifier: MIT

// Package qdcanvas provides integration between qd 2D drawing and
// gogpu GPU-accelerated windows.
//
// This package enables drawing qd content directly in GPU-accelerated
// windows by managing the CPU-to-GPU pipeline automatically. The data
// flow is:
//
//	qd.Canvas (draw) -> Pixmap (CPU) -> GPU Texture -> Window
//
// # Architecture
//
// Canvas wraps a qd.Canvas and manages the texture upload pipeline:
//
//   - Draw operations use the familiar qd API
//   - Flush() uploads pixel data to GPU texture
//   - RenderTo() draws the texture to a gogpu window
//
// # Usage
//
// Basic usage with gogpu:
//
//	canvas, err := qdcanvas.New(app.GPUContextProvider(), 800, 600)
//	if err != nil { ... }
//	defer canvas.Close()
//
//	canvas.Draw(func(qc *qd.Canvas) {
//	    qc.Clear(qd.Black)
//	    qc.DrawCircle(400, 300, 100, qd.Red, 360)
//	})
//
//	// Render to gogpu window
//	canvas.RenderTo(dc)
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Create one Canvas per
// goroutine, or use external synchronization.
//
// # Integration Without Circular Imports
//
// This package uses interfaces to avoid importing gogpu directly:
//
//   - gpucontext.DeviceProvider for device access
//   - gpucontext.TextureCreator and TextureDrawer for presentation
//
// This allows qd to provide integration without creating circular
// dependencies.
package qdcanvas
