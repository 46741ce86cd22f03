// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host application (e.g., gogpu.App) owns the device; line renderers
// RECEIVE it and never create their own. This keeps line drawing on the
// same device and queue as the rest of the frame.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, so any provider
// from the gpucontext ecosystem can be passed directly.
type DeviceHandle = gpucontext.DeviceProvider

// ErrNoHALAccess is returned when a DeviceHandle does not expose its
// underlying HAL device and queue.
var ErrNoHALAccess = errors.New("render: device provider does not expose HAL device and queue")

// halProvider is implemented by providers that can hand out their HAL
// objects. gogpu's context implements it.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// NewLineRendererFromProvider creates a LineRenderer on the device and queue
// of provider. The render target format is taken from the provider's
// surface format.
//
// The provider must implement HalDevice() any and HalQueue() any returning
// hal.Device and hal.Queue; otherwise ErrNoHALAccess is returned.
func NewLineRendererFromProvider(provider DeviceHandle) (*LineRenderer, error) {
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALAccess
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, ErrNoHALAccess
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, ErrNoHALAccess
	}
	return NewLineRenderer(device, queue, provider.SurfaceFormat()), nil
}
