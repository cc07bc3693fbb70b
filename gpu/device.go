// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/coregrade/primaries/internal/errs"
)

// Device bundles the wgpu handles the compute pipelines share: one
// adapter/device/queue triple per process, reused across every bake and
// apply dispatch. Modeled on the no-display (headless) adapter request the
// reference corpus's compute examples use, since the engine never
// rasterizes to a surface.
type Device struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue
}

// OpenDevice requests a headless, high-performance adapter and its
// default device. Resource errors here (no adapter, device lost) are
// non-fatal to the engine as a whole: spec §7 requires the Frame
// Controller to fall back to the CPU bake/apply path when this fails.
func OpenDevice() (*Device, error) {
	instance := wgpu.CreateInstance(nil)

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, errs.Resource("requesting wgpu adapter: %v", err)
	}

	dev, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "primaries-compute",
	})
	if err != nil {
		return nil, errs.Resource("requesting wgpu device: %v", err)
	}

	return &Device{
		instance: instance,
		adapter:  adapter,
		Device:   dev,
		Queue:    dev.GetQueue(),
	}, nil
}

// Release tears down the device's GPU resources. Safe to call once, after
// all pipelines built from it have been released.
func (d *Device) Release() {
	if d.Device != nil {
		d.Device.Release()
	}
	if d.adapter != nil {
		d.adapter.Release()
	}
	if d.instance != nil {
		d.instance.Release()
	}
}
