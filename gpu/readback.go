// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/cogentcore/webgpu/wgpu"
)

// mapBufferRead maps buf for host reading, polls the device until the map
// completes, copies out the mapped range, and unmaps. It blocks until the
// map completes. Both BakePipeline.Bake and ApplyPipeline.Apply call it to
// read their results back.
func mapBufferRead(dev *Device, buf *wgpu.Buffer, size uint64) ([]byte, error) {
	done := make(chan error, 1)
	buf.MapAsync(wgpu.MapModeRead, 0, size, func(status wgpu.BufferMapAsyncStatus) {
		if status != wgpu.BufferMapAsyncStatusSuccess {
			done <- errMapFailed(status)
			return
		}
		done <- nil
	})

	for {
		dev.Device.Poll(true, nil)
		select {
		case err := <-done:
			if err != nil {
				return nil, err
			}
			mapped := buf.GetMappedRange(0, uint(size))
			out := append([]byte(nil), mapped...)
			buf.Unmap()
			return out, nil
		default:
		}
	}
}

func errMapFailed(status wgpu.BufferMapAsyncStatus) error {
	return &mapError{status}
}

type mapError struct{ status wgpu.BufferMapAsyncStatus }

func (e *mapError) Error() string { return "buffer map failed" }

func decodeF32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
