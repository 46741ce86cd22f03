// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/line.wgsl
var lineShaderSource string

// ShaderSource returns the WGSL source of the line shader.
func ShaderSource() string {
	return lineShaderSource
}

// CompileShader compiles the line shader to SPIR-V words.
func CompileShader() ([]uint32, error) {
	return compileToSPIRV(lineShaderSource)
}

// compileToSPIRV compiles WGSL source to a SPIR-V uint32 slice.
func compileToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("compile line shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// lineShaderModuleSource prefers precompiled SPIR-V and falls back to WGSL
// for backends that compile it themselves.
func lineShaderModuleSource() hal.ShaderSource {
	spirv, err := CompileShader()
	if err != nil {
		logger().Warn("line shader: SPIR-V compile failed, using WGSL", "err", err)
		return hal.ShaderSource{WGSL: lineShaderSource}
	}
	return hal.ShaderSource{SPIRV: spirv}
}
