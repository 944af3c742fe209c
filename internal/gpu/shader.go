// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"fmt"

	"github.com/gogpu/naga"
)

// circleShaderWGSL renders an anti-aliased filled circle. The fragment
// stage computes a signed distance from the circle edge and feathers
// coverage over one pixel.
const circleShaderWGSL = `
struct CircleUniforms {
    center: vec2<f32>,
    radius: f32,
    _pad: f32,
    color: vec4<f32>,
}

@group(0) @binding(0) var<uniform> circle: CircleUniforms;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) frag_pos: vec2<f32>,
}

@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> VertexOutput {
    // Fullscreen triangle.
    var pos = array<vec2<f32>, 3>(
        vec2<f32>(-1.0, -1.0),
        vec2<f32>(3.0, -1.0),
        vec2<f32>(-1.0, 3.0),
    );
    var out: VertexOutput;
    out.position = vec4<f32>(pos[idx], 0.0, 1.0);
    out.frag_pos = pos[idx];
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let d = distance(in.position.xy, circle.center) - circle.radius;
    let coverage = clamp(0.5 - d, 0.0, 1.0);
    return vec4<f32>(circle.color.rgb, circle.color.a * coverage);
}
`

// CompileCircleShader compiles the circle fill shader to SPIR-V words.
func CompileCircleShader() ([]uint32, error) {
	return compileWGSL(circleShaderWGSL)
}

// compileWGSL compiles WGSL source to a SPIR-V uint32 slice.
func compileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}
