// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// bakeWGSL is the GPU bake pass (spec §4.5): one invocation per LUT cell,
// workgroup (8,8,8). It runs part of transform.Resolved.Evaluate: input
// decode, input-to-working gamut conversion, CDL, contrast,
// shadows/highlights, working-to-output gamut conversion and output encode.
// White balance, saturation/hue/luma mix, curves and chromatic adaptation
// are not applied. Every transfer constant below is transcribed by hand from
// colorspace/transfer.go; no test compares the two.
const bakeWGSL = `
struct GradingUniform {
  lift: vec4<f32>,
  gamma: vec4<f32>,
  gain: vec4<f32>,
  offset: vec4<f32>,
  temperature: f32,
  tint: f32,
  contrast: f32,
  pivot: f32,
  shadows: f32,
  highlights: f32,
  saturation: f32,
  hue_deg: f32,
  luma_mix: f32,
  input_space: u32,
  working_space: u32,
  output_space: u32,
}

struct GamutEntry {
  rgb_to_xyz: array<f32, 9>,
  xyz_to_rgb: array<f32, 9>,
}

fn mul_row_major(m: array<f32, 9>, v: vec3<f32>) -> vec3<f32> {
  return vec3<f32>(
    m[0] * v.x + m[1] * v.y + m[2] * v.z,
    m[3] * v.x + m[4] * v.y + m[5] * v.z,
    m[6] * v.x + m[7] * v.y + m[8] * v.z,
  );
}

@group(0) @binding(0) var<uniform> params: GradingUniform;
@group(0) @binding(1) var<storage, read> gamuts: array<GamutEntry>;
@group(0) @binding(2) var<storage, read_write> lut_out: array<vec4<f32>>;

const LUT_N: u32 = 33u;

fn srgb_to_linear(v: f32) -> f32 {
  if (v <= 0.04045) { return v / 12.92; }
  return pow((v + 0.055) / 1.055, 2.4);
}

fn srgb_from_linear(v: f32) -> f32 {
  if (v <= 0.0031308) { return clamp(12.92 * v, 0.0, 1.0); }
  return clamp(1.055 * pow(v, 1.0 / 2.4) - 0.055, 0.0, 1.0);
}

const ACESCC_A: f32 = 9.72;
const ACESCC_B: f32 = 17.52;

fn acescc_to_linear(enc: f32) -> f32 {
  let low_break = (ACESCC_A - 15.0) / ACESCC_B;
  if (enc < low_break) {
    return (exp2(enc * ACESCC_B - ACESCC_A) - exp2(-16.0)) * 2.0;
  }
  if (enc < (log2(65504.0) + ACESCC_A) / ACESCC_B) {
    return exp2(enc * ACESCC_B - ACESCC_A);
  }
  return 65504.0;
}

fn acescc_from_linear(lin: f32) -> f32 {
  if (lin <= 0.0) {
    return (log2(exp2(-16.0)) + ACESCC_A) / ACESCC_B;
  }
  if (lin < exp2(-15.0)) {
    return (log2(exp2(-16.0) + lin * 0.5) + ACESCC_A) / ACESCC_B;
  }
  return (log2(lin) + ACESCC_A) / ACESCC_B;
}

const ACESCT_XBRK: f32 = 0.0078125;
const ACESCT_A: f32 = 10.5402377416545;
const ACESCT_B: f32 = 0.0729055341958355;
const ACESCT_YBRK: f32 = 0.155251141552511;

fn acescct_to_linear(enc: f32) -> f32 {
  if (enc <= ACESCT_YBRK) { return (enc - ACESCT_B) / ACESCT_A; }
  return exp2(enc * ACESCC_B - ACESCC_A);
}

fn acescct_from_linear(lin: f32) -> f32 {
  if (lin <= ACESCT_XBRK) { return ACESCT_A * lin + ACESCT_B; }
  return (log2(lin) + ACESCC_A) / ACESCC_B;
}

const LOGC3_CUT: f32 = 0.010591;
const LOGC3_A: f32 = 5.555556;
const LOGC3_B: f32 = 0.052272;
const LOGC3_C: f32 = 0.247190;
const LOGC3_D: f32 = 0.385537;
const LOGC3_E: f32 = 5.367655;
const LOGC3_F: f32 = 0.092809;

fn logc3_to_linear(enc: f32) -> f32 {
  let cut2 = LOGC3_E * LOGC3_CUT + LOGC3_F;
  if (enc > cut2) {
    return (pow(10.0, (enc - LOGC3_D) / LOGC3_C) - LOGC3_B) / LOGC3_A;
  }
  return (enc - LOGC3_F) / LOGC3_E;
}

fn logc3_from_linear(lin: f32) -> f32 {
  if (lin > LOGC3_CUT) {
    return LOGC3_C * log(LOGC3_A * lin + LOGC3_B) / log(10.0) + LOGC3_D;
  }
  return LOGC3_E * lin + LOGC3_F;
}

const LOGC4_A: f32 = 5.555556;
const LOGC4_B: f32 = 0.080216;
const LOGC4_C: f32 = 0.269036;
const LOGC4_T: f32 = 0.0;
const LOGC4_S: f32 = 0.9;
const LOGC4_TOE_ENC: f32 = 0.3658981; // logc4_from_linear(LOGC4_T), precomputed

fn logc4_to_linear(enc: f32) -> f32 {
  if (enc < LOGC4_TOE_ENC) { return LOGC4_T + (enc - LOGC4_TOE_ENC) / LOGC4_S; }
  return (exp2(enc / LOGC4_C - 5.0) - LOGC4_B) / LOGC4_A;
}

fn logc4_from_linear(lin: f32) -> f32 {
  if (lin < LOGC4_T) { return LOGC4_TOE_ENC + (lin - LOGC4_T) * LOGC4_S; }
  return (log2(lin * LOGC4_A + LOGC4_B) + 5.0) * LOGC4_C;
}

const SLOG3_A: f32 = 0.01125000;
const SLOG3_C: f32 = 0.42188671;
const SLOG3_K: f32 = 261.5;

fn slog3_to_linear(enc: f32) -> f32 {
  let code = enc * 1023.0;
  if (code >= 171.2102946929) {
    return pow(10.0, (code - 420.0) / (SLOG3_C * SLOG3_K)) * 0.18 - 0.01;
  }
  return (code - 95.0) / (171.2102946929 - 95.0) * SLOG3_A;
}

fn slog3_from_linear(lin: f32) -> f32 {
  if (lin >= SLOG3_A) {
    return (420.0 + (log(((lin + 0.01) / 0.18)) / log(10.0)) * (SLOG3_C * SLOG3_K)) / 1023.0;
  }
  return (lin * (171.2102946929 - 95.0) / SLOG3_A + 95.0) / 1023.0;
}

const RED_A: f32 = 0.224282;
const RED_B: f32 = 155.975327;
const RED_C: f32 = 0.01;

fn redlog3g10_to_linear(enc: f32) -> f32 {
  return (pow(10.0, (enc - RED_C) / RED_A) - 1.0) / RED_B;
}

fn redlog3g10_from_linear(linIn: f32) -> f32 {
  var lin = linIn;
  if (lin < -1.0 / RED_B) { lin = -1.0 / RED_B; }
  return RED_A * (log(lin * RED_B + 1.0) / log(10.0)) + RED_C;
}

const VLOG_CUT1: f32 = 0.01;
const VLOG_B: f32 = 0.00873;
const VLOG_C: f32 = 0.241514;
const VLOG_D: f32 = 0.598206;

fn vlog_to_linear(enc: f32) -> f32 {
  if (enc < 0.181) { return (enc - 0.125) / 5.6; }
  return pow(10.0, (enc - VLOG_D) / VLOG_C) - VLOG_B;
}

fn vlog_from_linear(lin: f32) -> f32 {
  if (lin < VLOG_CUT1) { return 5.6 * lin + 0.125; }
  return VLOG_C * (log(lin + VLOG_B) / log(10.0)) + VLOG_D;
}

fn to_linear(v: f32, space: u32) -> f32 {
  switch space {
    case 2u: { return acescc_to_linear(v); }
    case 3u: { return acescct_to_linear(v); }
    case 4u: { return srgb_to_linear(v); }
    case 8u: { return logc3_to_linear(v); }
    case 9u: { return logc4_to_linear(v); }
    case 10u: { return slog3_to_linear(v); }
    case 11u: { return redlog3g10_to_linear(v); }
    case 12u: { return vlog_to_linear(v); }
    default: { return v; }
  }
}

fn from_linear(v: f32, space: u32) -> f32 {
  switch space {
    case 2u: { return acescc_from_linear(v); }
    case 3u: { return acescct_from_linear(v); }
    case 4u: { return srgb_from_linear(v); }
    case 8u: { return logc3_from_linear(v); }
    case 9u: { return logc4_from_linear(v); }
    case 10u: { return slog3_from_linear(v); }
    case 11u: { return redlog3g10_from_linear(v); }
    case 12u: { return vlog_from_linear(v); }
    default: { return v; }
  }
}

fn apply_cdl(rgbIn: vec3<f32>) -> vec3<f32> {
  let lift = params.lift.xyz + params.lift.w;
  let gamma = max(params.gamma.xyz * params.gamma.w, vec3<f32>(1e-4));
  let gain = params.gain.xyz * params.gain.w;
  let offset = params.offset.xyz + params.offset.w;
  let base = max(rgbIn * gain + offset, vec3<f32>(0.0));
  return pow(base, 1.0 / gamma) + lift;
}

fn apply_contrast(rgb: vec3<f32>) -> vec3<f32> {
  if (params.contrast == 1.0) { return rgb; }
  return params.pivot * pow(max(rgb / params.pivot, vec3<f32>(1e-4)), vec3<f32>(params.contrast));
}

fn luma709(rgb: vec3<f32>) -> f32 {
  return dot(rgb, vec3<f32>(0.2126, 0.7152, 0.0722));
}

fn apply_shadows_highlights(rgb: vec3<f32>) -> vec3<f32> {
  if (params.shadows == 0.0 && params.highlights == 0.0) { return rgb; }
  let l = luma709(rgb);
  let shadowW = 1.0 - smoothstep(0.0, 0.5, l);
  let highW = smoothstep(0.5, 1.0, l);
  let w = params.shadows * shadowW + params.highlights * highW;
  return rgb + rgb * w;
}

@compute @workgroup_size(8, 8, 8)
fn bake_main(@builtin(global_invocation_id) gid: vec3<u32>) {
  if (gid.x >= LUT_N || gid.y >= LUT_N || gid.z >= LUT_N) { return; }
  let maxIdx = f32(LUT_N - 1u);
  var rgb = vec3<f32>(f32(gid.x) / maxIdx, f32(gid.y) / maxIdx, f32(gid.z) / maxIdx);

  let inG = gamuts[params.input_space];
  let workG = gamuts[params.working_space];
  let outG = gamuts[params.output_space];

  var lin = vec3<f32>(
    to_linear(rgb.r, params.input_space),
    to_linear(rgb.g, params.input_space),
    to_linear(rgb.b, params.input_space),
  );
  var working = mul_row_major(workG.xyz_to_rgb, mul_row_major(inG.rgb_to_xyz, lin));

  working = apply_cdl(working);
  working = apply_contrast(working);
  working = apply_shadows_highlights(working);

  let mapped = mul_row_major(outG.xyz_to_rgb, mul_row_major(workG.rgb_to_xyz, working));
  let result = vec3<f32>(
    from_linear(mapped.r, params.output_space),
    from_linear(mapped.g, params.output_space),
    from_linear(mapped.b, params.output_space),
  );

  let idx = gid.x + gid.y * LUT_N + gid.z * LUT_N * LUT_N;
  lut_out[idx] = vec4<f32>(result, 1.0);
}
`

// applyWGSL samples the baked 3D texture trilinearly over the source image
// (spec §4.5's apply pass), workgroup (16,16,1).
const applyWGSL = `
@group(0) @binding(0) var lut_tex: texture_3d<f32>;
@group(0) @binding(1) var lut_sampler: sampler;
@group(0) @binding(2) var<storage, read> src_pixels: array<vec4<f32>>;
@group(0) @binding(3) var<storage, read_write> dst_pixels: array<vec4<f32>>;

struct ApplyDims {
  width: u32,
  height: u32,
}

@group(0) @binding(4) var<uniform> dims: ApplyDims;

@compute @workgroup_size(16, 16, 1)
fn apply_main(@builtin(global_invocation_id) gid: vec3<u32>) {
  if (gid.x >= dims.width || gid.y >= dims.height) { return; }
  let idx = gid.y * dims.width + gid.x;
  let px = src_pixels[idx];
  let coord = clamp(px.rgb, vec3<f32>(0.0), vec3<f32>(1.0));
  let graded = textureSampleLevel(lut_tex, lut_sampler, coord, 0.0);
  dst_pixels[idx] = vec4<f32>(graded.rgb, px.a);
}
`
