//go:build windows

package webgpu

// workgroupSize is the number of invocations per workgroup for all shaders.
const workgroupSize = 256

// maxWorkgroupsPerDim is the WebGPU default limit maxComputeWorkgroupsPerDimension.
const maxWorkgroupsPerDim = 65535

// findShaderInt32 resolves one needle per invocation by scanning the index from
// its last element down; the first hit is the last occurrence. Large needle
// counts are dispatched as a 2-D grid, flattened row-major over num_workgroups.
const findShaderInt32 = `
struct Params {
    index_len: u32,
    needles_len: u32,
    missing: i32,
    _pad: u32,
}

@group(0) @binding(0) var<storage, read> haystack: array<i32>;
@group(0) @binding(1) var<storage, read> needles: array<i32>;
@group(0) @binding(2) var<storage, read_write> result: array<i32>;
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(
    @builtin(global_invocation_id) global_id: vec3<u32>,
    @builtin(num_workgroups) num_groups: vec3<u32>,
) {
    let i = global_id.y * num_groups.x * 256u + global_id.x;
    if (i >= params.needles_len) {
        return;
    }

    let x = needles[i];
    var res = params.missing;
    var j = params.index_len;
    loop {
        if (j == 0u) {
            break;
        }
        j = j - 1u;
        if (haystack[j] == x) {
            res = i32(j);
            break;
        }
    }
    result[i] = res;
}
`
