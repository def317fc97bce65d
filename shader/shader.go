// Package shader holds the GLSL sources of the grid renderer and a
// software evaluation of the grid fragment computation used for
// verification.
package shader

// Vertex shader shared by the grid and blit passes: a fullscreen
// triangle pair with uv derived from the clip-space position.
const vertexShaderSource = `#version 410 core
layout (location = 0) in vec2 in_vert;
out vec2 frag_uv;
void main() {
    frag_uv = in_vert * 0.5 + 0.5;
    gl_Position = vec4(in_vert, 0.0, 1.0);
}
`

// The ripple-grid fragment shader. Works in a centered, aspect-corrected
// coordinate space; displaces it with a traveling radial wave plus an
// optional gaussian-weighted pointer wave, then shades periodic grid
// lines with exponential falloffs, radial fade, vignette and tint.
const gridFragmentShaderSource = `#version 410 core
in vec2 frag_uv;
out vec4 fragColor;

uniform float iTime;
uniform vec2  iResolution;
uniform bool  uRainbow;
uniform vec3  uGridColor;
uniform float uRippleIntensity;
uniform float uGridSize;
uniform float uGridThickness;
uniform float uFadeDistance;
uniform float uVignetteStrength;
uniform float uGlowIntensity;
uniform float uOpacity;
uniform float uRotation;
uniform bool  uMouseEnabled;
uniform vec2  uMouse;
uniform float uMouseInfluence;
uniform float uMouseRadius;

const float pi = 3.141592653589793;

void main() {
    vec2 uv = frag_uv * 2.0 - 1.0;
    uv.x *= iResolution.x / iResolution.y;

    if (uRotation != 0.0) {
        float rad = uRotation * pi / 180.0;
        float c = cos(rad);
        float s = sin(rad);
        uv = mat2(c, -s, s, c) * uv;
    }

    float dist = length(uv);
    float func = sin(pi * (iTime - dist));
    vec2 rippleUv = uv + uv * func * uRippleIntensity;

    if (uMouseEnabled && uMouseInfluence > 0.0) {
        vec2 mouseUv = uMouse * 2.0 - 1.0;
        mouseUv.x *= iResolution.x / iResolution.y;
        float mouseDist = length(uv - mouseUv);
        float influence = uMouseInfluence * exp(-mouseDist * mouseDist / (uMouseRadius * uMouseRadius));
        float mouseWave = sin(pi * (iTime * 2.0 - mouseDist * 3.0)) * influence;
        rippleUv += normalize(uv - mouseUv) * mouseWave * uRippleIntensity * 0.3;
    }

    vec2 a = sin(uGridSize * 0.5 * pi * rippleUv - pi / 2.0);
    vec2 b = abs(a);
    vec2 smoothB = vec2(smoothstep(0.0, 0.5, b.x), smoothstep(0.0, 0.5, b.y));

    vec3 color = vec3(0.0);
    color += exp(-uGridThickness * smoothB.x * (0.8 + 0.5 * sin(pi * iTime)));
    color += exp(-uGridThickness * smoothB.y);
    color += 0.5 * exp(-(uGridThickness / 4.0) * sin(smoothB.x));
    color += 0.5 * exp(-(uGridThickness / 3.0) * smoothB.y);

    if (uGlowIntensity > 0.0) {
        color += uGlowIntensity * exp(-uGridThickness * 0.5 * smoothB.x);
        color += uGlowIntensity * exp(-uGridThickness * 0.5 * smoothB.y);
    }

    float radialFade = exp(-2.0 * clamp(pow(dist, uFadeDistance), 0.0, 1.0));
    vec2 vignetteCoords = frag_uv - 0.5;
    float vignette = clamp(1.0 - pow(length(vignetteCoords) * 2.0, uVignetteStrength), 0.0, 1.0);
    float fade = radialFade * vignette;

    vec3 tint;
    if (uRainbow) {
        tint = vec3(uv.x * 0.5 + 0.5 * sin(iTime),
                    uv.y * 0.5 + 0.5 * cos(iTime),
                    pow(cos(iTime), 4.0)) + 0.5;
    } else {
        tint = uGridColor;
    }

    float alpha = length(color) * fade * uOpacity;
    fragColor = vec4(color * tint * fade * uOpacity, alpha);
}
`

// Blit pass: presents the offscreen render texture on the window
// framebuffer.
const blitFragmentShaderSource = `#version 410 core
in vec2 frag_uv;
out vec4 fragColor;
uniform sampler2D u_texture;
void main() { fragColor = texture(u_texture, frag_uv); }
`

func VertexShader() string { return vertexShaderSource }

func GridFragmentShader() string { return gridFragmentShaderSource }

func BlitFragmentShader() string { return blitFragmentShaderSource }
