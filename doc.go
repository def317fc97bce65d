// Package ripplegrid renders an animated, pointer-reactive grid pattern
// as a fullscreen fragment shader.
//
// The root package only carries shared plumbing (the package logger);
// the actual machinery lives in the subpackages:
//
//   - options:     construction parameters
//   - params:      color decoding and responsive parameter resolution
//   - shader:      GLSL sources and a software reference evaluation
//   - uniforms:    the per-frame uniform value set
//   - input:       pointer tracking and the input command queue
//   - graphics:    the windowing/GL context interface
//   - glfwcontext: the GLFW implementation of graphics.Context
//   - renderer:    surface lifecycle, animation loop, record mode
package ripplegrid
