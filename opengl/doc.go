// Package opengl is a GPU device layer over OpenGL 4.6 with direct state
// access.
//
// # Overview
//
// A [Device] owns one native context created through a [Platform]. It
// creates resources ([Buffer], [CPUBuffer], [Texture], [Sampler],
// [Shader], [Pipeline]) and executes work in passes. A [RenderPass]
// draws into a set of color and depth-stencil attachments; a [BlitPass]
// copies between buffers and textures and generates mipmaps. Only one
// pass is open at a time.
//
// Work is issued through one of two encoders:
//
//   - [ImmediateEncoder] executes every pass operation as it is called.
//   - [CommandBuffer] encodes operations into a byte arena and replays
//     them on [Device.Submit]. Recording issues no GL calls.
//
// Both share one executor, so an immediate pass and a replayed one make
// the same driver calls in the same order.
//
// # Shaders
//
// Shader sources are GLSL whose first non-empty line is a "// vert" or
// "// frag" stage marker. Each shader is linked into its own separable
// program and pipelines combine two of them in a program pipeline.
// [TranslateWGSL] produces marked GLSL from WGSL.
//
// # Errors
//
// Operations return errors and also record the most recent failure in
// [LastError]. Caller contract violations, such as binding a destroyed
// resource, panic when built with -tags gldebug.
//
// # Logging
//
// The package is silent by default. [SetLogger] routes driver debug
// messages, shader logs and failures to a [log/slog] logger.
//
// # Threading
//
// A Device must be used from the goroutine whose OS thread holds its
// context current. Recording a CommandBuffer needs no context and may
// happen on any goroutine.
package opengl
