// Package glgpu opens GPU devices backed by OpenGL 4.6.
//
// # Overview
//
// glgpu is the entry point of the module. It selects a backend from a
// registry, configures it and returns an [opengl.Device]. The device API
// itself lives in package opengl; native contexts come from a platform
// package such as platform/egl.
//
// # Quick Start
//
//	p, err := egl.NewPlatform()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dev, err := glgpu.Open(p, glgpu.WithLabel("main"), glgpu.WithDebug(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Destroy()
//
// # Configuration
//
// Settings come from functional options, from a TOML file through
// [LoadConfig], or both:
//
//	cfg, err := glgpu.LoadConfig("glgpu.toml")
//	dev, err := glgpu.Open(p, glgpu.WithConfig(cfg), glgpu.WithSwapInterval(0))
//
// # Logging
//
// Nothing is logged by default. [SetLogger] installs a [log/slog] logger
// for every package in the module.
package glgpu

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
