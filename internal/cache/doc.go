// Package cache provides a bounded, thread-safe LRU map with typed keys
// and hit statistics, on top of hashicorp/golang-lru.
//
// The opengl backend memoizes WGSL translations in it: parsing and
// compiling a module through naga costs far more than a lookup, and
// applications tend to translate the same few sources at startup.
//
//	c := cache.New[key, string](64)
//	glsl, err := c.GetOrCreate(k, translate)
package cache
