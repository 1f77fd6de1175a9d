package opengl

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/ir"

	"github.com/gogpu/glgpu/internal/cache"
)

// translationCacheSize bounds the memoized WGSL translations.
const translationCacheSize = 64

type translationKey struct {
	src, entryPoint string
}

type translation struct {
	glsl  string
	stage ShaderStage
}

var translations = cache.New[translationKey, translation](translationCacheSize)

// TranslateWGSL compiles one entry point of a WGSL module to GLSL 4.50
// and prefixes the stage marker CreateShader expects. An empty
// entryPoint selects the first one. Successful translations are
// memoized.
func TranslateWGSL(src, entryPoint string) (string, ShaderStage, error) {
	t, err := translations.GetOrCreate(translationKey{src, entryPoint}, func() (translation, error) {
		out, stage, err := translateWGSL(src, entryPoint)
		return translation{out, stage}, err
	})
	if err != nil {
		return "", 0, err
	}
	return t.glsl, t.stage, nil
}

func translateWGSL(src, entryPoint string) (string, ShaderStage, error) {
	ast, err := naga.Parse(src)
	if err != nil {
		return "", 0, fmt.Errorf("translate wgsl: parse: %w", err)
	}
	module, err := naga.Lower(ast)
	if err != nil {
		return "", 0, fmt.Errorf("translate wgsl: lower: %w", err)
	}

	stage, name, err := entryStage(module, entryPoint)
	if err != nil {
		return "", 0, err
	}

	out, _, err := glsl.Compile(module, glsl.Options{
		LangVersion: glsl.Version450,
		EntryPoint:  name,
	})
	if err != nil {
		return "", 0, fmt.Errorf("translate wgsl: entry point %q: %w", name, err)
	}
	return "// " + stage.String() + "\n" + out, stage, nil
}

func entryStage(module *ir.Module, entryPoint string) (ShaderStage, string, error) {
	for _, ep := range module.EntryPoints {
		if entryPoint != "" && ep.Name != entryPoint {
			continue
		}
		switch ep.Stage {
		case ir.StageVertex:
			return ShaderStageVertex, ep.Name, nil
		case ir.StageFragment:
			return ShaderStageFragment, ep.Name, nil
		}
		return 0, ep.Name, fmt.Errorf("translate wgsl: entry point %q: stage %v: %w", ep.Name, ep.Stage, ErrUnsupported)
	}
	if entryPoint == "" {
		return 0, "", fmt.Errorf("translate wgsl: module has no entry points: %w", ErrUnsupported)
	}
	return 0, "", fmt.Errorf("translate wgsl: no entry point %q", entryPoint)
}
