// Command glgpu-info opens an OpenGL 4.6 device and prints its adapter
// info and limits. With -wgsl it translates a WGSL entry point to the
// stage-marked GLSL that Device.CreateShader accepts instead.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/glgpu"
	"github.com/gogpu/glgpu/opengl"
	"github.com/gogpu/glgpu/platform/egl"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		debug      = flag.Bool("debug", false, "request a debug context")
		verbose    = flag.Bool("v", false, "log at debug level")
		wgslPath   = flag.String("wgsl", "", "translate this WGSL file and exit")
		entry      = flag.String("entry", "", "WGSL entry point (default: first)")
		dumpConfig = flag.Bool("dump-config", false, "print the effective config and exit")
	)
	flag.Parse()

	if *verbose {
		glgpu.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *wgslPath != "" {
		if err := translate(os.Stdout, *wgslPath, *entry); err != nil {
			log.Fatalf("Failed to translate: %v", err)
		}
		return
	}

	cfg := glgpu.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = glgpu.LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	opts := []glgpu.Option{glgpu.WithConfig(cfg)}
	if *debug {
		opts = append(opts, glgpu.WithDebug(true))
	}
	if *dumpConfig {
		if _, err := glgpu.NewConfig(opts...).WriteTo(os.Stdout); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		return
	}

	p, err := egl.NewPlatform()
	if err != nil {
		log.Fatalf("Failed to load EGL: %v", err)
	}
	dev, err := glgpu.Open(p, opts...)
	if err != nil {
		log.Fatalf("Failed to open device: %v", err)
	}
	defer dev.Destroy()

	printDevice(os.Stdout, dev)
}

func translate(w io.Writer, path, entry string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	glsl, stage, err := opengl.TranslateWGSL(string(src), entry)
	if err != nil {
		return err
	}
	log.Printf("Translated %s (%s stage)\n", path, stage)
	_, err = io.WriteString(w, glsl)
	return err
}

func printDevice(w io.Writer, dev *opengl.Device) {
	info := dev.Info()
	l := dev.Limits()
	fmt.Fprintf(w, "Adapter:             %s\n", info.Name)
	fmt.Fprintf(w, "Type:                %v\n", info.Type)
	fmt.Fprintf(w, "Max buffer size:     %d\n", l.MaxBufferSize)
	fmt.Fprintf(w, "Max texture size:    %d\n", l.MaxTextureSize)
	fmt.Fprintf(w, "Max 3D texture size: %d\n", l.MaxTextureDepth)
	fmt.Fprintf(w, "Max array layers:    %d\n", l.MaxArrayLayers)
	fmt.Fprintf(w, "Max vertex attribs:  %d\n", l.MaxVertexAttributes)
	fmt.Fprintf(w, "Max color targets:   %d\n", l.MaxColorAttachments)
	fmt.Fprintf(w, "Max anisotropy:      %g\n", l.MaxAnisotropy)
}
