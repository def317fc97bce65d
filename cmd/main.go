package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"ripplegrid"
	"ripplegrid/glfwcontext"
	"ripplegrid/options"
	"ripplegrid/renderer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := &options.GridOptions{
		Rainbow:          flag.Bool("rainbow", false, "animate the grid tint through a rainbow palette"),
		GridColor:        flag.String("color", options.DefaultGridColor, "grid color as a 6-digit hex string"),
		RippleIntensity:  flag.Float64("ripple", options.DefaultRippleIntensity, "ripple displacement intensity"),
		GridSize:         flag.Float64("grid-size", options.DefaultGridSize, "grid line frequency"),
		GridThickness:    flag.Float64("grid-thickness", options.DefaultGridThickness, "grid line thickness falloff"),
		FadeDistance:     flag.Float64("fade", options.DefaultFadeDistance, "radial fade exponent"),
		VignetteStrength: flag.Float64("vignette", options.DefaultVignetteStrength, "vignette exponent"),
		GlowIntensity:    flag.Float64("glow", options.DefaultGlowIntensity, "grid line glow intensity"),
		Opacity:          flag.Float64("opacity", options.DefaultOpacity, "output opacity"),
		Rotation:         flag.Float64("rotation", options.DefaultRotation, "grid rotation in degrees"),
		MouseInteraction: flag.Bool("mouse", true, "enable pointer interaction"),
		MouseRadius:      flag.Float64("mouse-radius", options.DefaultMouseRadius, "pointer influence radius"),
		Responsive:       flag.Bool("responsive", false, "use mobile parameter values on narrow viewports"),
		Width:            flag.Int("width", 1280, "window width"),
		Height:           flag.Int("height", 720, "window height"),
		Record:           flag.Bool("record", false, "render offscreen and encode to a video file"),
		Duration:         flag.Float64("duration", 10.0, "duration to record in seconds"),
		FPS:              flag.Int("fps", 60, "frames per second for recording"),
		OutputFile:       flag.String("output", "output.mp4", "output file name for recording"),
		FFMPEGPath:       flag.String("ffmpeg", "", "path to ffmpeg executable"),
	}
	verbose := flag.Bool("verbose", false, "log lifecycle events to stderr")
	flag.Parse()

	if *verbose {
		ripplegrid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	if err := glfwcontext.Init(); err != nil {
		log.Fatalf("Failed to initialize graphics: %v", err)
	}
	defer glfwcontext.Terminate()

	ctx, err := glfwcontext.New(*opts.Width, *opts.Height, !*opts.Record)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer ctx.Shutdown()

	surface, err := renderer.Attach(ctx, opts)
	if err != nil {
		log.Fatalf("Failed to attach grid surface: %v", err)
	}
	defer surface.Release()

	if *opts.Record {
		if err := surface.Record(); err != nil {
			log.Fatalf("Recording failed: %v", err)
		}
		log.Printf("Successfully rendered to %s", *opts.OutputFile)
		return
	}

	surface.Run()
}
