// Command scopedemo renders a synthetic signal through the full stack:
// oscilloscope core, paint loop, image surface, software painter.
package main

import (
	"context"
	"flag"
	"image"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/gogpu/scope"
	"github.com/gogpu/scope/render"
	"github.com/gogpu/scope/surface"
)

func main() {
	var (
		width     = flag.Int("width", 800, "image width")
		height    = flag.Int("height", 400, "image height")
		seconds   = flag.Float64("seconds", 12, "signal duration to synthesize")
		rate      = flag.Float64("rate", 200, "samples per second")
		timeScale = flag.Float64("timescale", 4, "visible time window in seconds")
		output    = flag.String("output", "trace.png", "output file")
		styleFile = flag.String("style", "", "optional YAML style file")
		backend   = flag.String("backend", "", "surface backend name (default: best available)")
	)
	flag.Parse()

	style := scope.DefaultStyle()
	if *styleFile != "" {
		f, err := os.Open(*styleFile)
		if err != nil {
			log.Fatalf("Failed to open style: %v", err)
		}
		style, err = scope.LoadStyle(f)
		_ = f.Close()
		if err != nil {
			log.Fatalf("Failed to load style: %v", err)
		}
	}

	osc := scope.New(
		scope.WithTimeScale(*timeScale),
		scope.WithSize(*width, *height),
		scope.WithStyle(style),
	)

	dt := 1.0 / *rate
	for i := 0; i < int(*seconds**rate); i++ {
		t := float64(i) * dt
		if err := osc.Append(scope.Sample{Time: t, Amp: waveform(t)}); err != nil {
			log.Fatalf("Failed to append sample: %v", err)
		}
	}

	var (
		prov surface.Provider
		err  error
	)
	if *backend != "" {
		prov, err = surface.NewProviderByName(*backend, *width, *height)
	} else {
		prov, err = surface.NewProvider(*width, *height)
	}
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}
	surf, ok := prov.(*surface.ImageSurface)
	if !ok {
		log.Fatalf("Backend %T has no CPU image to save", prov)
	}
	painted := make(chan struct{}, 1)
	surf.OnPresent(func(*image.RGBA) {
		select {
		case painted <- struct{}{}:
		default:
		}
	})

	loop := render.NewLoop(osc, render.NewSoftwarePainter())
	if err := loop.SurfaceReady(context.Background(), surf); err != nil {
		log.Fatalf("Failed to start paint loop: %v", err)
	}
	<-painted
	if err := loop.Close(); err != nil {
		log.Fatalf("Failed to close paint loop: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := png.Encode(f, surf.Image()); err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close output: %v", err)
	}

	log.Printf("Trace saved to %s (%dx%d)\n", *output, *width, *height)
}

// waveform mixes a fundamental with two harmonics and a slow drift so the
// auto-scaling has something to chase.
func waveform(t float64) float64 {
	return math.Sin(2*math.Pi*1.3*t) +
		0.4*math.Sin(2*math.Pi*4.2*t+0.5) +
		0.15*math.Sin(2*math.Pi*9.7*t) +
		0.1*math.Sin(2*math.Pi*0.11*t)
}
