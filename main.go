package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"golang.org/x/image/draw"

	"github.com/dkossen/mcpt-go/pkg/accum"
	"github.com/dkossen/mcpt-go/pkg/core"
	"github.com/dkossen/mcpt-go/pkg/render"
	"github.com/dkossen/mcpt-go/pkg/scene"
)

// previewMaxWidth caps the width of periodic progress snapshots so
// encoding one doesn't stall a full-resolution render.
const previewMaxWidth = 640

func main() {
	workers := flag.Int("workers", 0, "number of parallel workers (0 = auto-detect CPU count)")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	quiet := flag.Bool("quiet", false, "suppress progress logging")
	seed := flag.Int64("seed", 1, "base RNG seed")
	gamma := flag.Float64("gamma", accum.DefaultGamma, "tonemap gamma exponent")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: mcpt-go <inputdir> <inputname> [sample_count=30]")
		os.Exit(1)
	}
	inputDir, inputName := args[0], args[1]
	samples := 30
	if len(args) >= 3 {
		if n, err := parsePositiveInt(args[2]); err == nil {
			samples = n
		} else {
			fmt.Fprintf(os.Stderr, "invalid sample_count %q: %v\n", args[2], err)
			os.Exit(1)
		}
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	var logger core.Logger
	if *quiet {
		logger = render.NullLogger{}
	} else {
		logger = render.DefaultLogger{}
	}

	startTime := time.Now()

	configPath := filepath.Join(inputDir, inputName+".yaml")
	s, err := scene.Load(configPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}

	outputDir := filepath.Join(inputDir, "output")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: creating output directory: %v\n", err)
		os.Exit(1)
	}

	r := render.NewRenderer(s, logger)
	r.Buffer.Gamma = *gamma
	r.Run(render.Config{Samples: samples, Workers: *workers, Seed: *seed}, func(pass int, due bool) {
		logger.Printf("render: completed pass %d/%d", pass, samples)
		if !due {
			return
		}
		previewPath := filepath.Join(outputDir, fmt.Sprintf("%s_preview.png", inputName))
		if err := writePreviewPNG(previewPath, r.Buffer); err != nil {
			logger.Printf("render: failed to write preview: %v", err)
		}
	})

	finalPath := filepath.Join(outputDir, inputName+".jpg")
	if err := writeJPEG(finalPath, r.Buffer); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: writing output image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("render completed in %v; wrote %s\n", time.Since(startTime), finalPath)
}

func parsePositiveInt(s string) (int, error) {
	var n int
	_, err := fmt.Sscanf(s, "%d", &n)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("sample count must be positive")
	}
	return n, nil
}

// writePreviewPNG downsamples buf's current snapshot to at most
// previewMaxWidth wide before encoding, so a mid-render preview at a
// high render resolution doesn't cost a full-resolution PNG encode.
func writePreviewPNG(path string, buf *accum.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src := buf.Snapshot()
	bounds := src.Bounds()
	if bounds.Dx() <= previewMaxWidth {
		return png.Encode(f, src)
	}

	scale := float64(previewMaxWidth) / float64(bounds.Dx())
	dstW := previewMaxWidth
	dstH := int(float64(bounds.Dy())*scale + 0.5)
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return png.Encode(f, dst)
}

func writeJPEG(path string, buf *accum.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, buf.Final(), &jpeg.Options{Quality: 100})
}
