// Command camfx runs frames from a camera, image files or a synthetic
// pattern through the camfx filter pipeline and optionally writes the
// displayed frames to disk.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/camfx"
	"github.com/gogpu/camfx/internal/capture"
	"github.com/gogpu/camfx/internal/image"
)

const (
	AppName    = "camfx"
	AppVersion = camfx.Version
)

type config struct {
	input      string
	synthetic  int
	camera     int
	width      int
	height     int
	selection  string
	cycle      int
	kernelSize int
	longSide   int
	budget     time.Duration
	fps        int
	queue      int
	outDir     string
	outExt     string
	debug      bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.input, "input", "", "image file or directory to use as frames")
	flag.IntVar(&cfg.synthetic, "synthetic", 60, "number of synthetic frames when no -input or -camera is given")
	flag.IntVar(&cfg.camera, "camera", -1, "webcam device id (requires -tags gocv)")
	flag.IntVar(&cfg.width, "width", 640, "synthetic frame width")
	flag.IntVar(&cfg.height, "height", 480, "synthetic frame height")
	flag.StringVar(&cfg.selection, "filter", "gaussian", "grayscale, sepia, blur, gaussian, bilinear or area")
	flag.IntVar(&cfg.cycle, "cycle", 0, "switch to the next filter every N frames (0 = never)")
	flag.IntVar(&cfg.kernelSize, "kernel", camfx.DefaultKernelSize, "blur kernel size")
	flag.IntVar(&cfg.longSide, "long-side", camfx.DefaultLongSide, "long side of the resampling target")
	flag.DurationVar(&cfg.budget, "budget", camfx.DefaultFrameBudget, "per-frame processing budget")
	flag.IntVar(&cfg.fps, "fps", 30, "delivery rate in frames per second (0 = as fast as possible)")
	flag.IntVar(&cfg.queue, "queue", camfx.DefaultQueueDepth, "frames held while the pipeline is busy")
	flag.StringVar(&cfg.outDir, "out", "", "directory to write displayed frames to")
	flag.StringVar(&cfg.outExt, "ext", ".png", "output format: .png, .jpg, .bmp or .tiff")
	flag.BoolVar(&cfg.debug, "debug", false, "enable debug logging")
	flag.Parse()

	logger := initLogger(cfg.debug)
	camfx.SetLogger(slog.New(newLogrusHandler(logger)))

	logger.WithFields(logrus.Fields{
		"version":    AppVersion,
		"debug_mode": cfg.debug,
	}).Info("Starting " + AppName)

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Error("camfx failed")
		os.Exit(1)
	}
}

func run(cfg config, logger *logrus.Logger) error {
	sel, err := camfx.ParseSelection(cfg.selection)
	if err != nil {
		return err
	}
	if cfg.outDir != "" {
		if !image.IsSupportedExt(cfg.outExt) {
			return fmt.Errorf("%w: %q", image.ErrUnsupportedFormat, cfg.outExt)
		}
		if err := os.MkdirAll(cfg.outDir, 0o755); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frames := image.NewPool(cfg.queue + 2)
	src, err := openSource(cfg, frames)
	if err != nil {
		return err
	}
	defer src.Close()

	display := camfx.NewDisplayQueue(4)
	var (
		written int
		sinkWG  sync.WaitGroup
	)
	sinkWG.Add(1)
	go func() {
		defer sinkWG.Done()
		written = drain(display, cfg, logger)
	}()

	p, err := camfx.NewPipeline(display.Post,
		camfx.WithSelection(sel),
		camfx.WithKernelSize(cfg.kernelSize),
		camfx.WithLongSide(cfg.longSide),
		camfx.WithFrameBudget(cfg.budget),
	)
	if err != nil {
		display.Close()
		sinkWG.Wait()
		return err
	}
	logger.WithField("pipeline", p.ID().String()).Info("pipeline ready")

	w := camfx.NewWorker(p, cfg.queue, func(f *camfx.FrameBuffer, err error) {
		if err != nil {
			logger.WithError(err).Warn("frame failed")
		}
		frames.Put(f)
	})

	delivered, loopErr := deliver(ctx, cfg, src, p, w, frames, logger)

	w.Close()
	_ = p.Close()
	display.Close()
	sinkWG.Wait()
	frames.Drain()

	report(os.Stdout, delivered, written, p.Stats(), w.Stats(), display)
	return loopErr
}

func openSource(cfg config, pool *image.Pool) (capture.Source, error) {
	switch {
	case cfg.camera >= 0:
		return capture.OpenCamera(cfg.camera, pool)
	case cfg.input != "":
		f, err := capture.NewFiles(cfg.input)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		s, err := capture.NewSynthetic(cfg.width, cfg.height, cfg.synthetic, pool)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

// deliver pulls frames from src at the configured rate and hands them to
// the worker, cycling the selection the way a UI control would.
func deliver(ctx context.Context, cfg config, src capture.Source, p *camfx.Pipeline,
	w *camfx.Worker, pool *image.Pool, logger *logrus.Logger) (int, error) {
	var tick <-chan time.Time
	if cfg.fps > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(cfg.fps))
		defer ticker.Stop()
		tick = ticker.C
	}

	all := camfx.Selections()
	n := 0
	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return n, nil
			case <-tick:
			}
		}

		frame, err := src.Next(ctx)
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
			return n, nil
		case err != nil:
			logger.WithError(err).Warn("skipping frame")
			continue
		}

		if cfg.cycle > 0 && n > 0 && n%cfg.cycle == 0 {
			next := all[(int(p.Selection())+1)%len(all)]
			if err := p.SetSelection(next); err != nil {
				return n, err
			}
			logger.WithField("selection", next.String()).Info("selection changed")
		}

		switch err := w.Deliver(frame); {
		case errors.Is(err, camfx.ErrFrameDropped):
			pool.Put(frame)
		case err != nil:
			return n, err
		}
		n++
	}
}

// drain consumes displayed frames, writing them to disk when -out is set.
func drain(q *camfx.DisplayQueue, cfg config, logger *logrus.Logger) int {
	written := 0
	for f := range q.Frames() {
		if cfg.outDir != "" {
			path := filepath.Join(cfg.outDir, fmt.Sprintf("frame_%05d%s", written, cfg.outExt))
			if err := f.Save(path); err != nil {
				logger.WithError(err).WithField("path", path).Warn("write failed")
			} else {
				written++
			}
		}
		q.Release(f)
	}
	return written
}

func report(out io.Writer, delivered, written int, ps camfx.Stats, ws camfx.WorkerStats, q *camfx.DisplayQueue) {
	pr := message.NewPrinter(language.English)
	pr.Fprintf(out, "frames delivered:   %d\n", delivered)
	pr.Fprintf(out, "frames processed:   %d\n", ps.Frames)
	pr.Fprintf(out, "frames failed:      %d\n", ps.Failures)
	pr.Fprintf(out, "frames dropped:     %d (worker) / %d (display)\n", ws.Dropped, q.Dropped())
	pr.Fprintf(out, "worker queue depth: %d\n", ws.QueueDepth)
	pr.Fprintf(out, "frames written:     %d\n", written)
	pr.Fprintf(out, "scratch allocs:     %d\n", ps.ScratchAllocs)
	pr.Fprintf(out, "budget overruns:    %d\n", ps.BudgetOverruns)
	pr.Fprintf(out, "max frame time:     %v\n", ps.MaxDuration)
}
