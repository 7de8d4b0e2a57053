package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"colorgate/internal/colorspace"
	"colorgate/internal/config"
	"colorgate/internal/gui"
	"colorgate/internal/logger"
	"colorgate/internal/pipeline"
	"colorgate/internal/threshold"
	"colorgate/internal/tuning"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"gocv.io/x/gocv"
)

const (
	appName = "colorgate"
	appID   = "io.colorgate.tuner"
)

func main() {
	cfg := parseFlags()

	log := logger.NewConsole(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("main", err, nil)
		os.Exit(1)
	}
}

func parseFlags() config.App {
	var cfg config.App

	flag.StringVar(&cfg.ParamFile, "params", "thresholds.yaml", "parameter file mapping names to threshold configs")
	flag.StringVar(&cfg.Param, "param", "", "parameter name to load bounds from")
	flag.StringVar(&cfg.ImagePath, "image", "", "path of a still image to classify")
	flag.IntVar(&cfg.CameraDevice, "device", -1, "capture device id; -1 uses the still image")
	flag.StringVar(&cfg.SourceSpace, "source-space", "BGR", "color space of incoming frames")
	flag.StringVar(&cfg.ThreshSpace, "thresh-space", "", "color space to threshold in; empty picks the first configured entry")
	flag.DurationVar(&cfg.FrameInterval, "interval", 100*time.Millisecond, "re-classification interval for still images")
	flag.StringVar(&cfg.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	return cfg
}

func run(cfg config.App, log logger.Logger) error {
	if cfg.Param == "" {
		return fmt.Errorf("missing -param: which threshold configuration to load")
	}

	sourceSpace, err := colorspace.ParseSpace(cfg.SourceSpace)
	if err != nil {
		return err
	}

	var threshSpace colorspace.Space
	if cfg.ThreshSpace != "" {
		threshSpace, err = colorspace.ParseSpace(cfg.ThreshSpace)
		if err != nil {
			return err
		}
	}

	store, err := config.LoadStore(cfg.ParamFile)
	if err != nil {
		return err
	}

	spec, err := threshold.FromStore(store, cfg.Param, sourceSpace, threshSpace, threshold.WithLogger(log))
	if err != nil {
		return err
	}

	log.Info("main", "threshold spec loaded", map[string]interface{}{
		"param":        cfg.Param,
		"source_space": string(spec.SourceSpace()),
		"thresh_space": string(spec.ThreshSpace()),
		"channels":     spec.Channels(),
	})

	source, err := openSource(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fyneApp := app.NewWithID(appID)
	window := fyneApp.NewWindow(appName)

	panel := gui.NewTunerPanel()
	maskView := gui.NewMaskView()

	session := tuning.Attach(spec, panel, log)

	runner := pipeline.NewRunner(spec, source, func(mask gocv.Mat) {
		defer mask.Close()
		if err := maskView.SetMask(mask); err != nil {
			log.Error("main", err, nil)
		}
	}, log)

	// The source may only be closed once the runner has fully stopped:
	// a frame clone or classify can still be touching the underlying
	// Mat after ctx is cancelled, until Run returns.
	runnerDone := make(chan struct{})
	go func() {
		defer close(runnerDone)

		if err := runner.Run(ctx); err != nil {
			log.Error("pipeline", err, nil)
		}

		metrics := runner.Metrics()
		log.Info("pipeline", "processing stopped", map[string]interface{}{
			"frames":   metrics.Frames,
			"failures": metrics.Failures,
		})

		fyne.Do(func() {
			window.Close()
		})
	}()

	window.SetContent(container.NewHSplit(panel.Container(), maskView.Canvas()))
	window.Resize(fyne.NewSize(960, 540))
	window.SetOnClosed(func() {
		session.Detach()
		cancel()
	})

	window.ShowAndRun()

	cancel()
	<-runnerDone
	return source.Close()
}

func openSource(cfg config.App) (pipeline.FrameSource, error) {
	if cfg.CameraDevice >= 0 {
		return pipeline.NewCameraSource(cfg.CameraDevice)
	}
	if cfg.ImagePath == "" {
		return nil, fmt.Errorf("either -image or -device is required")
	}
	return pipeline.NewStillSource(cfg.ImagePath, cfg.FrameInterval)
}
