package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"slate/internal/config"
	"slate/internal/ffmpeg"
	"slate/internal/joblog"
	"slate/internal/logging"
	"slate/internal/notify"
	"slate/internal/sequence"
)

// transcodeOptions carries per-invocation overrides on top of config
// defaults.
type transcodeOptions struct {
	Preset    string
	Output    string
	FrameRate int
}

// runTranscode drives one ffmpeg transcode end to end: sequence detection,
// output resolution, job logging, notifications, execution.
func runTranscode(ctx context.Context, cfg *config.Config, logger *slog.Logger,
	store *joblog.Store, notifier notify.Service, input string, opts transcodeOptions) error {

	absInput, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if info, err := os.Stat(absInput); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("input does not exist: %s", absInput)
		}
		return fmt.Errorf("inspect input: %w", err)
	} else if info.IsDir() {
		return fmt.Errorf("%s is a directory", absInput)
	}

	presetName := opts.Preset
	if presetName == "" {
		presetName = cfg.Transcode.Preset
	}
	preset := ffmpeg.Preset(presetName)

	seqInfo := sequence.ParseSequence(absInput)
	output := opts.Output
	if output == "" {
		output = defaultOutputPath(cfg, seqInfo, preset)
	}

	req := ffmpeg.Request{
		Input:     absInput,
		Output:    output,
		Preset:    preset,
		CRF:       cfg.Transcode.CRF,
		Overwrite: cfg.Transcode.Overwrite,
	}
	if seqInfo.IsSequence {
		start, _ := seqInfo.FrameNumber()
		rate := opts.FrameRate
		if rate <= 0 {
			rate = cfg.Transcode.FrameRate
		}
		req.Input = seqInfo.Pattern
		req.IsSequence = true
		req.StartNumber = start
		req.FrameRate = rate
	}

	args, err := ffmpeg.Args(req)
	if err != nil {
		return err
	}

	jobName := sequence.DisplayName(absInput)
	logger.Info("transcode started",
		logging.String("input", req.Input),
		logging.String("output", output),
		logging.String("preset", string(preset)))

	job, err := store.Begin(ctx, "ffmpeg", absInput, output)
	if err != nil {
		return err
	}
	if cfg.Notifications.Started {
		if err := notifier.RenderStarted(ctx, jobName); err != nil {
			logger.Warn("notify failed", logging.Error(err))
		}
	}

	started := time.Now()
	runner := ffmpeg.NewRunner(cfg.Transcode.FFmpegBinary)
	runErr := runner.Run(ctx, args, func(u ffmpeg.ProgressUpdate) {
		logger.Debug("transcode progress", logging.Duration("position", u.Position))
	})
	elapsed := time.Since(started)

	if runErr != nil {
		if err := store.Fail(ctx, job.ID, runErr.Error()); err != nil {
			logger.Warn("job log update failed", logging.Error(err))
		}
		if cfg.Notifications.Errors {
			if err := notifier.RenderFailed(ctx, jobName, runErr); err != nil {
				logger.Warn("notify failed", logging.Error(err))
			}
		}
		return runErr
	}

	if err := store.Complete(ctx, job.ID, output); err != nil {
		logger.Warn("job log update failed", logging.Error(err))
	}
	if cfg.Notifications.Completed {
		if err := notifier.RenderCompleted(ctx, jobName, elapsed); err != nil {
			logger.Warn("notify failed", logging.Error(err))
		}
	}
	logger.Info("transcode finished",
		logging.String("output", output),
		logging.Duration("elapsed", elapsed.Round(time.Second)))
	return nil
}

// defaultOutputPath places the transcode next to the input (or in the
// configured output directory) named after the sequence base.
func defaultOutputPath(cfg *config.Config, info sequence.Info, preset ffmpeg.Preset) string {
	name := info.SequenceBase
	if name == "" {
		name = info.Base
	}
	dir := cfg.Paths.OutputDir
	if dir == "" {
		dir = info.Directory
	}
	return filepath.Join(dir, name+preset.OutputExt())
}
