package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-chanscan/dsp/chandetect"
	"github.com/cwbudde/algo-chanscan/internal/source"
	"github.com/cwbudde/algo-chanscan/internal/store"
	frequencystats "github.com/cwbudde/algo-chanscan/stats/frequency"
)

// result is the outcome of streaming one source through a detector.
type result struct {
	Source    string
	Config    chandetect.Config
	Samples   uint64
	Windows   uint64
	Cycles    uint64
	BinWidth  float64
	Cutoff    float64
	SessionID int64
	Channels  []chandetect.Channel
	Spectrum  frequencystats.Stats
}

// run streams src through a detector built from cfg. The detector sample
// rate comes from the source; a non-zero configured rate must match it.
// When rec is non-nil every segmentation cycle is recorded.
func run(ctx context.Context, name string, src source.Source, cfg chandetect.Config, logger *zap.Logger, rec *store.Store) (*result, error) {
	rate := src.SampleRate()
	if cfg.SampleRate != 0 && cfg.SampleRate != rate {
		return nil, fmt.Errorf("configured sample rate %d Hz does not match %s (%d Hz)", cfg.SampleRate, name, rate)
	}
	cfg.SampleRate = rate

	res := &result{Source: name, Config: cfg}
	opts := []chandetect.Option{chandetect.WithLogger(logger)}

	var recErr error
	if rec != nil {
		id, err := rec.CreateSession(ctx, name, cfg)
		if err != nil {
			return nil, fmt.Errorf("recording session: %w", err)
		}
		res.SessionID = id
		opts = append(opts, chandetect.WithCycleHook(func(c chandetect.Cycle) {
			if recErr == nil {
				recErr = rec.RecordCycle(ctx, id, c.Index, c.Channels)
			}
		}))
	}

	det, err := chandetect.New(cfg, opts...)
	if err != nil {
		return nil, err
	}

	logger.Info("scanning",
		zap.String("source", name),
		zap.Int("sample_rate", rate),
		zap.Int("window_size", cfg.WindowSize),
		zap.Float64("alpha", cfg.Alpha),
		zap.Int("decimation", cfg.Decimation),
	)

	buf := make([]complex128, cfg.WindowSize)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := src.Read(buf)
		if n > 0 {
			if ferr := det.FeedBlock(buf[:n]); ferr != nil {
				return nil, ferr
			}
			res.Samples += uint64(n)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if recErr != nil {
			return nil, fmt.Errorf("recording cycle: %w", recErr)
		}
	}
	if recErr != nil {
		return nil, fmt.Errorf("recording cycle: %w", recErr)
	}

	res.Windows = det.Windows()
	res.Cycles = det.Cycles()
	res.BinWidth = det.BinWidth()
	res.Channels = det.Channels()
	res.Spectrum = frequencystats.Calculate(det.Spectrum(), det.BinWidth())
	res.Cutoff = det.Cutoff()

	if res.Cycles == 0 {
		logger.Warn("source too short for a detection cycle",
			zap.Uint64("windows", res.Windows),
			zap.Uint64("needed", cfg.SettleWindows()),
		)
	}
	logger.Info("scan complete",
		zap.Uint64("samples", res.Samples),
		zap.Uint64("windows", res.Windows),
		zap.Int("channels", len(res.Channels)),
	)
	return res, nil
}
