// Package tip keeps a process-wide snapshot of the virtual chain tip blue score.
package tip

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/clock"
	"go.uber.org/zap"
)

// DefaultRefreshInterval is how often the tip is refreshed when no interval is configured.
const DefaultRefreshInterval = 5 * time.Second

// Tracker refreshes the tip blue score in the background. Run is the only writer;
// BlueScore may be called from any goroutine.
type Tracker struct {
	logger    *zap.Logger
	source    BlueScoreSource
	metrics   Metrics
	interval  time.Duration
	sleep     func(context.Context, time.Duration) error
	blueScore atomic.Uint64
}

func NewTracker(source BlueScoreSource, metrics Metrics, interval time.Duration, logger *zap.Logger) (*Tracker, error) {
	if source == nil {
		return nil, errors.New("tip tracker source is required")
	}
	if metrics == nil {
		return nil, errors.New("tip tracker metrics is required")
	}
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Tracker{
		logger:   logger.Named("tipTracker"),
		source:   source,
		metrics:  metrics,
		interval: interval,
		sleep:    clock.SleepWithContext,
	}, nil
}

// BlueScore returns the last observed tip blue score, or zero before the first successful refresh.
func (t *Tracker) BlueScore() uint64 {
	return t.blueScore.Load()
}

// Run refreshes the tip until the context is canceled. Refresh failures keep the previous value.
func (t *Tracker) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := t.refresh(ctx); err != nil {
			t.logger.Warn("refresh tip blue score failed", zap.Error(err), zap.Duration("sleep", t.interval))
		}
		if err := t.sleep(ctx, t.interval); err != nil {
			return err
		}
	}
}

func (t *Tracker) refresh(ctx context.Context) error {
	started := time.Now()
	blueScore, err := t.source.GetSinkBlueScore(ctx)
	t.metrics.ObserveRefresh(err, blueScore, started)
	if err != nil {
		return err
	}
	if blueScore == 0 {
		return nil
	}

	previous := t.blueScore.Swap(blueScore)
	if previous == 0 {
		t.logger.Info("tip blue score initialized", zap.Uint64("blueScore", blueScore))
	}
	return nil
}
