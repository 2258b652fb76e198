// Package capture runs the background screen-grab loop that feeds every
// locally-captured session's frame buffer.
package capture

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/rs/zerolog"

	"webdesk/internal/domain"
	obs "webdesk/internal/infrastructure/observability"
	"webdesk/internal/usecase"
)

// MinInterval caps the tick rate. The capture cadence is decoupled from
// CPU availability: no consumer polls faster than a few frames per second,
// so encoding tighter than this is wasted work.
const MinInterval = 100 * time.Millisecond

type Loop struct {
	display  usecase.DisplayCapture
	encoder  usecase.FrameEncoder
	svc      *usecase.SessionService
	interval time.Duration
	logger   *zerolog.Logger
	metrics  *obs.Metrics
}

func NewLoop(display usecase.DisplayCapture, enc usecase.FrameEncoder, svc *usecase.SessionService, interval time.Duration, logger *zerolog.Logger, metrics *obs.Metrics) *Loop {
	if interval < MinInterval {
		interval = MinInterval
	}
	return &Loop{
		display:  display,
		encoder:  enc,
		svc:      svc,
		interval: interval,
		logger:   logger,
		metrics:  metrics,
	}
}

// Run ticks until ctx is cancelled. An in-flight tick completes; future
// ticks stop.
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger.Info().Dur("interval", l.interval).Msg("capture loop started")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info().Msg("capture loop stopped")
			return
		case <-ticker.C:
			l.tick(ctx)
		}
	}
}

// tick grabs the screen once and fans the encoded frame out to every
// active locally-captured session. One session's failure never aborts the
// others.
func (l *Loop) tick(ctx context.Context) {
	sessions, err := l.svc.ListActive(ctx, time.Now().UTC())
	if err != nil {
		l.logger.Error().Err(err).Msg("capture tick: list sessions")
		return
	}
	if len(sessions) == 0 {
		return
	}

	img, err := l.display.Capture(ctx)
	if err != nil {
		l.metrics.CaptureErrors.Inc()
		l.logger.Warn().Err(err).Msg("screen capture failed")
		return
	}
	capturedAt := time.Now().UTC()

	for _, sum := range sessions {
		if err := l.CaptureInto(ctx, sum.ID, img, capturedAt); err != nil {
			if errors.Is(err, domain.ErrFrameSourceConflict) {
				// session is fed by a host push; leave it alone
				continue
			}
			l.metrics.CaptureErrors.Inc()
			l.logger.Warn().Err(err).Str("session", sum.ID).Msg("frame publish failed")
		}
	}
}

// CaptureNow performs a single immediate grab-and-publish for one session,
// used to seed a fresh session with its first frame.
func (l *Loop) CaptureNow(ctx context.Context, sessionID string) error {
	img, err := l.display.Capture(ctx)
	if err != nil {
		l.metrics.CaptureErrors.Inc()
		return err
	}
	return l.CaptureInto(ctx, sessionID, img, time.Now().UTC())
}

// CaptureInto encodes a grabbed image for one session's canvas and
// publishes it. Encoding happens outside any session lock; only the
// buffer swap inside PublishFrame is serialized.
func (l *Loop) CaptureInto(ctx context.Context, sessionID string, img image.Image, capturedAt time.Time) error {
	sess, ok, err := l.svc.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrSessionNotFound
	}
	frame, err := l.encoder.Encode(img, sess.CanvasWidth, sess.CanvasHeight, capturedAt)
	if err != nil {
		return err
	}
	if err := l.svc.PublishFrame(ctx, sessionID, frame, domain.OriginCapture); err != nil {
		return err
	}
	l.metrics.FramesPublished.WithLabelValues(string(domain.OriginCapture)).Inc()
	return nil
}
