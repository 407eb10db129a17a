package listcord

import (
	"context"
	"log/slog"
	"time"

	"github.com/listcord/listcord-go/internal/helpers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"
)

const (
	// DefaultStatsInterval is the autopost period when none is configured.
	DefaultStatsInterval = 30 * time.Minute
	// MinStatsInterval is the lowest accepted autopost period. The floor
	// exists to keep autoposting clients from hammering the API.
	MinStatsInterval = 15 * time.Minute
)

var autoposts = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "listcord_autopost_total",
	Help: "A counter of automatic stats posts by result.",
}, []string{"result"})

// AutoPoster periodically submits bot statistics derived from the host
// adapter. It arms on the host's ready signal and keeps posting until the
// context passed to Start is cancelled. Ticks are independent: a failed
// post never stops the schedule, and overlapping posts are permitted.
type AutoPoster struct {
	client   *Client
	interval time.Duration
	logger   *slog.Logger
	onPosted []func()
	onError  []func(error)
	warnOnce rate.Sometimes
}

// AutoPostOption defines a function type used to configure an AutoPoster.
type AutoPostOption func(*AutoPoster)

// WithInterval sets the autopost period. NewAutoPoster rejects values below
// MinStatsInterval.
func WithInterval(interval time.Duration) AutoPostOption {
	return func(a *AutoPoster) {
		a.interval = interval
	}
}

// WithAutoPostLogger sets a custom slog.Logger for the AutoPoster.
func WithAutoPostLogger(logger *slog.Logger) AutoPostOption {
	return func(a *AutoPoster) {
		a.logger = logger
	}
}

// WithOnPosted registers a callback invoked after each successful post.
func WithOnPosted(f func()) AutoPostOption {
	return func(a *AutoPoster) {
		a.onPosted = append(a.onPosted, f)
	}
}

// WithOnError registers a callback invoked with each failed post's error.
func WithOnError(f func(error)) AutoPostOption {
	return func(a *AutoPoster) {
		a.onError = append(a.onError, f)
	}
}

// NewAutoPoster creates an autoposter bound to the client's host adapter.
// It fails with ErrNoHost when the client has none and with
// ErrIntervalTooShort when the configured interval is below the floor.
func (c *Client) NewAutoPoster(opts ...AutoPostOption) (*AutoPoster, error) {
	if c.host == nil {
		return nil, ErrNoHost
	}
	_inst := &AutoPoster{
		client:   c,
		interval: DefaultStatsInterval,
		warnOnce: helpers.OnceAMinute(),
	}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.interval < MinStatsInterval {
		return nil, ErrIntervalTooShort
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	return _inst, nil
}

// Interval returns the configured autopost period.
func (a *AutoPoster) Interval() time.Duration {
	return a.interval
}

// Start arms the autoposter: once the host signals ready it posts stats
// immediately and then on every interval tick until ctx is cancelled. Start
// returns without waiting for the ready signal.
func (a *AutoPoster) Start(ctx context.Context) {
	a.client.host.OnReady(func() {
		go a.run(ctx)
	})
}

func (a *AutoPoster) run(ctx context.Context) {
	a.logger.Info("autopost armed", slog.Duration("interval", a.interval))
	a.post(ctx)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			a.post(ctx)
		case <-ctx.Done():
			a.logger.Info("autopost stopped")
			return
		}
	}
}

// post performs one tick. Failures are funnelled into the error callbacks
// so the host application observes them without crashing.
func (a *AutoPoster) post(ctx context.Context) {
	if _, err := a.client.PostStats(ctx, nil); err != nil {
		autoposts.WithLabelValues("error").Inc()
		a.warnOnce.Do(func() {
			a.logger.Warn("failed to post stats", slog.Any("error", err))
		})
		for _, f := range a.onError {
			f(err)
		}
		return
	}
	autoposts.WithLabelValues("posted").Inc()
	a.logger.Debug("stats posted")
	for _, f := range a.onPosted {
		f()
	}
}
