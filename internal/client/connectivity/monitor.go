// Package connectivity polls the backend's health endpoint and exposes a
// debounced online/offline signal. Raw probe results flap on marginal
// networks, so a state change is only committed after it has stayed
// stable for a full debounce window.
package connectivity

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Probe answers a single reachability question. A nil error means online.
type Probe interface {
	Check(ctx context.Context) error
}

// ProbeFunc adapts a plain function to the Probe interface.
type ProbeFunc func(ctx context.Context) error

func (f ProbeFunc) Check(ctx context.Context) error { return f(ctx) }

const (
	defaultInterval     = 10 * time.Second
	defaultStableWindow = 1500 * time.Millisecond
	defaultProbeTimeout = 5 * time.Second
)

// Config tunes the monitor's polling cadence.
type Config struct {
	// Interval between probes.
	Interval time.Duration
	// StableWindow is how long a raw state change must persist before it
	// is committed and broadcast.
	StableWindow time.Duration
	// ProbeTimeout bounds a single probe.
	ProbeTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = defaultInterval
	}
	if c.StableWindow <= 0 {
		c.StableWindow = defaultStableWindow
	}
	if c.ProbeTimeout <= 0 {
		c.ProbeTimeout = defaultProbeTimeout
	}
	return c
}

// Monitor periodically probes connectivity and publishes a debounced
// online flag. The process starts pessimistic: offline until the first
// successful probe has held for the stable window.
type Monitor struct {
	probe  Probe
	logger *slog.Logger
	cfg    Config

	online atomic.Bool

	mu     sync.Mutex
	subs   map[int]chan bool
	nextID int

	// candidate is the last raw probe result that differs from the
	// committed state, and candidateSince is when it first appeared.
	candidate      bool
	candidateSince time.Time
	hasCandidate   bool

	cancel context.CancelFunc
	done   chan struct{}
}

// NewMonitor creates a stopped monitor. Call Start to begin probing.
func NewMonitor(probe Probe, cfg Config, logger *slog.Logger) *Monitor {
	return &Monitor{
		probe:  probe,
		cfg:    cfg.withDefaults(),
		logger: logger,
		subs:   make(map[int]chan bool),
	}
}

// IsOnline reports the current committed connectivity state.
func (m *Monitor) IsOnline() bool {
	return m.online.Load()
}

// Subscribe returns a channel receiving every committed state change and
// a cancel function. The channel is buffered and drops stale values, so a
// slow consumer only ever misses intermediate states, never the latest.
func (m *Monitor) Subscribe() (<-chan bool, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	ch := make(chan bool, 1)
	m.subs[id] = ch

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if _, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

func (m *Monitor) broadcast(online bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.subs {
		// Replace a stale unread value instead of blocking.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- online:
		default:
		}
	}
}

// Start launches the polling loop. It probes immediately, then on every
// interval tick until Stop is called or ctx is cancelled.
func (m *Monitor) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)

		ticker := time.NewTicker(m.cfg.Interval)
		defer ticker.Stop()

		m.observe(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.observe(ctx)
			}
		}
	}()
}

// Stop halts the polling loop and waits for it to exit.
func (m *Monitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}

// observe runs one probe and applies the debounce rule: a raw state that
// matches the committed state clears any pending candidate; a differing
// raw state becomes (or remains) the candidate and is committed once it
// has been held for the stable window.
func (m *Monitor) observe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, m.cfg.ProbeTimeout)
	err := m.probe.Check(probeCtx)
	cancel()

	raw := err == nil
	committed := m.online.Load()

	if raw == committed {
		m.hasCandidate = false
		return
	}

	now := time.Now()
	if !m.hasCandidate || m.candidate != raw {
		m.candidate = raw
		m.candidateSince = now
		m.hasCandidate = true
	}

	if now.Sub(m.candidateSince) < m.cfg.StableWindow {
		return
	}

	m.hasCandidate = false
	m.online.Store(raw)
	m.logger.Info("connectivity changed", "online", raw)
	m.broadcast(raw)
}
