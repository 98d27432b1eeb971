package sql

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// RenderStats holds rendering statistics.
type RenderStats struct {
	// Selects is the number of SELECT statements rendered.
	Selects atomic.Int64
	// Inserts is the number of INSERT statements rendered.
	Inserts atomic.Int64
	// Updates is the number of UPDATE statements rendered.
	Updates atomic.Int64
	// Deletes is the number of DELETE statements rendered.
	Deletes atomic.Int64
	// Sources is the number of standalone FROM sources rendered.
	Sources atomic.Int64
	// TotalDuration is the total time spent rendering.
	TotalDuration atomic.Int64 // nanoseconds
	// SlowRenders is the count of renders exceeding the slow threshold.
	SlowRenders atomic.Int64
	// Errors is the count of failed renders.
	Errors atomic.Int64
}

// Stats returns a snapshot of the current statistics.
func (s *RenderStats) Stats() StatsSnapshot {
	return StatsSnapshot{
		Selects:       s.Selects.Load(),
		Inserts:       s.Inserts.Load(),
		Updates:       s.Updates.Load(),
		Deletes:       s.Deletes.Load(),
		Sources:       s.Sources.Load(),
		TotalDuration: time.Duration(s.TotalDuration.Load()),
		SlowRenders:   s.SlowRenders.Load(),
		Errors:        s.Errors.Load(),
	}
}

// Reset resets all statistics to zero.
func (s *RenderStats) Reset() {
	s.Selects.Store(0)
	s.Inserts.Store(0)
	s.Updates.Store(0)
	s.Deletes.Store(0)
	s.Sources.Store(0)
	s.TotalDuration.Store(0)
	s.SlowRenders.Store(0)
	s.Errors.Store(0)
}

// StatsSnapshot is a point-in-time snapshot of rendering statistics.
type StatsSnapshot struct {
	Selects       int64
	Inserts       int64
	Updates       int64
	Deletes       int64
	Sources       int64
	TotalDuration time.Duration
	SlowRenders   int64
	Errors        int64
}

// Total returns the number of renders of any kind.
func (s StatsSnapshot) Total() int64 {
	return s.Selects + s.Inserts + s.Updates + s.Deletes + s.Sources
}

// AvgRenderDuration returns the average render duration.
func (s StatsSnapshot) AvgRenderDuration() time.Duration {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(total)
}

// String returns a human-readable summary of the statistics.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf(
		"selects=%d inserts=%d updates=%d deletes=%d sources=%d duration=%s avg=%s slow=%d errors=%d",
		s.Selects, s.Inserts, s.Updates, s.Deletes, s.Sources,
		s.TotalDuration, s.AvgRenderDuration(), s.SlowRenders, s.Errors,
	)
}

// SlowRenderHook is called when a render exceeds the slow threshold.
type SlowRenderHook func(query string, duration time.Duration)

// StatsRenderer wraps a Renderer and records statistics for its Render
// methods. Append methods are passed through unrecorded.
type StatsRenderer struct {
	Renderer
	stats         *RenderStats
	slowThreshold time.Duration
	slowHook      SlowRenderHook
	mu            sync.RWMutex
	now           func() time.Time
}

// StatsOption configures the StatsRenderer.
type StatsOption func(*StatsRenderer)

// WithSlowThreshold sets the threshold for slow render detection.
// Default is 10ms.
func WithSlowThreshold(d time.Duration) StatsOption {
	return func(s *StatsRenderer) {
		s.slowThreshold = d
	}
}

// WithSlowRenderHook sets a callback for slow renders.
func WithSlowRenderHook(hook SlowRenderHook) StatsOption {
	return func(s *StatsRenderer) {
		s.slowHook = hook
	}
}

// WithSlowRenderLog logs slow renders to the default logger.
func WithSlowRenderLog() StatsOption {
	return WithSlowRenderHook(func(query string, duration time.Duration) {
		slog.Warn("slow render detected", "duration", duration, "query", query)
	})
}

// NewStatsRenderer wraps r with statistics collection.
//
//	r := sql.NewStatsRenderer(sql.NewSQLServerRenderer(), sql.WithSlowRenderLog())
//	query, err := r.RenderSelect(s)
//	fmt.Println(r.RenderStats().Stats())
func NewStatsRenderer(r Renderer, opts ...StatsOption) *StatsRenderer {
	s := &StatsRenderer{
		Renderer:      r,
		stats:         &RenderStats{},
		slowThreshold: 10 * time.Millisecond,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RenderStats returns the underlying RenderStats for reading statistics.
func (r *StatsRenderer) RenderStats() *RenderStats {
	return r.stats
}

// SlowThreshold returns the current slow render threshold.
func (r *StatsRenderer) SlowThreshold() time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.slowThreshold
}

// SetSlowThreshold updates the slow render threshold.
func (r *StatsRenderer) SetSlowThreshold(threshold time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slowThreshold = threshold
}

// RenderSelect renders s and records statistics.
func (r *StatsRenderer) RenderSelect(s *SelectStatement) (string, error) {
	start := r.now()
	query, err := r.Renderer.RenderSelect(s)
	r.record(&r.stats.Selects, query, start, err)
	return query, err
}

// RenderInsert renders i and records statistics.
func (r *StatsRenderer) RenderInsert(i *InsertStatement) (string, error) {
	start := r.now()
	query, err := r.Renderer.RenderInsert(i)
	r.record(&r.stats.Inserts, query, start, err)
	return query, err
}

// RenderUpdate renders u and records statistics.
func (r *StatsRenderer) RenderUpdate(u *UpdateStatement) (string, error) {
	start := r.now()
	query, err := r.Renderer.RenderUpdate(u)
	r.record(&r.stats.Updates, query, start, err)
	return query, err
}

// RenderDelete renders d and records statistics.
func (r *StatsRenderer) RenderDelete(d *DeleteStatement) (string, error) {
	start := r.now()
	query, err := r.Renderer.RenderDelete(d)
	r.record(&r.stats.Deletes, query, start, err)
	return query, err
}

// RenderFrom renders c and records statistics.
func (r *StatsRenderer) RenderFrom(c FromClause) (string, error) {
	start := r.now()
	query, err := r.Renderer.RenderFrom(c)
	r.record(&r.stats.Sources, query, start, err)
	return query, err
}

func (r *StatsRenderer) record(counter *atomic.Int64, query string, start time.Time, err error) {
	duration := r.now().Sub(start)
	counter.Add(1)
	r.stats.TotalDuration.Add(int64(duration))
	if err != nil {
		r.stats.Errors.Add(1)
	}

	r.mu.RLock()
	threshold := r.slowThreshold
	hook := r.slowHook
	r.mu.RUnlock()

	if duration > threshold {
		r.stats.SlowRenders.Add(1)
		if hook != nil {
			hook(query, duration)
		}
	}
}

// DebugRenderer wraps a Renderer and logs every statement its Render
// methods produce.
type DebugRenderer struct {
	Renderer
	log func(...any)
}

// DebugOption configures the DebugRenderer.
type DebugOption func(*DebugRenderer)

// DebugWithLog sets a custom log function.
func DebugWithLog(logFunc func(...any)) DebugOption {
	return func(d *DebugRenderer) {
		d.log = logFunc
	}
}

// NewDebugRenderer wraps r with debug logging. By default statements are
// logged with slog.Debug.
func NewDebugRenderer(r Renderer, opts ...DebugOption) *DebugRenderer {
	d := &DebugRenderer{
		Renderer: r,
		log: func(v ...any) {
			slog.Debug(fmt.Sprint(v...))
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RenderSelect renders s and logs it.
func (d *DebugRenderer) RenderSelect(s *SelectStatement) (string, error) {
	return d.logged("select", func() (string, error) { return d.Renderer.RenderSelect(s) })
}

// RenderInsert renders i and logs it.
func (d *DebugRenderer) RenderInsert(i *InsertStatement) (string, error) {
	return d.logged("insert", func() (string, error) { return d.Renderer.RenderInsert(i) })
}

// RenderUpdate renders u and logs it.
func (d *DebugRenderer) RenderUpdate(u *UpdateStatement) (string, error) {
	return d.logged("update", func() (string, error) { return d.Renderer.RenderUpdate(u) })
}

// RenderDelete renders del and logs it.
func (d *DebugRenderer) RenderDelete(del *DeleteStatement) (string, error) {
	return d.logged("delete", func() (string, error) { return d.Renderer.RenderDelete(del) })
}

// RenderFrom renders c and logs it.
func (d *DebugRenderer) RenderFrom(c FromClause) (string, error) {
	return d.logged("from", func() (string, error) { return d.Renderer.RenderFrom(c) })
}

func (d *DebugRenderer) logged(kind string, render func() (string, error)) (string, error) {
	query, err := render()
	if err != nil {
		d.log(fmt.Sprintf("%s: error: %v", kind, err))
		return query, err
	}
	d.log(fmt.Sprintf("%s: %s", kind, query))
	return query, nil
}

var (
	_ Renderer = (*StatsRenderer)(nil)
	_ Renderer = (*DebugRenderer)(nil)
)
