// Package engine runs indicator computation for a live bar stream. Symbols
// are partitioned across worker goroutines by consistent hashing; each
// worker exclusively owns the indicator state of its symbols, so updates
// run without locks and bars for one symbol always apply in arrival order.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tickerlab/indicator-engine/internal/models"
	"github.com/tickerlab/indicator-engine/pkg/indicator"
	"github.com/tickerlab/indicator-engine/pkg/logger"
)

// Lifecycle errors returned by Submit and Rehydrate.
var (
	ErrNotStarted = errors.New("engine not started")
	ErrStopped    = errors.New("engine stopped")
)

// Config holds indicator engine configuration
type Config struct {
	// Workers is the number of symbol-partitioned worker goroutines.
	Workers int

	// QueueSize is the per-worker bar queue depth. Submit blocks when the
	// owning worker's queue is full.
	QueueSize int

	// Indicators is the set built for every tracked symbol.
	Indicators []indicator.Spec
}

// Engine fans bars out to symbol-partitioned workers and publishes the
// resulting indicator snapshots.
type Engine struct {
	cfg   Config
	log   *zap.Logger
	parts *partitioner
	snaps *snapshotStore

	mu      sync.RWMutex
	workers []*worker
	started bool
	stopped bool

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

type workerMsg struct {
	bar models.Bar
	job *rehydrateJob
}

type rehydrateJob struct {
	id     string
	symbol string
	bars   []models.Bar
	done   chan error
}

// New creates an engine. The configuration is validated eagerly, including
// a probe build of the indicator set, so a misconfigured spec list fails
// here rather than on the first bar. A nil logger falls back to the process
// logger, which is a no-op until the host configures it with logger.Init.
func New(cfg Config, log *zap.Logger) (*Engine, error) {
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	if cfg.QueueSize < 1 {
		return nil, fmt.Errorf("queue size must be at least 1, got %d", cfg.QueueSize)
	}
	if len(cfg.Indicators) == 0 {
		return nil, fmt.Errorf("at least one indicator is required")
	}
	if _, err := indicator.BuildSet(cfg.Indicators); err != nil {
		return nil, fmt.Errorf("invalid indicator config: %w", err)
	}
	if log == nil {
		log = logger.Get()
	}

	return &Engine{
		cfg:   cfg,
		log:   log,
		parts: newPartitioner(cfg.Workers),
		snaps: newSnapshotStore(),
	}, nil
}

// Start launches the worker goroutines. The context bounds the engine's
// lifetime: cancelling it unblocks producers waiting on full queues.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopped {
		return ErrStopped
	}
	if e.started {
		return fmt.Errorf("engine already started")
	}

	e.ctx, e.cancel = context.WithCancel(ctx)
	for i := 0; i < e.cfg.Workers; i++ {
		w := newWorker(i, e.cfg, e.snaps, e.log)
		e.workers = append(e.workers, w)
		e.wg.Add(1)
		go func() {
			defer e.wg.Done()
			w.run()
		}()
	}
	e.started = true

	e.log.Info("indicator engine started",
		zap.Int("workers", e.cfg.Workers),
		zap.Int("queue_size", e.cfg.QueueSize),
		zap.Int("indicators", len(e.cfg.Indicators)),
	)
	return nil
}

// Submit validates the bar and routes it to the worker owning its symbol.
// It blocks while that worker's queue is full, providing backpressure, and
// fails once the engine is stopped or its context cancelled. Submit is safe
// for concurrent use.
func (e *Engine) Submit(bar models.Bar) error {
	if err := bar.Validate(); err != nil {
		barsRejected.Inc()
		return fmt.Errorf("invalid bar: %w", err)
	}
	return e.enqueue(context.Background(), bar.Symbol, workerMsg{bar: bar})
}

// Rehydrate rebuilds the symbol's indicator state by replaying historical
// bars, oldest first, then publishes the resulting snapshot. The replay
// runs on the worker owning the symbol and through the same queue as live
// bars, so bars submitted after Rehydrate returns apply on top of the
// replayed state. The history is validated up front; a bad history leaves
// existing state untouched.
func (e *Engine) Rehydrate(ctx context.Context, symbol string, bars []models.Bar) error {
	if symbol == "" {
		return fmt.Errorf("rehydrate: %w", models.ErrInvalidSymbol)
	}
	for i, bar := range bars {
		if bar.Symbol != symbol {
			return fmt.Errorf("rehydrate %s: bar %d belongs to %q", symbol, i, bar.Symbol)
		}
		if err := bar.Validate(); err != nil {
			return fmt.Errorf("rehydrate %s: bar %d: %w", symbol, i, err)
		}
	}

	history := make([]models.Bar, len(bars))
	copy(history, bars)

	job := &rehydrateJob{
		id:     uuid.NewString(),
		symbol: symbol,
		bars:   history,
		done:   make(chan error, 1),
	}

	e.log.Info("rehydration started",
		zap.String("job_id", job.id),
		zap.String("symbol", symbol),
		zap.Int("bars", len(history)),
	)

	if err := e.enqueue(ctx, symbol, workerMsg{job: job}); err != nil {
		return err
	}

	select {
	case err := <-job.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Latest returns a copy of the most recent snapshot for the symbol.
func (e *Engine) Latest(symbol string) (Snapshot, bool) {
	return e.snaps.get(symbol)
}

// LatestAll returns copies of the most recent snapshot of every symbol
// that has produced one.
func (e *Engine) LatestAll() map[string]Snapshot {
	return e.snaps.all()
}

// Stop closes the worker queues, waits for every queued bar to be applied
// and published, then releases the engine context. Snapshots remain
// readable after Stop. Stop is idempotent.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	started := e.started
	for _, w := range e.workers {
		close(w.queue)
	}
	e.mu.Unlock()

	e.wg.Wait()
	if e.cancel != nil {
		e.cancel()
	}
	if started {
		e.log.Info("indicator engine stopped")
	}
}

// enqueue routes a message to the worker owning the symbol. The engine
// lock is held in read mode across the send, so Stop cannot close a queue
// with a send in flight.
func (e *Engine) enqueue(ctx context.Context, symbol string, msg workerMsg) error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.stopped {
		return ErrStopped
	}
	if !e.started {
		return ErrNotStarted
	}

	w := e.workers[e.parts.partition(symbol)]
	select {
	case w.queue <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-e.ctx.Done():
		return e.ctx.Err()
	}
}

// worker owns the indicator state of every symbol hashed to it. All state
// access happens on the worker's goroutine.
type worker struct {
	id    int
	label string
	queue chan workerMsg
	specs []indicator.Spec
	sets  map[string]*indicator.IndicatorSet
	snaps *snapshotStore
	log   *zap.Logger
}

func newWorker(id int, cfg Config, snaps *snapshotStore, log *zap.Logger) *worker {
	return &worker{
		id:    id,
		label: fmt.Sprintf("%d", id),
		queue: make(chan workerMsg, cfg.QueueSize),
		specs: cfg.Indicators,
		sets:  make(map[string]*indicator.IndicatorSet),
		snaps: snaps,
		log:   log.With(zap.Int("worker", id)),
	}
}

// run drains the queue until it is closed. Every message enqueued before
// Stop is applied before the worker exits.
func (w *worker) run() {
	for msg := range w.queue {
		if msg.job != nil {
			w.runJob(msg.job)
			continue
		}
		w.process(msg.bar)
	}
}

func (w *worker) process(bar models.Bar) {
	set, err := w.setFor(bar.Symbol)
	if err != nil {
		w.log.Error("build indicator set",
			zap.String("symbol", bar.Symbol),
			zap.Error(err),
		)
		return
	}

	start := time.Now()
	values := set.Update(bar.Candle())
	updateLatency.WithLabelValues(w.label).Observe(time.Since(start).Seconds())
	barsProcessed.WithLabelValues(w.label).Inc()

	// Nothing ready yet while indicators warm up.
	if len(values) == 0 {
		return
	}

	w.snaps.publish(bar.Symbol, bar.Timestamp, values)
	snapshotsPublished.Inc()
}

func (w *worker) runJob(job *rehydrateJob) {
	set, err := w.setFor(job.symbol)
	if err != nil {
		job.done <- err
		return
	}

	set.Reset()
	var (
		values map[string]float64
		last   time.Time
	)
	for _, bar := range job.bars {
		values = set.Update(bar.Candle())
		last = bar.Timestamp
	}
	if len(values) > 0 {
		w.snaps.publish(job.symbol, last, values)
		snapshotsPublished.Inc()
	}
	rehydrationsTotal.Inc()

	w.log.Info("rehydration complete",
		zap.String("job_id", job.id),
		zap.String("symbol", job.symbol),
		zap.Int("bars", len(job.bars)),
	)
	job.done <- nil
}

// setFor returns the symbol's indicator set, building it on first sight.
func (w *worker) setFor(symbol string) (*indicator.IndicatorSet, error) {
	if set, ok := w.sets[symbol]; ok {
		return set, nil
	}

	set, err := indicator.BuildSet(w.specs)
	if err != nil {
		return nil, err
	}
	w.sets[symbol] = set
	symbolsTracked.WithLabelValues(w.label).Inc()

	w.log.Debug("tracking new symbol", zap.String("symbol", symbol))
	return set, nil
}
