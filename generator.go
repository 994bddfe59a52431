package dagrand

import (
	"encoding/binary"
	"iter"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/quillon/dagrand/internal/graph"
	"github.com/quillon/dagrand/internal/health"
	"github.com/quillon/dagrand/internal/node"
	"github.com/quillon/dagrand/internal/seq"
)

// Generator is one deterministic generation engine instance.
//
// Public methods are serialized by an internal mutex; independent
// instances share nothing and run fully in parallel. The health monitor
// is the only background goroutine and is never on the generation path.
//
// INVARIANTS:
//   - Exactly eight nodes exist for the generator's lifetime.
//   - The topology observed by a cycle was fixed before the cycle began.
//   - A failed cycle mutates nothing and emits nothing (fail closed).
type Generator struct {
	mu  sync.Mutex
	id  string
	cfg config
	log *slog.Logger

	nodes  [graph.NumNodes]*node.Node
	topo   *graph.Topology
	prev   [graph.NumNodes]uint64 // frozen outputs of the last cycle
	cycle  uint64                 // index of the next cycle
	closed bool

	monitor   *health.Monitor
	reseeding atomic.Bool

	// pending Read bytes of a partially consumed word
	readBuf [8]byte
	readLen int
}

// New creates a seeded generator. The seed must carry at least
// MinSeedBytes bytes; a fixed expansion derives all initial node and
// topology state from it, so equal seeds yield byte-identical streams.
func New(seed []byte, opts ...Option) (*Generator, error) {
	if len(seed) < MinSeedBytes {
		return nil, &InvalidSeedError{Len: len(seed)}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Generator{
		id:  uuid.NewString(),
		cfg: cfg,
	}
	log := cfg.logger
	if log == nil {
		log = slog.Default()
	}
	g.log = log

	var metrics *health.Metrics
	if cfg.registerer != nil {
		metrics = health.NewMetrics(cfg.registerer)
	}
	g.monitor = health.New(health.Config{
		WindowSize:           cfg.windowSize,
		FrequencyThreshold:   cfg.freqThresh,
		CorrelationThreshold: cfg.corrThresh,
		GeneratorID:          g.id,
		Logger:               log,
		Metrics:              metrics,
	})

	g.install(expandSeed(seed))

	log.Debug("generator created",
		"generator_id", g.id,
		"epoch_length", cfg.epochLength,
		"rank_period", cfg.rankPeriod,
		"max_out_degree", cfg.maxOutDegree,
	)
	return g, nil
}

// install builds fresh nodes and topology from expanded seed material.
// Callers hold the mutex (or are constructing).
func (g *Generator) install(m seedMaterial) {
	for i := 0; i < graph.NumNodes; i++ {
		s := seq.New(seq.Constant(i), g.cfg.precisionCap)
		g.nodes[i] = node.New(i, m.states[i], m.metas[i], s)
	}
	g.topo = graph.New(m.order, g.cfg.maxOutDegree)
	g.topo.Rewire(m.states)
	g.prev = [graph.NumNodes]uint64{}
	g.cycle = 0
	g.readLen = 0
}

// ID returns the generator's instance id.
func (g *Generator) ID() string { return g.id }

// NextUint64 runs one cycle and returns the emitted word. On error
// (precision exhaustion) no word is produced and no state advances.
func (g *Generator) NextUint64() (uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return 0, ErrClosed
	}
	return g.step()
}

// Fill returns a lazy, finite sequence of n words. The sequence is
// one-shot: every consumed word advances generator state, so it cannot be
// restarted. Iteration stops after yielding the first error.
func (g *Generator) Fill(n int) iter.Seq2[uint64, error] {
	return func(yield func(uint64, error) bool) {
		for i := 0; i < n; i++ {
			w, err := g.NextUint64()
			if err != nil {
				yield(0, err)
				return
			}
			if !yield(w, nil) {
				return
			}
		}
	}
}

// Read implements io.Reader over the word stream, little-endian. External
// statistical harnesses consume the stream through this. Fail-closed: an
// exhausted sequence surfaces as the error with no partial-cycle bytes.
func (g *Generator) Read(p []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return 0, ErrClosed
	}

	n := 0
	for n < len(p) {
		if g.readLen == 0 {
			w, err := g.step()
			if err != nil {
				return n, err
			}
			binary.LittleEndian.PutUint64(g.readBuf[:], w)
			g.readLen = 8
		}
		c := copy(p[n:], g.readBuf[8-g.readLen:])
		n += c
		g.readLen -= c
	}
	return n, nil
}

// Health returns the latest advisory report. Non-blocking.
func (g *Generator) Health() health.Report {
	return g.monitor.Latest()
}

// Reseed atomically replaces all node and topology state from a new seed
// and resets the health window. An in-flight Fill observes either fully
// pre-reseed or fully post-reseed state. A reseed overlapping another
// returns ErrReseedInProgress; the caller may retry.
func (g *Generator) Reseed(seed []byte) error {
	if len(seed) < MinSeedBytes {
		return &InvalidSeedError{Len: len(seed)}
	}
	if !g.reseeding.CompareAndSwap(false, true) {
		return ErrReseedInProgress
	}
	defer g.reseeding.Store(false)

	m := expandSeed(seed)

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return ErrClosed
	}
	g.install(m)
	g.monitor.Reset()
	g.log.Debug("generator reseeded", "generator_id", g.id)
	return nil
}

// Close stops the health monitor. Further calls on the generator return
// ErrClosed.
func (g *Generator) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.closed = true
	g.monitor.Close()
}

// step runs one cycle. Callers hold the mutex.
//
// Cycle structure (see the two-phase model in the package docs): epoch
// maintenance strictly between cycles, then phase 1 (independent chunk
// reads), a barrier, then phase 2 (independent commits against the frozen
// prior-cycle outputs), then the output fold.
func (g *Generator) step() (uint64, error) {
	g.maybeEvolve()

	// Phase 1: 8-way independent, read-only; each node touches only its
	// own sequence.
	var p1 errgroup.Group
	for _, n := range g.nodes {
		p1.Go(n.Phase1)
	}
	if err := p1.Wait(); err != nil {
		// Fail closed: no node committed anything.
		return 0, err
	}

	// Barrier passed: all raw chunks latched, all prior outputs frozen.
	snapshot := g.prev

	// Phase 2: 8-way independent; each node reads only the snapshot and
	// writes only itself.
	var outs [graph.NumNodes]uint64
	var p2 errgroup.Group
	for i, n := range g.nodes {
		p2.Go(func() error {
			var influence uint64
			for _, from := range g.topo.InEdges(i) {
				influence ^= snapshot[from]
			}
			outs[i] = n.Phase2(influence)
			return nil
		})
	}
	_ = p2.Wait() // phase 2 cannot fail

	g.prev = outs
	word := combine(outs)
	g.monitor.Observe(word, g.cycle)
	g.cycle++
	return word, nil
}

// maybeEvolve applies the epoch schedule before a cycle starts: every
// epochLength cycles the active edges rewire from current states, and
// every rankPeriod epochs the rank permutation is recomputed first from
// the accumulated counters.
func (g *Generator) maybeEvolve() {
	k := g.cfg.epochLength
	if g.cycle == 0 || g.cycle%k != 0 {
		return
	}

	epoch := g.cycle / k
	if epoch%g.cfg.rankPeriod == 0 {
		var counters [graph.NumNodes]uint64
		for i, n := range g.nodes {
			counters[i] = n.Counter()
		}
		g.topo.Reorder(counters)
	}

	var states [graph.NumNodes]uint64
	for i, n := range g.nodes {
		states[i] = n.State()
	}
	g.topo.Rewire(states)

	g.log.Debug("topology rewired",
		"generator_id", g.id,
		"cycle", g.cycle,
		"epoch", epoch,
	)
}
