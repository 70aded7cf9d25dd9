// Package state owns the in-memory LeveMagi state tree and reconciles
// it with the remote bot API and the local snapshot.
//
// Every mutation is applied locally first, synchronously, by cloning
// the tree and swapping it in whole; the matching remote write is
// fired afterwards and never awaited. Lost writes are recovered by the
// next poll, which adopts the server's full state wholesale.
package state

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mogumo/levemagi/internal/api"
	"github.com/mogumo/levemagi/internal/events"
	"github.com/mogumo/levemagi/internal/leveling"
	"github.com/mogumo/levemagi/internal/localstore"
	"github.com/mogumo/levemagi/internal/migration"
	"github.com/mogumo/levemagi/internal/model"
	"github.com/mogumo/levemagi/internal/xp"
)

// DefaultPollInterval is how often the remote state is refetched.
const DefaultPollInterval = 30 * time.Second

// writeTimeout bounds each fire-and-forget remote write.
const writeTimeout = 10 * time.Second

// Options configures a Store. Zero values get sensible defaults; a nil
// Client means unauthenticated (local-only) operation.
type Options struct {
	Client       api.Client
	Local        *localstore.Store
	Events       events.Publisher
	Logger       *slog.Logger
	PollInterval time.Duration
	LevelPolicy  leveling.Policy
	Rand         *rand.Rand
	Now          func() time.Time
}

// Store is the single source of truth for the state tree. All methods
// are safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	st     model.State
	remote api.Client // nil once logged out
	loaded bool

	local  *localstore.Store
	pub    events.Publisher
	logger *slog.Logger

	policy   leveling.Policy
	interval time.Duration
	now      func() time.Time
	drawer   *leveling.Drawer

	// gen is bumped on logout/close so in-flight fetches from a dead
	// epoch are dropped instead of resurrecting stale state.
	gen atomic.Uint64

	pollMu   sync.Mutex
	pollStop chan struct{}
	pollDone chan struct{}
	refresh  chan struct{}
	visible  atomic.Bool

	writes sync.WaitGroup
}

// New creates a Store. Call Init before anything else.
func New(opts Options) *Store {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Events == nil {
		opts.Events = &events.NoopPublisher{}
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Store{
		st:       model.NewState(),
		remote:   opts.Client,
		local:    opts.Local,
		pub:      opts.Events,
		logger:   opts.Logger,
		policy:   opts.LevelPolicy,
		interval: opts.PollInterval,
		now:      opts.Now,
		drawer:   leveling.NewDrawer(opts.Rand),
	}
	s.visible.Store(true)
	return s
}

// Init loads initial state. With a credential it fetches the remote
// tree and performs the one-time import of local-only data when the
// remote is empty; without one (or when the fetch fails) it falls back
// to the migrated local snapshot. Init always leaves the store loaded
// so callers are never blocked on a dead backend.
func (s *Store) Init(ctx context.Context) {
	client := s.clientRef()
	if client == nil {
		s.adopt(s.loadLocal())
		return
	}

	remote, err := client.FetchState(ctx)
	if err != nil {
		s.logger.Error("initial state fetch failed, using local snapshot", "err", err)
		s.adopt(s.loadLocal())
		s.startPolling()
		return
	}

	if s.local != nil {
		if data, ok, lerr := s.local.Load(); lerr == nil && ok {
			migrated := migration.FromJSON(data)
			if len(migrated.Nuts) > 0 && len(remote.Nuts) == 0 {
				// First login with existing offline data: push it up
				// and adopt whatever the server made of it.
				imported, ierr := client.ImportState(ctx, migrated)
				if ierr != nil {
					s.logger.Error("state import failed, keeping snapshot for retry", "err", ierr)
				} else {
					remote = imported
					if cerr := s.local.Clear(); cerr != nil {
						s.logger.Error("clearing local snapshot", "err", cerr)
					}
				}
			} else {
				// Remote is authoritative once it has data.
				if cerr := s.local.Clear(); cerr != nil {
					s.logger.Error("clearing local snapshot", "err", cerr)
				}
			}
		} else if lerr != nil {
			s.logger.Error("reading local snapshot", "err", lerr)
		}
	}

	s.adopt(remote)
	s.startPolling()
}

func (s *Store) loadLocal() model.State {
	if s.local == nil {
		return model.NewState()
	}
	data, ok, err := s.local.Load()
	if err != nil {
		s.logger.Error("reading local snapshot", "err", err)
		return model.NewState()
	}
	if !ok {
		return model.NewState()
	}
	return migration.FromJSON(data)
}

// adopt replaces the whole tree and recomputes derived totals.
func (s *Store) adopt(st model.State) {
	st.User.TotalXP = xp.TotalXP(st.Leaves)
	s.mu.Lock()
	s.st = st
	s.loaded = true
	s.mu.Unlock()
}

// Loaded reports whether Init has completed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Snapshot returns a copy of the current state tree.
func (s *Store) Snapshot() model.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.Clone()
}

// TotalXP recomputes the authoritative XP total from the Leaf
// collection.
func (s *Store) TotalXP() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return xp.TotalXP(s.st.Leaves)
}

// Level returns the current level.
func (s *Store) Level() int {
	return leveling.LevelForXP(s.TotalXP(), s.policy)
}

// Progress reports XP progress within the current level.
func (s *Store) Progress() leveling.Progress {
	return leveling.XPToNextLevel(s.TotalXP(), s.policy)
}

// SaveLocal writes the current tree to the local snapshot. Callers use
// this in unauthenticated mode, where no remote persistence happens.
func (s *Store) SaveLocal() error {
	if s.local == nil {
		return nil
	}
	return s.local.Save(s.Snapshot())
}

// Logout drops the credential: polling stops, in-flight fetches are
// discarded, and subsequent mutations stay local-only.
func (s *Store) Logout() {
	s.gen.Add(1)
	s.stopPolling()
	s.mu.Lock()
	s.remote = nil
	s.mu.Unlock()
}

// Close tears the orchestrator down: polling stops and outstanding
// fire-and-forget writes are waited for.
func (s *Store) Close() {
	s.gen.Add(1)
	s.stopPolling()
	s.writes.Wait()
}

// clientRef returns the current remote client, or nil.
func (s *Store) clientRef() api.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.remote
}

// mutate clones the tree, applies fn, recomputes derived totals and
// swaps the result in. Readers never observe a partial update.
func (s *Store) mutate(fn func(st *model.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.st.Clone()
	fn(&next)
	next.User.TotalXP = xp.TotalXP(next.Leaves)
	s.st = next
}

// asyncWrite fires a best-effort remote write. Failures are logged and
// swallowed; the next poll is the recovery mechanism.
func (s *Store) asyncWrite(op string, fn func(ctx context.Context, c api.Client) error) {
	client := s.clientRef()
	if client == nil {
		return
	}
	s.writes.Add(1)
	go func() {
		defer s.writes.Done()
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := fn(ctx, client); err != nil {
			s.logger.Error("remote write failed", "op", op, "err", err)
		}
	}()
}

// publish sends a progression event, best effort.
func (s *Store) publish(topic string, event any) {
	if err := s.pub.Publish(context.Background(), topic, event); err != nil {
		s.logger.Error("event publish failed", "topic", topic, "err", err)
	}
}
