package leaderboard

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Remote is a ranked list store addressable per game. Inserts are pure
// appends; deduplication happens before the write.
type Remote interface {
	Insert(ctx context.Context, game string, order Order, e Entry) (string, error)
	Top(ctx context.Context, game string, order Order, limit int) ([]Entry, error)
}

// History receives every finished attempt, qualifying or not.
type History interface {
	SaveAttempt(gameID, name string, score, moves int, seconds float64) (int64, error)
}

// Status describes the remote leaderboard connection.
type Status string

const (
	StatusOffline Status = "offline" // No remote configured
	StatusOnline  Status = "online"
	StatusError   Status = "error" // Last remote call failed
)

// DefaultRemoteTimeout bounds each remote call.
const DefaultRemoteTimeout = 5 * time.Second

// Manager is the per-game persistence service injected into a session.
// The local store is authoritative; the remote list is best-effort.
type Manager struct {
	ranking Ranking
	local   *Local
	remote  Remote
	history History
	logger  *log.Logger
	timeout time.Duration
	now     func() time.Time

	mu     sync.Mutex
	board  []Entry
	status Status
	wg     sync.WaitGroup
}

// Options configures a Manager. Zero values are valid.
type Options struct {
	Remote  Remote
	History History
	Logger  *log.Logger
	Timeout time.Duration
	Now     func() time.Time
}

// NewManager creates a manager for one game and loads its local board.
func NewManager(r Ranking, kv KV, opts Options) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Manager{
		ranking: r,
		local:   NewLocal(kv, r.Game, logger),
		remote:  opts.Remote,
		history: opts.History,
		logger:  logger.With("game", r.Game),
		timeout: opts.Timeout,
		now:     opts.Now,
		status:  StatusOffline,
	}
	if m.timeout <= 0 {
		m.timeout = DefaultRemoteTimeout
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.remote != nil {
		m.status = StatusOnline
	}
	m.Load()
	return m
}

// Ranking returns the game's ranking policy.
func (m *Manager) Ranking() Ranking {
	return m.ranking
}

// Load re-reads the local board into the cache.
func (m *Manager) Load() {
	board := m.ranking.Normalize(m.local.Board())
	m.mu.Lock()
	m.board = board
	m.mu.Unlock()
}

// Board returns a copy of the cached local board.
func (m *Manager) Board() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry(nil), m.board...)
}

// Qualifies reports whether e would enter the current board.
func (m *Manager) Qualifies(e Entry) bool {
	return m.ranking.Qualifies(m.Board(), e)
}

// Finish records a finished attempt: history row and local best value.
// It reports whether the attempt qualifies for name entry.
func (m *Manager) Finish(e Entry) bool {
	if m.history != nil {
		if _, err := m.history.SaveAttempt(m.ranking.Game, e.Name, e.Score, e.Moves, e.Seconds); err != nil {
			m.logger.Warn("save attempt failed", "err", err)
		}
	}
	m.updateBest(e)
	return m.Qualifies(e)
}

func (m *Manager) updateBest(e Entry) {
	best := m.local.HighScore()
	switch m.ranking.Order {
	case FewerMoves:
		if e.Moves <= 0 || (best > 0 && e.Moves >= best) {
			return
		}
		best = e.Moves
	default:
		if e.Score <= best {
			return
		}
		best = e.Score
	}
	if err := m.local.SetHighScore(best); err != nil {
		m.logger.Warn("save high score failed", "err", err)
	}
}

// RecordAttempt validates the name, merges the entry into the local board
// and persists it. If the entry made the board it is also sent to the remote
// store in the background. A remote failure never changes the local result.
func (m *Manager) RecordAttempt(name string, e Entry) ([]Entry, error) {
	name, err := ValidateName(name)
	if err != nil {
		return m.Board(), err
	}
	e.Name = name
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = m.now()
	}

	m.mu.Lock()
	board, added := m.ranking.Merge(m.board, e)
	m.board = board
	m.mu.Unlock()

	if err := m.local.SaveBoard(board); err != nil {
		m.logger.Warn("save leaderboard failed", "err", err)
	}
	if err := m.local.SetPlayerName(name); err != nil {
		m.logger.Warn("save player name failed", "err", err)
	}

	if added && m.remote != nil {
		m.wg.Add(1)
		go m.submit(e)
	}
	return append([]Entry(nil), board...), nil
}

func (m *Manager) submit(e Entry) {
	defer m.wg.Done()
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	id, err := m.remote.Insert(ctx, m.ranking.Game, m.ranking.Order, e)
	if err != nil {
		m.logger.Warn("remote insert failed", "name", e.Name, "err", err)
		m.setStatus(StatusError)
		return
	}
	m.logger.Debug("remote insert", "id", id, "name", e.Name)
	m.setStatus(StatusOnline)
}

// Refresh reads the remote top-N and merges it with the local board for
// display. Without a remote, or on failure, the local board is returned.
func (m *Manager) Refresh(ctx context.Context) ([]Entry, error) {
	local := m.Board()
	if m.remote == nil {
		return local, nil
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	remote, err := m.remote.Top(ctx, m.ranking.Game, m.ranking.Order, m.ranking.limit())
	if err != nil {
		m.logger.Warn("remote refresh failed", "err", err)
		m.setStatus(StatusError)
		return local, err
	}
	m.setStatus(StatusOnline)
	return m.ranking.Normalize(append(remote, local...)), nil
}

// Status returns the remote connection status.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *Manager) setStatus(s Status) {
	m.mu.Lock()
	m.status = s
	m.mu.Unlock()
}

// Wait blocks until background remote submissions finish.
func (m *Manager) Wait() {
	m.wg.Wait()
}

// HighScore returns the stored best value for the game.
func (m *Manager) HighScore() int {
	return m.local.HighScore()
}

// SetHighScore overwrites the stored best value.
func (m *Manager) SetHighScore(v int) error {
	return m.local.SetHighScore(v)
}

// Clear wipes the local board and best value. The shared leaderboard is
// left untouched.
func (m *Manager) Clear() error {
	if err := m.local.Clear(); err != nil {
		return err
	}
	m.Load()
	return nil
}

// PlayerName returns the remembered player name.
func (m *Manager) PlayerName() string {
	return m.local.PlayerName()
}

// SetPlayerName validates and remembers the player name.
func (m *Manager) SetPlayerName(name string) error {
	name, err := ValidateName(name)
	if err != nil {
		return err
	}
	return m.local.SetPlayerName(name)
}
