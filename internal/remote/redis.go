// Package remote implements ranked leaderboard lists shared between players.
// The lists are append-only; callers deduplicate before writing and after
// reading.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vovakirdan/tripgames/internal/leaderboard"
)

// ErrUnavailable is returned when no remote store is configured or reachable.
var ErrUnavailable = errors.New("remote: leaderboard store unavailable")

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Redis stores each game's list in a sorted set "<game>_leaderboard".
// Members are JSON records; the set score is the ranking value.
type Redis struct {
	client *redis.Client
	logger *log.Logger
}

var _ leaderboard.Remote = (*Redis)(nil)

// Connect opens a client and pings it. An empty address or a failed ping
// returns ErrUnavailable so the caller can run in local-only mode.
func Connect(ctx context.Context, opts Options, logger *log.Logger) (*Redis, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Addr == "" {
		return nil, ErrUnavailable
	}
	client := redis.NewClient(&redis.Options{Addr: opts.Addr, Password: opts.Password, DB: opts.DB})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", ErrUnavailable, opts.Addr, err)
	}
	logger.Info("remote leaderboard connected", "addr", opts.Addr)
	return &Redis{client: client, logger: logger}, nil
}

// Close releases the client.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Key returns the sorted set key for a game.
func Key(game string) string {
	return game + "_leaderboard"
}

// maxRankMillis caps the time component of a FewerMoves rank so it never
// spills into the move count.
const maxRankMillis = 999_999

// Rank converts an entry to its sorted set score. For FewerMoves the
// elapsed time in milliseconds breaks ties between equal move counts.
// Rounds longer than maxRankMillis tie on time.
func Rank(order leaderboard.Order, e leaderboard.Entry) float64 {
	if order == leaderboard.FewerMoves {
		ms := min(max(int64(e.Seconds*1000), 0), maxRankMillis)
		return float64(e.Moves)*1e6 + float64(ms)
	}
	return float64(e.Score)
}

// Insert appends an entry stamped with the server's time. An entry without
// an id gets a fresh one.
func (r *Redis) Insert(ctx context.Context, game string, order leaderboard.Order, e leaderboard.Entry) (string, error) {
	now, err := r.client.Time(ctx).Result()
	if err != nil {
		return "", fmt.Errorf("remote: server time: %w", err)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.CreatedAt = now.UTC()

	member, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("remote: encode entry: %w", err)
	}
	if err := r.client.ZAdd(ctx, Key(game), redis.Z{Score: Rank(order, e), Member: string(member)}).Err(); err != nil {
		return "", fmt.Errorf("remote: insert into %s: %w", Key(game), err)
	}
	return e.ID, nil
}

// Top returns up to limit entries in ranking order. Extra rows are read
// because the same player may appear more than once.
func (r *Redis) Top(ctx context.Context, game string, order leaderboard.Order, limit int) ([]leaderboard.Entry, error) {
	if limit <= 0 {
		limit = 5
	}
	members, err := r.client.ZRangeArgs(ctx, redis.ZRangeArgs{
		Key:   Key(game),
		Start: 0,
		Stop:  int64(limit*4 - 1),
		Rev:   order == leaderboard.HigherScore,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("remote: query %s: %w", Key(game), err)
	}

	entries := make([]leaderboard.Entry, 0, len(members))
	for _, m := range members {
		var e leaderboard.Entry
		if err := json.Unmarshal([]byte(m), &e); err != nil {
			r.logger.Warn("skipping malformed remote entry", "key", Key(game), "err", err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}
