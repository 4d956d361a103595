// Package stats produces the site statistics shown by the metrics endpoint.
//
// Only TotalProjects is real. Stars, forks and visitors are decorative
// values drawn from a fixed base plus bounded randomness; they are not
// telemetry and must not be read as such.
package stats

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Decorative ranges: value = base + [0, spread).
const (
	StarsBase      = 128
	StarsSpread    = 50
	ForksBase      = 24
	ForksSpread    = 10
	VisitorsBase   = 50
	VisitorsSpread = 200
)

// TimestampLayout matches an ISO-8601 UTC timestamp with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Source is the random source the service draws from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Counter reports the number of catalog records.
type Counter interface {
	Len() int
}

// Snapshot is one reading of the site statistics.
type Snapshot struct {
	TotalProjects         int `json:"total_projects"`
	TotalStars            int `json:"total_stars"`
	TotalForks            int `json:"total_forks"`
	ActiveVisitorsLast24h int `json:"active_visitors_last_24h"`
}

// Service is safe for concurrent use; draws from the source are serialized.
type Service struct {
	catalog Counter
	now     func() time.Time

	mu  sync.Mutex
	src Source
}

// NewService builds a Service. A nil src uses a time-seeded PCG source.
func NewService(catalog Counter, src Source) *Service {
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &Service{catalog: catalog, src: src, now: time.Now}
}

// WithClock replaces the service clock. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Snapshot draws a fresh set of statistics.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		TotalProjects:         s.catalog.Len(),
		TotalStars:            StarsBase + s.src.IntN(StarsSpread),
		TotalForks:            ForksBase + s.src.IntN(ForksSpread),
		ActiveVisitorsLast24h: VisitorsBase + s.src.IntN(VisitorsSpread),
	}
}

// GeneratedAt is the formatted time of a snapshot.
func (s *Service) GeneratedAt() string {
	return s.now().UTC().Format(TimestampLayout)
}
