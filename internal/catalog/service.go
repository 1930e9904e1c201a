// Package catalog maintains the in-memory catalog snapshot the HTTP layer
// serves from, and wires up the cron job that refreshes it.
package catalog

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"opphub/match-service/internal/model"
)

// Loader supplies the three catalogs. Implemented by store.Store (Postgres)
// and by FixtureLoader (YAML seed file).
type Loader interface {
	LoadHackathons(ctx context.Context) ([]model.Hackathon, error)
	LoadInternships(ctx context.Context) ([]model.Internship, error)
	LoadScholarships(ctx context.Context) ([]model.Scholarship, error)
}

// Snapshot is one consistent view of the catalog. Its slices are replaced
// wholesale on refresh and never mutated in place, so holding a Snapshot
// across a refresh is safe.
type Snapshot struct {
	Hackathons   []model.Hackathon
	Internships  []model.Internship
	Scholarships []model.Scholarship
	LoadedAt     time.Time
}

// Service owns the current Snapshot and the refresh schedule.
type Service struct {
	loader Loader
	cron   *cron.Cron
	spec   string // cron spec, e.g. "@every 6h"

	mu   sync.RWMutex
	snap Snapshot
}

// New creates a Service that refreshes every intervalHours hours.
func New(loader Loader, intervalHours int) *Service {
	return &Service{
		loader: loader,
		cron:   cron.New(cron.WithLogger(cron.DefaultLogger)),
		spec:   fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start performs one synchronous refresh so the service never serves an
// empty catalog, then starts the cron schedule.
func (s *Service) Start(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		return fmt.Errorf("initial catalog load: %w", err)
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		if err := s.Refresh(ctx); err != nil {
			log.Printf("[catalog] Refresh error: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[catalog] Refresh cron started — spec: %s", s.spec)
	return nil
}

// Stop shuts down the refresh schedule.
func (s *Service) Stop() {
	s.cron.Stop()
	log.Println("[catalog] Refresh cron stopped")
}

// Refresh loads all three catalogs and swaps in the new snapshot. A failed
// load leaves the previous snapshot in place.
func (s *Service) Refresh(ctx context.Context) error {
	hackathons, err := s.loader.LoadHackathons(ctx)
	if err != nil {
		return fmt.Errorf("load hackathons: %w", err)
	}
	internships, err := s.loader.LoadInternships(ctx)
	if err != nil {
		return fmt.Errorf("load internships: %w", err)
	}
	scholarships, err := s.loader.LoadScholarships(ctx)
	if err != nil {
		return fmt.Errorf("load scholarships: %w", err)
	}

	s.mu.Lock()
	s.snap = Snapshot{
		Hackathons:   hackathons,
		Internships:  internships,
		Scholarships: scholarships,
		LoadedAt:     time.Now().UTC(),
	}
	s.mu.Unlock()

	log.Printf("[catalog] Snapshot refreshed — hackathons=%d internships=%d scholarships=%d",
		len(hackathons), len(internships), len(scholarships))
	return nil
}

// Snapshot returns the current catalog view.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
