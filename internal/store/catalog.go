// Package store loads catalog records and user profiles from PostgreSQL.
//
// This is the data-cleaning boundary: raw rows are normalized into model
// structs here (money strings parsed, tag arrays mapped onto the closed
// enumerations), so the match engine only ever sees uniform data.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"opphub/match-service/internal/model"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("not found")

// Store wraps a pgx pool with typed catalog queries.
type Store struct {
	pool *pgxpool.Pool
}

// New returns a Store backed by the given pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// LoadHackathons fetches every active hackathon listing, oldest first so the
// snapshot order is stable across refreshes.
func (s *Store) LoadHackathons(ctx context.Context) ([]model.Hackathon, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, organizer, description, mode, start_date, end_date,
		        prize_pool, team_size_cap, categories, skills
		 FROM hackathons
		 WHERE is_active = true
		 ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query hackathons: %w", err)
	}
	defer rows.Close()

	var out []model.Hackathon
	for rows.Next() {
		var (
			h          model.Hackathon
			prize      *string
			teamCap    *int
			categories []string
			skills     []string
		)
		if err := rows.Scan(
			&h.ID, &h.Title, &h.Organizer, &h.Description, &h.Mode,
			&h.StartDate, &h.EndDate, &prize, &teamCap, &categories, &skills,
		); err != nil {
			return nil, fmt.Errorf("scan hackathon: %w", err)
		}
		if prize != nil {
			h.PrizePool = model.ParseMoney(*prize)
		}
		if teamCap != nil {
			h.TeamSizeCap = *teamCap
		}
		h.Categories = model.CategoriesFromStrings(categories)
		h.Skills = model.SkillsFromStrings(skills)
		out = append(out, h)
	}
	return out, rows.Err()
}

// LoadInternships fetches every active internship listing.
func (s *Store) LoadInternships(ctx context.Context) ([]model.Internship, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, company, description, location, remote, duration,
		        start_date, stipend, skills
		 FROM internships
		 WHERE is_active = true
		 ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query internships: %w", err)
	}
	defer rows.Close()

	var out []model.Internship
	for rows.Next() {
		var (
			it       model.Internship
			duration *string
			stipend  *string
			skills   []string
		)
		if err := rows.Scan(
			&it.ID, &it.Title, &it.Company, &it.Description, &it.Location,
			&it.Remote, &duration, &it.StartDate, &stipend, &skills,
		); err != nil {
			return nil, fmt.Errorf("scan internship: %w", err)
		}
		if duration != nil {
			it.Duration = *duration
		}
		if stipend != nil {
			it.Stipend = model.ParseMoney(*stipend)
		}
		it.Skills = model.SkillsFromStrings(skills)
		out = append(out, it)
	}
	return out, rows.Err()
}

// LoadScholarships fetches every active scholarship listing.
func (s *Store) LoadScholarships(ctx context.Context) ([]model.Scholarship, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, provider, description, amount, deadline, eligibility
		 FROM scholarships
		 WHERE is_active = true
		 ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query scholarships: %w", err)
	}
	defer rows.Close()

	var out []model.Scholarship
	for rows.Next() {
		var (
			sc     model.Scholarship
			amount *string
		)
		if err := rows.Scan(
			&sc.ID, &sc.Title, &sc.Provider, &sc.Description,
			&amount, &sc.Deadline, &sc.Eligibility,
		); err != nil {
			return nil, fmt.Errorf("scan scholarship: %w", err)
		}
		if amount != nil {
			sc.Amount = model.ParseMoney(*amount)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// LoadProfile fetches a user's declared profile. Unknown skill or interest
// values stored by older clients are dropped during normalization, which
// leaves them non-matching rather than failing the lookup.
func (s *Store) LoadProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	var (
		p         model.UserProfile
		skills    []string
		interests []string
	)
	err := s.pool.QueryRow(ctx,
		`SELECT user_id, name, bio, skills, interests, looking_for
		 FROM profiles
		 WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.Name, &p.Bio, &skills, &interests, &p.LookingFor)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query profile %s: %w", userID, err)
	}

	p.Skills = model.SkillsFromStrings(skills)
	p.Interests = model.CategoriesFromStrings(interests)
	return &p, nil
}
