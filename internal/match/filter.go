// Package match implements the catalog filtering and recommendation engine.
//
// Everything in this package is a pure function over in-memory data: no I/O,
// no shared state, no clock reads. Callers pass the reference instant for
// time-window filtering explicitly, so results are deterministic and
// testable against a fixed "now".
//
// Malformed or missing optional fields never fail a call. They degrade to
// "no constraint" (filtering) or "no contribution" (scoring) — the engine
// prefers showing an opportunity too many over dropping one it could not
// fully understand.
package match

import (
	"strings"
	"time"

	"opphub/match-service/internal/model"
)

// Timeframe selects a time window relative to the reference instant.
type Timeframe string

const (
	TimeframeAll      Timeframe = "all"
	TimeframeUpcoming Timeframe = "upcoming"
	TimeframeOngoing  Timeframe = "ongoing"
	TimeframePast     Timeframe = "past"
	// TimeframeUrgent is scholarship-specific: deadline within the next
	// seven days.
	TimeframeUrgent Timeframe = "urgent"
)

// urgentWindow is how far ahead a scholarship deadline may lie to still
// count as urgent.
const urgentWindow = 7 * 24 * time.Hour

// HackathonCriteria is a conjunction of optional constraints. The zero
// value matches everything; each unset field imposes no constraint.
type HackathonCriteria struct {
	Categories []model.Category
	Mode       string // "", "all" → pass-through
	PrizeMin   *int64
	PrizeMax   *int64
	Timeframe  Timeframe
	Query      string
	Skills     []model.Skill
}

// InternshipCriteria mirrors HackathonCriteria for internships. Remote nil
// means both remote and on-site pass.
type InternshipCriteria struct {
	Remote     *bool
	StipendMin *int64
	StipendMax *int64
	Timeframe  Timeframe
	Query      string
	Skills     []model.Skill
}

// ScholarshipCriteria mirrors the other criteria for scholarships.
// Eligibility matches on intersection with the listing's eligibility terms.
type ScholarshipCriteria struct {
	AmountMin   *int64
	AmountMax   *int64
	Timeframe   Timeframe
	Query       string
	Eligibility []string
}

// FilterHackathons returns the hackathons matching every active criterion,
// in their original order. The input slice is never modified.
func FilterHackathons(items []model.Hackathon, c HackathonCriteria, now time.Time) []model.Hackathon {
	out := make([]model.Hackathon, 0, len(items))
	for _, it := range items {
		if !matchHackathon(it, c, now) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchHackathon(it model.Hackathon, c HackathonCriteria, now time.Time) bool {
	if !categoriesIntersect(it.Categories, c.Categories) {
		return false
	}
	if !modeMatches(string(it.Mode), c.Mode) {
		return false
	}
	if !it.PrizePool.InRange(c.PrizeMin, c.PrizeMax) {
		return false
	}
	if !inWindow(it.StartDate, it.EndDate, c.Timeframe, now) {
		return false
	}
	if !textMatches(c.Query, it.Title, it.Organizer, it.Description) {
		return false
	}
	if !skillsIntersect(it.Skills, c.Skills) {
		return false
	}
	return true
}

// FilterInternships returns the internships matching every active criterion,
// in their original order.
func FilterInternships(items []model.Internship, c InternshipCriteria, now time.Time) []model.Internship {
	out := make([]model.Internship, 0, len(items))
	for _, it := range items {
		if !matchInternship(it, c, now) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchInternship(it model.Internship, c InternshipCriteria, now time.Time) bool {
	if c.Remote != nil && it.Remote != *c.Remote {
		return false
	}
	if !it.Stipend.InRange(c.StipendMin, c.StipendMax) {
		return false
	}
	if !inWindow(it.StartDate, it.StartDate, c.Timeframe, now) {
		return false
	}
	if !textMatches(c.Query, it.Title, it.Company, it.Description, it.Location) {
		return false
	}
	if !skillsIntersect(it.Skills, c.Skills) {
		return false
	}
	return true
}

// FilterScholarships returns the scholarships matching every active
// criterion, in their original order. Time windows are evaluated against the
// application deadline.
func FilterScholarships(items []model.Scholarship, c ScholarshipCriteria, now time.Time) []model.Scholarship {
	out := make([]model.Scholarship, 0, len(items))
	for _, it := range items {
		if !matchScholarship(it, c, now) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchScholarship(it model.Scholarship, c ScholarshipCriteria, now time.Time) bool {
	if !it.Amount.InRange(c.AmountMin, c.AmountMax) {
		return false
	}
	if !deadlineInWindow(it.Deadline, c.Timeframe, now) {
		return false
	}
	if !textMatches(c.Query, it.Title, it.Provider, it.Description) {
		return false
	}
	if !termsIntersect(it.Eligibility, c.Eligibility) {
		return false
	}
	return true
}

// ─── Shared predicates ───────────────────────────────────────────────────────

// categoriesIntersect implements the category constraint: an empty wanted
// set passes everything, otherwise at least one of the item's categories
// must appear in the wanted set.
func categoriesIntersect(have []model.Category, want []model.Category) bool {
	if len(want) == 0 {
		return true
	}
	for _, h := range have {
		for _, w := range want {
			if strings.EqualFold(string(h), string(w)) {
				return true
			}
		}
	}
	return false
}

// skillsIntersect passes when at least one (not all) wanted skill matches
// one of the item's skills, case-insensitively.
func skillsIntersect(have []model.Skill, want []model.Skill) bool {
	if len(want) == 0 {
		return true
	}
	for _, h := range have {
		for _, w := range want {
			if strings.EqualFold(string(h), string(w)) {
				return true
			}
		}
	}
	return false
}

// termsIntersect is skillsIntersect over free-form eligibility terms.
func termsIntersect(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, h := range have {
		for _, w := range want {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

// modeMatches is a case-insensitive equality check with "" and "all" as
// pass-through.
func modeMatches(have, want string) bool {
	if want == "" || strings.EqualFold(want, "all") {
		return true
	}
	return strings.EqualFold(have, want)
}

// textMatches reports whether the query appears, case-insensitively, in any
// of the given fields. An empty query passes everything.
func textMatches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// inWindow evaluates a start/end window against the reference instant.
// Unknown timeframe values impose no constraint.
func inWindow(start, end time.Time, tf Timeframe, now time.Time) bool {
	switch tf {
	case TimeframeUpcoming:
		return start.After(now)
	case TimeframeOngoing:
		return !start.After(now) && !end.Before(now)
	case TimeframePast:
		return end.Before(now)
	default:
		return true
	}
}

// deadlineInWindow evaluates a single-deadline window. "urgent" means the
// deadline has not passed and falls within the next seven days.
func deadlineInWindow(deadline time.Time, tf Timeframe, now time.Time) bool {
	switch tf {
	case TimeframeUpcoming:
		return deadline.After(now)
	case TimeframeUrgent:
		return deadline.After(now) && !deadline.After(now.Add(urgentWindow))
	case TimeframePast:
		return deadline.Before(now)
	default:
		return true
	}
}
