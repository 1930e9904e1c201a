package match

import (
	"sort"
	"strings"

	"opphub/match-service/internal/model"
)

// Scoring weights. Hackathons weight interest matches above skill matches;
// internships use a plain skill-match count. The asymmetry is intentional
// and per-domain; do not unify the weights.
const (
	hackathonSkillWeight    = 2
	hackathonInterestWeight = 3
	internshipSkillWeight   = 1

	// topN caps every recommendation list.
	topN = 5
)

// scored pairs a catalog index with its match score. It exists only during
// ranking and is never returned to callers.
type scored struct {
	index int
	score int
}

// rank sorts by score descending and truncates to topN. Equal scores keep
// their original catalog order — the sort is stable over a slice built in
// catalog order, and this tie-break applies identically to hackathons and
// internships.
func rank(items []scored) []scored {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score > items[j].score
	})
	if len(items) > topN {
		items = items[:topN]
	}
	return items
}

// RecommendHackathons ranks hackathons against the user's skills and
// interests and returns the top five. Items with no match at all are
// excluded entirely; a user with neither skills nor interests gets an
// empty list rather than an arbitrary one.
func RecommendHackathons(items []model.Hackathon, skills []model.Skill, interests []model.Category) []model.Hackathon {
	if len(skills) == 0 && len(interests) == 0 {
		return nil
	}

	matched := make([]scored, 0, len(items))
	for i, it := range items {
		s := hackathonScore(it, skills, interests)
		if s == 0 {
			continue
		}
		matched = append(matched, scored{index: i, score: s})
	}

	matched = rank(matched)
	out := make([]model.Hackathon, 0, len(matched))
	for _, m := range matched {
		out = append(out, items[m.index])
	}
	return out
}

func hackathonScore(it model.Hackathon, skills []model.Skill, interests []model.Category) int {
	score := countSkillMatches(it.Skills, skills) * hackathonSkillWeight

	for _, interest := range interests {
		for _, cat := range it.Categories {
			if strings.EqualFold(string(interest), string(cat)) {
				score += hackathonInterestWeight
				break
			}
		}
	}
	return score
}

// RecommendInternships ranks internships by skill-match count and returns
// the top five. Same exclusion, tie-break and truncation rules as
// RecommendHackathons.
func RecommendInternships(items []model.Internship, skills []model.Skill) []model.Internship {
	if len(skills) == 0 {
		return nil
	}

	matched := make([]scored, 0, len(items))
	for i, it := range items {
		s := countSkillMatches(it.Skills, skills) * internshipSkillWeight
		if s == 0 {
			continue
		}
		matched = append(matched, scored{index: i, score: s})
	}

	matched = rank(matched)
	out := make([]model.Internship, 0, len(matched))
	for _, m := range matched {
		out = append(out, items[m.index])
	}
	return out
}

// countSkillMatches counts how many of the user's skills appear in the
// item's skill set, case-insensitively. Each user skill counts at most
// once; an item with no skill tags contributes zero.
func countSkillMatches(have []model.Skill, want []model.Skill) int {
	n := 0
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(string(w), string(h)) {
				n++
				break
			}
		}
	}
	return n
}
