package api

import (
	"net/http"
	"strconv"
	"strings"

	"opphub/match-service/internal/match"
	"opphub/match-service/internal/model"
)

// Query-parameter → criteria mapping. Absent or malformed parameters fall
// back to the unconstrained default; a bad number never turns into a 400,
// it just does not filter.

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func int64Param(q string) *int64 {
	if q == "" {
		return nil
	}
	v, err := strconv.ParseInt(q, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func boolParam(q string) *bool {
	if q == "" {
		return nil
	}
	v, err := strconv.ParseBool(q)
	if err != nil {
		return nil
	}
	return &v
}

func hackathonCriteriaFromQuery(r *http.Request) match.HackathonCriteria {
	q := r.URL.Query()
	return match.HackathonCriteria{
		Categories: model.CategoriesFromStrings(splitParam(q.Get("categories"))),
		Mode:       q.Get("mode"),
		PrizeMin:   int64Param(q.Get("prize_min")),
		PrizeMax:   int64Param(q.Get("prize_max")),
		Timeframe:  match.Timeframe(q.Get("timeframe")),
		Query:      q.Get("q"),
		Skills:     model.SkillsFromStrings(splitParam(q.Get("skills"))),
	}
}

func internshipCriteriaFromQuery(r *http.Request) match.InternshipCriteria {
	q := r.URL.Query()
	return match.InternshipCriteria{
		Remote:     boolParam(q.Get("remote")),
		StipendMin: int64Param(q.Get("stipend_min")),
		StipendMax: int64Param(q.Get("stipend_max")),
		Timeframe:  match.Timeframe(q.Get("timeframe")),
		Query:      q.Get("q"),
		Skills:     model.SkillsFromStrings(splitParam(q.Get("skills"))),
	}
}

func scholarshipCriteriaFromQuery(r *http.Request) match.ScholarshipCriteria {
	q := r.URL.Query()
	return match.ScholarshipCriteria{
		AmountMin:   int64Param(q.Get("amount_min")),
		AmountMax:   int64Param(q.Get("amount_max")),
		Timeframe:   match.Timeframe(q.Get("timeframe")),
		Query:       q.Get("q"),
		Eligibility: splitParam(q.Get("eligibility")),
	}
}
