// Package api implements the HTTP handlers for the match service.
//
// Routes:
//
//	GET /health
//	GET /hackathons                     → filtered hackathon catalog
//	GET /internships                    → filtered internship catalog
//	GET /scholarships                   → filtered scholarship catalog
//	GET /recommendations/hackathons     → ranked top-5 for the caller
//	GET /recommendations/internships    → ranked top-5 for the caller
//
// Recommendation routes resolve the profile from the x-user-id header
// (forwarded by the Gateway); callers without a stored profile can pass
// skills/interests query parameters directly.
package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"opphub/match-service/internal/cache"
	"opphub/match-service/internal/catalog"
	"opphub/match-service/internal/match"
	"opphub/match-service/internal/model"
)

// CatalogProvider hands out the current catalog snapshot.
type CatalogProvider interface {
	Snapshot() catalog.Snapshot
}

// ProfileStore looks up stored user profiles. May be nil when the service
// runs without Postgres.
type ProfileStore interface {
	LoadProfile(ctx context.Context, userID string) (*model.UserProfile, error)
}

// Handler holds shared dependencies.
type Handler struct {
	catalog  CatalogProvider
	profiles ProfileStore
	rec      *cache.Recommendations
}

// NewHandler returns a configured Handler. profiles and rec may be nil.
func NewHandler(cat CatalogProvider, profiles ProfileStore, rec *cache.Recommendations) *Handler {
	return &Handler{catalog: cat, profiles: profiles, rec: rec}
}

// RegisterRoutes mounts all match-service routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/hackathons", h.handleHackathons)
	mux.HandleFunc("/internships", h.handleInternships)
	mux.HandleFunc("/scholarships", h.handleScholarships)
	mux.HandleFunc("/recommendations/hackathons", h.handleRecommendHackathons)
	mux.HandleFunc("/recommendations/internships", h.handleRecommendInternships)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap := h.catalog.Snapshot()
	jsonOK(w, map[string]any{
		"status":   "ok",
		"service":  "match-service",
		"loadedAt": snap.LoadedAt,
	})
}

// ─── Catalog filtering ────────────────────────────────────────────────────────

func (h *Handler) handleHackathons(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	c := hackathonCriteriaFromQuery(r)
	items := match.FilterHackathons(h.catalog.Snapshot().Hackathons, c, time.Now())
	jsonOK(w, items)
}

func (h *Handler) handleInternships(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	c := internshipCriteriaFromQuery(r)
	items := match.FilterInternships(h.catalog.Snapshot().Internships, c, time.Now())
	jsonOK(w, items)
}

func (h *Handler) handleScholarships(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	c := scholarshipCriteriaFromQuery(r)
	items := match.FilterScholarships(h.catalog.Snapshot().Scholarships, c, time.Now())
	jsonOK(w, items)
}

// ─── Recommendations ──────────────────────────────────────────────────────────

func (h *Handler) handleRecommendHackathons(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, skills, interests, ok := h.resolveProfile(w, r)
	if !ok {
		return
	}

	if userID != "" {
		if items, hit := h.rec.GetHackathons(r.Context(), userID); hit {
			jsonOK(w, items)
			return
		}
	}

	items := match.RecommendHackathons(h.catalog.Snapshot().Hackathons, skills, interests)
	if items == nil {
		items = []model.Hackathon{}
	}
	if userID != "" {
		h.rec.SetHackathons(r.Context(), userID, items)
	}
	jsonOK(w, items)
}

func (h *Handler) handleRecommendInternships(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, skills, _, ok := h.resolveProfile(w, r)
	if !ok {
		return
	}

	if userID != "" {
		if items, hit := h.rec.GetInternships(r.Context(), userID); hit {
			jsonOK(w, items)
			return
		}
	}

	items := match.RecommendInternships(h.catalog.Snapshot().Internships, skills)
	if items == nil {
		items = []model.Internship{}
	}
	if userID != "" {
		h.rec.SetInternships(r.Context(), userID, items)
	}
	jsonOK(w, items)
}

// resolveProfile determines whose skills and interests to rank against:
// the stored profile for x-user-id when present, otherwise the skills and
// interests query parameters. Responds with an error itself when neither
// is available.
func (h *Handler) resolveProfile(w http.ResponseWriter, r *http.Request) (userID string, skills []model.Skill, interests []model.Category, ok bool) {
	userID = r.Header.Get("x-user-id")
	if userID != "" && h.profiles != nil {
		profile, err := h.profiles.LoadProfile(r.Context(), userID)
		if err != nil {
			log.Printf("[api] profile lookup for %s failed: %v", userID, err)
			jsonError(w, "profile not found", http.StatusNotFound)
			return "", nil, nil, false
		}
		return userID, profile.Skills, profile.Interests, true
	}

	q := r.URL.Query()
	skills = model.SkillsFromStrings(splitParam(q.Get("skills")))
	interests = model.CategoriesFromStrings(splitParam(q.Get("interests")))
	if len(skills) == 0 && len(interests) == 0 {
		jsonError(w, "provide an x-user-id header or skills/interests query parameters", http.StatusBadRequest)
		return "", nil, nil, false
	}
	// Query-parameter profiles are anonymous — no cache key.
	return "", skills, interests, true
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
