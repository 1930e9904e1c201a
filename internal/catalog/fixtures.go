package catalog

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"opphub/match-service/internal/model"
)

// FixtureLoader reads the catalog from a YAML seed file. It backs local
// development and tests when no DATABASE_URL is configured; the same
// normalization applies as on the Postgres path.
type FixtureLoader struct {
	Path string
}

// fixtureFile mirrors the YAML document layout. Dates are plain "2006-01-02"
// strings, money fields arrive formatted or bare — exactly the shapes the
// normalizers already handle.
type fixtureFile struct {
	Hackathons []struct {
		ID          string   `yaml:"id"`
		Title       string   `yaml:"title"`
		Organizer   string   `yaml:"organizer"`
		Description string   `yaml:"description"`
		Mode        string   `yaml:"mode"`
		StartDate   string   `yaml:"startDate"`
		EndDate     string   `yaml:"endDate"`
		PrizePool   string   `yaml:"prizePool"`
		TeamSizeCap int      `yaml:"teamSizeCap"`
		Categories  []string `yaml:"categories"`
		Skills      []string `yaml:"skills"`
	} `yaml:"hackathons"`
	Internships []struct {
		ID          string   `yaml:"id"`
		Title       string   `yaml:"title"`
		Company     string   `yaml:"company"`
		Description string   `yaml:"description"`
		Location    string   `yaml:"location"`
		Remote      bool     `yaml:"remote"`
		Duration    string   `yaml:"duration"`
		StartDate   string   `yaml:"startDate"`
		Stipend     string   `yaml:"stipend"`
		Skills      []string `yaml:"skills"`
	} `yaml:"internships"`
	Scholarships []struct {
		ID          string   `yaml:"id"`
		Title       string   `yaml:"title"`
		Provider    string   `yaml:"provider"`
		Description string   `yaml:"description"`
		Amount      string   `yaml:"amount"`
		Deadline    string   `yaml:"deadline"`
		Eligibility []string `yaml:"eligibility"`
	} `yaml:"scholarships"`
}

func (f *FixtureLoader) load() (*fixtureFile, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures %s: %w", f.Path, err)
	}
	var file fixtureFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse fixtures %s: %w", f.Path, err)
	}
	return &file, nil
}

// fixtureDate parses a "2006-01-02" date. A missing or malformed date
// yields the zero time, which every time-window predicate handles.
func fixtureDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// LoadHackathons implements Loader.
func (f *FixtureLoader) LoadHackathons(ctx context.Context) ([]model.Hackathon, error) {
	file, err := f.load()
	if err != nil {
		return nil, err
	}
	out := make([]model.Hackathon, 0, len(file.Hackathons))
	for _, h := range file.Hackathons {
		out = append(out, model.Hackathon{
			ID:          h.ID,
			Title:       h.Title,
			Organizer:   h.Organizer,
			Description: h.Description,
			Mode:        model.Mode(h.Mode),
			StartDate:   fixtureDate(h.StartDate),
			EndDate:     fixtureDate(h.EndDate),
			PrizePool:   model.ParseMoney(h.PrizePool),
			TeamSizeCap: h.TeamSizeCap,
			Categories:  model.CategoriesFromStrings(h.Categories),
			Skills:      model.SkillsFromStrings(h.Skills),
		})
	}
	return out, nil
}

// LoadInternships implements Loader.
func (f *FixtureLoader) LoadInternships(ctx context.Context) ([]model.Internship, error) {
	file, err := f.load()
	if err != nil {
		return nil, err
	}
	out := make([]model.Internship, 0, len(file.Internships))
	for _, it := range file.Internships {
		out = append(out, model.Internship{
			ID:          it.ID,
			Title:       it.Title,
			Company:     it.Company,
			Description: it.Description,
			Location:    it.Location,
			Remote:      it.Remote,
			Duration:    it.Duration,
			StartDate:   fixtureDate(it.StartDate),
			Stipend:     model.ParseMoney(it.Stipend),
			Skills:      model.SkillsFromStrings(it.Skills),
		})
	}
	return out, nil
}

// LoadScholarships implements Loader.
func (f *FixtureLoader) LoadScholarships(ctx context.Context) ([]model.Scholarship, error) {
	file, err := f.load()
	if err != nil {
		return nil, err
	}
	out := make([]model.Scholarship, 0, len(file.Scholarships))
	for _, sc := range file.Scholarships {
		out = append(out, model.Scholarship{
			ID:          sc.ID,
			Title:       sc.Title,
			Provider:    sc.Provider,
			Description: sc.Description,
			Amount:      model.ParseMoney(sc.Amount),
			Deadline:    fixtureDate(sc.Deadline),
			Eligibility: sc.Eligibility,
		})
	}
	return out, nil
}
