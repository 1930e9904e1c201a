// Package model defines shared data structures for the match service.
package model

import "time"

// Mode is a hackathon's mode of participation.
type Mode string

const (
	ModeOnline   Mode = "online"
	ModeInPerson Mode = "in-person"
	ModeHybrid   Mode = "hybrid"
)

// LookingFor describes which opportunity kinds a user wants recommendations for.
type LookingFor string

const (
	LookingForHackathons  LookingFor = "hackathons"
	LookingForInternships LookingFor = "internships"
	LookingForBoth        LookingFor = "both"
)

// Hackathon is a single hackathon listing in the catalog.
type Hackathon struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Organizer   string     `json:"organizer"`
	Description string     `json:"description"`
	Mode        Mode       `json:"mode"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	PrizePool   Money      `json:"prizePool"`
	TeamSizeCap int        `json:"teamSizeCap,omitempty"`
	Categories  []Category `json:"categories"`
	Skills      []Skill    `json:"skills"`
}

// Internship is a single internship listing in the catalog.
type Internship struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Remote      bool      `json:"remote"`
	Duration    string    `json:"duration,omitempty"`
	StartDate   time.Time `json:"startDate"`
	Stipend     Money     `json:"stipend"`
	Skills      []Skill   `json:"skills"`
}

// Scholarship is a single scholarship listing in the catalog.
type Scholarship struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Provider    string    `json:"provider"`
	Description string    `json:"description"`
	Amount      Money     `json:"amount"`
	Deadline    time.Time `json:"deadline"`
	Eligibility []string  `json:"eligibility"`
}

// UserProfile is the declared profile recommendations are ranked against.
// Skills and Interests are sets — order carries no meaning.
type UserProfile struct {
	UserID     string     `json:"userId"`
	Name       string     `json:"name"`
	Bio        string     `json:"bio"`
	Skills     []Skill    `json:"skills"`
	Interests  []Category `json:"interests"`
	LookingFor LookingFor `json:"lookingFor"`
}
