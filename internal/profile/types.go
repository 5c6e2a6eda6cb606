// Package profile defines the scraped profile data model and turns captured
// page HTML into normalized, JSON-serializable records.
package profile

import (
	"time"

	"github.com/jonathan/linkedin-scraper/internal/parsing"
)

// RawProfile holds top-card values as read from the page. Every field is
// optional because any element may be missing from a given profile.
type RawProfile struct {
	FullName    *string
	Title       *string
	Location    *string
	Photo       *string
	Description *string
	URL         string
}

// RawExperience is one position entry as read from the experience section.
type RawExperience struct {
	Title            *string
	Company          *string
	EmploymentType   *string
	Location         *string
	StartDate        *string
	EndDate          *string
	EndDateIsPresent bool
	Description      *string
}

// RawEducation is one entry as read from the education section.
type RawEducation struct {
	SchoolName   *string
	DegreeName   *string
	FieldOfStudy *string
	StartDate    *string
	EndDate      *string
}

// RawVolunteerExperience is one entry as read from the volunteering section.
type RawVolunteerExperience struct {
	Title            *string
	Company          *string
	StartDate        *string
	EndDate          *string
	EndDateIsPresent bool
	Description      *string
}

// RawSkill is one entry as read from the skills section. A missing or
// unparseable endorsement count reads as zero.
type RawSkill struct {
	SkillName        *string
	EndorsementCount int
}

// RawResult groups everything the extractor pulled from one page.
type RawResult struct {
	UserProfile          RawProfile
	Experiences          []RawExperience
	Education            []RawEducation
	VolunteerExperiences []RawVolunteerExperience
	Skills               []RawSkill
}

// Profile is the normalized top card.
type Profile struct {
	FullName    *string           `json:"fullName"`
	Title       *string           `json:"title"`
	Location    *parsing.Location `json:"location"`
	Photo       *string           `json:"photo"`
	Description *string           `json:"description"`
	URL         string            `json:"url"`
}

// Experience is a normalized position entry.
type Experience struct {
	Title            *string           `json:"title"`
	Company          *string           `json:"company"`
	EmploymentType   *string           `json:"employmentType"`
	Location         *parsing.Location `json:"location"`
	StartDate        *time.Time        `json:"startDate"`
	EndDate          *time.Time        `json:"endDate"`
	EndDateIsPresent bool              `json:"endDateIsPresent"`
	DurationInDays   *int              `json:"durationInDays"`
	Description      *string           `json:"description"`
}

// Education is a normalized education entry.
type Education struct {
	SchoolName     *string    `json:"schoolName"`
	DegreeName     *string    `json:"degreeName"`
	FieldOfStudy   *string    `json:"fieldOfStudy"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	DurationInDays *int       `json:"durationInDays"`
}

// VolunteerExperience is a normalized volunteering entry.
type VolunteerExperience struct {
	Title            *string    `json:"title"`
	Company          *string    `json:"company"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	EndDateIsPresent bool       `json:"endDateIsPresent"`
	DurationInDays   *int       `json:"durationInDays"`
	Description      *string    `json:"description"`
}

// Skill is a normalized skill entry.
type Skill struct {
	SkillName        *string `json:"skillName"`
	EndorsementCount int     `json:"endorsementCount"`
}

// Result is the full normalized output for one scraped profile. Section
// slices are never nil; an absent section yields an empty slice.
type Result struct {
	UserProfile          Profile               `json:"userProfile"`
	Experiences          []Experience          `json:"experiences"`
	Education            []Education           `json:"education"`
	VolunteerExperiences []VolunteerExperience `json:"volunteerExperiences"`
	Skills               []Skill               `json:"skills"`
}
