package profile

import (
	"time"

	"github.com/jonathan/linkedin-scraper/internal/parsing"
)

// Normalize maps raw extracted records onto the typed output schema. It is a
// pure transformation over the parsing helpers; section slices in the result
// are always non-nil.
func Normalize(raw *RawResult) *Result {
	result := &Result{
		UserProfile:          normalizeProfile(raw.UserProfile),
		Experiences:          make([]Experience, 0, len(raw.Experiences)),
		Education:            make([]Education, 0, len(raw.Education)),
		VolunteerExperiences: make([]VolunteerExperience, 0, len(raw.VolunteerExperiences)),
		Skills:               make([]Skill, 0, len(raw.Skills)),
	}

	for _, exp := range raw.Experiences {
		result.Experiences = append(result.Experiences, normalizeExperience(exp))
	}
	for _, edu := range raw.Education {
		result.Education = append(result.Education, normalizeEducation(edu))
	}
	for _, vol := range raw.VolunteerExperiences {
		result.VolunteerExperiences = append(result.VolunteerExperiences, normalizeVolunteer(vol))
	}
	for _, skill := range raw.Skills {
		result.Skills = append(result.Skills, Skill{
			SkillName:        parsing.CleanOptionalText(skill.SkillName),
			EndorsementCount: skill.EndorsementCount,
		})
	}

	return result
}

func normalizeProfile(raw RawProfile) Profile {
	return Profile{
		FullName:    parsing.CleanOptionalText(raw.FullName),
		Title:       parsing.CleanOptionalText(raw.Title),
		Location:    normalizeLocation(raw.Location),
		Photo:       raw.Photo,
		Description: parsing.CleanOptionalText(raw.Description),
		URL:         raw.URL,
	}
}

func normalizeExperience(raw RawExperience) Experience {
	start := parsing.ParseOptionalDate(raw.StartDate)
	var end *time.Time
	if !raw.EndDateIsPresent {
		end = parsing.ParseOptionalDate(raw.EndDate)
	}

	return Experience{
		Title:            parsing.CleanOptionalText(raw.Title),
		Company:          parsing.CleanOptionalText(raw.Company),
		EmploymentType:   parsing.CleanOptionalText(raw.EmploymentType),
		Location:         normalizeLocation(raw.Location),
		StartDate:        start,
		EndDate:          end,
		EndDateIsPresent: raw.EndDateIsPresent,
		DurationInDays:   rangeDuration(start, end, raw.EndDateIsPresent),
		Description:      parsing.CleanOptionalText(raw.Description),
	}
}

func normalizeEducation(raw RawEducation) Education {
	start := parsing.ParseOptionalDate(raw.StartDate)
	end := parsing.ParseOptionalDate(raw.EndDate)

	return Education{
		SchoolName:     parsing.CleanOptionalText(raw.SchoolName),
		DegreeName:     parsing.CleanOptionalText(raw.DegreeName),
		FieldOfStudy:   parsing.CleanOptionalText(raw.FieldOfStudy),
		StartDate:      start,
		EndDate:        end,
		DurationInDays: rangeDuration(start, end, false),
	}
}

func normalizeVolunteer(raw RawVolunteerExperience) VolunteerExperience {
	start := parsing.ParseOptionalDate(raw.StartDate)
	var end *time.Time
	if !raw.EndDateIsPresent {
		end = parsing.ParseOptionalDate(raw.EndDate)
	}

	return VolunteerExperience{
		Title:            parsing.CleanOptionalText(raw.Title),
		Company:          parsing.CleanOptionalText(raw.Company),
		StartDate:        start,
		EndDate:          end,
		EndDateIsPresent: raw.EndDateIsPresent,
		DurationInDays:   rangeDuration(start, end, raw.EndDateIsPresent),
		Description:      parsing.CleanOptionalText(raw.Description),
	}
}

func normalizeLocation(raw *string) *parsing.Location {
	if raw == nil {
		return nil
	}
	loc := parsing.ParseLocation(*raw)
	if loc.City == nil && loc.Province == nil && loc.Country == nil {
		return nil
	}
	return &loc
}

// rangeDuration resolves the day span of a date range. Ongoing ranges run
// until now; a range missing either bound has no duration.
func rangeDuration(start, end *time.Time, present bool) *int {
	if start == nil {
		return nil
	}
	if present {
		return parsing.DurationInDaysUntilNow(*start)
	}
	if end == nil {
		return nil
	}
	return parsing.DurationInDays(*start, *end)
}
