package profile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/linkedin-scraper/internal/parsing"
)

// presentSentinel is kept as the raw end date of an ongoing range.
const presentSentinel = "Present"

var digits = regexp.MustCompile(`\d+`)

// Extract reads all profile sections out of a captured page document.
// Missing elements never fail extraction; the corresponding fields stay nil.
func Extract(html string, profileURL string) (*RawResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page document: %w", err)
	}

	result := &RawResult{
		UserProfile:          extractTopCard(doc, profileURL),
		Experiences:          extractExperiences(doc),
		Education:            extractEducation(doc),
		VolunteerExperiences: extractVolunteering(doc),
		Skills:               extractSkills(doc),
	}
	return result, nil
}

func extractTopCard(doc *goquery.Document, profileURL string) RawProfile {
	return RawProfile{
		FullName:    firstText(doc.Selection, selectorFullName),
		Title:       firstText(doc.Selection, selectorTitle),
		Location:    firstText(doc.Selection, selectorLocation),
		Photo:       firstAttr(doc.Selection, selectorPhoto, "src"),
		Description: firstText(doc.Selection, selectorDescription),
		URL:         profileURL,
	}
}

func extractExperiences(doc *goquery.Document) []RawExperience {
	experiences := make([]RawExperience, 0)
	doc.Find(selectorExperienceItem).Each(func(_ int, item *goquery.Selection) {
		company, employmentType := splitCompanyLine(firstText(item, selectorExperienceCompany))
		start, end, present := splitDateRange(firstText(item, selectorExperienceDateRange))

		experiences = append(experiences, RawExperience{
			Title:            firstText(item, selectorExperienceTitle),
			Company:          company,
			EmploymentType:   employmentType,
			Location:         firstText(item, selectorExperienceLocation),
			StartDate:        start,
			EndDate:          end,
			EndDateIsPresent: present,
			Description:      firstText(item, selectorExperienceSummary),
		})
	})
	return experiences
}

func extractEducation(doc *goquery.Document) []RawEducation {
	education := make([]RawEducation, 0)
	doc.Find(selectorEducationItem).Each(func(_ int, item *goquery.Selection) {
		start, end, _ := splitDateRange(firstText(item, selectorEducationDateRange))

		education = append(education, RawEducation{
			SchoolName:   firstText(item, selectorEducationSchool),
			DegreeName:   firstText(item, selectorEducationDegree),
			FieldOfStudy: firstText(item, selectorEducationField),
			StartDate:    start,
			EndDate:      end,
		})
	})
	return education
}

func extractVolunteering(doc *goquery.Document) []RawVolunteerExperience {
	volunteering := make([]RawVolunteerExperience, 0)
	doc.Find(selectorVolunteerItem).Each(func(_ int, item *goquery.Selection) {
		start, end, present := splitDateRange(firstText(item, selectorVolunteerDateRange))

		volunteering = append(volunteering, RawVolunteerExperience{
			Title:            firstText(item, selectorVolunteerTitle),
			Company:          firstText(item, selectorVolunteerCompany),
			StartDate:        start,
			EndDate:          end,
			EndDateIsPresent: present,
			Description:      firstText(item, selectorVolunteerSummary),
		})
	})
	return volunteering
}

func extractSkills(doc *goquery.Document) []RawSkill {
	skills := make([]RawSkill, 0)
	doc.Find(selectorSkillItem).Each(func(_ int, item *goquery.Selection) {
		skills = append(skills, RawSkill{
			SkillName:        firstText(item, selectorSkillName),
			EndorsementCount: parseEndorsementCount(firstText(item, selectorSkillEndorsement)),
		})
	})
	return skills
}

// splitDateRange splits a range like "Jan 2018 – Feb 2020" on the en dash.
// An ongoing range keeps the Present sentinel as its end date and sets the
// flag. A value without a dash is treated as a lone start date.
func splitDateRange(value *string) (start, end *string, present bool) {
	if value == nil {
		return nil, nil, false
	}

	parts := strings.SplitN(*value, "–", 2)
	if s := parsing.CleanText(parts[0]); s != "" {
		start = &s
	}
	if len(parts) < 2 {
		return start, nil, false
	}

	endText := parsing.CleanText(parts[1])
	if endText == "" {
		return start, nil, false
	}
	if parsing.IsPresent(endText) {
		sentinel := presentSentinel
		return start, &sentinel, true
	}
	return start, &endText, false
}

// splitCompanyLine splits "Acme Corp · Full-time" into company and
// employment type. Without the separator the whole value is the company.
func splitCompanyLine(value *string) (company, employmentType *string) {
	if value == nil {
		return nil, nil
	}

	parts := strings.SplitN(*value, "·", 2)
	if c := parsing.CleanText(parts[0]); c != "" {
		company = &c
	}
	if len(parts) == 2 {
		if et := parsing.CleanText(parts[1]); et != "" {
			employmentType = &et
		}
	}
	return company, employmentType
}

// parseEndorsementCount reads the first run of digits from a count label
// such as "27" or "99+". Anything else counts as zero.
func parseEndorsementCount(value *string) int {
	if value == nil {
		return 0
	}
	match := digits.FindString(*value)
	if match == "" {
		return 0
	}
	count, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return count
}

// firstText returns the cleaned text of the first node matching the selector,
// nil when no node matches or the text is empty.
func firstText(root *goquery.Selection, selector string) *string {
	node := root.Find(selector).First()
	if node.Length() == 0 {
		return nil
	}
	text := parsing.CleanText(node.Text())
	if text == "" {
		return nil
	}
	return &text
}

// firstAttr returns the named attribute of the first node matching the
// selector, nil when absent.
func firstAttr(root *goquery.Selection, selector, name string) *string {
	node := root.Find(selector).First()
	if node.Length() == 0 {
		return nil
	}
	value, ok := node.Attr(name)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	value = strings.TrimSpace(value)
	return &value
}
