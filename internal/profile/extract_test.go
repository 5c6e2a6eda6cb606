package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureHTML = `
<html><body>
<section class="pv-top-card">
  <ul class="pv-top-card--list"><li>  John   Doe </li></ul>
  <div class="flex-1"><h2>Senior Software Engineer</h2></div>
  <ul class="pv-top-card--list-bullet"><li>Amsterdam, North Holland, Netherlands</li></ul>
  <div class="pv-top-card__photo"><img src="https://media.example.com/photo.jpg"></div>
</section>
<section class="pv-about-section">
  <p class="pv-about__summary-text">Building   things for the web.</p>
</section>
<section id="experience-section">
  <ul>
    <li class="pv-entity__position-group-pager">
      <div class="pv-entity__summary-info">
        <h3>Software Engineer</h3>
        <span class="pv-entity__secondary-title">Acme Corp · Full-time</span>
        <h4 class="pv-entity__date-range"><span>Dates Employed</span><span>Jan 2018 – Present</span></h4>
        <h4 class="pv-entity__location"><span>Location</span><span>Amsterdam, Netherlands</span></h4>
      </div>
      <div class="pv-entity__description">Backend services and tooling.</div>
    </li>
    <li class="pv-entity__position-group-pager">
      <div class="pv-entity__summary-info">
        <h3>Junior Developer</h3>
        <span class="pv-entity__secondary-title">Widgets BV</span>
        <h4 class="pv-entity__date-range"><span>Dates Employed</span><span>Mar 2015 – Dec 2017</span></h4>
      </div>
    </li>
  </ul>
</section>
<section id="education-section">
  <ul>
    <li class="pv-profile-section__list-item">
      <h3 class="pv-entity__school-name">University of Amsterdam</h3>
      <p class="pv-entity__degree-name"><span class="pv-entity__comma-item">Master of Science</span></p>
      <p class="pv-entity__fos"><span class="pv-entity__comma-item">Computer Science</span></p>
      <p class="pv-entity__dates"><time>2010 – 2014</time></p>
    </li>
  </ul>
</section>
<section class="pv-profile-section volunteering-section">
  <ul>
    <li class="ember-view">
      <div class="pv-entity__summary-info">
        <h3>Mentor</h3>
        <span class="pv-entity__secondary-title">Code Club</span>
        <h4 class="pv-entity__date-range"><span>Dates</span><span>Jun 2019 – Present</span></h4>
      </div>
      <div class="pv-entity__description">Weekly beginner sessions.</div>
    </li>
  </ul>
</section>
<section class="pv-skill-categories-section">
  <ol>
    <li class="ember-view">
      <span class="pv-skill-category-entity__name-text">Go</span>
      <span class="pv-skill-category-entity__endorsement-count">99+</span>
    </li>
    <li class="ember-view">
      <span class="pv-skill-category-entity__name-text">Kubernetes</span>
    </li>
  </ol>
</section>
</body></html>
`

func TestExtract_TopCard(t *testing.T) {
	raw, err := Extract(fixtureHTML, "https://www.linkedin.com/in/john-doe/")
	require.NoError(t, err)

	p := raw.UserProfile
	require.NotNil(t, p.FullName)
	assert.Equal(t, "John Doe", *p.FullName)
	require.NotNil(t, p.Title)
	assert.Equal(t, "Senior Software Engineer", *p.Title)
	require.NotNil(t, p.Location)
	assert.Equal(t, "Amsterdam, North Holland, Netherlands", *p.Location)
	require.NotNil(t, p.Photo)
	assert.Equal(t, "https://media.example.com/photo.jpg", *p.Photo)
	require.NotNil(t, p.Description)
	assert.Equal(t, "Building things for the web.", *p.Description)
	assert.Equal(t, "https://www.linkedin.com/in/john-doe/", p.URL)
}

func TestExtract_Experiences(t *testing.T) {
	raw, err := Extract(fixtureHTML, "https://www.linkedin.com/in/john-doe/")
	require.NoError(t, err)
	require.Len(t, raw.Experiences, 2)

	current := raw.Experiences[0]
	require.NotNil(t, current.Title)
	assert.Equal(t, "Software Engineer", *current.Title)
	require.NotNil(t, current.Company)
	assert.Equal(t, "Acme Corp", *current.Company)
	require.NotNil(t, current.EmploymentType)
	assert.Equal(t, "Full-time", *current.EmploymentType)
	require.NotNil(t, current.StartDate)
	assert.Equal(t, "Jan 2018", *current.StartDate)
	require.NotNil(t, current.EndDate)
	assert.Equal(t, "Present", *current.EndDate)
	assert.True(t, current.EndDateIsPresent)
	require.NotNil(t, current.Location)
	assert.Equal(t, "Amsterdam, Netherlands", *current.Location)
	require.NotNil(t, current.Description)
	assert.Equal(t, "Backend services and tooling.", *current.Description)

	past := raw.Experiences[1]
	require.NotNil(t, past.Company)
	assert.Equal(t, "Widgets BV", *past.Company)
	assert.Nil(t, past.EmploymentType)
	require.NotNil(t, past.StartDate)
	assert.Equal(t, "Mar 2015", *past.StartDate)
	require.NotNil(t, past.EndDate)
	assert.Equal(t, "Dec 2017", *past.EndDate)
	assert.False(t, past.EndDateIsPresent)
	assert.Nil(t, past.Description)
}

func TestExtract_EducationAndVolunteering(t *testing.T) {
	raw, err := Extract(fixtureHTML, "https://www.linkedin.com/in/john-doe/")
	require.NoError(t, err)

	require.Len(t, raw.Education, 1)
	edu := raw.Education[0]
	require.NotNil(t, edu.SchoolName)
	assert.Equal(t, "University of Amsterdam", *edu.SchoolName)
	require.NotNil(t, edu.DegreeName)
	assert.Equal(t, "Master of Science", *edu.DegreeName)
	require.NotNil(t, edu.FieldOfStudy)
	assert.Equal(t, "Computer Science", *edu.FieldOfStudy)
	require.NotNil(t, edu.StartDate)
	assert.Equal(t, "2010", *edu.StartDate)
	require.NotNil(t, edu.EndDate)
	assert.Equal(t, "2014", *edu.EndDate)

	require.Len(t, raw.VolunteerExperiences, 1)
	vol := raw.VolunteerExperiences[0]
	require.NotNil(t, vol.Title)
	assert.Equal(t, "Mentor", *vol.Title)
	require.NotNil(t, vol.Company)
	assert.Equal(t, "Code Club", *vol.Company)
	assert.True(t, vol.EndDateIsPresent)
}

func TestExtract_Skills(t *testing.T) {
	raw, err := Extract(fixtureHTML, "https://www.linkedin.com/in/john-doe/")
	require.NoError(t, err)
	require.Len(t, raw.Skills, 2)

	require.NotNil(t, raw.Skills[0].SkillName)
	assert.Equal(t, "Go", *raw.Skills[0].SkillName)
	assert.Equal(t, 99, raw.Skills[0].EndorsementCount)

	require.NotNil(t, raw.Skills[1].SkillName)
	assert.Equal(t, "Kubernetes", *raw.Skills[1].SkillName)
	assert.Equal(t, 0, raw.Skills[1].EndorsementCount)
}

func TestExtract_EmptyPage(t *testing.T) {
	raw, err := Extract("<html><body></body></html>", "https://www.linkedin.com/in/ghost/")
	require.NoError(t, err)

	assert.Nil(t, raw.UserProfile.FullName)
	assert.Nil(t, raw.UserProfile.Title)
	assert.NotNil(t, raw.Experiences)
	assert.Empty(t, raw.Experiences)
	assert.NotNil(t, raw.Education)
	assert.Empty(t, raw.Education)
	assert.NotNil(t, raw.VolunteerExperiences)
	assert.Empty(t, raw.VolunteerExperiences)
	assert.NotNil(t, raw.Skills)
	assert.Empty(t, raw.Skills)
}

func TestSplitDateRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		start   string
		end     string
		present bool
	}{
		{"closed range", "Jan 2018 – Feb 2020", "Jan 2018", "Feb 2020", false},
		{"ongoing range", "Jan 2018 – Present", "Jan 2018", "Present", true},
		{"ongoing lowercase", "Jan 2018 – present", "Jan 2018", "Present", true},
		{"no separator", "Jan 2018", "Jan 2018", "", false},
		{"tight dash", "2010–2014", "2010", "2014", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, present := splitDateRange(&tt.input)

			require.NotNil(t, start)
			assert.Equal(t, tt.start, *start)
			if tt.end == "" {
				assert.Nil(t, end)
			} else {
				require.NotNil(t, end)
				assert.Equal(t, tt.end, *end)
			}
			assert.Equal(t, tt.present, present)
		})
	}
}

func TestSplitDateRange_Nil(t *testing.T) {
	start, end, present := splitDateRange(nil)
	assert.Nil(t, start)
	assert.Nil(t, end)
	assert.False(t, present)
}

func TestParseEndorsementCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"27", 27},
		{"99+", 99},
		{"Endorsed by 12 colleagues", 12},
		{"", 0},
		{"none", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseEndorsementCount(&tt.input))
		})
	}
	assert.Equal(t, 0, parseEndorsementCount(nil))
}
