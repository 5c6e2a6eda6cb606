package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/linkedin-scraper/internal/profile"
)

func TestValidateResult_EmptyResult(t *testing.T) {
	result := profile.Normalize(&profile.RawResult{
		UserProfile: profile.RawProfile{URL: "https://www.linkedin.com/in/ghost/"},
	})

	assert.NoError(t, ValidateResult(result))
}

func TestValidateResult_FullResult(t *testing.T) {
	name := "John Doe"
	company := "Acme Corp"
	start := "Jan 2018"
	end := "Jan 2019"
	skill := "Go"

	result := profile.Normalize(&profile.RawResult{
		UserProfile: profile.RawProfile{
			FullName: &name,
			URL:      "https://www.linkedin.com/in/john-doe/",
		},
		Experiences: []profile.RawExperience{{
			Company:   &company,
			StartDate: &start,
			EndDate:   &end,
		}},
		Skills: []profile.RawSkill{{SkillName: &skill, EndorsementCount: 12}},
	})

	assert.NoError(t, ValidateResult(result))
}

func TestValidateResult_RawJSON(t *testing.T) {
	valid := []byte(`{
		"userProfile": {"fullName": null, "title": null, "location": null, "photo": null, "description": null, "url": "https://www.linkedin.com/in/x/"},
		"experiences": [],
		"education": [],
		"volunteerExperiences": [],
		"skills": []
	}`)
	assert.NoError(t, ValidateResult(valid))
}

func TestValidateResult_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{"missing sections", `{"userProfile": {"fullName": null, "title": null, "location": null, "photo": null, "description": null, "url": "https://x"}}`},
		{"empty url", `{"userProfile": {"fullName": null, "title": null, "location": null, "photo": null, "description": null, "url": ""}, "experiences": [], "education": [], "volunteerExperiences": [], "skills": []}`},
		{"negative endorsements", `{"userProfile": {"fullName": null, "title": null, "location": null, "photo": null, "description": null, "url": "https://x"}, "experiences": [], "education": [], "volunteerExperiences": [], "skills": [{"skillName": "Go", "endorsementCount": -1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResult([]byte(tt.document))

			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.NotEmpty(t, valErr.Errors)
		})
	}
}
