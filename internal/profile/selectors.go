package profile

// Profile page selectors.
// These WILL break when LinkedIn changes their markup.
// Inspect https://www.linkedin.com/in/<user>/ in Chrome DevTools to
// verify/update.

const (
	// Top card container.
	selectorTopCard = `.pv-top-card`

	// Full name in the top card.
	selectorFullName = `.pv-top-card--list li:first-child, .pv-text-details__left-panel h1, .pv-top-card h1`

	// Headline below the name.
	selectorTitle = `.pv-top-card--list + .flex-1 h2, .text-body-medium.break-words, h2.mt1`

	// Top-card location line.
	selectorLocation = `.pv-top-card--list-bullet li:first-child, .pv-text-details__left-panel.mt2 span.text-body-small`

	// Profile photo.
	selectorPhoto = `.pv-top-card__photo img, .pv-top-card-profile-picture__image, img.profile-photo-edit__preview`

	// About section body.
	selectorDescription = `#about ~ .display-flex .inline-show-more-text span[aria-hidden="true"], .pv-about-section .pv-about__summary-text`

	// Experience entries.
	selectorExperienceItem       = `#experience-section li.pv-entity__position-group-pager, #experience ~ .pvs-list__outer-container > ul > li, section[data-section="experience"] li.pvs-list__paged-list-item`
	selectorExperienceTitle      = `h3.t-16, .display-flex.flex-wrap span[aria-hidden="true"], .pv-entity__summary-info h3`
	selectorExperienceCompany    = `.pv-entity__secondary-title, .t-14.t-normal > span[aria-hidden="true"]`
	selectorExperienceDateRange  = `.pv-entity__date-range span:nth-child(2), .pvs-entity__caption-wrapper, .t-14.t-normal.t-black--light > span[aria-hidden="true"]`
	selectorExperienceLocation   = `.pv-entity__location span:nth-child(2), .t-14.t-normal.t-black--light:last-of-type > span[aria-hidden="true"]`
	selectorExperienceSummary    = `.pv-entity__description, .pvs-list__outer-container .inline-show-more-text span[aria-hidden="true"]`

	// Education entries.
	selectorEducationItem         = `#education-section li.pv-profile-section__list-item, #education ~ .pvs-list__outer-container > ul > li, section[data-section="education"] li.pvs-list__paged-list-item`
	selectorEducationSchool       = `h3.pv-entity__school-name, .display-flex.flex-wrap span[aria-hidden="true"], .hoverable-link-text span[aria-hidden="true"]`
	selectorEducationDegree       = `.pv-entity__degree-name .pv-entity__comma-item, .t-14.t-normal > span[aria-hidden="true"]`
	selectorEducationField        = `.pv-entity__fos .pv-entity__comma-item`
	selectorEducationDateRange    = `.pv-entity__dates time, .pvs-entity__caption-wrapper, .t-14.t-normal.t-black--light > span[aria-hidden="true"]`

	// Volunteering entries.
	selectorVolunteerItem      = `.pv-profile-section.volunteering-section li.ember-view, #volunteering_experience ~ .pvs-list__outer-container > ul > li, section[data-section="volunteering"] li.pvs-list__paged-list-item`
	selectorVolunteerTitle     = `.pv-entity__summary-info h3, .display-flex.flex-wrap span[aria-hidden="true"]`
	selectorVolunteerCompany   = `.pv-entity__secondary-title, .t-14.t-normal > span[aria-hidden="true"]`
	selectorVolunteerDateRange = `.pv-entity__date-range span:nth-child(2), .pvs-entity__caption-wrapper`
	selectorVolunteerSummary   = `.pv-entity__description, .pvs-list__outer-container .inline-show-more-text span[aria-hidden="true"]`

	// Skills entries.
	selectorSkillItem        = `.pv-skill-categories-section ol > li.ember-view, #skills ~ .pvs-list__outer-container > ul > li, section[data-section="skills"] li.pvs-list__paged-list-item`
	selectorSkillName        = `.pv-skill-category-entity__name-text, .hoverable-link-text span[aria-hidden="true"]`
	selectorSkillEndorsement = `.pv-skill-category-entity__endorsement-count, .t-14.t-normal.t-black--light span[aria-hidden="true"]`
)
