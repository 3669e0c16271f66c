package dto

import "getexposure/internal/entity"

// Create requests validate the full schema; update requests use pointer
// fields so the admin panel can patch a subset, with Fields() translating
// set fields to column updates. The store never sees a partially-validated
// body: validation runs before any repository call.

type HomeContentRequest struct {
	HeroTitle1  string `json:"heroTitle1" validate:"required"`
	HeroTitle2  string `json:"heroTitle2" validate:"required"`
	TypedWords  string `json:"typedWords" validate:"required"`
	SubHeadline string `json:"subHeadline" validate:"required"`
	Description string `json:"description" validate:"required"`
	CTAText     string `json:"ctaText" validate:"required"`
	CTALink     string `json:"ctaLink" validate:"required,url"`

	BigStat    string `json:"bigStat" validate:"required"`
	StatsText1 string `json:"statsText1" validate:"required"`
	StatsText2 string `json:"statsText2" validate:"required"`
	StatsText3 string `json:"statsText3" validate:"required"`

	JourneyTitle1 string `json:"journeyTitle1" validate:"required"`
	JourneyTitle2 string `json:"journeyTitle2" validate:"required"`
	JourneyDesc   string `json:"journeyDesc" validate:"required"`
}

func (r HomeContentRequest) ToEntity() *entity.HomeContent {
	return &entity.HomeContent{
		HeroTitle1:    r.HeroTitle1,
		HeroTitle2:    r.HeroTitle2,
		TypedWords:    r.TypedWords,
		SubHeadline:   r.SubHeadline,
		Description:   r.Description,
		CTAText:       r.CTAText,
		CTALink:       r.CTALink,
		BigStat:       r.BigStat,
		StatsText1:    r.StatsText1,
		StatsText2:    r.StatsText2,
		StatsText3:    r.StatsText3,
		JourneyTitle1: r.JourneyTitle1,
		JourneyTitle2: r.JourneyTitle2,
		JourneyDesc:   r.JourneyDesc,
	}
}

type PositionCreateRequest struct {
	Slug         string `json:"slug" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Subtitle     string `json:"subtitle" validate:"required"`
	Description  string `json:"description" validate:"required"`
	CalendlyLink string `json:"calendlyLink" validate:"required,url"`
	DisplayOrder *int   `json:"displayOrder"`
	IsActive     *bool  `json:"isActive"`
}

func (r PositionCreateRequest) ToEntity() *entity.Position {
	position := &entity.Position{
		Slug:         r.Slug,
		Title:        r.Title,
		Subtitle:     r.Subtitle,
		Description:  r.Description,
		CalendlyLink: r.CalendlyLink,
		IsActive:     true,
	}
	if r.DisplayOrder != nil {
		position.DisplayOrder = *r.DisplayOrder
	}
	if r.IsActive != nil {
		position.IsActive = *r.IsActive
	}
	return position
}

type PositionUpdateRequest struct {
	Slug         *string `json:"slug" validate:"omitempty,min=1"`
	Title        *string `json:"title" validate:"omitempty,min=1"`
	Subtitle     *string `json:"subtitle" validate:"omitempty,min=1"`
	Description  *string `json:"description" validate:"omitempty,min=1"`
	CalendlyLink *string `json:"calendlyLink" validate:"omitempty,url"`
	DisplayOrder *int    `json:"displayOrder"`
	IsActive     *bool   `json:"isActive"`
}

func (r PositionUpdateRequest) Fields() map[string]any {
	fields := map[string]any{}
	setString(fields, "slug", r.Slug)
	setString(fields, "title", r.Title)
	setString(fields, "subtitle", r.Subtitle)
	setString(fields, "description", r.Description)
	setString(fields, "calendly_link", r.CalendlyLink)
	setInt(fields, "display_order", r.DisplayOrder)
	setBool(fields, "is_active", r.IsActive)
	return fields
}

type CaseStudyCreateRequest struct {
	Category     string `json:"category" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Slug         string `json:"slug" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Result1      string `json:"result1" validate:"required"`
	Result2      string `json:"result2" validate:"required"`
	Result3      string `json:"result3" validate:"required"`
	DisplayOrder *int   `json:"displayOrder"`
	IsPublished  *bool  `json:"isPublished"`
}

func (r CaseStudyCreateRequest) ToEntity() *entity.CaseStudy {
	study := &entity.CaseStudy{
		Category:    r.Category,
		Title:       r.Title,
		Slug:        r.Slug,
		Description: r.Description,
		Result1:     r.Result1,
		Result2:     r.Result2,
		Result3:     r.Result3,
		IsPublished: true,
	}
	if r.DisplayOrder != nil {
		study.DisplayOrder = *r.DisplayOrder
	}
	if r.IsPublished != nil {
		study.IsPublished = *r.IsPublished
	}
	return study
}

type CaseStudyUpdateRequest struct {
	Category     *string `json:"category" validate:"omitempty,min=1"`
	Title        *string `json:"title" validate:"omitempty,min=1"`
	Slug         *string `json:"slug" validate:"omitempty,min=1"`
	Description  *string `json:"description" validate:"omitempty,min=1"`
	Result1      *string `json:"result1" validate:"omitempty,min=1"`
	Result2      *string `json:"result2" validate:"omitempty,min=1"`
	Result3      *string `json:"result3" validate:"omitempty,min=1"`
	DisplayOrder *int    `json:"displayOrder"`
	IsPublished  *bool   `json:"isPublished"`
}

func (r CaseStudyUpdateRequest) Fields() map[string]any {
	fields := map[string]any{}
	setString(fields, "category", r.Category)
	setString(fields, "title", r.Title)
	setString(fields, "slug", r.Slug)
	setString(fields, "description", r.Description)
	setString(fields, "result1", r.Result1)
	setString(fields, "result2", r.Result2)
	setString(fields, "result3", r.Result3)
	setInt(fields, "display_order", r.DisplayOrder)
	setBool(fields, "is_published", r.IsPublished)
	return fields
}

type SolutionCreateRequest struct {
	Slug         string `json:"slug" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	VideoURL     string `json:"videoUrl" validate:"required,url"`
	CalendlyLink string `json:"calendlyLink" validate:"required,url"`
}

func (r SolutionCreateRequest) ToEntity() *entity.SolutionType {
	return &entity.SolutionType{
		Slug:         r.Slug,
		Title:        r.Title,
		Description:  r.Description,
		VideoURL:     r.VideoURL,
		CalendlyLink: r.CalendlyLink,
	}
}

type SolutionUpdateRequest struct {
	Slug         *string `json:"slug" validate:"omitempty,min=1"`
	Title        *string `json:"title" validate:"omitempty,min=1"`
	Description  *string `json:"description" validate:"omitempty,min=1"`
	VideoURL     *string `json:"videoUrl" validate:"omitempty,url"`
	CalendlyLink *string `json:"calendlyLink" validate:"omitempty,url"`
}

func (r SolutionUpdateRequest) Fields() map[string]any {
	fields := map[string]any{}
	setString(fields, "slug", r.Slug)
	setString(fields, "title", r.Title)
	setString(fields, "description", r.Description)
	setString(fields, "video_url", r.VideoURL)
	setString(fields, "calendly_link", r.CalendlyLink)
	return fields
}

type SolutionStepCreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	StepOrder   *int   `json:"stepOrder"`
}

func (r SolutionStepCreateRequest) ToEntity(solutionTypeID uint) *entity.SolutionStep {
	step := &entity.SolutionStep{
		SolutionTypeID: solutionTypeID,
		Title:          r.Title,
		Description:    r.Description,
	}
	if r.StepOrder != nil {
		step.StepOrder = *r.StepOrder
	}
	return step
}

type SolutionStepUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	StepOrder   *int    `json:"stepOrder"`
}

func (r SolutionStepUpdateRequest) Fields() map[string]any {
	fields := map[string]any{}
	setString(fields, "title", r.Title)
	setString(fields, "description", r.Description)
	setInt(fields, "step_order", r.StepOrder)
	return fields
}

type ContactContentRequest struct {
	MainTitle1      string `json:"mainTitle1" validate:"required"`
	MainTitle2      string `json:"mainTitle2" validate:"required"`
	MainDescription string `json:"mainDescription" validate:"required"`
	BenefitsTitle   string `json:"benefitsTitle" validate:"required"`
	ContactTitle    string `json:"contactTitle" validate:"required"`
	TrustBadge      string `json:"trustBadge" validate:"required"`
}

func (r ContactContentRequest) ToEntity() *entity.ContactContent {
	return &entity.ContactContent{
		MainTitle1:      r.MainTitle1,
		MainTitle2:      r.MainTitle2,
		MainDescription: r.MainDescription,
		BenefitsTitle:   r.BenefitsTitle,
		ContactTitle:    r.ContactTitle,
		TrustBadge:      r.TrustBadge,
	}
}

type ContactInfoCreateRequest struct {
	Type    string `json:"type" validate:"required,oneof=info benefit stat"`
	Icon    string `json:"icon"`
	Title   string `json:"title" validate:"required"`
	Details string `json:"details" validate:"required"`
	Order   *int   `json:"order"`
	Active  *bool  `json:"isActive"`
}

func (r ContactInfoCreateRequest) ToEntity() *entity.ContactInfo {
	item := &entity.ContactInfo{
		Type:     entity.ContactInfoType(r.Type),
		Icon:     r.Icon,
		Title:    r.Title,
		Details:  r.Details,
		IsActive: true,
	}
	if r.Order != nil {
		item.Order = *r.Order
	}
	if r.Active != nil {
		item.IsActive = *r.Active
	}
	return item
}

type ContactInfoUpdateRequest struct {
	Type    *string `json:"type" validate:"omitempty,oneof=info benefit stat"`
	Icon    *string `json:"icon"`
	Title   *string `json:"title" validate:"omitempty,min=1"`
	Details *string `json:"details" validate:"omitempty,min=1"`
	Order   *int    `json:"order"`
	Active  *bool   `json:"isActive"`
}

func (r ContactInfoUpdateRequest) Fields() map[string]any {
	fields := map[string]any{}
	setString(fields, "type", r.Type)
	setString(fields, "icon", r.Icon)
	setString(fields, "title", r.Title)
	setString(fields, "details", r.Details)
	setInt(fields, "display_order", r.Order)
	setBool(fields, "is_active", r.Active)
	return fields
}

type StatsContentRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (r StatsContentRequest) ToEntity() *entity.StatsContent {
	return &entity.StatsContent{Title: r.Title, Description: r.Description}
}

type StatItemCreateRequest struct {
	Value  string `json:"value" validate:"required"`
	Suffix string `json:"suffix" validate:"required"`
	Label  string `json:"label" validate:"required"`
	Icon   string `json:"icon" validate:"required"`
	Order  *int   `json:"order"`
	Active *bool  `json:"isActive"`
}

func (r StatItemCreateRequest) ToEntity() *entity.StatItem {
	item := &entity.StatItem{
		Value:    r.Value,
		Suffix:   r.Suffix,
		Label:    r.Label,
		Icon:     r.Icon,
		IsActive: true,
	}
	if r.Order != nil {
		item.Order = *r.Order
	}
	if r.Active != nil {
		item.IsActive = *r.Active
	}
	return item
}

type StatItemUpdateRequest struct {
	Value  *string `json:"value" validate:"omitempty,min=1"`
	Suffix *string `json:"suffix" validate:"omitempty,min=1"`
	Label  *string `json:"label" validate:"omitempty,min=1"`
	Icon   *string `json:"icon" validate:"omitempty,min=1"`
	Order  *int    `json:"order"`
	Active *bool   `json:"isActive"`
}

func (r StatItemUpdateRequest) Fields() map[string]any {
	fields := map[string]any{}
	setString(fields, "value", r.Value)
	setString(fields, "suffix", r.Suffix)
	setString(fields, "label", r.Label)
	setString(fields, "icon", r.Icon)
	setInt(fields, "display_order", r.Order)
	setBool(fields, "is_active", r.Active)
	return fields
}

type LogoUpdateRequest struct {
	Alt    *string `json:"alt"`
	Order  *int    `json:"order"`
	Active *bool   `json:"isActive"`
}

func (r LogoUpdateRequest) Fields() map[string]any {
	fields := map[string]any{}
	setString(fields, "alt", r.Alt)
	setInt(fields, "display_order", r.Order)
	setBool(fields, "is_active", r.Active)
	return fields
}

type SettingsUpdateRequest struct {
	SiteName            *string `json:"siteName" validate:"omitempty,min=1"`
	SiteDescription     *string `json:"siteDescription" validate:"omitempty,min=1"`
	DefaultCalendlyLink *string `json:"defaultCalendlyLink" validate:"omitempty,url"`
	Email               *string `json:"email" validate:"omitempty,email"`
	Phone               *string `json:"phone" validate:"omitempty,min=1"`
	Location            *string `json:"location" validate:"omitempty,min=1"`
	BusinessHours       *string `json:"businessHours" validate:"omitempty,min=1"`
	GoogleAnalyticsID   *string `json:"googleAnalyticsId"`
	FacebookPixelID     *string `json:"facebookPixelId"`
}

func (r SettingsUpdateRequest) Fields() map[string]any {
	fields := map[string]any{}
	setString(fields, "site_name", r.SiteName)
	setString(fields, "site_description", r.SiteDescription)
	setString(fields, "default_calendly_link", r.DefaultCalendlyLink)
	setString(fields, "email", r.Email)
	setString(fields, "phone", r.Phone)
	setString(fields, "location", r.Location)
	setString(fields, "business_hours", r.BusinessHours)
	setString(fields, "google_analytics_id", r.GoogleAnalyticsID)
	setString(fields, "facebook_pixel_id", r.FacebookPixelID)
	return fields
}

func setString(fields map[string]any, column string, value *string) {
	if value != nil {
		fields[column] = *value
	}
}

func setInt(fields map[string]any, column string, value *int) {
	if value != nil {
		fields[column] = *value
	}
}

func setBool(fields map[string]any, column string, value *bool) {
	if value != nil {
		fields[column] = *value
	}
}
