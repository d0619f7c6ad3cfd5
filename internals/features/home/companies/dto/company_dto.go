// internals/features/home/companies/dto/company_dto.go
package dto

type CreateCompanyRequest struct {
	CompanyName        string  `json:"company_name" validate:"required,min=2,max=200"`
	CompanyLogoURL     *string `json:"company_logo_url" validate:"omitempty,url"`
	CompanyWebsite     string  `json:"company_website" validate:"omitempty,url,max=255"`
	CompanyDescription string  `json:"company_description" validate:"omitempty,max=5000"`
	CompanyIsFeatured  *bool   `json:"company_is_featured"`
}

type UpdateCompanyRequest struct {
	CompanyName        *string `json:"company_name" validate:"omitempty,min=2,max=200"`
	CompanyLogoURL     *string `json:"company_logo_url" validate:"omitempty,url"`
	CompanyWebsite     *string `json:"company_website" validate:"omitempty,url,max=255"`
	CompanyDescription *string `json:"company_description" validate:"omitempty,max=5000"`
	CompanyIsFeatured  *bool   `json:"company_is_featured"`
}

type CreateTestimonialRequest struct {
	AuthorName  string  `json:"author_name" validate:"required,min=2,max=150"`
	AuthorTitle string  `json:"author_title" validate:"omitempty,max=150"`
	Content     string  `json:"content" validate:"required,min=10,max=2000"`
	AvatarURL   *string `json:"avatar_url" validate:"omitempty,url"`
	SortOrder   *int    `json:"sort_order" validate:"omitempty,min=0"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateSiteSettingsRequest struct {
	SiteName     *string `json:"site_name" validate:"omitempty,min=1,max=100"`
	Tagline      *string `json:"tagline" validate:"omitempty,max=200"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email,max=254"`
	Phone        *string `json:"phone" validate:"omitempty,max=20"`
	Address      *string `json:"address" validate:"omitempty,max=300"`
	FacebookURL  *string `json:"facebook_url" validate:"omitempty,url,max=255"`
	TwitterURL   *string `json:"twitter_url" validate:"omitempty,url,max=255"`
	LinkedInURL  *string `json:"linkedin_url" validate:"omitempty,url,max=255"`
	FooterText   *string `json:"footer_text" validate:"omitempty,max=300"`
}
