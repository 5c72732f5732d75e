package request

type CreateTenant struct {
	Subdomain      string  `json:"subdomain" validate:"required,subdomain"`
	CustomDomain   *string `json:"custom_domain" validate:"omitempty,fqdn"`
	BrandName      string  `json:"brand_name" validate:"required,max=100"`
	Logo           *string `json:"logo" validate:"omitempty,url"`
	Favicon        *string `json:"favicon" validate:"omitempty,url"`
	Font           string  `json:"font" validate:"omitempty,oneof=Inter Roboto Poppins Montserrat Lato"`
	PrimaryColor   string  `json:"primary_color" validate:"omitempty,hexcolor"`
	SecondaryColor string  `json:"secondary_color" validate:"omitempty,hexcolor"`
	AccentColor    string  `json:"accent_color" validate:"omitempty,hexcolor"`
}

type UpdateTenant struct {
	Subdomain      *string `json:"subdomain" validate:"omitempty,subdomain"`
	CustomDomain   *string `json:"custom_domain" validate:"omitempty,fqdn"`
	BrandName      *string `json:"brand_name" validate:"omitempty,max=100"`
	Logo           *string `json:"logo" validate:"omitempty,url"`
	Favicon        *string `json:"favicon" validate:"omitempty,url"`
	Font           *string `json:"font" validate:"omitempty,oneof=Inter Roboto Poppins Montserrat Lato"`
	PrimaryColor   *string `json:"primary_color" validate:"omitempty,hexcolor"`
	SecondaryColor *string `json:"secondary_color" validate:"omitempty,hexcolor"`
	AccentColor    *string `json:"accent_color" validate:"omitempty,hexcolor"`
	Status         *string `json:"status" validate:"omitempty,oneof=active suspended"`
}
