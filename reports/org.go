package reports

import (
	"strings"

	"github.com/sitetools/ops-core/nullable"
)

// OrganizationProfile - company identity printed in document headers and
// footers. Registration numbers and logo are optional.
type OrganizationProfile struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	AddressLine1  nullable.String `json:"address_line1"`
	AddressLine2  nullable.String `json:"address_line2"`
	City          nullable.String `json:"city"`
	Postcode      nullable.String `json:"postcode"`
	Phone         nullable.String `json:"phone"`
	Email         nullable.String `json:"email"`
	VATNumber     nullable.String `json:"vat_number"`
	CompanyNumber nullable.String `json:"company_number"`
	LogoObject    nullable.String `json:"logo_object"` // object name in the logos bucket
}

func (o *OrganizationProfile) GetID() int64 {
	return o.ID
}

func (o *OrganizationProfile) TargetFields() []any {
	return []any{
		&o.ID, &o.Name,
		&o.AddressLine1, &o.AddressLine2, &o.City, &o.Postcode,
		&o.Phone, &o.Email,
		&o.VATNumber, &o.CompanyNumber, &o.LogoObject,
	}
}

// AddressLines - the non-empty address rows in print order.
func (o *OrganizationProfile) AddressLines() []string {
	var lines []string
	for _, v := range []nullable.String{o.AddressLine1, o.AddressLine2, o.City, o.Postcode} {
		if v.Valid && strings.TrimSpace(v.String) != "" {
			lines = append(lines, v.String)
		}
	}
	return lines
}

// RegistrationLine - footer text like "VAT No. 123 | Company No. 456".
// Empty when the profile carries neither number.
func (o *OrganizationProfile) RegistrationLine() string {
	var parts []string
	if o.VATNumber.Valid && o.VATNumber.String != "" {
		parts = append(parts, "VAT No. "+o.VATNumber.String)
	}
	if o.CompanyNumber.Valid && o.CompanyNumber.String != "" {
		parts = append(parts, "Company No. "+o.CompanyNumber.String)
	}
	return strings.Join(parts, " | ")
}
