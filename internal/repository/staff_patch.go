package repository

import "github.com/propdesk/estate-admin/internal/model"

// StaffPatch is a partial update of a staff account. Every field is a
// pointer: nil means "leave unchanged", a non-nil value overwrites —
// including explicit false, which legitimately clears a capability. This
// keeps "not sent" and "sent as false" distinguishable after JSON decoding.
type StaffPatch struct {
	Name             *string `json:"name"`
	Email            *string `json:"email"`
	Type             *string `json:"type"`
	VendorAdmin      *bool   `json:"isVendorAdmin"`
	PropertiesAdmin  *bool   `json:"isPropertiesAdmin"`
	InquiryAdmin     *bool   `json:"isInquiryAdmin"`
	BlogAdmin        *bool   `json:"isBlogAdmin"`
	ApplicationAdmin *bool   `json:"isApplicationAdmin"`
	JobAdmin         *bool   `json:"isJobAdmin"`
}

// Apply merges the patch over an existing record and returns the result.
func (p StaffPatch) Apply(s model.StaffAccount) model.StaffAccount {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Type != nil {
		s.Type = *p.Type
	}
	if p.VendorAdmin != nil {
		s.VendorAdmin = *p.VendorAdmin
	}
	if p.PropertiesAdmin != nil {
		s.PropertiesAdmin = *p.PropertiesAdmin
	}
	if p.InquiryAdmin != nil {
		s.InquiryAdmin = *p.InquiryAdmin
	}
	if p.BlogAdmin != nil {
		s.BlogAdmin = *p.BlogAdmin
	}
	if p.ApplicationAdmin != nil {
		s.ApplicationAdmin = *p.ApplicationAdmin
	}
	if p.JobAdmin != nil {
		s.JobAdmin = *p.JobAdmin
	}
	return s
}
