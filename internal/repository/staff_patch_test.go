package repository

import (
	"encoding/json"
	"testing"

	"github.com/propdesk/estate-admin/internal/model"
)

func boolPtr(b bool) *bool        { return &b }
func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestStaffPatchMergeNotReplace(t *testing.T) {
	cur := model.StaffAccount{
		Name: "Asha", Email: "asha@example.com", Type: model.StaffTypeHR,
		VendorAdmin: true, PropertiesAdmin: true, InquiryAdmin: true,
		BlogAdmin: true, ApplicationAdmin: true,
	}
	// Clear exactly one flag; everything else must survive untouched.
	next := StaffPatch{BlogAdmin: boolPtr(false)}.Apply(cur)

	if next.BlogAdmin {
		t.Fatal("explicit false must clear the flag")
	}
	if !next.VendorAdmin || !next.PropertiesAdmin || !next.InquiryAdmin || !next.ApplicationAdmin {
		t.Fatal("omitted flags must be preserved")
	}
	if next.Name != cur.Name || next.Email != cur.Email || next.Type != cur.Type {
		t.Fatal("omitted fields must be preserved")
	}
}

func TestStaffPatchDistinguishesAbsentFromFalse(t *testing.T) {
	cur := model.StaffAccount{JobAdmin: true, BlogAdmin: true}

	var absent StaffPatch
	if err := json.Unmarshal([]byte(`{"isBlogAdmin":false}`), &absent); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	next := absent.Apply(cur)
	if next.BlogAdmin {
		t.Fatal("isBlogAdmin sent as false must clear")
	}
	if !next.JobAdmin {
		t.Fatal("isJobAdmin absent from payload must be preserved")
	}
}

func TestStaffPatchUpdatesNamedFields(t *testing.T) {
	cur := model.StaffAccount{Name: "Old", Email: "old@x.com", Type: model.StaffTypeStaff}
	next := StaffPatch{Email: strPtr("new@x.com")}.Apply(cur)
	if next.Email != "new@x.com" {
		t.Fatalf("email not updated: %q", next.Email)
	}
	// The type field must fall back to the stored type, not to any other
	// field's value.
	if next.Type != model.StaffTypeStaff || next.Name != "Old" {
		t.Fatalf("unrelated fields changed: %+v", next)
	}
}

func TestVendorPatchMerge(t *testing.T) {
	cur := model.Vendor{Name: "Acme", Company: "Acme Estates", Phone: "111"}
	next := VendorPatch{Phone: strPtr("222")}.Apply(cur)
	if next.Phone != "222" || next.Name != "Acme" || next.Company != "Acme Estates" {
		t.Fatalf("vendor merge wrong: %+v", next)
	}
}

func TestPropertyPatchExplicitDelist(t *testing.T) {
	cur := model.Property{Title: "2BHK", Active: true, Price: 100}
	next := PropertyPatch{Active: boolPtr(false), Price: floatPtr(95)}.Apply(cur)
	if next.Active {
		t.Fatal("explicit false must delist")
	}
	if next.Price != 95 || next.Title != "2BHK" {
		t.Fatalf("property merge wrong: %+v", next)
	}
}

func TestJobPatchMerge(t *testing.T) {
	cur := model.Job{Title: "Agent", Open: true}
	next := JobPatch{Open: boolPtr(false)}.Apply(cur)
	if next.Open || next.Title != "Agent" {
		t.Fatalf("job merge wrong: %+v", next)
	}
}
