package sanitizer

import (
	"testing"

	"offices/pkg/model"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		input model.OfficeStatus
		want  model.OfficeStatus
	}{
		{"Active", model.OfficeStatusActive},
		{"active", model.OfficeStatusActive},
		{" INACTIVE ", model.OfficeStatusInactive},
		{"Closed", "Closed"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			if got := NormalizeStatus(tt.input); got != tt.want {
				t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeOfficeCreate(t *testing.T) {
	in := &model.OfficeCreate{
		PhotoID:             "  photo-1 ",
		Status:              "active",
		City:                "  City   1 ",
		Street:              "Street\t1",
		HouseNumber:         " 1 a",
		OfficeNumber:        " 33 ",
		RegistryPhoneNumber: "+375 33 892-64-91",
		Location:            []float64{53.9, 27.56},
	}

	SanitizeOfficeCreate(in)

	want := model.OfficeCreate{
		PhotoID:             "photo-1",
		Status:              model.OfficeStatusActive,
		City:                "City 1",
		Street:              "Street 1",
		HouseNumber:         "1A",
		OfficeNumber:        "33",
		RegistryPhoneNumber: "+375338926491",
	}
	if in.PhotoID != want.PhotoID || in.Status != want.Status || in.City != want.City ||
		in.Street != want.Street || in.HouseNumber != want.HouseNumber ||
		in.OfficeNumber != want.OfficeNumber || in.RegistryPhoneNumber != want.RegistryPhoneNumber {
		t.Errorf("SanitizeOfficeCreate() = %+v, want %+v", *in, want)
	}
	if len(in.Location) != 2 || in.Location[0] != 53.9 {
		t.Errorf("location must be left untouched, got %v", in.Location)
	}
}

func TestSanitizeOfficeUpdate_NilIsNoop(t *testing.T) {
	SanitizeOfficeUpdate(nil)
	SanitizeOfficeCreate(nil)
}

func TestSanitizeOfficeUpdate(t *testing.T) {
	in := &model.OfficeUpdate{
		Status:              "inactive",
		City:                " City 2 ",
		Street:              "Street  2",
		HouseNumber:         "2b",
		RegistryPhoneNumber: "+375330000001",
	}

	SanitizeOfficeUpdate(in)

	if in.Status != model.OfficeStatusInactive || in.City != "City 2" || in.Street != "Street 2" || in.HouseNumber != "2B" {
		t.Errorf("unexpected sanitized update: %+v", *in)
	}
}
