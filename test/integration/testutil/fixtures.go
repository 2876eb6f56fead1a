package testutil

import (
	"net/http"
	"strings"
	"testing"

	"offices/pkg/client"
	"offices/pkg/model"
)

type OfficeBuilder struct {
	office model.OfficeCreate
}

func NewOfficeBuilder() *OfficeBuilder {
	return &OfficeBuilder{
		office: model.OfficeCreate{
			Status:              model.OfficeStatusActive,
			City:                "Minsk",
			Street:              "Nezavisimosti",
			HouseNumber:         "10",
			OfficeNumber:        "12",
			RegistryPhoneNumber: "+375291234567",
			Location:            []float64{53.9, 27.56},
		},
	}
}

func (b *OfficeBuilder) WithStatus(status model.OfficeStatus) *OfficeBuilder {
	b.office.Status = status
	return b
}

func (b *OfficeBuilder) WithCity(city string) *OfficeBuilder {
	b.office.City = city
	return b
}

func (b *OfficeBuilder) WithPhone(phone string) *OfficeBuilder {
	b.office.RegistryPhoneNumber = phone
	return b
}

func (b *OfficeBuilder) WithPhotoID(photoID string) *OfficeBuilder {
	b.office.PhotoID = photoID
	return b
}

func (b *OfficeBuilder) Build() model.OfficeCreate {
	return b.office
}

func ValidOffice() model.OfficeCreate {
	return NewOfficeBuilder().Build()
}

// ToUpdate copies every field of a create body into an update body.
func ToUpdate(in model.OfficeCreate) model.OfficeUpdate {
	return model.OfficeUpdate(in)
}

func AssertStatusCode(t *testing.T, resp *client.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Fatalf("expected status %d, got %d: %s", expected, resp.StatusCode, string(resp.Body))
	}
}

func AssertContains(t *testing.T, resp *client.Response, substr string) {
	t.Helper()
	if !strings.Contains(strings.ToLower(string(resp.Body)), strings.ToLower(substr)) {
		t.Errorf("expected body to contain %q, got: %s", substr, string(resp.Body))
	}
}

// MustCreate creates an office and returns the decoded result.
func MustCreate(t *testing.T, c *client.OfficeClient, in model.OfficeCreate) model.OfficeOutput {
	t.Helper()
	resp, err := c.Create(t.Context(), in)
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	AssertStatusCode(t, resp, http.StatusCreated)

	var created model.OfficeOutput
	if err := resp.DecodeData(&created); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}
	return created
}
