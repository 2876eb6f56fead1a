package sanitizer

import (
	"strings"

	"offices/pkg/model"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

// NormalizeStatus maps any casing of a known status to its canonical form.
func NormalizeStatus(status model.OfficeStatus) model.OfficeStatus {
	s := strings.TrimSpace(string(status))
	for _, known := range []model.OfficeStatus{model.OfficeStatusActive, model.OfficeStatusInactive} {
		if strings.EqualFold(s, string(known)) {
			return known
		}
	}
	return model.OfficeStatus(s)
}

func SanitizeOfficeCreate(in *model.OfficeCreate) {
	if in == nil {
		return
	}
	sanitizeOfficeFields(&in.PhotoID, &in.Status, &in.City, &in.Street, &in.HouseNumber, &in.OfficeNumber, &in.RegistryPhoneNumber)
}

func SanitizeOfficeUpdate(in *model.OfficeUpdate) {
	if in == nil {
		return
	}
	sanitizeOfficeFields(&in.PhotoID, &in.Status, &in.City, &in.Street, &in.HouseNumber, &in.OfficeNumber, &in.RegistryPhoneNumber)
}

func sanitizeOfficeFields(photoID *string, status *model.OfficeStatus, city, street, houseNumber, officeNumber, phone *string) {
	text := Pipeline{TrimAndNormalize}
	compact := Pipeline{NormalizeHouseNumber, strings.ToUpper}

	*photoID = strings.TrimSpace(*photoID)
	*status = NormalizeStatus(*status)
	*city = text.Apply(*city)
	*street = text.Apply(*street)
	*houseNumber = compact.Apply(*houseNumber)
	*officeNumber = compact.Apply(*officeNumber)
	*phone = NormalizePhone(*phone)
}
