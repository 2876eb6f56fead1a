// Package mapper converts between the office request/response shapes and the
// persisted entity. Every function copies each field explicitly and performs
// no validation or I/O.
package mapper

import "offices/pkg/model"

// FromCreate leaves ID and Version unset; they are assigned before insert.
func FromCreate(in *model.OfficeCreate) *model.Office {
	return &model.Office{
		PhotoID:             in.PhotoID,
		Status:              in.Status,
		City:                in.City,
		Street:              in.Street,
		HouseNumber:         in.HouseNumber,
		OfficeNumber:        in.OfficeNumber,
		RegistryPhoneNumber: in.RegistryPhoneNumber,
		Location:            copyLocation(in.Location),
	}
}

// FromUpdate leaves ID and Version unset; the caller supplies both from the
// stored record.
func FromUpdate(in *model.OfficeUpdate) *model.Office {
	return &model.Office{
		PhotoID:             in.PhotoID,
		Status:              in.Status,
		City:                in.City,
		Street:              in.Street,
		HouseNumber:         in.HouseNumber,
		OfficeNumber:        in.OfficeNumber,
		RegistryPhoneNumber: in.RegistryPhoneNumber,
		Location:            copyLocation(in.Location),
	}
}

func ToOutput(o *model.Office) *model.OfficeOutput {
	return &model.OfficeOutput{
		ID:                  o.ID,
		PhotoID:             o.PhotoID,
		Status:              o.Status,
		City:                o.City,
		Street:              o.Street,
		HouseNumber:         o.HouseNumber,
		OfficeNumber:        o.OfficeNumber,
		RegistryPhoneNumber: o.RegistryPhoneNumber,
		Location:            copyLocation(o.Location),
		Version:             o.Version,
	}
}

func FromOutput(out *model.OfficeOutput) *model.Office {
	return &model.Office{
		ID:                  out.ID,
		PhotoID:             out.PhotoID,
		Status:              out.Status,
		City:                out.City,
		Street:              out.Street,
		HouseNumber:         out.HouseNumber,
		OfficeNumber:        out.OfficeNumber,
		RegistryPhoneNumber: out.RegistryPhoneNumber,
		Location:            copyLocation(out.Location),
		Version:             out.Version,
	}
}

// ToOutputs never returns nil.
func ToOutputs(offices []*model.Office) []*model.OfficeOutput {
	outputs := make([]*model.OfficeOutput, 0, len(offices))
	for _, o := range offices {
		outputs = append(outputs, ToOutput(o))
	}
	return outputs
}

// copyLocation keeps nil as nil so an absent location stays absent.
func copyLocation(loc []float64) []float64 {
	if loc == nil {
		return nil
	}
	out := make([]float64, len(loc))
	copy(out, loc)
	return out
}
