package model

// OfficeStatus is the two-state activity flag of an office.
type OfficeStatus string

const (
	OfficeStatusActive   OfficeStatus = "Active"
	OfficeStatusInactive OfficeStatus = "Inactive"
)

func (s OfficeStatus) IsValid() bool {
	return s == OfficeStatusActive || s == OfficeStatusInactive
}

// Toggled returns the opposite status. Unknown values become Active.
func (s OfficeStatus) Toggled() OfficeStatus {
	if s == OfficeStatusActive {
		return OfficeStatusInactive
	}
	return OfficeStatusActive
}

// Office is the persisted branch-location document.
type Office struct {
	ID                  string       `bson:"_id"`
	PhotoID             string       `bson:"photo_id,omitempty"`
	Status              OfficeStatus `bson:"status"`
	City                string       `bson:"city"`
	Street              string       `bson:"street"`
	HouseNumber         string       `bson:"house_number"`
	OfficeNumber        string       `bson:"office_number,omitempty"`
	RegistryPhoneNumber string       `bson:"registry_phone_number"`
	Location            []float64    `bson:"location,omitempty"`
	Version             int64        `bson:"version"`
}

// OfficeCreate is the request body of the create operation.
type OfficeCreate struct {
	PhotoID             string       `json:"photo_id,omitempty" validate:"omitempty,max=64"`
	Status              OfficeStatus `json:"status" validate:"required,oneof=Active Inactive"`
	City                string       `json:"city" validate:"required,max=100"`
	Street              string       `json:"street" validate:"required,max=200"`
	HouseNumber         string       `json:"house_number" validate:"required,max=20"`
	OfficeNumber        string       `json:"office_number,omitempty" validate:"omitempty,max=20"`
	RegistryPhoneNumber string       `json:"registry_phone_number" validate:"required,office_phone"`
	Location            []float64    `json:"location,omitempty" validate:"omitnil,len=2"`
}

// OfficeUpdate is the request body of the full-replacement update. It never
// carries an identifier; the one from the path wins.
type OfficeUpdate struct {
	PhotoID             string       `json:"photo_id,omitempty" validate:"omitempty,max=64"`
	Status              OfficeStatus `json:"status" validate:"required,oneof=Active Inactive"`
	City                string       `json:"city" validate:"required,max=100"`
	Street              string       `json:"street" validate:"required,max=200"`
	HouseNumber         string       `json:"house_number" validate:"required,max=20"`
	OfficeNumber        string       `json:"office_number,omitempty" validate:"omitempty,max=20"`
	RegistryPhoneNumber string       `json:"registry_phone_number" validate:"required,office_phone"`
	Location            []float64    `json:"location,omitempty" validate:"omitnil,len=2"`
}

// OfficeOutput is the externally visible representation of an office.
type OfficeOutput struct {
	ID                  string       `json:"id"`
	PhotoID             string       `json:"photo_id,omitempty"`
	Status              OfficeStatus `json:"status"`
	City                string       `json:"city"`
	Street              string       `json:"street"`
	HouseNumber         string       `json:"house_number"`
	OfficeNumber        string       `json:"office_number,omitempty"`
	RegistryPhoneNumber string       `json:"registry_phone_number"`
	Location            []float64    `json:"location,omitempty"`
	Version             int64        `json:"version"`
}
