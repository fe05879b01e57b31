package models

import "time"

type AddressType string

const (
	AddressHome  AddressType = "HOME"
	AddressWork  AddressType = "WORK"
	AddressOther AddressType = "OTHER"
)

// MaxAddressesPerUser caps saved addresses in the checkout picker.
const MaxAddressesPerUser = 5

type Address struct {
	ID                uint        `gorm:"primaryKey" json:"id"`
	UserID            string      `gorm:"index;not null" json:"-"`
	FormattedAddress  string      `gorm:"not null" json:"formattedAddress"`
	City              string      `json:"city"`
	State             string      `json:"state"`
	PinCode           string      `json:"pinCode"`
	Landmark          string      `json:"landmark"`
	FlatOrFloorNumber string      `json:"flatOrFloorNumber"`
	AddressType       AddressType `gorm:"type:VARCHAR(10);default:'HOME'" json:"addressType"`
	Lat               float64     `json:"lat"`
	Lng               float64     `json:"lng"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

func ValidAddressType(t AddressType) bool {
	switch t {
	case AddressHome, AddressWork, AddressOther:
		return true
	}
	return false
}
