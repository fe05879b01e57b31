package addressControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swapnil0000/urbannook-api/models"
)

func TestAddressInputValidate(t *testing.T) {
	in := AddressInput{PinCode: "560001", AddressType: "work"}
	addrType, msg := in.validate()
	assert.Empty(t, msg)
	assert.Equal(t, models.AddressWork, addrType)

	// empty type defaults to HOME
	in = AddressInput{PinCode: "110011"}
	addrType, msg = in.validate()
	assert.Empty(t, msg)
	assert.Equal(t, models.AddressHome, addrType)
}

func TestAddressInputValidate_BadPinCode(t *testing.T) {
	for _, pin := range []string{"", "12345", "1234567", "012345", "abcdef"} {
		in := AddressInput{PinCode: pin}
		_, msg := in.validate()
		assert.NotEmpty(t, msg, "pin %q", pin)
	}
}

func TestAddressInputValidate_BadType(t *testing.T) {
	in := AddressInput{PinCode: "560001", AddressType: "VILLA"}
	_, msg := in.validate()
	assert.NotEmpty(t, msg)
}
