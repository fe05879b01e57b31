package addressControllers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/swapnil0000/urbannook-api/models"
	"github.com/swapnil0000/urbannook-api/response"
)

var pinCodeRe = regexp.MustCompile(`^[1-9][0-9]{5}$`)

type AddressInput struct {
	FormattedAddress  string  `json:"formattedAddress" binding:"required"`
	City              string  `json:"city"`
	State             string  `json:"state"`
	PinCode           string  `json:"pinCode" binding:"required"`
	Landmark          string  `json:"landmark"`
	FlatOrFloorNumber string  `json:"flatOrFloorNumber"`
	AddressType       string  `json:"addressType"`
	Lat               float64 `json:"lat"`
	Lng               float64 `json:"lng"`
}

func (in *AddressInput) validate() (models.AddressType, string) {
	if !pinCodeRe.MatchString(in.PinCode) {
		return "", "pinCode must be a valid 6-digit code"
	}
	addrType := models.AddressType(strings.ToUpper(in.AddressType))
	if in.AddressType == "" {
		addrType = models.AddressHome
	}
	if !models.ValidAddressType(addrType) {
		return "", "addressType must be HOME, WORK or OTHER"
	}
	return addrType, ""
}

// GET /user/address
func ListAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var addresses []models.Address
		if err := db.Where("user_id = ?", userID).Order("created_at asc").Find(&addresses).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to fetch addresses")
			return
		}

		response.OK(c, http.StatusOK, "", addresses)
	}
}

// POST /user/address
//
// The limit check and insert run in one transaction; a rejected
// create returns ADDRESS_LIMIT_REACHED, a stable code the client can
// branch on instead of parsing message text.
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid input: "+err.Error())
			return
		}
		addrType, msg := input.validate()
		if msg != "" {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, msg)
			return
		}

		address := models.Address{
			UserID:            userID,
			FormattedAddress:  input.FormattedAddress,
			City:              input.City,
			State:             input.State,
			PinCode:           input.PinCode,
			Landmark:          input.Landmark,
			FlatOrFloorNumber: input.FlatOrFloorNumber,
			AddressType:       addrType,
			Lat:               input.Lat,
			Lng:               input.Lng,
		}

		limitHit := false
		err := db.Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&models.Address{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
				return err
			}
			if count >= models.MaxAddressesPerUser {
				limitHit = true
				return gorm.ErrInvalidData
			}
			return tx.Create(&address).Error
		})
		if limitHit {
			response.Fail(c, http.StatusConflict, response.CodeAddressLimit, "You can save at most 5 addresses")
			return
		}
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to save address")
			return
		}

		response.OK(c, http.StatusCreated, "Address saved", address)
	}
}

// PUT /user/address/:id
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		id := c.Param("id")

		var address models.Address
		if err := db.Where("id = ? AND user_id = ?", id, userID).First(&address).Error; err != nil {
			response.Fail(c, http.StatusNotFound, response.CodeNotFound, "Address not found")
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid input: "+err.Error())
			return
		}
		addrType, msg := input.validate()
		if msg != "" {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, msg)
			return
		}

		address.FormattedAddress = input.FormattedAddress
		address.City = input.City
		address.State = input.State
		address.PinCode = input.PinCode
		address.Landmark = input.Landmark
		address.FlatOrFloorNumber = input.FlatOrFloorNumber
		address.AddressType = addrType
		address.Lat = input.Lat
		address.Lng = input.Lng

		if err := db.Save(&address).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to update address")
			return
		}

		response.OK(c, http.StatusOK, "Address updated", address)
	}
}

// DELETE /user/address/:id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		id := c.Param("id")

		result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Address{})
		if result.Error != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to delete address")
			return
		}
		if result.RowsAffected == 0 {
			response.Fail(c, http.StatusNotFound, response.CodeNotFound, "Address not found")
			return
		}

		response.OK(c, http.StatusOK, "Address deleted", nil)
	}
}
