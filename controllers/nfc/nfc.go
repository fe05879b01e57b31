package nfcControllers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/swapnil0000/urbannook-api/models"
	"github.com/swapnil0000/urbannook-api/response"
)

type RegisterTagInput struct {
	Label     string `json:"label"`
	TargetURL string `json:"target_url" binding:"required"`
	OwnerID   string `json:"owner_id"`
}

// POST /admin/nfc
func RegisterTag(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterTagInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "target_url is required")
			return
		}

		parsed, err := url.ParseRequestURI(input.TargetURL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "target_url must be a valid http(s) URL")
			return
		}

		tag := models.NFCTag{
			TagID:     uuid.NewString(),
			Label:     input.Label,
			TargetURL: input.TargetURL,
			OwnerID:   input.OwnerID,
			Active:    true,
		}
		if err := db.Create(&tag).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to register tag")
			return
		}

		response.OK(c, http.StatusCreated, "Tag registered", tag)
	}
}

// GET /nfc/resolve/:tag_id
//
// Public: a tap resolves the tag to its target URL and bumps the
// counter atomically.
func ResolveTag(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tagID := c.Param("tag_id")

		var tag models.NFCTag
		if err := db.Where("tag_id = ? AND active = ?", tagID, true).First(&tag).Error; err != nil {
			response.Fail(c, http.StatusNotFound, response.CodeNotFound, "Tag not found")
			return
		}

		db.Model(&tag).UpdateColumn("taps", gorm.Expr("taps + 1"))

		response.OK(c, http.StatusOK, "", gin.H{
			"target_url": tag.TargetURL,
			"label":      tag.Label,
		})
	}
}

// GET /admin/nfc
func ListTags(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tags []models.NFCTag
		if err := db.Order("created_at desc").Find(&tags).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to fetch tags")
			return
		}
		response.OK(c, http.StatusOK, "", tags)
	}
}

// DELETE /admin/nfc/:tag_id
func DeactivateTag(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tagID := c.Param("tag_id")

		result := db.Model(&models.NFCTag{}).Where("tag_id = ?", tagID).Update("active", false)
		if result.Error != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to deactivate tag")
			return
		}
		if result.RowsAffected == 0 {
			response.Fail(c, http.StatusNotFound, response.CodeNotFound, "Tag not found")
			return
		}

		response.OK(c, http.StatusOK, "Tag deactivated", nil)
	}
}
