package communityControllers

import (
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/swapnil0000/urbannook-api/mailer"
	"github.com/swapnil0000/urbannook-api/models"
	"github.com/swapnil0000/urbannook-api/response"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type JoinInput struct {
	Email string `json:"email" binding:"required"`
}

// POST /join/community
//
// Idempotent: joining twice with the same email returns 200 without a
// duplicate row.
func JoinCommunity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input JoinInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "Email is required")
			return
		}

		email := strings.ToLower(strings.TrimSpace(input.Email))
		if !emailRe.MatchString(email) {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "Enter a valid email address")
			return
		}

		var existing models.CommunityMember
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			response.OK(c, http.StatusOK, "You are already in the community", existing)
			return
		}

		member := models.CommunityMember{Email: email, JoinedAt: time.Now()}
		if err := db.Create(&member).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to join community")
			return
		}

		if body, err := mailer.RenderCommunityWelcome(email); err == nil {
			log.Printf("community: welcome email rendered for %s (%d bytes)", email, len(body))
		}

		response.OK(c, http.StatusCreated, "Welcome to the community", member)
	}
}

// GET /admin/community
func ListMembers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var members []models.CommunityMember
		if err := db.Order("joined_at desc").Find(&members).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to fetch members")
			return
		}
		response.OK(c, http.StatusOK, "", members)
	}
}
