package adminControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/swapnil0000/urbannook-api/models"
	"github.com/swapnil0000/urbannook-api/response"
)

func bannerDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return filepath.Join(dir, "banners")
	}
	return "uploads/banners"
}

// POST /admin/banners (multipart: image, optional link)
func UploadBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "No image uploaded")
			return
		}

		dir := bannerDir()
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to create upload folder")
			return
		}

		ext := filepath.Ext(file.Filename)
		base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
		base = strings.ReplaceAll(base, " ", "_")
		filename := fmt.Sprintf("%d_%s%s", time.Now().Unix(), base, ext)

		if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to save file")
			return
		}

		banner := models.Banner{
			ImageURL: fmt.Sprintf("/uploads/banners/%s", filename),
			Link:     c.PostForm("link"),
		}
		if err := db.Create(&banner).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "DB save failed")
			return
		}

		response.OK(c, http.StatusOK, "Banner uploaded", banner)
	}
}

// GET /banners
func GetBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Find(&banners).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to get banners")
			return
		}
		response.OK(c, http.StatusOK, "", banners)
	}
}

// DELETE /admin/banners/:id
func DeleteBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var banner models.Banner
		if err := db.First(&banner, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				response.Fail(c, http.StatusNotFound, response.CodeNotFound, "Banner not found")
				return
			}
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Database error")
			return
		}

		// best-effort file cleanup
		if banner.ImageURL != "" {
			localPath := strings.TrimPrefix(banner.ImageURL, "/uploads/")
			if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
				localPath = filepath.Join(dir, localPath)
			} else {
				localPath = filepath.Join("uploads", localPath)
			}
			if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
				response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to delete file")
				return
			}
		}

		if err := db.Delete(&banner).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to delete from database")
			return
		}

		response.OK(c, http.StatusOK, "Banner deleted", nil)
	}
}
