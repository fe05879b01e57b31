package productControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/swapnil0000/urbannook-api/models"
	"github.com/swapnil0000/urbannook-api/response"
)

func uploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return filepath.Join(dir, "products")
	}
	return "uploads/products"
}

func parseCategoryIDs(db *gorm.DB, raw string) ([]models.Category, error) {
	if raw == "" {
		return nil, nil
	}
	var parsedIDs []uint
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		id64, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return nil, err
		}
		parsedIDs = append(parsedIDs, uint(id64))
	}
	if len(parsedIDs) == 0 {
		return nil, nil
	}
	var categories []models.Category
	if err := db.Where("id IN ?", parsedIDs).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func saveImage(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	dir := uploadDir()
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return fmt.Sprintf("/uploads/products/%s", filename), nil
}

// POST /admin/products (multipart)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		salePriceStr := c.PostForm("sale_price")
		if name == "" || salePriceStr == "" {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "name and sale_price are required")
			return
		}

		salePrice, err := strconv.ParseFloat(salePriceStr, 64)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid sale_price")
			return
		}

		var regularPrice float64
		if s := c.PostForm("regular_price"); s != "" {
			if rp, parseErr := strconv.ParseFloat(s, 64); parseErr == nil {
				regularPrice = rp
			} else {
				response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid regular_price")
				return
			}
		}

		var stock int
		if s := c.PostForm("stock"); s != "" {
			if st, parseErr := strconv.Atoi(s); parseErr == nil {
				stock = st
			} else {
				response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid stock")
				return
			}
		}

		categories, err := parseCategoryIDs(db, c.PostForm("category_ids"))
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid category_ids")
			return
		}

		imageURL, err := saveImage(c, "image")
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "Image is required")
			return
		}

		newProduct := models.Product{
			Name:         name,
			Description:  c.PostForm("description"),
			SalePrice:    salePrice,
			RegularPrice: regularPrice,
			Image:        imageURL,
			Stock:        stock,
			Featured:     c.PostForm("featured") == "true",
			Categories:   categories,
		}

		if err := db.Create(&newProduct).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to create product")
			return
		}

		response.OK(c, http.StatusCreated, "Product created", newProduct)
	}
}
