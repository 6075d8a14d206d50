package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jeevanM12/Embiodary/internal/models"
	"github.com/jeevanM12/Embiodary/internal/store"
)

/*
GET /designs
- optional ?category= filter using the catalog category display strings
*/
func GetDesigns(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /designs"

		designs := st.Designs()

		if raw := strings.TrimSpace(c.Query("category")); raw != "" {
			category, ok := models.ParseCategory(raw)
			if !ok {
				respondWithError(c, http.StatusBadRequest, route, "unknown category")
				return
			}
			filtered := make([]models.Design, 0, len(designs))
			for _, d := range designs {
				if d.Category == category {
					filtered = append(filtered, d)
				}
			}
			designs = filtered
		}

		c.JSON(http.StatusOK, designs)
	}
}

func GetDesign(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		design, ok := st.DesignByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "design not found"})
			return
		}
		c.JSON(http.StatusOK, design)
	}
}

// GetPortfolio lists the showcase pieces: finished custom work.
func GetPortfolio(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		designs := st.Designs()
		portfolio := make([]models.Design, 0, len(designs))
		for _, d := range designs {
			if d.Category == models.CategoryCustom {
				portfolio = append(portfolio, d)
			}
		}
		c.JSON(http.StatusOK, portfolio)
	}
}

/*
POST /admin/api/designs
- multipart form: title, category, price, description, images (1..n files)
- a design without at least one image is not visible in the storefront,
  so the upload is rejected outright
*/
func CreateDesign(st *store.Store, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/designs"

		if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid multipart form")
			return
		}

		title := strings.TrimSpace(c.PostForm("title"))
		if title == "" {
			respondWithError(c, http.StatusBadRequest, route, "title is required")
			return
		}

		category, ok := models.ParseCategory(strings.TrimSpace(c.PostForm("category")))
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, "unknown category")
			return
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm("price")), 64)
		if err != nil || price < 0 {
			respondWithError(c, http.StatusBadRequest, route, "price must be a non-negative number")
			return
		}

		form := c.Request.MultipartForm
		files := form.File["images"]
		if len(files) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "at least one image is required")
			return
		}

		images := make([]string, 0, len(files))
		for _, file := range files {
			url, err := saveUpload(file, uploadDir)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, err.Error())
				return
			}
			images = append(images, url)
		}

		design := st.AddDesign(models.Design{
			Title:       title,
			Category:    category,
			Price:       price,
			Images:      images,
			Description: strings.TrimSpace(c.PostForm("description")),
		})

		c.JSON(http.StatusCreated, design)
	}
}

func DeleteDesign(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, ok := st.DesignByID(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "design not found"})
			return
		}
		st.DeleteDesign(id)
		c.JSON(http.StatusOK, gin.H{"message": "design deleted"})
	}
}
