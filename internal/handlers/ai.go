package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeevanM12/Embiodary/internal/gemini"
)

type generateDesignRequest struct {
	Prompt      string `json:"prompt" binding:"required"`
	AspectRatio string `json:"aspectRatio"`
	Resolution  string `json:"resolution"`
}

type advisorRequest struct {
	Query string `json:"query" binding:"required"`
}

// GenerateDesign asks the image model for an embroidery preview.
// Collaborator failures propagate to the caller as a 502 so the UI can
// reset its loading state and report the error.
func GenerateDesign(ai *gemini.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /designs/generate"

		var req generateDesignRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if req.AspectRatio == "" {
			req.AspectRatio = "1:1"
		}
		if req.Resolution == "" {
			req.Resolution = "1K"
		}
		if !gemini.ValidAspectRatio(req.AspectRatio) {
			respondWithError(c, http.StatusBadRequest, route, "unsupported aspect ratio")
			return
		}
		if !gemini.ValidResolution(req.Resolution) {
			respondWithError(c, http.StatusBadRequest, route, "unsupported resolution")
			return
		}

		url, err := ai.GenerateDesign(c.Request.Context(), gemini.GenerateOptions{
			Prompt:      req.Prompt,
			AspectRatio: req.AspectRatio,
			Resolution:  req.Resolution,
		})
		if err != nil {
			respondWithError(c, http.StatusBadGateway, route, "design generation failed")
			return
		}
		if url == "" {
			c.JSON(http.StatusOK, gin.H{"imageUrl": nil})
			return
		}

		c.JSON(http.StatusOK, gin.H{"imageUrl": url})
	}
}

// Advise answers a free-text business question for the admin dashboard.
// The collaborator owns its failures: the handler always returns 200
// with either the model's answer or the fixed fallback text.
func Advise(ai *gemini.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req advisorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		answer := ai.Advise(c.Request.Context(), req.Query)
		c.JSON(http.StatusOK, gin.H{"answer": answer})
	}
}
