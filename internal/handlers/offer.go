package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jeevanM12/Embiodary/internal/store"
)

type createOfferRequest struct {
	Text string `json:"text"`
}

func GetOffers(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, st.Offers())
	}
}

// CreateOffer adds a homepage banner. The store appends whatever it is
// given, so blank text is rejected here.
func CreateOffer(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/offers"

		var req createOfferRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		text := strings.TrimSpace(req.Text)
		if text == "" {
			respondWithError(c, http.StatusBadRequest, route, "offer text is required")
			return
		}

		offer := st.AddOffer(text)
		c.JSON(http.StatusCreated, offer)
	}
}

func DeleteOffer(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		found := false
		for _, o := range st.Offers() {
			if o.ID == id {
				found = true
				break
			}
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
			return
		}
		st.RemoveOffer(id)
		c.JSON(http.StatusOK, gin.H{"message": "offer removed"})
	}
}
