package item

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rate_front_end/internal/backend"
	"rate_front_end/internal/middleware"
	"rate_front_end/internal/ratings"
)

// SubmitRating convertit la note étoiles (0,5–5) vers l'échelle backend
// (0–10) et fait l'upsert. Pas de mise à jour optimiste : en retour, les
// notes rechargées (agrégat + note personnelle) pour rafraîchir la page.
func (h *Handler) SubmitRating(c *gin.Context) {
	token := c.GetString(middleware.CtxAccessToken)

	var req struct {
		ItemID     int64   `json:"itemId" binding:"required"`
		Rating     float64 `json:"rating" binding:"required"`
		ReviewText string  `json:"reviewText"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	if err := ratings.ValidateUI(req.Rating); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	saved, err := h.API.UpsertRating(ctx, token, req.ItemID, ratings.ToBackend(req.Rating), req.ReviewText)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			middleware.AbortToLogin(c, h.Sessions)
			return
		}
		log.Printf("❌ Envoi de la note pour l'item %d impossible: %v", req.ItemID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Échec de l'envoi de la note. Réessayez."})
		return
	}

	// Recharger uniquement la section notes
	aggregate, err := h.API.GetRatingsForItem(ctx, req.ItemID)
	if err != nil {
		log.Printf("⚠️ Rechargement des notes de l'item %d impossible: %v", req.ItemID, err)
	}
	myRating, err := h.API.GetMyRating(ctx, token, req.ItemID)
	if err != nil {
		myRating = saved
	}

	c.JSON(http.StatusOK, gin.H{
		"myRating": myRating,
		"ratings":  aggregate,
	})
}
