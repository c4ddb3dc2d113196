package user

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rate_front_end/internal/backend"
	"rate_front_end/internal/middleware"
)

// ChangePassword relaie le changement de mot de passe. La passerelle ne
// voit les mots de passe qu'en transit, elle n'en stocke aucun.
func (h *Handler) ChangePassword(c *gin.Context) {
	token := c.GetString(middleware.CtxAccessToken)

	var input struct {
		OldPassword string `json:"oldPassword" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	err := h.API.ChangePassword(c.Request.Context(), token, input.OldPassword, input.NewPassword)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			middleware.AbortToLogin(c, h.Sessions)
			return
		}
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": apiErr.Message})
			return
		}
		log.Printf("❌ Changement de mot de passe impossible: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Échec du changement de mot de passe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mot de passe modifié avec succès"})
}

// MyRatings retourne l'historique de notes du porteur de session,
// groupé par type de contenu
func (h *Handler) MyRatings(c *gin.Context) {
	token := c.GetString(middleware.CtxAccessToken)

	grouped, err := h.API.GetMyRatings(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			middleware.AbortToLogin(c, h.Sessions)
			return
		}
		log.Printf("❌ Lecture des notes impossible: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur de chargement des notes"})
		return
	}

	c.JSON(http.StatusOK, grouped)
}
