package user

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rate_front_end/internal/backend"
	"rate_front_end/internal/middleware"
	"rate_front_end/internal/models"
	"rate_front_end/internal/validation"
)

// Profile retourne le profil à jour du porteur de session
func (h *Handler) Profile(c *gin.Context) {
	token := c.GetString(middleware.CtxAccessToken)

	profile, err := h.API.GetProfile(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			middleware.AbortToLogin(c, h.Sessions)
			return
		}
		log.Printf("❌ Lecture du profil impossible: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur de chargement du profil"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile relaie le PATCH au backend puis écrase la copie en session
func (h *Handler) UpdateProfile(c *gin.Context) {
	token := c.GetString(middleware.CtxAccessToken)

	sessUser, ok := c.Get(middleware.CtxUser)
	if !ok {
		middleware.AbortToLogin(c, h.Sessions)
		return
	}
	current := sessUser.(*models.User)

	var input backend.UpdateUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	updated, err := h.API.UpdateUser(c.Request.Context(), token, current.ID, input)
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
		log.Printf("❌ Mise à jour du profil %d impossible: %v", current.ID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Échec de la mise à jour du profil"})
		return
	}

	if err := h.Sessions.SetUser(c.Request.Context(), c.Request, updated); err != nil {
		log.Printf("⚠️ Session non rafraîchie après mise à jour du profil: %v", err)
	}

	c.JSON(http.StatusOK, updated)
}

// UploadAvatar valide le fichier (JPEG/PNG, ≤ 5 Mo, carré) puis l'envoie au
// stockage ; en cas de rejet, aucun octet ne part. Retourne l'URL publique
// à reporter ensuite dans le profil.
func (h *Handler) UploadAvatar(c *gin.Context) {
	token := c.GetString(middleware.CtxAccessToken)

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier avatar manquant"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier illisible"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, validation.MaxAvatarBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier illisible"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := validation.ValidateAvatar(contentType, data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := h.Uploader.Upload(c.Request.Context(), token, "avatar", fileHeader.Filename, contentType, data)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			middleware.AbortToLogin(c, h.Sessions)
			return
		}
		log.Printf("❌ Envoi de l'avatar impossible: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Échec de l'envoi de l'avatar"})
		return
	}

	log.Printf("✅ Avatar envoyé: %s", url)
	c.JSON(http.StatusOK, gin.H{"url": url})
}
