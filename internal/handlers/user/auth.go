// Package user couvre l'authentification et le compte : connexion,
// inscription, profil, mot de passe, avatar, historique de notes.
package user

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rate_front_end/internal/backend"
	"rate_front_end/internal/cache"
	"rate_front_end/internal/middleware"
	"rate_front_end/internal/services"
	"rate_front_end/internal/session"
)

type Handler struct {
	API      *backend.Client
	Sessions *session.Store
	Uploader services.Uploader
}

func New(api *backend.Client, sessions *session.Store, uploader services.Uploader) *Handler {
	return &Handler{API: api, Sessions: sessions, Uploader: uploader}
}

// Login relaie les identifiants au backend puis ouvre la session passerelle
// avec le token émis
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	result, err := h.API.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		var apiErr *backend.APIError
		if errors.Is(err, backend.ErrUnauthorized) || errors.As(err, &apiErr) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants invalides"})
			return
		}
		log.Printf("❌ Connexion impossible pour %s: %v", input.Username, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Service d'authentification indisponible"})
		return
	}

	if err := h.Sessions.Login(c.Request.Context(), c.Writer, c.Request, result.AccessToken, &result.User); err != nil {
		log.Printf("❌ Ouverture de session impossible: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur d'ouverture de session"})
		return
	}

	// Connexion réussie : on oublie les tentatives ratées
	if cache.RedisClient != nil {
		cache.DeleteCache("login_attempts:" + input.Username)
	}

	log.Printf("✅ Connexion de %s", result.User.Username)
	c.JSON(http.StatusOK, gin.H{"user": result.User})
}

// Register crée le compte puis ouvre directement la session
func (h *Handler) Register(c *gin.Context) {
	var input backend.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	result, err := h.API.Register(c.Request.Context(), input)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusConflict, gin.H{"error": apiErr.Message})
			return
		}
		log.Printf("❌ Inscription impossible pour %s: %v", input.Username, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Service d'authentification indisponible"})
		return
	}

	if err := h.Sessions.Login(c.Request.Context(), c.Writer, c.Request, result.AccessToken, &result.User); err != nil {
		log.Printf("❌ Ouverture de session impossible: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur d'ouverture de session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": result.User})
}

// Logout vide la session et renvoie vers l'écran de connexion
func (h *Handler) Logout(c *gin.Context) {
	if err := h.Sessions.Clear(c.Request.Context(), c.Writer, c.Request); err != nil {
		log.Printf("⚠️ Fermeture de session incomplète: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"redirect": middleware.LoginRedirect})
}

// Me rafraîchit la copie du profil depuis le backend. L'échec est
// silencieux : user vaut null et le drapeau d'erreur est exposé tel quel.
func (h *Handler) Me(c *gin.Context) {
	user := h.Sessions.Refresh(c.Request.Context(), c.Writer, c.Request)
	sid := h.Sessions.SID(c.Request)
	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"loading": h.Sessions.Loading(sid),
		"error":   h.Sessions.LastError(sid),
	})
}
