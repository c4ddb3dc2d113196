// Package category sert les pages de liste par type de contenu (films,
// livres…) : filtres, tri, pagination.
package category

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rate_front_end/internal/backend"
	"rate_front_end/internal/listing"
	"rate_front_end/internal/models"
	"rate_front_end/internal/session"
)

type Handler struct {
	API        *backend.Client
	Sessions   *session.Store
	Signatures listing.Signatures
}

func New(api *backend.Client, sessions *session.Store, sigs listing.Signatures) *Handler {
	return &Handler{API: api, Sessions: sessions, Signatures: sigs}
}

// Index liste les types de contenu publiés, pour la navigation
func (h *Handler) Index(c *gin.Context) {
	templates, err := h.API.GetTemplates(c.Request.Context())
	if err != nil {
		log.Printf("❌ Chargement des catégories impossible: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur de chargement des catégories"})
		return
	}

	published := make([]models.Template, 0, len(templates))
	for _, tpl := range templates {
		if tpl.IsPublished {
			published = append(published, tpl)
		}
	}
	c.JSON(http.StatusOK, gin.H{"templates": published})
}

// Page exécute une requête de catégorie. Chaque changement de filtre ou de
// tri déclenche un appel (pas de debounce) et ramène en page 1.
func (h *Handler) Page(c *gin.Context) {
	var body struct {
		Filters  []models.FieldFilter `json:"filters"`
		Sort     string               `json:"sort"`
		Page     int                  `json:"page"`
		PageSize int                  `json:"pageSize"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	query := listing.Query{
		TemplateName: c.Param("name"),
		Filters:      body.Filters,
		Sort:         body.Sort,
		Page:         body.Page,
		PageSize:     body.PageSize,
	}

	sid := h.Sessions.SID(c.Request)
	page, err := listing.Load(c.Request.Context(), h.API, h.Signatures, sid, query)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Catégorie inconnue"})
			return
		}
		log.Printf("❌ Chargement de la catégorie %s impossible: %v", query.TemplateName, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur de chargement de la catégorie"})
		return
	}

	c.JSON(http.StatusOK, page)
}
