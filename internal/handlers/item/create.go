package item

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rate_front_end/internal/backend"
	"rate_front_end/internal/middleware"
	"rate_front_end/internal/validation"
)

// Create vérifie une fiche contre son template avant de la soumettre au
// backend : chaque champ obligatoire vide est nommé dans la réponse et
// rien n'est envoyé tant que le formulaire n'est pas complet.
func (h *Handler) Create(c *gin.Context) {
	token := c.GetString(middleware.CtxAccessToken)

	var req backend.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	tpl, err := h.API.GetTemplate(ctx, req.TemplateID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Template inconnu"})
			return
		}
		log.Printf("❌ Lecture du template %d impossible: %v", req.TemplateID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur de chargement du template"})
		return
	}

	if fieldErrs := validation.ValidateItemForm(tpl, req.FieldValues); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Champs obligatoires manquants ou invalides",
			"fields": fieldErrs,
		})
		return
	}

	created, err := h.API.CreateItem(ctx, token, req)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			middleware.AbortToLogin(c, h.Sessions)
			return
		}
		log.Printf("❌ Création d'item impossible: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Échec de la création de l'item"})
		return
	}

	log.Printf("✅ Item créé: %s (template %d)", created.Slug, created.TemplateID)
	c.JSON(http.StatusCreated, created)
}
