package item

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rate_front_end/internal/backend"
	"rate_front_end/internal/loader"
	"rate_front_end/internal/middleware"
	"rate_front_end/internal/session"
)

type Handler struct {
	API      *backend.Client
	Sessions *session.Store
}

func New(api *backend.Client, sessions *session.Store) *Handler {
	return &Handler{API: api, Sessions: sessions}
}

// Detail renvoie la page de détail complète d'un item : fiche, notes,
// recommandations. Les visiteurs anonymes reçoivent tout sauf myRating.
func (h *Handler) Detail(c *gin.Context) {
	slug := c.Param("slug")
	token := c.GetString(middleware.CtxAccessToken)

	detail, err := loader.LoadItemDetail(c.Request.Context(), h.API, slug, token)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			middleware.AbortToLogin(c, h.Sessions)
			return
		}
		log.Printf("❌ Chargement de l'item %s impossible: %v", slug, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur de chargement de la page"})
		return
	}

	if detail.NotFound {
		// État "introuvable" rendu comme une page, pas comme une erreur
		c.JSON(http.StatusNotFound, detail)
		return
	}

	c.JSON(http.StatusOK, detail)
}
