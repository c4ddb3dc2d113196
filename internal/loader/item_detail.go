// Package loader assemble les données de la page de détail d'un item :
// l'item lui-même, ses notes, et deux blocs de recommandations.
package loader

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/errgroup"

	"rate_front_end/internal/backend"
	"rate_front_end/internal/models"
)

// FallbackGenre est utilisé quand le champ genre existe mais n'a pas de valeurs
var FallbackGenre = []string{"Drama"}

// Backend est la surface de l'API catalogue dont le loader a besoin
type Backend interface {
	GetItemBySlug(ctx context.Context, slug string) (*models.Item, error)
	RecommendByTemplate(ctx context.Context, templateTypeID int64) ([]models.RecommendationItem, error)
	RecommendByGenre(ctx context.Context, templateID, fieldID int64, genreValues []string) ([]models.RecommendationItem, error)
	GetRatingsForItem(ctx context.Context, itemID int64) (*models.RatingsResponse, error)
	GetMyRating(ctx context.Context, token string, itemID int64) (*models.UserRating, error)
}

// ItemDetail est la charge utile complète de la page de détail
type ItemDetail struct {
	NotFound                bool                        `json:"notFound,omitempty"`
	Item                    *models.Item                `json:"item"`
	Ratings                 *models.RatingsResponse     `json:"ratings"`
	MyRating                *models.UserRating          `json:"myRating"`
	TemplateRecommendations []models.RecommendationItem `json:"templateRecommendations"`
	GenreRecommendations    []models.RecommendationItem `json:"genreRecommendations"`
}

// LoadItemDetail orchestre le chargement de la page.
//
// L'item est chargé d'abord (les recommandations dépendent de son template
// et de son champ genre), puis tout le reste part en parallèle sous un même
// groupe lié au contexte de la requête : naviguer ailleurs annule les appels
// en vol. token vide = visiteur non connecté, my-rating n'est pas appelé.
//
// Politique d'erreur : item introuvable → état NotFound (pas une erreur) ;
// un échec de recommandations ou de notes dégrade sa section en vide au
// lieu de faire tomber la page.
func LoadItemDetail(ctx context.Context, api Backend, slug, token string) (*ItemDetail, error) {
	item, err := api.GetItemBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return &ItemDetail{NotFound: true}, nil
		}
		return nil, err
	}

	detail := &ItemDetail{
		Item:                    item,
		TemplateRecommendations: []models.RecommendationItem{},
		GenreRecommendations:    []models.RecommendationItem{},
	}

	// Champ genre : valeurs multi-choix, repli sur FallbackGenre si vides.
	// Pas de champ genre du tout → pas de requête genre.
	genreField := item.GenreField()
	var genreValues []string
	if genreField != nil {
		genreValues = genreField.JSONValue
		if len(genreValues) == 0 {
			genreValues = FallbackGenre
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		recs, err := api.RecommendByTemplate(gctx, item.TemplateID)
		if err != nil {
			log.Printf("⚠️ Recommandations template %d indisponibles: %v", item.TemplateID, err)
			return nil
		}
		detail.TemplateRecommendations = recs
		return nil
	})

	if genreField != nil {
		fieldID := genreField.FieldID
		g.Go(func() error {
			recs, err := api.RecommendByGenre(gctx, item.TemplateID, fieldID, genreValues)
			if err != nil {
				log.Printf("⚠️ Recommandations genre %v indisponibles: %v", genreValues, err)
				return nil
			}
			detail.GenreRecommendations = recs
			return nil
		})
	}

	g.Go(func() error {
		resp, err := api.GetRatingsForItem(gctx, item.ID)
		if err != nil {
			log.Printf("⚠️ Notes de l'item %d indisponibles: %v", item.ID, err)
			return nil
		}
		detail.Ratings = resp
		return nil
	})

	if token != "" {
		g.Go(func() error {
			rating, err := api.GetMyRating(gctx, token, item.ID)
			if err != nil {
				if errors.Is(err, backend.ErrUnauthorized) {
					return err
				}
				log.Printf("⚠️ Note personnelle de l'item %d indisponible: %v", item.ID, err)
				return nil
			}
			detail.MyRating = rating
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// Seul un 401 remonte : la session doit être invalidée par l'appelant
		return nil, err
	}
	return detail, nil
}
