package backend

import (
	"context"
	"fmt"
	"net/http"

	"rate_front_end/internal/models"
)

// GetMyRating retourne la note du porteur du token pour un item,
// ou nil s'il n'a pas encore noté
func (c *Client) GetMyRating(ctx context.Context, token string, itemID int64) (*models.UserRating, error) {
	var rating models.UserRating
	path := fmt.Sprintf("ratings/my-rating/%d", itemID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &rating); err != nil {
		return nil, err
	}
	if rating.ID == 0 {
		return nil, nil
	}
	return &rating, nil
}

// GetRatingsForItem retourne la vue agrégée (moyenne 0–10, compteur, liste)
func (c *Client) GetRatingsForItem(ctx context.Context, itemID int64) (*models.RatingsResponse, error) {
	var resp models.RatingsResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("ratings/%d", itemID), "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpsertRating crée ou remplace la note du porteur du token pour un item.
// rating est sur l'échelle backend 0–10 ; le backend garantit l'unicité
// par couple (user, item).
func (c *Client) UpsertRating(ctx context.Context, token string, itemID int64, rating float64, reviewText string) (*models.UserRating, error) {
	body := map[string]any{
		"itemId":     itemID,
		"rating":     rating,
		"reviewText": reviewText,
	}
	var saved models.UserRating
	if err := c.do(ctx, http.MethodPost, "ratings", token, body, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// GetMyRatings retourne toutes les notes du porteur du token, groupées par template
func (c *Client) GetMyRatings(ctx context.Context, token string) ([]models.TemplateRatings, error) {
	var grouped []models.TemplateRatings
	if err := c.do(ctx, http.MethodGet, "ratings/my-ratings", token, nil, &grouped); err != nil {
		return nil, err
	}
	return grouped, nil
}
