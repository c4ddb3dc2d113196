package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"rate_front_end/internal/models"
)

// GetItemBySlug récupère un item et ses fieldValues par slug
func (c *Client) GetItemBySlug(ctx context.Context, slug string) (*models.Item, error) {
	var item models.Item
	if err := c.do(ctx, http.MethodGet, "items/slug/"+url.PathEscape(slug), "", nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// SearchItems interroge POST items/search (contrat retenu : corps JSON,
// les anciennes variantes GET+query string ne sont plus supportées)
func (c *Client) SearchItems(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error) {
	var result models.SearchResult
	if err := c.do(ctx, http.MethodPost, "items/search", "", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateItemRequest est le corps de POST items
type CreateItemRequest struct {
	TemplateID  int64           `json:"templateId"`
	FieldValues []NewFieldValue `json:"fieldValues"`
}

type NewFieldValue struct {
	FieldID      int64    `json:"fieldId"`
	TextValue    *string  `json:"textValue,omitempty"`
	NumericValue *float64 `json:"numericValue,omitempty"`
	DateValue    *string  `json:"dateValue,omitempty"`
	BooleanValue *bool    `json:"booleanValue,omitempty"`
	JSONValue    []string `json:"jsonValue,omitempty"`
}

// CreateItem crée un item (nécessite un utilisateur connecté)
func (c *Client) CreateItem(ctx context.Context, token string, req CreateItemRequest) (*models.Item, error) {
	var item models.Item
	if err := c.do(ctx, http.MethodPost, "items", token, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RecommendByTemplate : suggestions pour un type de contenu entier
func (c *Client) RecommendByTemplate(ctx context.Context, templateTypeID int64) ([]models.RecommendationItem, error) {
	var recs []models.RecommendationItem
	path := fmt.Sprintf("items/recommendations/template/%d", templateTypeID)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// RecommendByGenre : suggestions partageant les genres donnés, valeurs
// jointes par des virgules dans la query string
func (c *Client) RecommendByGenre(ctx context.Context, templateID, fieldID int64, genreValues []string) ([]models.RecommendationItem, error) {
	escaped := make([]string, len(genreValues))
	for i, v := range genreValues {
		escaped[i] = url.QueryEscape(v)
	}
	path := fmt.Sprintf("items/recommendations/genre/%d/%d?genreValues=%s",
		templateID, fieldID, strings.Join(escaped, ","))

	var recs []models.RecommendationItem
	if err := c.do(ctx, http.MethodGet, path, "", nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
