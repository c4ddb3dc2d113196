package models

// Clés de tri acceptées par le endpoint de recherche du backend
const (
	SortDate       = "date"
	SortScore      = "score"
	SortPopularity = "popularity"
)

// FieldFilter restreint la recherche aux items dont le champ porte une des valeurs
type FieldFilter struct {
	FieldID     int64    `json:"fieldId"`
	FieldValues []string `json:"fieldValue"`
}

// SearchRequest est le corps de POST items/search
type SearchRequest struct {
	TemplateID int64         `json:"templateId"`
	Fields     []FieldFilter `json:"fields"`
	Sort       string        `json:"sort"`
	PageSize   int           `json:"pageSize"`
	PageNo     int           `json:"pageNo"`
}

// ListItem est la projection d'un item dans une liste de catégorie
type ListItem struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Poster    string `json:"poster"`
	CreatedAt string `json:"createdAt"`
}

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// SearchResult est la réponse de POST items/search
type SearchResult struct {
	Items      []ListItem `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// RecommendationItem est une carte de suggestion ("vous aimerez aussi")
type RecommendationItem struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Poster    string `json:"poster"`
	CreatedAt string `json:"createdAt"`
}
