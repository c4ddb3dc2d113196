package models

// UserRating est la note d'un utilisateur pour un item, échelle backend 0–10.
// Unique par couple (userId, itemId) : le backend fait un upsert, jamais de doublon.
type UserRating struct {
	ID         int64      `json:"id"`
	ItemID     int64      `json:"itemId"`
	UserID     int64      `json:"userId"`
	Rating     float64    `json:"rating"`
	ReviewText *string    `json:"reviewText"`
	CreatedAt  string     `json:"createdAt"`
	UpdatedAt  string     `json:"updatedAt"`
	User       RatingUser `json:"user"`
}

type RatingUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// RatingsResponse est la vue agrégée des notes d'un item, calculée côté backend
type RatingsResponse struct {
	AverageRating float64      `json:"averageRating"`
	RatingsCount  int          `json:"ratingsCount"`
	Ratings       []UserRating `json:"ratings"`
}

// RatedItem est une entrée de la page "Mes notes"
type RatedItem struct {
	ID      int64   `json:"id"`
	Title   string  `json:"title"`
	Slug    string  `json:"slug"`
	Year    int     `json:"year"`
	Poster  string  `json:"poster"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// TemplateRatings regroupe les notes d'un utilisateur par type de contenu
type TemplateRatings struct {
	TemplateID          int64       `json:"templateId"`
	TemplateName        string      `json:"templateName"`
	TemplateDisplayName string      `json:"templateDisplayName"`
	Ratings             []RatedItem `json:"ratings"`
}
