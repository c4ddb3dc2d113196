package loader

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rate_front_end/internal/backend"
	"rate_front_end/internal/models"
)

// stubBackend est un faux catalogue qui enregistre les appels reçus
type stubBackend struct {
	item    *models.Item
	itemErr error

	templateRecs    []models.RecommendationItem
	templateRecsErr error
	genreRecs       []models.RecommendationItem
	genreRecsErr    error
	ratings         *models.RatingsResponse
	ratingsErr      error
	myRating        *models.UserRating
	myRatingErr     error

	templateRecsCalledWith *int64
	genreCalledWith        *genreCall
	ratingsCalled          bool
	myRatingCalled         bool
}

type genreCall struct {
	templateID int64
	fieldID    int64
	values     []string
}

func (s *stubBackend) GetItemBySlug(_ context.Context, slug string) (*models.Item, error) {
	if s.itemErr != nil {
		return nil, s.itemErr
	}
	return s.item, nil
}

func (s *stubBackend) RecommendByTemplate(_ context.Context, templateTypeID int64) ([]models.RecommendationItem, error) {
	s.templateRecsCalledWith = &templateTypeID
	return s.templateRecs, s.templateRecsErr
}

func (s *stubBackend) RecommendByGenre(_ context.Context, templateID, fieldID int64, genreValues []string) ([]models.RecommendationItem, error) {
	s.genreCalledWith = &genreCall{templateID: templateID, fieldID: fieldID, values: genreValues}
	return s.genreRecs, s.genreRecsErr
}

func (s *stubBackend) GetRatingsForItem(_ context.Context, itemID int64) (*models.RatingsResponse, error) {
	s.ratingsCalled = true
	return s.ratings, s.ratingsErr
}

func (s *stubBackend) GetMyRating(_ context.Context, token string, itemID int64) (*models.UserRating, error) {
	s.myRatingCalled = true
	return s.myRating, s.myRatingErr
}

func strPtr(s string) *string { return &s }

func hobbitItem() *models.Item {
	return &models.Item{
		ID:         11,
		TemplateID: 1,
		Slug:       "the-hobbit",
		FieldValues: []models.FieldValue{
			{
				FieldID:   2,
				TextValue: strPtr("The Hobbit"),
				Field:     models.Field{Name: "title", DisplayName: "Title"},
			},
			{
				FieldID:   4,
				JSONValue: []string{"Fantasy", "Adventure"},
				Field:     models.Field{Name: "type", DisplayName: "Genre"},
			},
		},
	}
}

func TestLoadItemDetailHobbitScenario(t *testing.T) {
	api := &stubBackend{
		item:         hobbitItem(),
		templateRecs: []models.RecommendationItem{{ID: 1, Slug: "lotr"}},
		genreRecs:    []models.RecommendationItem{{ID: 2, Slug: "eragon"}},
		ratings:      &models.RatingsResponse{AverageRating: 8.2, RatingsCount: 3},
	}

	detail, err := LoadItemDetail(context.Background(), api, "the-hobbit", "")
	require.NoError(t, err)
	require.False(t, detail.NotFound)

	// Le template de l'item pilote les recommandations génériques
	require.NotNil(t, api.templateRecsCalledWith)
	assert.Equal(t, int64(1), *api.templateRecsCalledWith)

	// Le champ "type" pilote les recommandations par genre
	require.NotNil(t, api.genreCalledWith)
	assert.Equal(t, int64(1), api.genreCalledWith.templateID)
	assert.Equal(t, int64(4), api.genreCalledWith.fieldID)
	assert.Equal(t, []string{"Fantasy", "Adventure"}, api.genreCalledWith.values)

	assert.Len(t, detail.TemplateRecommendations, 1)
	assert.Len(t, detail.GenreRecommendations, 1)
	assert.Equal(t, 8.2, detail.Ratings.AverageRating)
}

func TestLoadItemDetailLoggedOutSkipsMyRating(t *testing.T) {
	api := &stubBackend{
		item:    hobbitItem(),
		ratings: &models.RatingsResponse{RatingsCount: 0},
	}

	detail, err := LoadItemDetail(context.Background(), api, "the-hobbit", "")
	require.NoError(t, err)

	// Visiteur anonyme : jamais d'appel my-rating, mais l'agrégat est chargé
	assert.False(t, api.myRatingCalled)
	assert.True(t, api.ratingsCalled)
	assert.Nil(t, detail.MyRating)
}

func TestLoadItemDetailLoggedInFetchesMyRating(t *testing.T) {
	api := &stubBackend{
		item:     hobbitItem(),
		myRating: &models.UserRating{ID: 9, Rating: 8},
	}

	detail, err := LoadItemDetail(context.Background(), api, "the-hobbit", "tok")
	require.NoError(t, err)
	assert.True(t, api.myRatingCalled)
	require.NotNil(t, detail.MyRating)
	assert.Equal(t, float64(8), detail.MyRating.Rating)
}

func TestLoadItemDetailNotFound(t *testing.T) {
	api := &stubBackend{itemErr: backend.ErrNotFound}

	detail, err := LoadItemDetail(context.Background(), api, "nope", "")
	require.NoError(t, err, "introuvable est un état de page, pas une erreur")
	assert.True(t, detail.NotFound)
	assert.False(t, api.ratingsCalled, "rien d'autre ne doit être chargé")
}

func TestLoadItemDetailRecommendationFailureDegrades(t *testing.T) {
	api := &stubBackend{
		item:            hobbitItem(),
		templateRecsErr: errors.New("panne"),
		genreRecsErr:    errors.New("panne"),
		ratings:         &models.RatingsResponse{RatingsCount: 1},
	}

	detail, err := LoadItemDetail(context.Background(), api, "the-hobbit", "")
	require.NoError(t, err, "une panne de recommandations ne fait pas tomber la page")
	assert.Empty(t, detail.TemplateRecommendations)
	assert.Empty(t, detail.GenreRecommendations)
	assert.NotNil(t, detail.Ratings)
}

func TestLoadItemDetailGenreFallback(t *testing.T) {
	item := hobbitItem()
	item.FieldValues[1].JSONValue = nil // champ genre présent mais vide

	api := &stubBackend{item: item}
	_, err := LoadItemDetail(context.Background(), api, "the-hobbit", "")
	require.NoError(t, err)

	require.NotNil(t, api.genreCalledWith)
	assert.Equal(t, FallbackGenre, api.genreCalledWith.values)
}

func TestLoadItemDetailNoGenreFieldSkipsGenreQuery(t *testing.T) {
	item := hobbitItem()
	item.FieldValues = item.FieldValues[:1] // plus de champ "type"

	api := &stubBackend{item: item}
	_, err := LoadItemDetail(context.Background(), api, "the-hobbit", "")
	require.NoError(t, err)
	assert.Nil(t, api.genreCalledWith)
}

func TestLoadItemDetailUnauthorizedEscalates(t *testing.T) {
	api := &stubBackend{
		item:        hobbitItem(),
		myRatingErr: backend.ErrUnauthorized,
	}

	_, err := LoadItemDetail(context.Background(), api, "the-hobbit", "tok-mort")
	assert.ErrorIs(t, err, backend.ErrUnauthorized)
}
