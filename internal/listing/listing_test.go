package listing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rate_front_end/internal/models"
)

// stubCatalog répond au nom de template et enregistre les recherches reçues
type stubCatalog struct {
	template    *models.Template
	dataSources []models.DataSource

	lastSearch *models.SearchRequest
}

func (s *stubCatalog) GetTemplateByName(_ context.Context, name string) (*models.Template, error) {
	return s.template, nil
}

func (s *stubCatalog) GetDataSources(_ context.Context, ids []int64) ([]models.DataSource, error) {
	return s.dataSources, nil
}

func (s *stubCatalog) SearchItems(_ context.Context, req models.SearchRequest) (*models.SearchResult, error) {
	s.lastSearch = &req
	return &models.SearchResult{
		Items: []models.ListItem{},
		Pagination: models.Pagination{
			Total: 0, Page: req.PageNo, PageSize: req.PageSize, TotalPages: 0,
		},
	}, nil
}

// memorySignatures garde les signatures en mémoire pour les tests
type memorySignatures struct {
	store map[string]string
}

func newMemorySignatures() *memorySignatures {
	return &memorySignatures{store: map[string]string{}}
}

func (m *memorySignatures) Load(_ context.Context, sid, tpl string) (string, error) {
	return m.store[sid+":"+tpl], nil
}

func (m *memorySignatures) Save(_ context.Context, sid, tpl, sig string) error {
	m.store[sid+":"+tpl] = sig
	return nil
}

func dsID(v int64) *int64 { return &v }

func movieTemplate() *models.Template {
	return &models.Template{
		ID:   1,
		Name: "movie",
		Fields: []models.Field{
			{ID: 3, Name: "release_year", DisplayName: "Year", IsFilterable: true},
			{ID: 4, Name: "type", DisplayName: "Genre", IsFilterable: true, DataSourceID: dsID(7)},
			{ID: 5, Name: "synopsis", DisplayName: "Synopsis", IsFilterable: false},
		},
	}
}

func TestLoadSortChangeResetsPage(t *testing.T) {
	api := &stubCatalog{template: movieTemplate()}
	sigs := newMemorySignatures()
	ctx := context.Background()

	// Première visite en page 3, tri par date
	_, err := Load(ctx, api, sigs, "sid-1", Query{TemplateName: "movie", Sort: models.SortDate, Page: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, api.lastSearch.PageNo, "première requête : pas de signature précédente, la page est respectée")

	// Même requête : la page reste où elle est
	_, err = Load(ctx, api, sigs, "sid-1", Query{TemplateName: "movie", Sort: models.SortDate, Page: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, api.lastSearch.PageNo)

	// Changement de tri en page 3 : retour en page 1
	_, err = Load(ctx, api, sigs, "sid-1", Query{TemplateName: "movie", Sort: models.SortScore, Page: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, api.lastSearch.PageNo)
}

func TestLoadFilterChangeResetsPage(t *testing.T) {
	api := &stubCatalog{template: movieTemplate()}
	sigs := newMemorySignatures()
	ctx := context.Background()

	base := Query{TemplateName: "movie", Sort: models.SortDate, Page: 2}
	_, err := Load(ctx, api, sigs, "sid-2", base)
	require.NoError(t, err)

	withFilter := base
	withFilter.Filters = []models.FieldFilter{{FieldID: 4, FieldValues: []string{"Fantasy"}}}
	_, err = Load(ctx, api, sigs, "sid-2", withFilter)
	require.NoError(t, err)
	assert.Equal(t, 1, api.lastSearch.PageNo)
}

func TestLoadAnonymousSessionKeepsPage(t *testing.T) {
	api := &stubCatalog{template: movieTemplate()}
	ctx := context.Background()

	// Sans sid, pas de suivi de signature : la page demandée est respectée
	_, err := Load(ctx, api, newMemorySignatures(), "", Query{TemplateName: "movie", Page: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, api.lastSearch.PageNo)
}

func TestLoadFilterOptions(t *testing.T) {
	api := &stubCatalog{
		template: movieTemplate(),
		dataSources: []models.DataSource{
			{
				ID: 7,
				Options: []models.DataSourceOption{
					{ID: 1, DataSourceID: 7, Value: "Fantasy", DisplayText: "Fantasy"},
					{ID: 2, DataSourceID: 7, Value: "Drama", DisplayText: "Drama"},
				},
			},
		},
	}

	page, err := Load(context.Background(), api, nil, "", Query{TemplateName: "movie"})
	require.NoError(t, err)

	// Champ année : plage synthétique 1950..2025
	years := page.FilterOptions[3]
	require.Len(t, years, 2025-1950+1)
	assert.Equal(t, "1950", years[0].Value)
	assert.Equal(t, "2025", years[len(years)-1].Value)

	// Champ genre : options de sa data source
	genres := page.FilterOptions[4]
	require.Len(t, genres, 2)
	assert.Equal(t, "Fantasy", genres[0].Value)

	// Champ non filtrable : aucune option
	_, ok := page.FilterOptions[5]
	assert.False(t, ok)
}

func TestLoadDefaultsAndClamps(t *testing.T) {
	api := &stubCatalog{template: movieTemplate()}

	_, err := Load(context.Background(), api, nil, "", Query{TemplateName: "movie", Page: -2, PageSize: 9999})
	require.NoError(t, err)
	assert.Equal(t, models.SortDate, api.lastSearch.Sort, "tri par défaut : date")
	assert.Equal(t, 1, api.lastSearch.PageNo)
	assert.Equal(t, DefaultPageSize, api.lastSearch.PageSize)
}

func TestLoadRejectsUnknownSort(t *testing.T) {
	api := &stubCatalog{template: movieTemplate()}

	_, err := Load(context.Background(), api, nil, "", Query{TemplateName: "movie", Sort: "alphabetical"})
	assert.Error(t, err)
}
