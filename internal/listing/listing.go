// Package listing construit les pages de catégorie : résolution du template,
// options de filtres, recherche paginée et règle de retour en page 1 quand
// les filtres ou le tri changent.
package listing

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"rate_front_end/internal/cache"
	"rate_front_end/internal/models"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Années synthétisées pour les champs "year" sans data source
	yearMin = 1950
	yearMax = 2025
)

// Backend est la surface catalogue nécessaire aux pages de catégorie
type Backend interface {
	cache.CatalogFetcher
	SearchItems(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error)
}

// Signatures retient la dernière combinaison filtres+tri vue par session,
// pour imposer le retour en page 1 quand elle change
type Signatures interface {
	Load(ctx context.Context, sid, templateName string) (string, error)
	Save(ctx context.Context, sid, templateName, signature string) error
}

// RedisSignatures est l'implémentation de production
type RedisSignatures struct {
	rdb *redis.Client
}

func NewRedisSignatures(rdb *redis.Client) *RedisSignatures {
	return &RedisSignatures{rdb: rdb}
}

func (s *RedisSignatures) key(sid, templateName string) string {
	return "ratefront:listing:" + sid + ":" + templateName
}

func (s *RedisSignatures) Load(ctx context.Context, sid, templateName string) (string, error) {
	val, err := s.rdb.Get(ctx, s.key(sid, templateName)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

func (s *RedisSignatures) Save(ctx context.Context, sid, templateName, signature string) error {
	return s.rdb.Set(ctx, s.key(sid, templateName), signature, time.Hour).Err()
}

// Query est une demande de page de catégorie
type Query struct {
	TemplateName string               `json:"templateName"`
	Filters      []models.FieldFilter `json:"filters"`
	Sort         string               `json:"sort"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"pageSize"`
}

// Page est la réponse complète d'une page de catégorie
type Page struct {
	Template      *models.Template                    `json:"template"`
	FilterOptions map[int64][]models.DataSourceOption `json:"filterOptions"`
	Items         []models.ListItem                   `json:"items"`
	Pagination    models.Pagination                   `json:"pagination"`
}

// Load exécute une requête de catégorie. sid vide = pas de suivi de
// signature (la règle de page 1 ne s'applique qu'aux sessions).
func Load(ctx context.Context, api Backend, sigs Signatures, sid string, q Query) (*Page, error) {
	switch q.Sort {
	case models.SortDate, models.SortScore, models.SortPopularity:
	case "":
		q.Sort = models.SortDate
	default:
		return nil, fmt.Errorf("clé de tri inconnue: %q", q.Sort)
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > MaxPageSize {
		q.PageSize = DefaultPageSize
	}

	// Tout changement de filtres ou de tri ramène en page 1
	if sigs != nil && sid != "" {
		sig := signature(q)
		prev, err := sigs.Load(ctx, sid, q.TemplateName)
		if err == nil {
			if prev != "" && prev != sig {
				q.Page = 1
			}
			sigs.Save(ctx, sid, q.TemplateName, sig)
		}
	}

	tpl, err := cache.TemplateByName(ctx, api, q.TemplateName)
	if err != nil {
		return nil, err
	}

	options, err := filterOptions(ctx, api, tpl)
	if err != nil {
		return nil, err
	}

	result, err := api.SearchItems(ctx, models.SearchRequest{
		TemplateID: tpl.ID,
		Fields:     q.Filters,
		Sort:       q.Sort,
		PageSize:   q.PageSize,
		PageNo:     q.Page,
	})
	if err != nil {
		return nil, err
	}

	return &Page{
		Template:      tpl,
		FilterOptions: options,
		Items:         result.Items,
		Pagination:    result.Pagination,
	}, nil
}

// filterOptions assemble les choix proposés pour chaque champ filtrable :
// les champs "year" reçoivent une plage d'années synthétique, les autres
// leurs options de data source (récupérées en un seul batch)
func filterOptions(ctx context.Context, api Backend, tpl *models.Template) (map[int64][]models.DataSourceOption, error) {
	options := make(map[int64][]models.DataSourceOption)
	var wanted []int64
	byField := make(map[int64]int64) // fieldID → dataSourceID

	for _, field := range tpl.FilterableFields() {
		if strings.Contains(strings.ToLower(field.Name), "year") {
			options[field.ID] = yearOptions()
			continue
		}
		if field.DataSourceID != nil {
			wanted = append(wanted, *field.DataSourceID)
			byField[field.ID] = *field.DataSourceID
		}
	}

	if len(wanted) > 0 {
		sources, err := cache.DataSources(ctx, api, wanted)
		if err != nil {
			return nil, err
		}
		byID := make(map[int64][]models.DataSourceOption, len(sources))
		for _, ds := range sources {
			byID[ds.ID] = ds.Options
		}
		for fieldID, dsID := range byField {
			options[fieldID] = byID[dsID]
		}
	}

	return options, nil
}

func yearOptions() []models.DataSourceOption {
	opts := make([]models.DataSourceOption, 0, yearMax-yearMin+1)
	for y := yearMin; y <= yearMax; y++ {
		val := strconv.Itoa(y)
		opts = append(opts, models.DataSourceOption{
			ID:          int64(y),
			Value:       val,
			DisplayText: val,
		})
	}
	return opts
}

// signature résume filtres+tri (hors page) de façon stable : les filtres
// sont triés par fieldId pour que l'ordre d'envoi ne change pas la clé
func signature(q Query) string {
	filters := make([]models.FieldFilter, len(q.Filters))
	copy(filters, q.Filters)
	sort.Slice(filters, func(i, j int) bool { return filters[i].FieldID < filters[j].FieldID })

	payload, _ := json.Marshal(struct {
		Sort    string               `json:"sort"`
		Filters []models.FieldFilter `json:"filters"`
	}{q.Sort, filters})

	sum := sha1.Sum(payload)
	return hex.EncodeToString(sum[:])
}
