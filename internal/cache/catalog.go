package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rate_front_end/internal/models"
)

const (
	TemplateCacheTTL   = 10 * time.Minute
	DataSourceCacheTTL = 30 * time.Minute
)

// CatalogFetcher est la partie lecture du client backend dont le cache a besoin
type CatalogFetcher interface {
	GetTemplateByName(ctx context.Context, name string) (*models.Template, error)
	GetDataSources(ctx context.Context, ids []int64) ([]models.DataSource, error)
}

// TemplateByName récupère un template depuis Redis, sinon depuis le backend.
// Les templates bougent rarement : un TTL court suffit à absorber le trafic
// des pages de catégorie sans risquer un schéma périmé.
func TemplateByName(ctx context.Context, api CatalogFetcher, name string) (*models.Template, error) {
	key := "template:name:" + name

	if RedisClient != nil {
		if data, err := RedisClient.Get(ctx, key).Result(); err == nil {
			var tpl models.Template
			if json.Unmarshal([]byte(data), &tpl) == nil {
				return &tpl, nil
			}
		}
	}

	tpl, err := api.GetTemplateByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if RedisClient != nil {
		if data, err := json.Marshal(tpl); err == nil {
			RedisClient.Set(ctx, key, data, TemplateCacheTTL)
		}
	}
	return tpl, nil
}

// DataSources récupère plusieurs énumérations, en privilégiant le cache.
// Le batch n'est refait vers le backend que pour les ids manquants.
func DataSources(ctx context.Context, api CatalogFetcher, ids []int64) ([]models.DataSource, error) {
	result := make([]models.DataSource, 0, len(ids))
	missing := []int64{}

	for _, id := range ids {
		key := fmt.Sprintf("datasource:%d", id)
		found := false
		if RedisClient != nil {
			if data, err := RedisClient.Get(ctx, key).Result(); err == nil {
				var ds models.DataSource
				if json.Unmarshal([]byte(data), &ds) == nil {
					result = append(result, ds)
					found = true
				}
			}
		}
		if !found {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		fetched, err := api.GetDataSources(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, ds := range fetched {
			if RedisClient != nil {
				if data, err := json.Marshal(ds); err == nil {
					RedisClient.Set(ctx, fmt.Sprintf("datasource:%d", ds.ID), data, DataSourceCacheTTL)
				}
			}
			result = append(result, ds)
		}
	}

	return result, nil
}
