package backend

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"rate_front_end/internal/models"
)

// GetDataSources récupère plusieurs énumérations en un appel,
// ids joints par des virgules (GET data-source?ids=1,2,3)
func (c *Client) GetDataSources(ctx context.Context, ids []int64) ([]models.DataSource, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}

	var sources []models.DataSource
	path := "data-source?ids=" + strings.Join(parts, ",")
	if err := c.do(ctx, http.MethodGet, path, "", nil, &sources); err != nil {
		return nil, err
	}
	return sources, nil
}
