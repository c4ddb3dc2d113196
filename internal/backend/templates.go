package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"rate_front_end/internal/models"
)

func (c *Client) GetTemplates(ctx context.Context) ([]models.Template, error) {
	var templates []models.Template
	if err := c.do(ctx, http.MethodGet, "templates", "", nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (c *Client) GetTemplate(ctx context.Context, id int64) (*models.Template, error) {
	var tpl models.Template
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("templates/%d", id), "", nil, &tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (c *Client) GetTemplateByName(ctx context.Context, name string) (*models.Template, error) {
	var tpl models.Template
	if err := c.do(ctx, http.MethodGet, "templates/by-name/"+url.PathEscape(name), "", nil, &tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}
