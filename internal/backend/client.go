// Package backend est le client REST typé de l'API catalogue "Rate Everything".
// Une fonction par endpoint, un seul appel HTTP par fonction, pas de retry.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrNotFound : la ressource n'existe pas côté backend (HTTP 404)
	ErrNotFound = errors.New("ressource introuvable")
	// ErrUnauthorized : token absent, invalide ou expiré (HTTP 401)
	ErrUnauthorized = errors.New("non authentifié")
)

// APIError est une erreur applicative renvoyée dans une enveloppe 2xx
// (convention backend : code != "200" signifie échec même si HTTP réussit)
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("erreur API %s: %s", e.Code, e.Message)
}

// envelope est le format de réponse uniforme du backend
type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// do exécute une requête et décode l'enveloppe {code, message, data} en un
// seul endroit. token vide = appel anonyme. out nil = réponse ignorée.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encodage requête %s: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("appel backend %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("backend %s %s: statut %d", method, path, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("lecture réponse %s: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("décodage enveloppe %s: %w", path, err)
	}
	if env.Code != "" && env.Code != "200" {
		if env.Code == "404" {
			return ErrNotFound
		}
		if env.Code == "401" {
			return ErrUnauthorized
		}
		return &APIError{Code: env.Code, Message: env.Message}
	}

	if out == nil {
		return nil
	}
	data := env.Data
	if len(data) == 0 || string(data) == "null" {
		// data absent : certaines réponses (my-rating sans note) renvoient null
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("décodage données %s: %w", path, err)
	}
	return nil
}
