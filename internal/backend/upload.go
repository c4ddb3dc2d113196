package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// PresignedUpload est la réponse de POST upload/presigned-url : une URL
// d'envoi à durée limitée et l'URL publique finale de l'objet
type PresignedUpload struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
}

// RequestPresignedUpload demande au backend une URL signée pour un fichier
// (kind distingue le rayon de stockage : "avatar", "movie", "book"…)
func (c *Client) RequestPresignedUpload(ctx context.Context, token, filename, contentType, kind string) (*PresignedUpload, error) {
	body := map[string]string{
		"filename":    filename,
		"contentType": contentType,
		"type":        kind,
	}
	var presigned PresignedUpload
	if err := c.do(ctx, http.MethodPost, "upload/presigned-url", token, body, &presigned); err != nil {
		return nil, err
	}
	return &presigned, nil
}

// PutPresigned pousse les octets directement sur l'URL signée (deuxième
// étape du flux d'upload). Appel brut, hors enveloppe API : le stockage
// répond sans JSON.
func (c *Client) PutPresigned(ctx context.Context, uploadURL, contentType string, body io.Reader, size int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = size

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("envoi fichier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("envoi fichier: statut %d", resp.StatusCode)
	}
	return nil
}
