// Package services gère le stockage des images (avatars, affiches) : flux
// presigné en deux temps via le backend par défaut, ou envoi direct MinIO
// quand la passerelle a son propre stockage sous la main.
package services

import (
	"bytes"
	"context"

	"rate_front_end/internal/backend"
)

// Uploader stocke un fichier et retourne son URL publique finale
type Uploader interface {
	Upload(ctx context.Context, token, kind, filename, contentType string, data []byte) (string, error)
}

// PresignedUploader suit le contrat du backend : demander une URL signée
// (POST upload/presigned-url) puis pousser les octets dessus en PUT direct
type PresignedUploader struct {
	api *backend.Client
}

func NewPresignedUploader(api *backend.Client) *PresignedUploader {
	return &PresignedUploader{api: api}
}

func (u *PresignedUploader) Upload(ctx context.Context, token, kind, filename, contentType string, data []byte) (string, error) {
	presigned, err := u.api.RequestPresignedUpload(ctx, token, filename, contentType, kind)
	if err != nil {
		return "", err
	}
	if err := u.api.PutPresigned(ctx, presigned.UploadURL, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		return "", err
	}
	return presigned.FileURL, nil
}
