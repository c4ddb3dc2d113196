package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioUploader envoie les fichiers directement sur un MinIO local, sans
// passer par le flux presigné du backend
type MinioUploader struct {
	client   *minio.Client
	bucket   string
	endpoint string
}

// ConnectMinio initialise le client MinIO depuis l'environnement.
// Retourne nil si MINIO_ENDPOINT n'est pas configuré : la passerelle
// retombe alors sur le flux presigné.
func ConnectMinio() *MinioUploader {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		return nil
	}
	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "rate-images"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false, // ⚠️ à passer à true si tu as HTTPS
	})
	if err != nil {
		log.Println("⚠️ MinIO non configuré :", err)
		return nil
	}
	log.Println("✅ Connecté à MinIO :", endpoint)
	return &MinioUploader{client: client, bucket: bucket, endpoint: endpoint}
}

func (u *MinioUploader) Upload(ctx context.Context, _, kind, filename, contentType string, data []byte) (string, error) {
	if u.client == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	// Nom d'objet unique, rangé par rayon : avatar/<uuid>.png
	objectName := kind + "/" + uuid.NewString() + path.Ext(filename)

	_, err := u.client.PutObject(ctx, u.bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("http://%s/%s/%s", u.endpoint, u.bucket, objectName), nil
}
