package validation

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
)

// MaxAvatarBytes : 5 MiB, aligné sur la limite du stockage
const MaxAvatarBytes = 5 * 1024 * 1024

var (
	ErrAvatarType      = errors.New("seuls les fichiers JPG ou PNG sont acceptés")
	ErrAvatarTooLarge  = errors.New("le fichier dépasse 5 Mo")
	ErrAvatarNotSquare = errors.New("l'avatar doit être une image carrée")
)

// ValidateAvatar applique les trois règles d'avatar, chacune suffisante à
// elle seule pour rejeter : type MIME JPEG/PNG, taille ≤ 5 Mo, image carrée.
// Aucun octet ne part vers le stockage en cas de rejet.
func ValidateAvatar(contentType string, data []byte) error {
	if contentType != "image/jpeg" && contentType != "image/png" {
		return ErrAvatarType
	}
	if len(data) > MaxAvatarBytes {
		return ErrAvatarTooLarge
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("image illisible: %w", err)
	}
	if cfg.Width != cfg.Height {
		return ErrAvatarNotSquare
	}
	return nil
}
