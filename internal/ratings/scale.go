// Package ratings fait la conversion d'échelle à la frontière UI/backend :
// l'interface affiche des étoiles sur 0–5 (pas de 0,5), le backend stocke
// et agrège sur 0–10.
package ratings

import (
	"fmt"
	"math"
)

const (
	MinUIRating = 0.5
	MaxUIRating = 5.0
)

// ToBackend convertit une note étoiles (0–5) vers l'échelle backend (0–10)
func ToBackend(uiRating float64) float64 {
	return uiRating * 2
}

// ToUI convertit une note backend (0–10) vers l'échelle étoiles (0–5)
func ToUI(backendRating float64) float64 {
	return backendRating / 2
}

// ValidateUI vérifie qu'une note est dans [0.5, 5] par pas de demi-étoile
func ValidateUI(uiRating float64) error {
	if uiRating < MinUIRating || uiRating > MaxUIRating {
		return fmt.Errorf("note %.2f hors de l'intervalle [%.1f, %.1f]", uiRating, MinUIRating, MaxUIRating)
	}
	doubled := uiRating * 2
	if math.Abs(doubled-math.Round(doubled)) > 1e-9 {
		return fmt.Errorf("note %.2f : seuls les pas de 0,5 sont acceptés", uiRating)
	}
	return nil
}
