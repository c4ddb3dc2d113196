// Package validation applique côté passerelle les règles que l'UI vérifiait
// avant tout appel réseau : champs obligatoires du template et contraintes
// d'avatar. Rien ne part vers le backend tant qu'une règle est violée.
package validation

import (
	"fmt"

	"rate_front_end/internal/backend"
	"rate_front_end/internal/models"
)

// FieldErrors associe le nom de schéma d'un champ à son message d'erreur
type FieldErrors map[string]string

// ValidateItemForm vérifie une création d'item contre son template : chaque
// champ obligatoire doit porter une valeur dans le bon emplacement typé, et
// les valeurs select/multiselect doivent appartenir à leur data source.
func ValidateItemForm(tpl *models.Template, values []backend.NewFieldValue) FieldErrors {
	errs := make(FieldErrors)

	byFieldID := make(map[int64]backend.NewFieldValue, len(values))
	for _, v := range values {
		if tpl.FieldByID(v.FieldID) == nil {
			errs[fmt.Sprintf("field_%d", v.FieldID)] = "champ inconnu pour ce template"
			continue
		}
		byFieldID[v.FieldID] = v
	}

	for _, field := range tpl.Fields {
		value, present := byFieldID[field.ID]

		if field.IsRequired && (!present || isEmpty(field, value)) {
			errs[field.Name] = fmt.Sprintf("%s est obligatoire", field.DisplayName)
			continue
		}
		if !present || isEmpty(field, value) {
			continue
		}

		// Valeurs énumérées : chaque choix doit exister dans la data source
		if field.DataSource != nil {
			switch field.FieldType {
			case models.FieldTypeSelect:
				if value.TextValue != nil && !field.DataSource.HasValue(*value.TextValue) {
					errs[field.Name] = fmt.Sprintf("%q n'est pas un choix valide pour %s", *value.TextValue, field.DisplayName)
				}
			case models.FieldTypeMultiselect:
				for _, choice := range value.JSONValue {
					if !field.DataSource.HasValue(choice) {
						errs[field.Name] = fmt.Sprintf("%q n'est pas un choix valide pour %s", choice, field.DisplayName)
						break
					}
				}
			}
		}
	}

	return errs
}

// isEmpty teste l'emplacement de valeur correspondant au type du champ
func isEmpty(field models.Field, value backend.NewFieldValue) bool {
	switch field.FieldType {
	case models.FieldTypeText, models.FieldTypeTextarea, models.FieldTypeImage, models.FieldTypeURL:
		return value.TextValue == nil || *value.TextValue == ""
	case models.FieldTypeNumber:
		return value.NumericValue == nil
	case models.FieldTypeSelect:
		return value.TextValue == nil || *value.TextValue == ""
	case models.FieldTypeMultiselect:
		return len(value.JSONValue) == 0
	default:
		// Type inconnu : on considère rempli si au moins un emplacement l'est
		return value.TextValue == nil && value.NumericValue == nil &&
			value.DateValue == nil && value.BooleanValue == nil && len(value.JSONValue) == 0
	}
}
