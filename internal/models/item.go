package models

// Item est une fiche du catalogue (film, série, livre…), portée par un template
type Item struct {
	ID          int64        `json:"id"`
	TemplateID  int64        `json:"templateId"`
	Title       string       `json:"title"`
	Slug        string       `json:"slug"`
	CreatedBy   int64        `json:"createdBy"`
	CreatedAt   string       `json:"createdAt"`
	UpdatedAt   string       `json:"updatedAt"`
	FieldValues []FieldValue `json:"fieldValues"`
}

// FieldValue porte au plus une des valeurs typées, selon field.fieldType
type FieldValue struct {
	ID           int64    `json:"id"`
	ItemID       int64    `json:"itemId"`
	FieldID      int64    `json:"fieldId"`
	TextValue    *string  `json:"textValue"`
	NumericValue *float64 `json:"numericValue"`
	DateValue    *string  `json:"dateValue"`
	BooleanValue *bool    `json:"booleanValue"`
	JSONValue    []string `json:"jsonValue"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
	Field        Field    `json:"field"`
}

// GenreField localise le champ "genre" d'un item. La convention du catalogue
// est un champ nommé "type", ou à défaut affiché "Genre". Accès centralisé
// ici pour éviter les recherches par chaîne dispersées dans les handlers.
func (i *Item) GenreField() *FieldValue {
	for idx := range i.FieldValues {
		fv := &i.FieldValues[idx]
		if fv.Field.Name == "type" || fv.Field.DisplayName == "Genre" {
			return fv
		}
	}
	return nil
}
