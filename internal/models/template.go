package models

// Types de champ supportés par les templates du catalogue
const (
	FieldTypeText        = "text"
	FieldTypeTextarea    = "textarea"
	FieldTypeNumber      = "number"
	FieldTypeSelect      = "select"
	FieldTypeMultiselect = "multiselect"
	FieldTypeImage       = "img"
	FieldTypeURL         = "url"
)

// Template décrit un schéma de contenu ("movie", "book"…) et ses champs
type Template struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	DisplayName string  `json:"displayName"`
	Description string  `json:"description"`
	FullMarks   float64 `json:"fullMarks"`
	IsPublished bool    `json:"isPublished"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
	Fields      []Field `json:"fields"`
}

// Field est un emplacement typé et nommé dans un template
type Field struct {
	ID              int64          `json:"id"`
	TemplateID      int64          `json:"templateId"`
	Name            string         `json:"name"`
	DisplayName     string         `json:"displayName"`
	Description     string         `json:"description"`
	FieldType       string         `json:"fieldType"`
	IsRequired      bool           `json:"isRequired"`
	IsSearchable    bool           `json:"isSearchable"`
	IsFilterable    bool           `json:"isFilterable"`
	DisplayOrder    int            `json:"displayOrder"`
	DataSourceID    *int64         `json:"dataSourceId"`
	ValidationRules map[string]any `json:"validationRules"`
	DataSource      *DataSource    `json:"dataSource,omitempty"`
}

// FilterableFields retourne les champs utilisables comme filtres de recherche
func (t *Template) FilterableFields() []Field {
	var filterable []Field
	for _, f := range t.Fields {
		if f.IsFilterable {
			filterable = append(filterable, f)
		}
	}
	return filterable
}

// FieldByID retrouve un champ du template par identifiant
func (t *Template) FieldByID(id int64) *Field {
	for idx := range t.Fields {
		if t.Fields[idx].ID == id {
			return &t.Fields[idx]
		}
	}
	return nil
}
