package models

// DataSource est une énumération réutilisable d'options (pays, genres…)
type DataSource struct {
	ID            int64              `json:"id"`
	Name          string             `json:"name"`
	SourceType    string             `json:"sourceType"`
	Configuration map[string]any     `json:"configuration"`
	Options       []DataSourceOption `json:"options"`
}

type DataSourceOption struct {
	ID           int64  `json:"id"`
	DataSourceID int64  `json:"dataSourceId"`
	Value        string `json:"value"`
	DisplayText  string `json:"displayText"`
}

// HasValue vérifie qu'une valeur appartient bien à l'énumération
func (ds *DataSource) HasValue(value string) bool {
	for _, opt := range ds.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
