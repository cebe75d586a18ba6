package vpxtool

import "encoding/json"

// infoJSON is the JSON form of the table metadata.
type infoJSON struct {
	Version          string            `json:"version,omitempty"`
	TableName        *string           `json:"table_name,omitempty"`
	AuthorName       *string           `json:"author_name,omitempty"`
	AuthorEmail      *string           `json:"author_email,omitempty"`
	AuthorWebSite    *string           `json:"author_website,omitempty"`
	ReleaseDate      *string           `json:"release_date,omitempty"`
	TableBlurb       *string           `json:"table_blurb,omitempty"`
	TableDescription *string           `json:"table_description,omitempty"`
	TableRules       *string           `json:"table_rules,omitempty"`
	TableVersion     *string           `json:"table_version,omitempty"`
	TableSaveDate    *string           `json:"table_save_date,omitempty"`
	TableSaveRev     *string           `json:"table_save_rev,omitempty"`
	HasScreenshot    bool              `json:"has_screenshot"`
	CustomInfoTags   []string          `json:"custom_info_tags,omitempty"`
	Properties       map[string]string `json:"properties,omitempty"`
}

// InfoJSON returns the table metadata as a JSON object, including the
// properties that have no dedicated field.
func (t *Table) InfoJSON() ([]byte, error) {
	info := t.Info
	v := infoJSON{
		TableName:        info.TableName,
		AuthorName:       info.AuthorName,
		AuthorEmail:      info.AuthorEmail,
		AuthorWebSite:    info.AuthorWebSite,
		ReleaseDate:      info.ReleaseDate,
		TableBlurb:       info.TableBlurb,
		TableDescription: info.TableDescription,
		TableRules:       info.TableRules,
		TableVersion:     info.TableVersion,
		TableSaveDate:    info.TableSaveDate,
		TableSaveRev:     info.TableSaveRev,
		HasScreenshot:    info.Screenshot != nil,
		Properties:       info.Properties,
	}
	if t.Version != 0 {
		v.Version = t.Version.String()
	}
	if t.CustomInfoTags != nil {
		for _, name := range t.CustomInfoTags.Names {
			v.CustomInfoTags = append(v.CustomInfoTags, name.Text)
		}
	}
	return json.MarshalIndent(v, "", "\t")
}
