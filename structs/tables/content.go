package tables

import "time"

// Site content keys. The hero image is modeled as a content row whose value
// is a storage path rather than text.
const (
	ContentKeyAbout     = "about"
	ContentKeyHeroImage = "hero_image"
)

// SiteContent is addressed by the (key, lang) composite key.
type SiteContent struct {
	tableName struct{}  `bun:"table:site_content,alias:sc"`
	Key       string    `bun:"key,pk,notnull" json:"key"`
	Lang      string    `bun:"lang,pk,notnull" json:"lang"`
	Content   string    `bun:"content,notnull,default:''" json:"content"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}
