package entity

import (
	"encoding/json"

	"gorm.io/gorm"
)

// AboutUsSection is one heading/text block stored inside AdditionalData.
type AboutUsSection struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type AboutUsPage struct {
	gorm.Model
	Language       string `gorm:"size:10;uniqueIndex" json:"language"`
	AboutImage     string `gorm:"size:255" json:"about_image"`
	Title          string `gorm:"size:255" json:"title"`
	Description    string `gorm:"type:text" json:"description"`
	ExperienceYear *int   `json:"experience_year"`
	AdditionalData string `gorm:"type:text" json:"additional_data"`
}

// Sections decodes AdditionalData, returning nil on empty or malformed text.
func (p *AboutUsPage) Sections() []AboutUsSection {
	if p.AdditionalData == "" {
		return nil
	}
	var sections []AboutUsSection
	if err := json.Unmarshal([]byte(p.AdditionalData), &sections); err != nil {
		return nil
	}
	return sections
}

func (p *AboutUsPage) SetSections(sections []AboutUsSection) error {
	raw, err := json.Marshal(sections)
	if err != nil {
		return err
	}
	p.AdditionalData = string(raw)
	return nil
}
