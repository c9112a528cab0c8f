package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// CategoryTemplate is the persisted form of a Template: attribute fields and
// variant dimensions live in JSON columns so templates stay editable data.
type CategoryTemplate struct {
	Code              string    `gorm:"primaryKey;type:varchar(64)"`
	Name              string    `gorm:"type:varchar(255);not null"`
	HasVariants       bool      `gorm:"not null;default:false"`
	VariantConfigJSON []byte    `gorm:"column:variant_config_json;type:json"`
	AttributesJSON    []byte    `gorm:"column:attributes_json;type:json"`
	CreatedAt         time.Time `gorm:"type:datetime(3)"`
	UpdatedAt         time.Time `gorm:"type:datetime(3)"`
}

func (CategoryTemplate) TableName() string { return "category_templates" }

// GormResolver reads templates from the category_templates table.
type GormResolver struct{ db *gorm.DB }

func NewGormResolver(db *gorm.DB) *GormResolver { return &GormResolver{db: db} }

func (r *GormResolver) ResolveTemplate(ctx context.Context, categoryCode string) (Template, error) {
	var row CategoryTemplate
	err := r.db.WithContext(ctx).First(&row, "code = ?", categoryCode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Template{}, ErrTemplateNotFound
	}
	if err != nil {
		return Template{}, err
	}

	t := Template{Code: row.Code, Name: row.Name, HasVariants: row.HasVariants}
	if len(row.VariantConfigJSON) > 0 {
		if err := json.Unmarshal(row.VariantConfigJSON, &t.VariantConfig); err != nil {
			return Template{}, err
		}
	}
	if len(row.AttributesJSON) > 0 {
		if err := json.Unmarshal(row.AttributesJSON, &t.Attributes); err != nil {
			return Template{}, err
		}
	}
	return t, nil
}

// SeedTemplates upserts the built-in templates. Used by the createtable tool
// so a fresh database starts with a usable category configuration.
func SeedTemplates(ctx context.Context, db *gorm.DB, templates []Template) error {
	now := time.Now()
	for _, t := range templates {
		vc, err := json.Marshal(t.VariantConfig)
		if err != nil {
			return err
		}
		attrs, err := json.Marshal(t.Attributes)
		if err != nil {
			return err
		}
		row := CategoryTemplate{
			Code:              t.Code,
			Name:              t.Name,
			HasVariants:       t.HasVariants,
			VariantConfigJSON: vc,
			AttributesJSON:    attrs,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := db.WithContext(ctx).Save(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
