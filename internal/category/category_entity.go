package category

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a platform-wide label products can be filed under.
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string         `gorm:"type:varchar(255);not null;uniqueIndex:uq_categories_name"`
	Icon      *string        `gorm:"type:varchar(255)"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Category) TableName() string {
	return "categories"
}
