package novel

import (
	"strings"
	"time"

	"github.com/novelhub/backend/internal/domain/shared"
)

// Product represents a story/title being read on the platform.
// It is the aggregate root for reading-related operations.
type Product struct {
	shared.BaseEntity
	Name        string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	CoverPath   string `gorm:"type:varchar(255)"`
	IsPremium   bool   `gorm:"not null;default:false"`
	ViewCount   int64  `gorm:"not null;default:0"`

	Categories []Category `gorm:"many2many:product_categories"`
	Chapters   []Chapter  `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, description string, premium bool) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}

	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        strings.TrimSpace(name),
		Description: description,
		IsPremium:   premium,
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.Description = description
	p.UpdatedAt = time.Now()
	return nil
}

// SetPremium flags the whole title as premium content
func (p *Product) SetPremium(premium bool) {
	p.IsPremium = premium
	p.UpdatedAt = time.Now()
}

func validateProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
