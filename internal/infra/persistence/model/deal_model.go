package model

import "time"

// DealModel is the GORM-specific struct for the 'deals' table. UUIDs are
// stored as their string form. The discount percentage is never stored; it is
// derived uniformly in the domain layer.
type DealModel struct {
	ID            string  `gorm:"primaryKey"`
	StoreID       string  `gorm:"not null;index"`
	ProductName   string  `gorm:"not null"`
	Category      string  `gorm:"not null;index"`
	RegularPrice  float64 `gorm:"not null"`
	SalePrice     float64 `gorm:"not null"`
	Unit          string
	LoyaltyPoints int
	LoyaltyValue  float64
	Description   string
	ValidFrom     time.Time `gorm:"not null;index"`
	ValidUntil    time.Time `gorm:"not null;index"`
	Featured      bool      `gorm:"not null;default:false"`
	Source        string
	IsActive      bool `gorm:"not null;default:true;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Store is preloaded where the owning store's name is needed.
	Store *StoreModel `gorm:"foreignKey:StoreID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (DealModel) TableName() string {
	return "deals"
}
