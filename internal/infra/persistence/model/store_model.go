// Package model holds the GORM-specific structs mapped to SQLite tables.
package model

import "time"

// StoreModel is the GORM-specific struct for the 'stores' table. The primary
// key is the human-readable slug (e.g. "sobeys-avalon-mall").
type StoreModel struct {
	ID             string `gorm:"primaryKey"`
	Name           string `gorm:"not null"`
	Chain          string `gorm:"not null;index"`
	Address        string
	City           string
	Region         string `gorm:"not null;index"`
	Phone          string
	Website        string
	LoyaltyProgram string
	Type           string `gorm:"not null"`
	IsActive       bool   `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Deals are removed together with their store.
	Deals []DealModel `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
