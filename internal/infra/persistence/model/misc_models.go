package model

import "time"

// TipModel is the GORM-specific struct for the 'tips' table.
type TipModel struct {
	ID        string `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Body      string `gorm:"not null"`
	Category  string `gorm:"index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TipModel) TableName() string {
	return "tips"
}

// AnalyticsModel is the GORM-specific struct for the 'analytics' table.
type AnalyticsModel struct {
	ID        string `gorm:"primaryKey"`
	EventType string `gorm:"not null;index"`
	Payload   string
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AnalyticsModel) TableName() string {
	return "analytics"
}
