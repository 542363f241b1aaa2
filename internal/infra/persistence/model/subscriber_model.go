package model

import "time"

// SubscriberModel is the GORM-specific struct for the 'subscribers' table.
type SubscriberModel struct {
	ID               string `gorm:"primaryKey"`
	Email            string `gorm:"uniqueIndex;not null"`
	Name             string
	Region           string `gorm:"not null;index"`
	IsVerified       bool   `gorm:"not null;default:false"`
	IsSubscribed     bool   `gorm:"not null;default:true"`
	VerifiedAt       *time.Time
	SubscribedAt     time.Time
	UnsubscribedAt   *time.Time
	UnsubscribeToken string `gorm:"uniqueIndex;not null"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriberModel) TableName() string {
	return "subscribers"
}
