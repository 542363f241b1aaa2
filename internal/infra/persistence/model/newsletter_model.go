package model

import "time"

// NewsletterModel is the GORM-specific struct for the 'newsletters' table.
// The integer primary key doubles as the insertion sequence used to break
// generation-timestamp ties; the UUID is the externally visible identifier.
type NewsletterModel struct {
	ID                    int64  `gorm:"primaryKey;autoIncrement"`
	PublicID              string `gorm:"uniqueIndex;not null"`
	GeneratedAt           time.Time `gorm:"not null;index"`
	Frequency             string    `gorm:"not null"`
	Greeting              string
	Closing               string
	Commentary            string
	StoresIncluded        string `gorm:"not null"` // JSON array of store names
	Recipes               string // JSON array of recipe suggestions
	TotalDealsCount       int    `gorm:"not null"`
	TotalPotentialSavings float64 `gorm:"not null"`
	CreatedAt             time.Time

	// Junction rows go away with their newsletter.
	Deals []NewsletterDealModel `gorm:"foreignKey:NewsletterID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (NewsletterModel) TableName() string {
	return "newsletters"
}

// NewsletterDealModel is the ordered junction between newsletters and deals.
// Position preserves the ranked display order of the generated digest.
type NewsletterDealModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	NewsletterID int64  `gorm:"not null;index:idx_newsletter_position,priority:1"`
	DealID       string `gorm:"not null;index"`
	Position     int    `gorm:"not null;index:idx_newsletter_position,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (NewsletterDealModel) TableName() string {
	return "newsletter_deals"
}
