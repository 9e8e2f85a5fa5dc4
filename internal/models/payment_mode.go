package models

// PaymentMode is a user-defined method of payment with a display name and a
// short alias for quick entry. A typed token resolves to a mode by exact
// case-insensitive match against either Name or Shorthand.
type PaymentMode struct {
	Base
	UserID    string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string `gorm:"not null" json:"name"`
	Shorthand string `gorm:"not null" json:"shorthand"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
}
