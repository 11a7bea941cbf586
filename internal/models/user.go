package models

// User represents a registered person. A user owns zero or more posts.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"not null" validate:"required"`
	LastName  string `gorm:"not null" validate:"required"`
	// ImageURL is nil when the user cleared it with an empty submission.
	ImageURL *string `validate:"omitempty,url"`
	Posts    []Post  `gorm:"constraint:OnDelete:CASCADE"`
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
