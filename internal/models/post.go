package models

// Post is a piece of content written by a user, labelled with any
// subset of the existing tags through the post_tags join table.
type Post struct {
	ID      uint   `gorm:"primaryKey"`
	Title   string `gorm:"not null" validate:"required"`
	Content string `gorm:"not null" validate:"required"`
	UserID  uint   `gorm:"not null"`
	User    User   `validate:"-"`
	Tags    []Tag `gorm:"many2many:post_tags"`
}
