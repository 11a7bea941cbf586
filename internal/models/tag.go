package models

// Tag labels posts. Names are unique; uniqueness is checked in the
// service layer before insert and backed by the index here.
type Tag struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"uniqueIndex;not null" validate:"required"`
	Posts []Post `gorm:"many2many:post_tags"`
}
