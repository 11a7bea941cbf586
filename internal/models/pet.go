package models

// DefaultPetPhotoURL is shown for pets submitted without a photo.
const DefaultPetPhotoURL = "https://www.pngitem.com/pimgs/m/30-307416_profile-icon-png-image-free-download-searchpng-employee.png"

// Species values accepted for a pet.
var PetSpecies = []string{"cat", "dog", "porcupine"}

// Pet represents an animal up for adoption. Pets have no relation to
// the other entities.
type Pet struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null" validate:"required"`
	Species   string `gorm:"not null" validate:"required,oneof=cat dog porcupine"`
	PhotoURL  string `validate:"omitempty,url"`
	Age       *int   `validate:"omitempty,gte=0,lte=30"`
	Notes     string
	Available bool `gorm:"not null;default:true"`
}
