package pets

import "time"

// Species define las especies que una organización puede publicar.
// @Enum dog, cat, other
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

// Sex define el sexo de la mascota.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// Size es el tamaño aproximado del animal adulto.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Pet es la ficha de una mascota en adopción publicada por una organización.
type Pet struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	Name           string    `json:"name"`
	Species        Species   `json:"species"`
	Breed          string    `json:"breed"`
	Sex            Sex       `json:"sex"`
	AgeMonths      int       `json:"ageMonths"`
	Size           Size      `json:"size,omitempty"`
	Color          string    `json:"color"`
	Description    string    `json:"description"`
	ImageURLs      []string  `json:"imageUrls"`
	IsPublished    bool      `json:"isPublished"`
	IsAdopted      bool      `json:"isAdopted"`
	CreatedAt      time.Time `json:"createdAt"`
	LastUpdateTime time.Time `json:"lastUpdateTime"`
}

// PetRequest es el payload de alta y de actualización (PUT completo).
type PetRequest struct {
	OrganizationID string   `json:"organizationId" validate:"required,max=64"`
	Name           string   `json:"name" validate:"required,max=100"`
	Species        Species  `json:"species" validate:"required,oneof=dog cat other"`
	Breed          string   `json:"breed" validate:"max=100"`
	Sex            Sex      `json:"sex" validate:"omitempty,oneof=male female unknown"`
	AgeMonths      int      `json:"ageMonths" validate:"gte=0,lte=600"`
	Size           Size     `json:"size" validate:"omitempty,oneof=small medium large"`
	Color          string   `json:"color" validate:"max=50"`
	Description    string   `json:"description" validate:"max=4000"`
	ImageURLs      []string `json:"imageUrls" validate:"max=20,dive,url"`
	IsPublished    bool     `json:"isPublished"`
	IsAdopted      bool     `json:"isAdopted"`
}
