package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

type Property struct {
	ID               string    `json:"id" bson:"_id"`
	Title            string    `json:"title" bson:"title"`
	Description      string    `json:"description" bson:"description"`
	Location         string    `json:"location" bson:"location"` // legacy free text
	Country          string    `json:"country" bson:"country"`
	StateName        string    `json:"stateName" bson:"stateName"`
	City             string    `json:"city" bson:"city"`
	Price            float64   `json:"price" bson:"price"`
	Bedrooms         int       `json:"bedrooms" bson:"bedrooms"`
	PropertyType     string    `json:"propertyType" bson:"propertyType"`
	CategoryType     string    `json:"category_type" bson:"category_type"`
	Square           float64   `json:"square" bson:"square"`
	Images           []string  `json:"images" bson:"images"`
	Amenities        []string  `json:"amenities" bson:"amenities"`
	Rating           float64   `json:"rating" bson:"rating"`
	VideoURL         string    `json:"videoUrl,omitempty" bson:"videoUrl,omitempty"`
	BrochureURL      string    `json:"brochureUrl,omitempty" bson:"brochureUrl,omitempty"`
	BrochureFileName string    `json:"brochureFileName,omitempty" bson:"brochureFileName,omitempty"`
	CreatedAt        time.Time `json:"createdAt" bson:"createdAt"`
}

// PropertyPatch carries the fields a create/update request supplied. Nil means "leave as is".
type PropertyPatch struct {
	Title            *string
	Description      *string
	Location         *string
	Country          *string
	StateName        *string
	City             *string
	Price            *float64
	Bedrooms         *int
	PropertyType     *string
	CategoryType     *string
	Square           *float64
	Images           []string
	Amenities        []string
	Rating           *float64
	VideoURL         *string
	BrochureURL      *string
	BrochureFileName *string
}

// Apply copies every supplied field onto p.
func (pt PropertyPatch) Apply(p *Property) {
	setStr := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	setStr(&p.Title, pt.Title)
	setStr(&p.Description, pt.Description)
	setStr(&p.Location, pt.Location)
	setStr(&p.Country, pt.Country)
	setStr(&p.StateName, pt.StateName)
	setStr(&p.City, pt.City)
	setStr(&p.PropertyType, pt.PropertyType)
	setStr(&p.CategoryType, pt.CategoryType)
	setStr(&p.VideoURL, pt.VideoURL)
	setStr(&p.BrochureURL, pt.BrochureURL)
	setStr(&p.BrochureFileName, pt.BrochureFileName)
	if pt.Price != nil {
		p.Price = *pt.Price
	}
	if pt.Bedrooms != nil {
		p.Bedrooms = *pt.Bedrooms
	}
	if pt.Square != nil {
		p.Square = *pt.Square
	}
	if pt.Rating != nil {
		p.Rating = *pt.Rating
	}
	if pt.Images != nil {
		p.Images = pt.Images
	}
	if pt.Amenities != nil {
		p.Amenities = pt.Amenities
	}
}
