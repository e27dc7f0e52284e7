package sqlstore

import "realty_listings/internal/domain"

// columns lists every persisted column in row order; shared by insert, replace and select.
const columns = `id, title, description, location, country, state_name, city, price, bedrooms,
  property_type, category_type, square, images, amenities, rating, video_url, brochure_url,
  brochure_file_name, created_at`

const insertPropertySQL = `
INSERT INTO properties (` + columns + `)
VALUES
  (:id, :title, :description, :location, :country, :state_name, :city, :price, :bedrooms,
   :property_type, :category_type, :square, :images, :amenities, :rating, :video_url,
   :brochure_url, :brochure_file_name, :created_at)
`

const replacePropertySQL = `
UPDATE properties SET
  title              = :title,
  description        = :description,
  location           = :location,
  country            = :country,
  state_name         = :state_name,
  city               = :city,
  price              = :price,
  bedrooms           = :bedrooms,
  property_type      = :property_type,
  category_type      = :category_type,
  square             = :square,
  images             = :images,
  amenities          = :amenities,
  rating             = :rating,
  video_url          = :video_url,
  brochure_url       = :brochure_url,
  brochure_file_name = :brochure_file_name
WHERE id = :id
`

const getPropertySQL = `SELECT ` + columns + ` FROM properties WHERE id = ?`

const findPropertiesSQL = `SELECT ` + columns + ` FROM properties`

// fieldColumns maps document field names onto SQL columns.
var fieldColumns = map[string]string{
	domain.FieldPropertyType: "property_type",
	domain.FieldLocation:     "location",
	domain.FieldBedrooms:     "bedrooms",
	domain.FieldPrice:        "price",
	domain.FieldCategoryType: "category_type",
	domain.FieldSquare:       "square",
	domain.FieldCountry:      "country",
	domain.FieldStateName:    "state_name",
	domain.FieldCity:         "city",
	domain.FieldVideoURL:     "video_url",
}
