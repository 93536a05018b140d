package entities

import (
	"inventory-system/pkg/types"

	"github.com/aarondl/null/v8"
)

// Equipment - единица оборудования. Колонки type/category/location
// денормализованы: при установленной ссылке (type_id/category_id/location_id)
// движок деривации перезаписывает строку названием справочной записи.
type Equipment struct {
	ID               uint64      `json:"id" db:"id"`
	Type             string      `json:"type" db:"type"`
	TypeID           null.Uint64 `json:"type_id" db:"type_id"`
	Category         string      `json:"category" db:"category"`
	CategoryID       null.Uint64 `json:"category_id" db:"category_id"`
	Brand            string      `json:"brand" db:"brand"`
	Model            string      `json:"model" db:"model"`
	SerialNumber     null.String `json:"serial_number" db:"serial_number"`
	Status           string      `json:"status" db:"status"`
	Quantity         int         `json:"quantity" db:"quantity"`
	Location         string      `json:"location" db:"location"`
	LocationID       null.Uint64 `json:"location_id" db:"location_id"`
	ReferenceImageID null.Uint64 `json:"reference_image_id" db:"reference_image_id"`
	Description      string      `json:"description" db:"description"`

	types.BaseEntity // CreatedAt, UpdatedAt
}
