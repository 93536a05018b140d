package dto

type CreateEquipmentDTO struct {
	TypeID       NullableID `json:"type_id"`
	Type         string     `json:"type"`
	CategoryID   NullableID `json:"category_id"`
	Category     string     `json:"category"`
	Brand        string     `json:"brand" validate:"required"`
	Model        string     `json:"model" validate:"required"`
	SerialNumber *string    `json:"serial_number"`
	Quantity     FlexInt    `json:"quantity"`
	Status       *string    `json:"status" validate:"omitempty,equipment_status"`
	Location     string     `json:"location"`
	LocationID   NullableID `json:"location_id"`
	Description  string     `json:"description"`
}

type UpdateEquipmentDTO struct {
	TypeID           NullableID `json:"type_id"`
	Type             *string    `json:"type"`
	CategoryID       NullableID `json:"category_id"`
	Category         *string    `json:"category"`
	Brand            *string    `json:"brand" validate:"omitempty,min=1"`
	Model            *string    `json:"model" validate:"omitempty,min=1"`
	SerialNumber     *string    `json:"serial_number"`
	Quantity         FlexInt    `json:"quantity"`
	Status           *string    `json:"status" validate:"omitempty,equipment_status"`
	Location         *string    `json:"location"`
	LocationID       NullableID `json:"location_id"`
	ReferenceImageID NullableID `json:"reference_image_id"`
	Description      *string    `json:"description"`
}

// UpdateEquipmentStatusDTO - узкий эндпоинт смены только статуса.
type UpdateEquipmentStatusDTO struct {
	Status string `json:"status" validate:"required,equipment_status"`
}

// UpdateEquipmentLocationDTO - узкий эндпоинт смены только локации.
type UpdateEquipmentLocationDTO struct {
	LocationID NullableID `json:"location_id"`
	Location   *string    `json:"location"`
}

type EquipmentDTO struct {
	ID               uint64  `json:"id"`
	Type             string  `json:"type"`
	TypeID           *uint64 `json:"type_id"`
	Category         string  `json:"category"`
	CategoryID       *uint64 `json:"category_id"`
	Brand            string  `json:"brand"`
	Model            string  `json:"model"`
	SerialNumber     *string `json:"serial_number"`
	Status           string  `json:"status"`
	Quantity         int     `json:"quantity"`
	Location         string  `json:"location"`
	LocationID       *uint64 `json:"location_id"`
	ReferenceImageID *uint64 `json:"reference_image_id"`
	Description      string  `json:"description"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type ShortEquipmentDTO struct {
	ID           uint64  `json:"id"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	SerialNumber *string `json:"serial_number"`
}
