package dto

// Общие DTO для справочников: локации, категории, типы оборудования.

type CreateDictionaryDTO struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type UpdateDictionaryDTO struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type DictionaryDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
