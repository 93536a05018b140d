package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// EquipmentLog - строка журнала оборудования. Append-only: после записи
// строка никогда не изменяется и не удаляется. EquipmentID - мягкая
// ссылка, может указывать на уже удаленное оборудование.
type EquipmentLog struct {
	ID               uint64      `json:"id" db:"id"`
	EquipmentID      uint64      `json:"equipment_id" db:"equipment_id"`
	UserID           uint64      `json:"user_id" db:"user_id"`
	ActionType       string      `json:"action_type" db:"action_type"`
	PreviousStatus   null.String `json:"previous_status" db:"previous_status"`
	NewStatus        null.String `json:"new_status" db:"new_status"`
	PreviousLocation null.String `json:"previous_location" db:"previous_location"`
	NewLocation      null.String `json:"new_location" db:"new_location"`
	Details          string      `json:"details" db:"details"`
	CreatedAt        time.Time   `json:"created_at" db:"created_at"`
}
