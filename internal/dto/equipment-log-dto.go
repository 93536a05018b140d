package dto

// EquipmentLogDTO - строка журнала для выдачи наружу.
type EquipmentLogDTO struct {
	ID               uint64  `json:"id"`
	EquipmentID      uint64  `json:"equipment_id"`
	UserID           uint64  `json:"user_id"`
	Username         *string `json:"username,omitempty"`
	ActionType       string  `json:"action_type"`
	PreviousStatus   *string `json:"previous_status"`
	NewStatus        *string `json:"new_status"`
	PreviousLocation *string `json:"previous_location"`
	NewLocation      *string `json:"new_location"`
	Details          string  `json:"details"`
	CreatedAt        string  `json:"created_at"`

	// Сводка по оборудованию для глобального списка (join).
	Equipment *ShortEquipmentDTO `json:"equipment,omitempty"`
}
