// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"strings"

	"inventory-system/pkg/constants"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations регистрирует доменные правила валидации
// в переданном экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("equipment_status", isKnownEquipmentStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("user_role", isKnownUserRole); err != nil {
		return err
	}
	return nil
}

func isKnownEquipmentStatus(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	for _, s := range constants.AllStatuses {
		if value == s {
			return true
		}
	}
	return false
}

func isKnownUserRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constants.RoleAdmin, constants.RoleTechnician, constants.RoleViewer:
		return true
	}
	return false
}
