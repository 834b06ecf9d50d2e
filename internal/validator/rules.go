package validator

import (
	"log"

	"skillgate_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Если правило не удалось зарегистрировать, приложение
			// не должно запускаться, это критическая ошибка.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// Правила, основанные на statuses.go

	// 'is-user-role': проверяет, что роль пользователя валидна
	mustRegister("is-user-role", validateUserRole)

	// 'is-user-status': проверяет, что статус пользователя валиден
	mustRegister("is-user-status", validateUserStatus)

	// 'is-application-status': проверяет, что статус отклика валиден
	mustRegister("is-application-status", validateApplicationStatus)
}

// --- Функции валидации ---

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Пустые значения обрабатывает 'required'
	}
	return models.IsValidUserRole(models.UserRole(value))
}

func validateUserStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidUserStatus(models.UserStatus(value))
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidApplicationStatus(models.ApplicationStatus(value))
}
