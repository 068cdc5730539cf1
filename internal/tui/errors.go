// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-stock-keeper/internal/service"
)

// humanizeError turns service errors into operator-facing text.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Неверный логин или пароль"
	case errors.Is(err, service.ErrNotAuthenticated):
		return "Требуется вход в систему"
	case errors.Is(err, service.ErrDuplicateUsername):
		return "Пользователь с таким логином уже существует"
	case errors.Is(err, service.ErrSupplierAlreadyExists):
		return "Поставщик с таким кодом уже существует"
	case errors.Is(err, service.ErrSupplierNotFound):
		return "Поставщик не найден"
	case errors.Is(err, service.ErrAccountNotFound):
		return "Учётная запись не найдена"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Некорректные данные (" + err.Error() + ")"
	case errors.Is(err, service.ErrStorageFault):
		return "Ошибка базы данных, подробности в журнале"
	default:
		return err.Error()
	}
}
