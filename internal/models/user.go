// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и дату создания.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
//
// Username и Email уникальны в пределах всей системы; уникальность
// гарантирует хранилище. PasswordHash хранит только результат
// одностороннего хеширования, исходный пароль нигде не сохраняется.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Username     string    // Имя пользователя (уникальное, 3-50 символов)
	Email        string    // Электронная почта (уникальная)
	FullName     string    // Отображаемое имя, не участвует в аутентификации
	PasswordHash string    // Хэш пароля пользователя
	CreateDate   time.Time // Дата создания учётной записи
	SoftDelete   bool      // Флаг мягкого удаления, потоком аутентификации не используется
}
