// internal/apperr/apperr.go
package apperr

import (
	"errors"
	"net/http"
)

// Issue - одно нарушение валидации (поле data в ответе)
type Issue struct {
	Message string `json:"message"`
}

// Error - единая типизированная ошибка приложения.
// Status - один статус на все операции (вместо code/statusCode)
type Error struct {
	Message string
	Status  int
	Data    []Issue
}

func (e *Error) Error() string {
	return e.Message
}

// Extensions попадает в error envelope GraphQL-ответа
func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{
		"status": e.Status,
	}
	if len(e.Data) > 0 {
		ext["data"] = e.Data
	}
	return ext
}

func New(status int, message string) *Error {
	return &Error{Message: message, Status: status}
}

// Invalid - 422 со списком всех нарушений сразу
func Invalid(message string, data []Issue) *Error {
	return &Error{Message: message, Status: http.StatusUnprocessableEntity, Data: data}
}

func Unauthenticated(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

func Internal(message string) *Error {
	return New(http.StatusInternalServerError, message)
}

// Normalize приводит любую ошибку к *Error.
// Ошибки без классификации становятся InternalError (500)
func Normalize(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err.Error())
}

// StatusOf возвращает статус ошибки (500 для неклассифицированных)
func StatusOf(err error) int {
	return Normalize(err).Status
}
