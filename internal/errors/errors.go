package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound       = NewAppError("NOT_FOUND", "Recurso não encontrado", http.StatusNotFound)
	ErrUnauthorized   = NewAppError("UNAUTHORIZED", "Não autorizado", http.StatusUnauthorized)
	ErrBadRequest     = NewAppError("BAD_REQUEST", "Requisição inválida", http.StatusBadRequest)
	ErrInternalServer = NewAppError("INTERNAL_SERVER_ERROR", "Erro interno do servidor", http.StatusInternalServerError)
	ErrValidation     = NewAppError("VALIDATION_ERROR", "Erro de validação", http.StatusUnprocessableEntity)
	ErrDatabase       = NewAppError("DATABASE_ERROR", "Erro no banco de dados", http.StatusInternalServerError)
	ErrGoalNotFound   = NewAppError("GOAL_NOT_FOUND", "Meta não encontrada", http.StatusNotFound)
	ErrRateLimited    = NewAppError("RATE_LIMIT_EXCEEDED", "Muitas requisições. Tente novamente em alguns minutos.", http.StatusTooManyRequests)
)

type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Details    map[string]interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is compara pelo codigo, de modo que clones produzidos por WithError/WithDetails
// continuam casando com o sentinel original em errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := e.clone()
	clone.Details = make(map[string]interface{}, len(details))
	for k, v := range details {
		clone.Details[k] = v
	}
	return clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := e.clone()
	clone.Err = err
	return clone
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func WrapError(err error, code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
		Details:    make(map[string]interface{}),
	}
}

func (e *AppError) clone() *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Details = make(map[string]interface{}, len(e.Details))
	for k, v := range e.Details {
		clone.Details[k] = v
	}
	return &clone
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func FromError(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return WrapError(err, "REQUEST_CANCELED", "Requisição cancelada pelo cliente", http.StatusRequestTimeout)
	}

	return WrapError(err, "UNKNOWN_ERROR", "Erro desconhecido", http.StatusInternalServerError)
}

func NewValidationError(field, message string) *AppError {
	return &AppError{
		Code:       ErrValidation.Code,
		Message:    message,
		StatusCode: ErrValidation.StatusCode,
		Details: map[string]interface{}{
			"fields": []map[string]string{{"field": field, "message": message}},
		},
	}
}

func NewDatabaseError(err error) *AppError {
	return WrapError(err, ErrDatabase.Code, "Erro ao executar operação no banco de dados", http.StatusInternalServerError)
}

// ParseValidationErrors converte erros de binding do gin em um VALIDATION_ERROR com
// detalhes por campo. Corpos que nem chegam ao validator (JSON malformado, tipos
// errados) viram um VALIDATION_ERROR sem campos.
func ParseValidationErrors(err error) *AppError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return WrapError(err, ErrValidation.Code, "Corpo da requisição inválido", ErrValidation.StatusCode)
	}

	fieldErrors := make([]map[string]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldErrors = append(fieldErrors, map[string]string{
			"field":   fieldErr.Field(),
			"message": translateValidationError(fieldErr),
		})
	}

	return &AppError{
		Code:       ErrValidation.Code,
		Message:    "Erro de validação nos campos",
		StatusCode: ErrValidation.StatusCode,
		Details: map[string]interface{}{
			"fields": fieldErrors,
		},
	}
}

func translateValidationError(fe validator.FieldError) string {
	fieldName := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", fieldName)
	case "min":
		return fmt.Sprintf("%s deve ter no mínimo %s caracteres", fieldName, fe.Param())
	case "max":
		return fmt.Sprintf("%s deve ter no máximo %s caracteres", fieldName, fe.Param())
	case "gte":
		return fmt.Sprintf("%s deve ser maior ou igual a %s", fieldName, fe.Param())
	case "gt":
		return fmt.Sprintf("%s deve ser maior que %s", fieldName, fe.Param())
	case "lt":
		return fmt.Sprintf("%s deve ser menor que %s", fieldName, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s deve ser um dos valores: %s", fieldName, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s deve ser uma data no formato %s", fieldName, fe.Param())
	default:
		return fmt.Sprintf("Validação '%s' falhou para %s", fe.Tag(), fieldName)
	}
}
