package routes

import (
	"reflect"
	"strings"
	"sync"

	"Cofrinho/internal/domain/goal"
	appErrors "Cofrinho/internal/errors"
	"Cofrinho/internal/logger"
	"Cofrinho/internal/middleware"
	"Cofrinho/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type Handler struct {
	GoalService *goal.Service
}

func NewHandler(goalSvc *goal.Service) *Handler {
	RegisterValidators()
	return &Handler{GoalService: goalSvc}
}

var validatorOnce sync.Once

// RegisterValidators ensina o validator do gin a comparar decimal.Decimal em gt/gte
// e a reportar campos pelo nome JSON.
func RegisterValidators() {
	validatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			switch name {
			case "-":
				return ""
			case "":
				return fld.Name
			}
			return name
		})
	})
}

func (h *Handler) GetUserIDFromContext(c *gin.Context) (ulid.ULID, error) {
	userIDStr, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	str, ok := userIDStr.(string)
	if !ok {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	userID, err := pkg.ParseULID(str)
	if err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	return userID, nil
}

func (h *Handler) parseIDParam(c *gin.Context, name string) (ulid.ULID, error) {
	id := c.Param(name)
	if id == "" {
		return ulid.ULID{}, appErrors.NewValidationError(name, "é obrigatório")
	}

	parsed, err := pkg.ParseULID(id)
	if err != nil {
		return ulid.ULID{}, appErrors.NewValidationError(name, "formato inválido")
	}
	return parsed, nil
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	level := zerolog.WarnLevel
	if appErr.StatusCode >= 500 {
		level = zerolog.ErrorLevel
	}
	event := logger.Get().WithLevel(level).Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
