package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/jahboukie/promptpro/internal/llm"
	"github.com/jahboukie/promptpro/internal/pattern"
	"github.com/jahboukie/promptpro/internal/pipeline"
	"github.com/jahboukie/promptpro/internal/strategy"
	"github.com/jahboukie/promptpro/internal/writer"
)

// ErrValidation marks a request that is missing mandatory fields or is malformed
var ErrValidation = errors.New("validation error")

var (
	errGoalNotFound = errors.New("content goal not found")
	errTypeNotFound = errors.New("content type not found")
)

type errorResponse struct {
	Error string `json:"error"`
}

var validatorOnce sync.Once

// setupValidator makes binding errors report json field names and adds the
// notblank rule for free-text fields.
func setupValidator() {
	validatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
}

// bindingError turns a gin binding failure into an ErrValidation with a readable message
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: invalid request body", ErrValidation)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "notblank":
			msgs = append(msgs, fe.Field()+" is required")
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, ", "))
}

func handleError(c *gin.Context, err error) {
	var status int
	msg := err.Error()

	switch {
	case errors.Is(err, ErrValidation):
		status = http.StatusBadRequest
		msg = strings.TrimPrefix(msg, ErrValidation.Error()+": ")
	case errors.Is(err, pipeline.ErrEmptyRequest),
		errors.Is(err, writer.ErrInvalidPrompt):
		status = http.StatusBadRequest
	case errors.Is(err, pattern.ErrNotFound),
		errors.Is(err, errGoalNotFound),
		errors.Is(err, errTypeNotFound),
		errors.Is(err, strategy.ErrInvalidSelection):
		status = http.StatusNotFound
	case errors.Is(err, llm.ErrProviderUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, llm.ErrGenerationFailed),
		errors.Is(err, pipeline.ErrEmptyResponse):
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
		msg = "An unexpected internal error occurred"
	}

	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: msg})
}
