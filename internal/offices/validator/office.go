package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"offices/pkg/logger"
	"offices/pkg/model"
)

const phoneTag = "office_phone"

var phonePattern = regexp.MustCompile(`^\+\d{12}$`)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	return fmt.Sprintf("validation failed: %d error(s)", len(v))
}

type OfficeValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewOfficeValidator(log *logger.Logger) *OfficeValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation(phoneTag, isOfficePhone); err != nil {
		log.Fatal("Failed to register office_phone validator", "error", err)
	}

	return &OfficeValidator{
		validate: v,
		logger:   log,
	}
}

func isOfficePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func (v *OfficeValidator) ValidateCreate(in *model.OfficeCreate) error {
	if err := v.validateStruct(in); err != nil {
		return err
	}
	return v.validateLocation(in.Location)
}

func (v *OfficeValidator) ValidateUpdate(in *model.OfficeUpdate) error {
	if err := v.validateStruct(in); err != nil {
		return err
	}
	return v.validateLocation(in.Location)
}

func (v *OfficeValidator) validateStruct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *OfficeValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: v.getErrorMessage(err),
		})
	}

	v.logger.Debug("Office validation failed", "errors", len(validationErrors))
	return validationErrors
}

func (v *OfficeValidator) getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "this field is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", err.Param())
	case "len":
		return fmt.Sprintf("must contain exactly %s values", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	case phoneTag:
		return "must be '+' followed by 12 digits"
	default:
		return fmt.Sprintf("failed on '%s' validation", err.Tag())
	}
}

// validateLocation checks the [latitude, longitude] pair once its length has
// already been validated.
func (v *OfficeValidator) validateLocation(location []float64) error {
	if len(location) != 2 {
		return nil
	}

	var errs ValidationErrors
	if lat := location[0]; lat < -90 || lat > 90 {
		errs = append(errs, ValidationError{Field: "location[0]", Message: fmt.Sprintf("latitude %v out of range [-90, 90]", lat)})
	}
	if lon := location[1]; lon < -180 || lon > 180 {
		errs = append(errs, ValidationError{Field: "location[1]", Message: fmt.Sprintf("longitude %v out of range [-180, 180]", lon)})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
