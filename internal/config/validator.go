package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	htmluierrors "github.com/accompanyhq/htmlui/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		// A class pattern must compile both bare (for scanning) and
		// anchored (for whole-token classification).
		_ = v.RegisterValidation("class_pattern", func(fl validator.FieldLevel) bool {
			source := fl.Field().String()
			if _, err := regexp.Compile(source); err != nil {
				return false
			}
			_, err := regexp.Compile("^(?:" + source + ")$")
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema validation on the build configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return htmluierrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	for i, glob := range cfg.Safelist.Content {
		if strings.TrimSpace(glob) == "" {
			return htmluierrors.NewValidationError(
				fmt.Sprintf("safelist.content[%d]", i), "glob is empty", nil)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into the module's
// validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return htmluierrors.NewValidationError(field, msg, err)
	}

	return htmluierrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
