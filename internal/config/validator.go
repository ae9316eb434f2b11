package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	scaleerrors "github.com/alexisbeaulieu97/scalekit/pkg/errors"
)

// ValidateConfig checks the configuration against its struct tags.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return scaleerrors.NewValidationError("config", "configuration is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(cfg))
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return scaleerrors.NewValidationError(field, msg, err)
	}

	return scaleerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root type and lowercases the rest, so
// Config.History.Limit becomes history.limit.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
