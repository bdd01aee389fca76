package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func configValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report keys the way they appear in config.toml.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// validateConfig performs validation of configuration values
func validateConfig(config *Config) error {
	if config == nil {
		return errors.New("config is nil")
	}

	err := configValidator().Struct(config)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	validationErrors := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		validationErrors = append(validationErrors, describeFieldError(fe))
	}
	return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
}

func describeFieldError(fe validator.FieldError) string {
	key := fe.Namespace()
	if i := strings.IndexByte(key, '.'); i >= 0 {
		key = key[i+1:]
	}

	switch fe.Tag() {
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color like #RRGGBB (got %q)", key, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s] (got %q)", key, fe.Param(), fe.Value())
	case "gte", "lte":
		return fmt.Sprintf("%s must be %s %s (got %v)", key, fe.Tag(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q validation", key, fe.Tag())
	}
}
