package components

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrUnknownComponent is returned when a registry lookup misses.
	ErrUnknownComponent = errors.New("unknown component")
	// ErrUnknownVariant is returned when a variant name is not in the closed set.
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrUnknownSize is returned when a size name is not in the closed set.
	ErrUnknownSize = errors.New("unknown size")
	// ErrInvalidParams is returned when string params cannot be decoded.
	ErrInvalidParams = errors.New("invalid params")
)

// ParseVariant converts a variant name. An empty name yields the default.
func ParseVariant(raw string) (Variant, error) {
	name := normalize(raw)
	if name == "" {
		return DefaultVariant, nil
	}
	variant := Variant(name)
	if _, ok := buttonVariantClasses[variant]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownVariant, raw)
	}
	return variant, nil
}

// ParseButtonSize converts a button size name. An empty name yields the
// default.
func ParseButtonSize(raw string) (ButtonSize, error) {
	name := normalize(raw)
	if name == "" {
		return DefaultButtonSize, nil
	}
	size := ButtonSize(name)
	if _, ok := buttonSizeClasses[size]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownSize, raw)
	}
	return size, nil
}

// ParseLogoSize converts a logo size name. An empty name yields the default.
func ParseLogoSize(raw string) (LogoSize, error) {
	name := normalize(raw)
	if name == "" {
		return DefaultLogoSize, nil
	}
	size := LogoSize(name)
	if _, ok := logoScales[size]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownSize, raw)
	}
	return size, nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func paramValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("param"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// decodeParams copies params into the struct pointed to by dst using its
// `param` tags, then validates the result.
func decodeParams(params Params, dst any) error {
	rv := reflect.ValueOf(dst).Elem()
	rt := rv.Type()

	known := make(map[string]int, rt.NumField())
	for idx := 0; idx < rt.NumField(); idx++ {
		if name := rt.Field(idx).Tag.Get("param"); name != "" && name != "-" {
			known[name] = idx
		}
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		idx, ok := known[normalize(key)]
		if !ok {
			return fmt.Errorf("%w: unknown param %q", ErrInvalidParams, key)
		}
		raw := strings.TrimSpace(params[key])
		field := rv.Field(idx)
		switch field.Kind() {
		case reflect.String:
			field.SetString(params[key])
		case reflect.Bool:
			if raw == "" {
				field.SetBool(true)
				continue
			}
			value, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("%w: param %q expects a boolean", ErrInvalidParams, key)
			}
			field.SetBool(value)
		case reflect.Int:
			if raw == "" {
				continue
			}
			value, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("%w: param %q expects an integer", ErrInvalidParams, key)
			}
			field.SetInt(int64(value))
		}
	}

	if err := paramValidator().Struct(dst); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidParams, describeValidation(err))
	}
	return nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
