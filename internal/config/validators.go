package config

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cristianoliveira/kioskboard/internal/colors"
)

// Validator validates and normalizes a configuration value.
// Returns the normalized value and an error if validation fails.
type Validator func(key, value, defaultValue string) (normalized string, err error)

// validatorRegistry manages the set of registered validators.
type validatorRegistry struct {
	mu         sync.RWMutex
	validators map[string]Validator
}

// registry is the global validator registry.
var registry = &validatorRegistry{
	validators: make(map[string]Validator),
}

// RegisterValidator registers a validator for a configuration key.
// Panics if a validator is already registered for the key.
func RegisterValidator(key string, validator Validator) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, exists := registry.validators[key]; exists {
		panic(fmt.Sprintf("validator already registered for key: %s", key))
	}
	registry.validators[key] = validator
}

// getValidator returns the validator for a key, or nil if not registered.
func getValidator(key string) Validator {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.validators[key]
}

// PositiveIntValidator returns a validator that ensures a value is a positive integer.
func PositiveIntValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': must be a positive integer, using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		return value, nil
	}
}

// NonNegativeIntValidator accepts zero and positive integers.
func NonNegativeIntValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': must be zero or a positive integer, using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		return value, nil
	}
}

// PositiveFloatValidator returns a validator that ensures a value is a finite number > 0.
func PositiveFloatValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': must be a positive number, using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
}

// EnumValidator returns a validator that ensures a value is one of the allowed enum values.
func EnumValidator(allowed map[string]bool) Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		valueLower := strings.ToLower(value)
		if !allowed[valueLower] {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': must be one of: %s; using default: %s", key, value, allowedValues(allowed), defaultValue))
			return defaultValue, nil
		}
		return valueLower, nil
	}
}

// BoolValidator returns a validator that normalizes and validates boolean values.
func BoolValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		normalized := normalizeBool(value)
		if normalized != "true" && normalized != "false" {
			colors.Warning(fmt.Sprintf("invalid boolean value for %s: '%s', must be one of: 1, true, yes, on, 0, false, no, off; using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		return normalized, nil
	}
}

// DurationValidator validates Go-style duration strings (e.g., 30s, 1m, 2h).
// A zero max disables the upper bound.
func DurationValidator(minimum, maximum time.Duration) Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		duration, err := time.ParseDuration(value)
		if err != nil || duration < minimum || (maximum > 0 && duration > maximum) {
			colors.Warning(fmt.Sprintf("invalid duration for %s: '%s', must be a Go-style duration between %s and %s; using default: %s", key, value, minimum, describeMax(maximum), defaultValue))
			return defaultValue, nil
		}
		return duration.String(), nil
	}
}

func describeMax(d time.Duration) string {
	if d <= 0 {
		return "unbounded"
	}
	return d.String()
}

// PaneWidthsValidator checks a comma separated list of three positive
// proportional widths that sum to 100.
func PaneWidthsValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		parts := strings.Split(value, ",")
		if len(parts) != 3 {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': expected three widths, using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		sum := 0.0
		normalized := make([]string, 0, 3)
		for _, p := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil || f <= 0 {
				colors.Warning(fmt.Sprintf("invalid %s value '%s': widths must be positive numbers, using default: %s", key, value, defaultValue))
				return defaultValue, nil
			}
			sum += f
			normalized = append(normalized, strconv.FormatFloat(f, 'f', -1, 64))
		}
		if math.Abs(sum-100) > 0.01 {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': widths must sum to 100, using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		return strings.Join(normalized, ","), nil
	}
}

// initValidators registers all configuration validators.
func initValidators() {
	positiveInt := PositiveIntValidator()
	RegisterValidator("batch_size", positiveInt)
	RegisterValidator("wheel_step", positiveInt)
	RegisterValidator("swipe_threshold", positiveInt)
	RegisterValidator("logging_max_files", positiveInt)
	RegisterValidator("hooks_max_async", positiveInt)
	RegisterValidator("item_gap", NonNegativeIntValidator())

	positiveFloat := PositiveFloatValidator()
	RegisterValidator("scroll_speed", positiveFloat)
	RegisterValidator("wheel_scale", positiveFloat)
	RegisterValidator("drag_scale", positiveFloat)
	RegisterValidator("pane_min", positiveFloat)

	RegisterValidator("frame_interval", DurationValidator(time.Millisecond, time.Second))
	RegisterValidator("resume_delay", DurationValidator(2*time.Second, 3*time.Second))
	RegisterValidator("batch_pause", DurationValidator(0, 0))
	RegisterValidator("pdf_timeout", DurationValidator(time.Second, 0))
	RegisterValidator("photo_dwell", DurationValidator(time.Second, 0))
	RegisterValidator("feedback_duration", DurationValidator(100*time.Millisecond, 0))
	RegisterValidator("hooks_timeout", DurationValidator(time.Second, 0))

	RegisterValidator("pane_widths", PaneWidthsValidator())
	RegisterValidator("catalog_backend", EnumValidator(map[string]bool{"memory": true, "sqlite": true}))

	boolValidator := BoolValidator()
	RegisterValidator("debug", boolValidator)
	RegisterValidator("quiet", boolValidator)
	RegisterValidator("hooks_async", boolValidator)
	RegisterValidator("hooks_failure_mode", EnumValidator(map[string]bool{"abort": true, "warn": true, "ignore": true}))
	RegisterValidator("logging_enabled", boolValidator)
	RegisterValidator("logging_level", EnumValidator(map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}))
}

// normalizeBool converts various boolean representations to "true"/"false".
func normalizeBool(val string) string {
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return "true"
	case "0", "false", "no", "off":
		return "false"
	default:
		// If invalid, return as-is; validation will fix it.
		return val
	}
}

// allowedValues returns a comma-separated string of allowed values.
func allowedValues(allowed map[string]bool) string {
	values := make([]string, 0, len(allowed))
	for k := range allowed {
		values = append(values, k)
	}
	sort.Strings(values)
	return strings.Join(values, ", ")
}
