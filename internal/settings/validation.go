package settings

import (
	"fmt"

	"github.com/cristianoliveira/kioskboard/internal/layout"
)

// Validate checks that settings values are valid.
// Preconditions: settings must be non-nil.
func Validate(settings *Settings) error {
	if settings == nil {
		return fmt.Errorf("settings cannot be nil")
	}
	return validatePaneWidths(settings.PaneWidths)
}

func validatePaneWidths(widths []float64) error {
	if len(widths) == 0 {
		return nil
	}
	if _, err := layout.New(widths, layout.DefaultMin); err != nil {
		return fmt.Errorf("invalid paneWidths: %w", err)
	}
	return nil
}
