// conf/validate.go

package conf

import (
	"fmt"
	"strings"
)

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []string
}

// Error returns a string representation of the validation errors
func (ve ValidationError) Error() string {
	return fmt.Sprintf("Validation errors: %v", ve.Errors)
}

// ValidateSettings validates the entire Settings struct
func ValidateSettings(settings *Settings) error {
	ve := ValidationError{}

	if err := validateBIDSSettings(&settings.BIDS); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateMotionSettings(&settings.Motion); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateOutputSettings(&settings.Output); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

// validateBIDSSettings validates the input dataset settings
func validateBIDSSettings(settings *BIDSSettings) error {
	var errs []string

	if settings.Dir == "" {
		errs = append(errs, "BIDS dataset directory must not be empty")
	}

	if settings.Task == "" {
		errs = append(errs, "task label must not be empty")
	}

	// BIDS labels are alphanumeric; a stray entity prefix is the common mistake
	if strings.HasPrefix(settings.Task, "task-") {
		errs = append(errs, "task label must not include the 'task-' prefix")
	}

	if len(errs) > 0 {
		return fmt.Errorf("BIDS settings errors: %v", errs)
	}
	return nil
}

// validateMotionSettings validates the motion normalization settings
func validateMotionSettings(settings *MotionSettings) error {
	var errs []string

	if settings.FramesPerRun <= 0 {
		errs = append(errs, fmt.Sprintf("frames per run must be greater than 0, got %d", settings.FramesPerRun))
	}

	if settings.ResplitDelims == "" {
		errs = append(errs, "re-split delimiter set must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("motion settings errors: %v", errs)
	}
	return nil
}

// validateOutputSettings validates the run report output settings
func validateOutputSettings(settings *OutputSettings) error {
	var errs []string

	switch settings.File.Type {
	case "", "table", "csv":
	default:
		errs = append(errs, fmt.Sprintf("output type must be 'table' or 'csv', got '%s'", settings.File.Type))
	}

	if settings.File.Enabled && settings.File.Path == "" {
		errs = append(errs, "output file path must be set when file output is enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("output settings errors: %v", errs)
	}
	return nil
}
