package study

import (
	"github.com/heartmarshall/flashdeck/internal/domain"
)

// MoveInput holds the parameters for a navigation step.
type MoveInput struct {
	Direction int `json:"direction"`
}

// Validate checks all fields and collects all errors.
func (i *MoveInput) Validate() error {
	var errs []domain.FieldError

	if i.Direction != -1 && i.Direction != 1 {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be -1 or 1"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RateInput holds the parameters for rating the current card.
type RateInput struct {
	Level domain.RatingLevel `json:"level"`
}

// Validate checks all fields and collects all errors.
func (i *RateInput) Validate() error {
	var errs []domain.FieldError

	if !i.Level.IsValid() {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be again, good, or easy"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ImportInput holds the parameters for a deck import.
type ImportInput struct {
	Text string
	Name string
}

// Validate checks all fields and collects all errors.
func (i *ImportInput) Validate() error {
	var errs []domain.FieldError

	if i.Text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
