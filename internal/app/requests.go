package app

import (
	"github.com/go-playground/validator/v10"
	"go.farmtech.dev/agroview/internal/core/domain"
	"go.trai.ch/zerr"
)

// CreateCultureRequest carries the fields for a new culture. Variety applies
// to soja records, Cycle and Irrigation to cana records; the server ignores
// the ones that do not match the type.
type CreateCultureRequest struct {
	Type       domain.CultureType `validate:"required,oneof=soja cana"`
	Area       float64            `validate:"required,gt=0"`
	Spacing    float64            `validate:"required,gt=0"`
	Variety    string             `validate:"omitempty,max=64"`
	Cycle      string             `validate:"omitempty,oneof=curto médio longo"`
	Irrigation bool
}

// UpdateCultureRequest carries the updatable fields of a culture. Nil means
// "leave unchanged".
type UpdateCultureRequest struct {
	Area       *float64 `validate:"omitempty,gt=0"`
	Spacing    *float64 `validate:"omitempty,gt=0"`
	Variety    *string  `validate:"omitempty,max=64"`
	Cycle      *string  `validate:"omitempty,oneof=curto médio longo"`
	Irrigation *bool
}

// GenerateRequest asks the server to generate random cultures for
// statistical analysis.
type GenerateRequest struct {
	Type           domain.CultureType `validate:"required,oneof=soja cana"`
	Samples        int                `validate:"required,min=1,max=100"`
	WithStatistics bool
}

// validateRequest runs struct validation and normalizes the failure into the
// domain's validation error.
func validateRequest(v *validator.Validate, req any) error {
	if err := v.Struct(req); err != nil {
		return zerr.With(domain.ErrValidationFailed, "error", err.Error())
	}
	return nil
}
