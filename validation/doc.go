// Package validation provides input validation that reports failures as
// *errors.AppError values with per-field details.
//
// # Struct Tag Validation
//
//	type PersonConfig struct {
//	    ID        int    `mapstructure:"id" validate:"gt=0"`
//	    FirstName string `mapstructure:"first_name" validate:"required"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Min("id", id, 1)
//	if appErr := v.Validate(); appErr != nil { ... }
package validation
