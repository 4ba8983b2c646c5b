// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"maps"
	"slices"
	"strings"
	"unicode/utf16"

	"github.com/danielhkuo/lunch-vote/models"
)

// MinDescriptionLength is counted on the untrimmed description, in
// UTF-16 code units as browsers count form input.
const MinDescriptionLength = 10

// ValidationError maps each failing form field to its message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := slices.Sorted(maps.Keys(e.Fields))
	return "invalid restaurant: " + strings.Join(fields, ", ")
}

// Validate checks a submission form, collecting every failing field.
func Validate(form models.RestaurantForm) error {
	fields := make(map[string]string)

	if strings.TrimSpace(form.Name) == "" {
		fields["name"] = "Restaurant name is required"
	}
	if strings.TrimSpace(form.Cuisine) == "" {
		fields["cuisine"] = "Cuisine type is required"
	}
	if strings.TrimSpace(form.Description) == "" {
		fields["description"] = "Description is required"
	} else if descriptionLength(form.Description) < MinDescriptionLength {
		fields["description"] = "Description must be at least 10 characters"
	}
	if form.PriceRange < models.MinPriceRange || form.PriceRange > models.MaxPriceRange {
		fields["priceRange"] = "Price range must be between 1 and 4"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func descriptionLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}
