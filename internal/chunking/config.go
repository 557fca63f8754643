// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chunking

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// =============================================================================
// CONFIG
// =============================================================================

// Config is the semantic chunking configuration understood by the backend.
type Config struct {
	MinChunkSize          int     `json:"minChunkSize"`
	MaxChunkSize          int     `json:"maxChunkSize"`
	SimilarityThreshold   float64 `json:"similarityThreshold"`
	OverlapSize           int     `json:"overlapSize"`
	UseSemanticBoundaries bool    `json:"useSemanticBoundaries"`
}

// Default returns the backend's default configuration.
func Default() Config {
	return Config{
		MinChunkSize:          200,
		MaxChunkSize:          1000,
		SimilarityThreshold:   0.7,
		OverlapSize:           100,
		UseSemanticBoundaries: true,
	}
}

// =============================================================================
// FIELDS & BOUNDS
// =============================================================================

// Field identifies one editable tunable.
type Field int

const (
	FieldMinChunkSize Field = iota
	FieldMaxChunkSize
	FieldSimilarityThreshold
	FieldOverlapSize
	FieldUseSemanticBoundaries
)

// Fields lists the editable fields in form order.
var Fields = []Field{
	FieldMinChunkSize,
	FieldMaxChunkSize,
	FieldSimilarityThreshold,
	FieldOverlapSize,
	FieldUseSemanticBoundaries,
}

// Bounds is the inclusive range allowed for a numeric field.
type Bounds struct {
	Min  float64
	Max  float64
	Step float64
}

var fieldBounds = map[Field]Bounds{
	FieldMinChunkSize:        {Min: 50, Max: 1000, Step: 1},
	FieldMaxChunkSize:        {Min: 200, Max: 2000, Step: 1},
	FieldSimilarityThreshold: {Min: 0, Max: 1, Step: 0.1},
	FieldOverlapSize:         {Min: 0, Max: 500, Step: 1},
}

// Key returns the JSON key of the field.
func (f Field) Key() string {
	switch f {
	case FieldMinChunkSize:
		return "minChunkSize"
	case FieldMaxChunkSize:
		return "maxChunkSize"
	case FieldSimilarityThreshold:
		return "similarityThreshold"
	case FieldOverlapSize:
		return "overlapSize"
	case FieldUseSemanticBoundaries:
		return "useSemanticBoundaries"
	default:
		return ""
	}
}

// Label returns the Vietnamese form label of the field.
func (f Field) Label() string {
	switch f {
	case FieldMinChunkSize:
		return "Kích thước chunk tối thiểu"
	case FieldMaxChunkSize:
		return "Kích thước chunk tối đa"
	case FieldSimilarityThreshold:
		return "Ngưỡng tương đồng"
	case FieldOverlapSize:
		return "Kích thước overlap"
	case FieldUseSemanticBoundaries:
		return "Sử dụng ranh giới ngữ nghĩa"
	default:
		return "?"
	}
}

// Hint returns the short help line shown under the field.
func (f Field) Hint() string {
	switch f {
	case FieldMinChunkSize:
		return "Số ký tự tối thiểu trong mỗi chunk (50-1000)"
	case FieldMaxChunkSize:
		return "Số ký tự tối đa trong mỗi chunk (200-2000)"
	case FieldSimilarityThreshold:
		return "Ngưỡng để quyết định tách chunk (0.0-1.0)"
	case FieldOverlapSize:
		return "Số ký tự chồng lấp giữa các chunk (0-500)"
	case FieldUseSemanticBoundaries:
		return "Tách chunk theo ranh giới câu và đoạn văn"
	default:
		return ""
	}
}

// Bounds returns the allowed range of a numeric field.
func (f Field) Bounds() (Bounds, bool) {
	b, ok := fieldBounds[f]
	return b, ok
}

// ParseField maps a JSON key (or its snake_case form) to a Field.
func ParseField(key string) (Field, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "_", ""))
	for _, f := range Fields {
		if strings.ToLower(f.Key()) == norm {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown chunking field %q", key)
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validation sentinels.
var (
	ErrOutOfRange      = errors.New("value out of range")
	ErrMinExceedsMax   = errors.New("minChunkSize exceeds maxChunkSize")
	ErrOverlapTooLarge = errors.New("overlapSize must be smaller than maxChunkSize")
)

// FieldError describes a rejected value for a single field.
type FieldError struct {
	Field Field
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %q: %v", e.Field.Key(), e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func checkBounds(f Field, v float64) error {
	b, ok := fieldBounds[f]
	if !ok {
		return nil
	}
	if v < b.Min || v > b.Max {
		return &FieldError{
			Field: f,
			Value: strconv.FormatFloat(v, 'f', -1, 64),
			Err:   fmt.Errorf("%w [%g, %g]", ErrOutOfRange, b.Min, b.Max),
		}
	}
	return nil
}

// Validate checks every field against its bounds and the cross-field rules:
// the minimum may not exceed the maximum and the overlap must stay below it.
func (c Config) Validate() error {
	var errs []error
	values := map[Field]float64{
		FieldMinChunkSize:        float64(c.MinChunkSize),
		FieldMaxChunkSize:        float64(c.MaxChunkSize),
		FieldSimilarityThreshold: c.SimilarityThreshold,
		FieldOverlapSize:         float64(c.OverlapSize),
	}
	for _, f := range Fields {
		v, ok := values[f]
		if !ok {
			continue
		}
		if err := checkBounds(f, v); err != nil {
			errs = append(errs, err)
		}
	}
	if c.MinChunkSize > c.MaxChunkSize {
		errs = append(errs, fmt.Errorf("%w: %d > %d", ErrMinExceedsMax, c.MinChunkSize, c.MaxChunkSize))
	}
	if c.OverlapSize >= c.MaxChunkSize {
		errs = append(errs, fmt.Errorf("%w: %d >= %d", ErrOverlapTooLarge, c.OverlapSize, c.MaxChunkSize))
	}
	return errors.Join(errs...)
}

// =============================================================================
// EDITING
// =============================================================================

// Get returns the current value of a field formatted for a text input.
func (c Config) Get(f Field) string {
	switch f {
	case FieldMinChunkSize:
		return strconv.Itoa(c.MinChunkSize)
	case FieldMaxChunkSize:
		return strconv.Itoa(c.MaxChunkSize)
	case FieldSimilarityThreshold:
		return strconv.FormatFloat(c.SimilarityThreshold, 'f', 1, 64)
	case FieldOverlapSize:
		return strconv.Itoa(c.OverlapSize)
	case FieldUseSemanticBoundaries:
		return strconv.FormatBool(c.UseSemanticBoundaries)
	default:
		return ""
	}
}

// Set parses raw and stores it in the field. Sizes parse as integers, the
// threshold as a float rounded to its step, and the boundary flag as a bool.
// Out-of-range values are rejected and leave the config unchanged.
func (c *Config) Set(f Field, raw string) error {
	raw = strings.TrimSpace(raw)
	switch f {
	case FieldMinChunkSize, FieldMaxChunkSize, FieldOverlapSize:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return &FieldError{Field: f, Value: raw, Err: err}
		}
		if err := checkBounds(f, float64(n)); err != nil {
			return err
		}
		switch f {
		case FieldMinChunkSize:
			c.MinChunkSize = n
		case FieldMaxChunkSize:
			c.MaxChunkSize = n
		default:
			c.OverlapSize = n
		}
	case FieldSimilarityThreshold:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) {
			return &FieldError{Field: f, Value: raw, Err: fmt.Errorf("not a number")}
		}
		v = math.Round(v*10) / 10
		if err := checkBounds(f, v); err != nil {
			return err
		}
		c.SimilarityThreshold = v
	case FieldUseSemanticBoundaries:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return &FieldError{Field: f, Value: raw, Err: err}
		}
		c.UseSemanticBoundaries = b
	default:
		return fmt.Errorf("unknown chunking field %d", f)
	}
	return nil
}

// Step nudges a numeric field by delta steps, clamping to its bounds.
// The boolean field toggles regardless of delta.
func (c *Config) Step(f Field, delta int) {
	if f == FieldUseSemanticBoundaries {
		c.UseSemanticBoundaries = !c.UseSemanticBoundaries
		return
	}
	b, ok := fieldBounds[f]
	if !ok {
		return
	}
	clamp := func(v float64) float64 {
		return math.Max(b.Min, math.Min(b.Max, v))
	}
	switch f {
	case FieldMinChunkSize:
		c.MinChunkSize = int(clamp(float64(c.MinChunkSize + delta*10)))
	case FieldMaxChunkSize:
		c.MaxChunkSize = int(clamp(float64(c.MaxChunkSize + delta*10)))
	case FieldOverlapSize:
		c.OverlapSize = int(clamp(float64(c.OverlapSize + delta*10)))
	case FieldSimilarityThreshold:
		c.SimilarityThreshold = math.Round(clamp(c.SimilarityThreshold+float64(delta)*b.Step)*10) / 10
	}
}
