package tui

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formbind/pkg/schema"
	"github.com/goliatone/go-formbind/pkg/widgets"
)

// FillerOption customises a Filler.
type FillerOption func(*Filler)

// WithDriver swaps the prompt driver, mainly for tests.
func WithDriver(driver PromptDriver) FillerOption {
	return func(f *Filler) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// Filler prompts for every field of a schema and returns the raw data
// mapping. Prompt kind follows the field's inferred widget: password widgets
// use a hidden prompt (defaults never echoed), checkbox widgets use a
// confirm, everything else a plain input.
type Filler struct {
	driver PromptDriver
}

// NewFiller constructs a Filler with the terminal-backed driver unless one is
// injected.
func NewFiller(options ...FillerOption) *Filler {
	f := &Filler{driver: NewSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Fill walks the schema's declared fields in order. Empty answers for
// optional fields are left out of the mapping so schema defaults apply
// downstream.
func (f *Filler) Fill(ctx context.Context, s schema.Schema) (map[string]any, error) {
	data := make(map[string]any)

	for _, field := range s.Fields() {
		answer, present, err := f.ask(ctx, field)
		if err != nil {
			return nil, fmt.Errorf("tui: field %q: %w", field.Name, err)
		}
		if present {
			data[field.Name] = answer
		}
	}
	return data, nil
}

func (f *Filler) ask(ctx context.Context, field schema.Field) (any, bool, error) {
	message := field.Name
	if field.Required {
		message += " (required)"
	}

	switch widgets.Infer(field.Type) {
	case widgets.TypeCheckbox:
		fallback, _ := field.Default.(bool)
		answer, err := f.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: fallback})
		if err != nil {
			return nil, false, err
		}
		return answer, true, nil

	case widgets.TypePassword:
		answer, err := f.driver.Password(ctx, InputConfig{Message: message})
		if err != nil {
			return nil, false, err
		}
		if answer == "" {
			return nil, false, nil
		}
		return answer, true, nil

	default:
		cfg := InputConfig{Message: message}
		if text, ok := field.Default.(string); ok {
			cfg.Default = text
		}
		answer, err := f.driver.Input(ctx, cfg)
		if err != nil {
			return nil, false, err
		}
		if answer == "" {
			return nil, false, nil
		}
		return answer, true, nil
	}
}
