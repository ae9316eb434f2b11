package persistence

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/scalekit/internal/model"
	scaleerrors "github.com/alexisbeaulieu97/scalekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks a snapshot against the document schema: every id is set,
// channels are known, and every curve or naming scheme a scale references
// exists in its palette with a matching length.
func Validate(s Snapshot) error {
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}

	if err := validateDocument("context.palettes", s.Context.Palettes); err != nil {
		return err
	}
	for i, doc := range s.Context.Past {
		if err := validateDocument(fmt.Sprintf("context.past[%d]", i), doc); err != nil {
			return err
		}
	}
	for i, doc := range s.Context.Future {
		if err := validateDocument(fmt.Sprintf("context.future[%d]", i), doc); err != nil {
			return err
		}
	}
	return nil
}

func validateDocument(prefix string, doc model.Document) error {
	for key, p := range doc {
		field := fmt.Sprintf("%s[%s]", prefix, key)
		if p.ID != key {
			return scaleerrors.NewValidationError(field+".id", fmt.Sprintf("palette id %q does not match key", p.ID), nil)
		}
		for id, s := range p.Scales {
			if err := validateScale(fmt.Sprintf("%s.scales[%s]", field, id), p, id, s); err != nil {
				return err
			}
		}
		for id, cv := range p.Curves {
			if cv.ID != id {
				return scaleerrors.NewValidationError(fmt.Sprintf("%s.curves[%s].id", field, id), "curve id does not match key", nil)
			}
		}
		for id, ns := range p.NamingSchemes {
			if ns.ID != id {
				return scaleerrors.NewValidationError(fmt.Sprintf("%s.namingschemes[%s].id", field, id), "naming scheme id does not match key", nil)
			}
		}
	}
	return nil
}

func validateScale(field string, p model.Palette, key string, s model.Scale) error {
	if s.ID != key {
		return scaleerrors.NewValidationError(field+".id", "scale id does not match key", nil)
	}
	if len(s.Colors) == 0 {
		return scaleerrors.NewValidationError(field+".colors", "scale has no colors", nil)
	}
	for ch, curveID := range s.Curves {
		cv, ok := p.Curves[curveID]
		if !ok {
			return scaleerrors.NewValidationError(fmt.Sprintf("%s.curves.%s", field, ch), fmt.Sprintf("unknown curve %q", curveID), nil)
		}
		if len(cv.Values) != len(s.Colors) {
			return scaleerrors.NewValidationError(fmt.Sprintf("%s.curves.%s", field, ch),
				fmt.Sprintf("curve %q has %d values for %d colors", curveID, len(cv.Values), len(s.Colors)), nil)
		}
	}
	if s.NamingSchemeID != "" {
		ns, ok := p.NamingSchemes[s.NamingSchemeID]
		if !ok {
			return scaleerrors.NewValidationError(field+".namingschemeid", fmt.Sprintf("unknown naming scheme %q", s.NamingSchemeID), nil)
		}
		if len(ns.Names) != len(s.Colors) {
			return scaleerrors.NewValidationError(field+".colors",
				fmt.Sprintf("naming scheme %q has %d names for %d colors", ns.ID, len(ns.Names), len(s.Colors)), nil)
		}
	}
	return nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := strings.ToLower(ve.Namespace())
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return scaleerrors.NewValidationError(field, msg, err)
	}
	return scaleerrors.NewValidationError("snapshot", err.Error(), err)
}
