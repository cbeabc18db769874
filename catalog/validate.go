package catalog

import (
	"fmt"

	"github.com/mohitkumar/fotoflow/model"
	"github.com/mohitkumar/fotoflow/step"
)

// Validate checks a catalog definition before it is used by any session.
func Validate(def model.Catalog) error {
	if len(def.Name) == 0 {
		return fmt.Errorf("catalog name can not be empty")
	}
	if len(def.Steps) == 0 {
		return fmt.Errorf("catalog %s has no steps", def.Name)
	}
	validStepId := make(map[string]any)
	summaries := 0
	for i, stepDef := range def.Steps {
		if len(stepDef.Id) == 0 {
			return fmt.Errorf("step at position %d has no id", i)
		}
		if _, ok := validStepId[stepDef.Id]; ok {
			return fmt.Errorf("step id %s is duplicate", stepDef.Id)
		}
		validStepId[stepDef.Id] = ""
		if err := step.ValidateStepKind(stepDef.Kind); err != nil {
			return fmt.Errorf("step %s: %w", stepDef.Id, err)
		}
		if model.StepKind(stepDef.Kind) == model.STEP_KIND_SUMMARY {
			summaries++
			if i != len(def.Steps)-1 {
				return fmt.Errorf("summary step %s should be the last step", stepDef.Id)
			}
		}
		s, err := step.Convert(stepDef, nil)
		if err != nil {
			return err
		}
		if err := s.Validate(); err != nil {
			return err
		}
	}
	if summaries != 1 {
		return fmt.Errorf("catalog %s should have exactly one summary step, found %d", def.Name, summaries)
	}
	for _, rule := range def.EventKeys {
		if len(rule.Key) == 0 {
			return fmt.Errorf("event key rule without key")
		}
		if len(rule.Match) == 0 {
			return fmt.Errorf("event key rule %s has nothing to match", rule.Key)
		}
	}
	return validatePricing(def.Pricing)
}

func validatePricing(p model.PriceTableDef) error {
	if p.Base.Amount.IsNegative() {
		return fmt.Errorf("base amount can not be negative")
	}
	packages := make(map[model.PackageKey]bool)
	for _, pkg := range p.Packages {
		if pkg.Size <= 0 {
			return fmt.Errorf("package size %d should be positive", pkg.Size)
		}
		if packages[pkg.Key()] {
			return fmt.Errorf("package %s is duplicate", pkg.Key())
		}
		packages[pkg.Key()] = true
		if pkg.Amount.IsNegative() {
			return fmt.Errorf("package %s amount can not be negative", pkg.Key())
		}
	}
	accessories := make(map[string]bool)
	for _, acc := range p.Accessories {
		if len(acc.Key) == 0 {
			return fmt.Errorf("accessory price without key")
		}
		if accessories[acc.Key] {
			return fmt.Errorf("accessory %s is duplicate", acc.Key)
		}
		accessories[acc.Key] = true
		if acc.Amount.IsNegative() {
			return fmt.Errorf("accessory %s amount can not be negative", acc.Key)
		}
	}
	for _, key := range p.BundleEligible {
		if !accessories[key] {
			return fmt.Errorf("bundle eligible accessory %s has no price entry", key)
		}
	}
	if p.StripMinimum < 0 {
		return fmt.Errorf("strip minimum can not be negative")
	}
	return nil
}
