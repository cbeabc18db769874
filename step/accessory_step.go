package step

import (
	"fmt"

	"github.com/mohitkumar/fotoflow/model"
)

const ANSWER_YES = "yes"
const ANSWER_NO = "no"

var defaultSubStepOptions = []model.OptionDef{
	{Label: "Ja", Value: ANSWER_YES},
	{Label: "Nein", Value: ANSWER_NO},
}

var _ Step = new(accessoryStep)

// accessoryStep is either a multi-select toggle list or, when sub-steps are
// defined, a sequence of yes/no prompts with one accessory each.
type accessoryStep struct {
	baseStep
}

func NewAccessoryStep(bStep baseStep) *accessoryStep {
	return &accessoryStep{baseStep: bStep}
}

func (a *accessoryStep) Validate() error {
	if len(a.subSteps) == 0 {
		return a.validateOptions(nil)
	}
	seen := make(map[string]bool, len(a.subSteps))
	for i, sub := range a.subSteps {
		if sub.Key == "" {
			return fmt.Errorf("step %s: substep %d without accessory key", a.id, i)
		}
		if seen[sub.Key] {
			return fmt.Errorf("step %s: substep accessory %q is duplicate", a.id, sub.Key)
		}
		seen[sub.Key] = true
		for _, opt := range a.Domain(i) {
			if opt.Key() != ANSWER_YES && opt.Key() != ANSWER_NO {
				return fmt.Errorf("step %s: substep %q option %q should be %s or %s", a.id, sub.Key, opt.Key(), ANSWER_YES, ANSWER_NO)
			}
		}
	}
	return nil
}

func (a *accessoryStep) Domain(sub int) []model.OptionDef {
	if len(a.subSteps) == 0 {
		return a.options
	}
	if sub < 0 || sub >= len(a.subSteps) {
		return nil
	}
	if opts := a.subSteps[sub].Options; len(opts) > 0 {
		return opts
	}
	return defaultSubStepOptions
}

func (a *accessoryStep) Selected(sel *model.Selection, sub int) []string {
	if len(a.subSteps) == 0 {
		return sel.Accessories()
	}
	if sub < 0 || sub >= len(a.subSteps) {
		return nil
	}
	if sel.HasAccessory(a.subSteps[sub].Key) {
		return []string{ANSWER_YES}
	}
	return nil
}

// Keys lists every accessory this step can put on a selection.
func (a *accessoryStep) Keys() []string {
	var keys []string
	if len(a.subSteps) == 0 {
		for _, opt := range a.options {
			keys = append(keys, opt.Key())
		}
		return keys
	}
	for _, sub := range a.subSteps {
		keys = append(keys, sub.Key)
	}
	return keys
}

func (a *accessoryStep) Apply(sel *model.Selection, sub int, value string) error {
	if len(a.subSteps) == 0 {
		sel.ToggleAccessory(value)
		return nil
	}
	if sub < 0 || sub >= len(a.subSteps) {
		return fmt.Errorf("step %s: substep %d out of range", a.id, sub)
	}
	sel.SetAccessory(a.subSteps[sub].Key, value == ANSWER_YES)
	return nil
}

// AccessoryKeys is implemented by steps that contribute accessories.
type AccessoryKeys interface {
	Keys() []string
}
