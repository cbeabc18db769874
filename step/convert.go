package step

import (
	"fmt"

	"github.com/mohitkumar/fotoflow/model"
	"github.com/mohitkumar/fotoflow/precondition"
)

type constructor func(bStep baseStep, recommender Recommender) Step

var constructors = map[model.StepKind]constructor{
	model.STEP_KIND_MODE: func(b baseStep, _ Recommender) Step {
		return NewModeStep(b)
	},
	model.STEP_KIND_EVENT: func(b baseStep, r Recommender) Step {
		return NewEventStep(b, r)
	},
	model.STEP_KIND_GUESTS: func(b baseStep, r Recommender) Step {
		return NewGuestsStep(b, r)
	},
	model.STEP_KIND_FORMAT: func(b baseStep, _ Recommender) Step {
		return NewFormatStep(b)
	},
	model.STEP_KIND_PRINT_PACKAGE: func(b baseStep, _ Recommender) Step {
		return NewPrintPackageStep(b)
	},
	model.STEP_KIND_ACCESSORIES: func(b baseStep, _ Recommender) Step {
		return NewAccessoryStep(b)
	},
	model.STEP_KIND_INFO: func(b baseStep, _ Recommender) Step {
		return NewInfoStep(b)
	},
	model.STEP_KIND_CONSENT: func(b baseStep, _ Recommender) Step {
		return NewConsentStep(b)
	},
	model.STEP_KIND_SUMMARY: func(b baseStep, _ Recommender) Step {
		return NewSummaryStep(b)
	},
}

func ValidateStepKind(kind string) error {
	if _, ok := constructors[model.StepKind(kind)]; !ok {
		return fmt.Errorf("invalid step kind %s", kind)
	}
	return nil
}

// Convert builds the step for def, compiling its precondition.
func Convert(def model.StepDef, recommender Recommender) (Step, error) {
	pre, err := precondition.Compile(def.Precondition)
	if err != nil {
		return nil, fmt.Errorf("step %s: %w", def.Id, err)
	}
	bStep := NewBaseStep(def, pre)
	build, ok := constructors[bStep.kind]
	if !ok {
		return bStep, nil
	}
	return build(*bStep, recommender), nil
}
