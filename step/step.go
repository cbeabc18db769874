package step

import (
	"fmt"

	"github.com/mohitkumar/fotoflow/model"
	"github.com/mohitkumar/fotoflow/precondition"
	"golang.org/x/exp/slices"
)

// Step is one node of the selection flow, built from a StepDef.
type Step interface {
	GetId() string
	GetKind() model.StepKind
	GetTitle() string
	GetAsk() string
	GetOptions() []model.OptionDef
	GetHelp(value string) string
	GetPrecondition() precondition.Precondition
	IsMulti() bool
	IsRequired() bool
	SubSteps() []model.SubStepDef
	// Domain returns the values accepted at sub-step sub; sub is ignored by steps
	// without sub-steps.
	Domain(sub int) []model.OptionDef
	// Selected returns the option values the selection currently holds for this step.
	Selected(sel *model.Selection, sub int) []string
	Answered(sel *model.Selection) bool
	// Apply writes value, already checked against Domain, onto the selection.
	Apply(sel *model.Selection, sub int, value string) error
	Validate() error
}

// Recommender computes the cached recommendation text for a selection.
type Recommender interface {
	Recommend(sel *model.Selection) string
}

var _ Step = new(baseStep)

type baseStep struct {
	id           string
	kind         model.StepKind
	title        string
	ask          string
	options      []model.OptionDef
	multi        bool
	required     bool
	help         map[string]string
	subSteps     []model.SubStepDef
	precondition precondition.Precondition
}

func NewBaseStep(def model.StepDef, pre precondition.Precondition) *baseStep {
	if pre == nil {
		pre = precondition.Always
	}
	return &baseStep{
		id:           def.Id,
		kind:         model.StepKind(def.Kind),
		title:        def.Title,
		ask:          def.Ask,
		options:      slices.Clone(def.Options),
		multi:        def.Multi,
		required:     def.Required,
		help:         def.Help,
		subSteps:     slices.Clone(def.SubSteps),
		precondition: pre,
	}
}

func (bs *baseStep) GetId() string {
	return bs.id
}

func (bs *baseStep) GetKind() model.StepKind {
	return bs.kind
}

func (bs *baseStep) GetTitle() string {
	return bs.title
}

func (bs *baseStep) GetAsk() string {
	return bs.ask
}

func (bs *baseStep) GetOptions() []model.OptionDef {
	return bs.options
}

func (bs *baseStep) GetHelp(value string) string {
	return bs.help[value]
}

func (bs *baseStep) GetPrecondition() precondition.Precondition {
	return bs.precondition
}

func (bs *baseStep) IsMulti() bool {
	return bs.multi
}

func (bs *baseStep) IsRequired() bool {
	return bs.required
}

func (bs *baseStep) SubSteps() []model.SubStepDef {
	return bs.subSteps
}

func (bs *baseStep) Domain(sub int) []model.OptionDef {
	return bs.options
}

func (bs *baseStep) Selected(sel *model.Selection, sub int) []string {
	return nil
}

func (bs *baseStep) Answered(sel *model.Selection) bool {
	return true
}

func (bs *baseStep) Apply(sel *model.Selection, sub int, value string) error {
	return fmt.Errorf("step %s of kind %s does not take answers", bs.id, bs.kind)
}

func (bs *baseStep) Validate() error {
	return fmt.Errorf("step %s: kind %s implementation not found", bs.id, bs.kind)
}

// validateOptions checks the option domain of a choice step.
func (bs *baseStep) validateOptions(check func(value string) error) error {
	if len(bs.options) == 0 {
		return fmt.Errorf("step %s: choice step should have at least one option", bs.id)
	}
	seen := make(map[string]bool, len(bs.options))
	for _, opt := range bs.options {
		key := opt.Key()
		if key == "" {
			return fmt.Errorf("step %s: option without label or value", bs.id)
		}
		if seen[key] {
			return fmt.Errorf("step %s: option %q is duplicate", bs.id, key)
		}
		seen[key] = true
		if check != nil {
			if err := check(key); err != nil {
				return fmt.Errorf("step %s: %w", bs.id, err)
			}
		}
	}
	return nil
}

func single(value string) []string {
	if value == "" {
		return nil
	}
	return []string{value}
}
