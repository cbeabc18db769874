package step

import (
	"fmt"

	"github.com/mohitkumar/fotoflow/model"
)

var _ Step = new(infoStep)
var _ Step = new(consentStep)
var _ Step = new(summaryStep)

type infoStep struct {
	baseStep
}

func NewInfoStep(bStep baseStep) *infoStep {
	return &infoStep{baseStep: bStep}
}

func (i *infoStep) Validate() error {
	if len(i.options) > 0 {
		return fmt.Errorf("step %s: info step can not have options", i.id)
	}
	return nil
}

type consentStep struct {
	baseStep
}

func NewConsentStep(bStep baseStep) *consentStep {
	return &consentStep{baseStep: bStep}
}

func (c *consentStep) Validate() error {
	return c.validateOptions(nil)
}

func (c *consentStep) Selected(sel *model.Selection, sub int) []string {
	if !sel.Consented() {
		return nil
	}
	var out []string
	for _, opt := range c.options {
		out = append(out, opt.Key())
	}
	return out
}

func (c *consentStep) Answered(sel *model.Selection) bool {
	return sel.Consented()
}

func (c *consentStep) Apply(sel *model.Selection, sub int, value string) error {
	sel.SetConsented(true)
	return nil
}

// summaryStep is terminal: no options, no successor.
type summaryStep struct {
	baseStep
}

func NewSummaryStep(bStep baseStep) *summaryStep {
	return &summaryStep{baseStep: bStep}
}

func (s *summaryStep) Validate() error {
	if len(s.options) > 0 {
		return fmt.Errorf("step %s: summary step can not have options", s.id)
	}
	if s.precondition.String() != "" {
		return fmt.Errorf("step %s: summary step should always be reachable", s.id)
	}
	return nil
}
