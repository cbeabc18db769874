package step

import (
	"fmt"

	"github.com/mohitkumar/fotoflow/model"
)

var _ Step = new(modeStep)
var _ Step = new(eventStep)
var _ Step = new(guestsStep)
var _ Step = new(formatStep)
var _ Step = new(printPackageStep)

type modeStep struct {
	baseStep
}

func NewModeStep(bStep baseStep) *modeStep {
	return &modeStep{baseStep: bStep}
}

func (m *modeStep) Validate() error {
	return m.validateOptions(func(value string) error {
		if !model.Mode(value).Valid() {
			return fmt.Errorf("unknown mode %q", value)
		}
		return nil
	})
}

func (m *modeStep) Selected(sel *model.Selection, sub int) []string {
	return single(string(sel.Mode()))
}

func (m *modeStep) Answered(sel *model.Selection) bool {
	return sel.Mode() != ""
}

func (m *modeStep) Apply(sel *model.Selection, sub int, value string) error {
	sel.SetMode(model.Mode(value))
	return nil
}

// eventStep and guestsStep both feed the cached print recommendation.
type eventStep struct {
	baseStep
	recommender Recommender
}

func NewEventStep(bStep baseStep, recommender Recommender) *eventStep {
	return &eventStep{baseStep: bStep, recommender: recommender}
}

func (e *eventStep) Validate() error {
	return e.validateOptions(nil)
}

func (e *eventStep) Selected(sel *model.Selection, sub int) []string {
	return single(sel.EventType())
}

func (e *eventStep) Answered(sel *model.Selection) bool {
	return sel.EventType() != ""
}

func (e *eventStep) Apply(sel *model.Selection, sub int, value string) error {
	sel.SetEventType(value)
	refreshRecommendation(sel, e.recommender)
	return nil
}

type guestsStep struct {
	baseStep
	recommender Recommender
}

func NewGuestsStep(bStep baseStep, recommender Recommender) *guestsStep {
	return &guestsStep{baseStep: bStep, recommender: recommender}
}

func (g *guestsStep) Validate() error {
	return g.validateOptions(nil)
}

func (g *guestsStep) Selected(sel *model.Selection, sub int) []string {
	return single(sel.GuestBracket())
}

func (g *guestsStep) Answered(sel *model.Selection) bool {
	return sel.GuestBracket() != ""
}

func (g *guestsStep) Apply(sel *model.Selection, sub int, value string) error {
	sel.SetGuestBracket(value)
	refreshRecommendation(sel, g.recommender)
	return nil
}

func refreshRecommendation(sel *model.Selection, recommender Recommender) {
	if recommender == nil || sel.GuestBracket() == "" {
		sel.SetPrintRecommendationText("")
		return
	}
	sel.SetPrintRecommendationText(recommender.Recommend(sel))
}

type formatStep struct {
	baseStep
}

func NewFormatStep(bStep baseStep) *formatStep {
	return &formatStep{baseStep: bStep}
}

func (f *formatStep) Validate() error {
	return f.validateOptions(func(value string) error {
		if !model.PrintFormat(value).Valid() {
			return fmt.Errorf("unknown print format %q", value)
		}
		return nil
	})
}

func (f *formatStep) Selected(sel *model.Selection, sub int) []string {
	return single(string(sel.PrintFormat()))
}

func (f *formatStep) Answered(sel *model.Selection) bool {
	return sel.PrintFormat() != ""
}

func (f *formatStep) Apply(sel *model.Selection, sub int, value string) error {
	sel.SetPrintFormat(model.PrintFormat(value))
	return nil
}

type printPackageStep struct {
	baseStep
}

func NewPrintPackageStep(bStep baseStep) *printPackageStep {
	return &printPackageStep{baseStep: bStep}
}

func (p *printPackageStep) Validate() error {
	return p.validateOptions(func(value string) error {
		_, err := model.ParsePackageKey(value)
		return err
	})
}

func (p *printPackageStep) Selected(sel *model.Selection, sub int) []string {
	key, ok := sel.PrintPackage()
	if !ok {
		return nil
	}
	if value, offered := p.option(key); offered {
		return []string{value}
	}
	return []string{key.String()}
}

// Answered is false for a stored package this step does not offer, e.g. one
// picked before the print format changed.
func (p *printPackageStep) Answered(sel *model.Selection) bool {
	key, ok := sel.PrintPackage()
	if !ok {
		return false
	}
	_, offered := p.option(key)
	return offered
}

func (p *printPackageStep) option(key model.PackageKey) (string, bool) {
	for _, opt := range p.options {
		if optKey, err := model.ParsePackageKey(opt.Key()); err == nil && optKey == key {
			return opt.Key(), true
		}
	}
	return "", false
}

func (p *printPackageStep) Apply(sel *model.Selection, sub int, value string) error {
	key, err := model.ParsePackageKey(value)
	if err != nil {
		return err
	}
	sel.SetPrintPackage(key)
	return nil
}
