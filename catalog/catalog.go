package catalog

import (
	"fmt"

	"github.com/mohitkumar/fotoflow/model"
	"github.com/mohitkumar/fotoflow/step"
)

// Catalog is the runtime, read-only view of a catalog definition. It is safe
// to share between sessions.
type Catalog struct {
	Name       string
	Currency   string
	steps      []step.Step
	index      map[string]int
	pricing    model.PriceTableDef
	normalizer *EventNormalizer
	recommend  *recommender
	accessory  map[string]bool
	packages   map[model.PackageKey]bool
}

// New validates def and builds the catalog from it.
func New(def model.Catalog) (*Catalog, error) {
	if err := Validate(def); err != nil {
		return nil, err
	}
	return Convert(def)
}

func Convert(def model.Catalog) (*Catalog, error) {
	normalizer := NewEventNormalizer(def.EventKeys)
	c := &Catalog{
		Name:       def.Name,
		Currency:   def.Currency,
		index:      make(map[string]int, len(def.Steps)),
		pricing:    def.Pricing,
		normalizer: normalizer,
		recommend:  &recommender{normalizer: normalizer, def: def.Recommendations},
		accessory:  make(map[string]bool),
		packages:   make(map[model.PackageKey]bool),
	}
	for i, stepDef := range def.Steps {
		s, err := step.Convert(stepDef, c.recommend)
		if err != nil {
			return nil, err
		}
		c.steps = append(c.steps, s)
		c.index[s.GetId()] = i
		switch s.GetKind() {
		case model.STEP_KIND_ACCESSORIES:
			if keys, ok := s.(step.AccessoryKeys); ok {
				for _, k := range keys.Keys() {
					c.accessory[k] = true
				}
			}
		case model.STEP_KIND_PRINT_PACKAGE:
			for _, opt := range s.GetOptions() {
				if key, err := model.ParsePackageKey(opt.Key()); err == nil {
					c.packages[key] = true
				}
			}
		}
	}
	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.steps)
}

func (c *Catalog) StepAt(i int) step.Step {
	return c.steps[i]
}

// Step returns the step with the given id and its position.
func (c *Catalog) Step(id string) (step.Step, int, error) {
	i, ok := c.index[id]
	if !ok {
		return nil, -1, fmt.Errorf("%w: %s", model.ErrStepNotFound, id)
	}
	return c.steps[i], i, nil
}

func (c *Catalog) Pricing() model.PriceTableDef {
	return c.pricing
}

func (c *Catalog) NormalizeEventKey(label string) string {
	return c.normalizer.Normalize(label)
}

func (c *Catalog) Recommend(sel *model.Selection) string {
	return c.recommend.Recommend(sel)
}

// DeclaresAccessory reports whether any accessory step offers key.
func (c *Catalog) DeclaresAccessory(key string) bool {
	return c.accessory[key]
}

// DeclaresPackage reports whether any print package step offers key.
func (c *Catalog) DeclaresPackage(key model.PackageKey) bool {
	return c.packages[key]
}

// StepOfKind returns the first step of kind.
func (c *Catalog) StepOfKind(kind model.StepKind) (step.Step, bool) {
	for _, s := range c.steps {
		if s.GetKind() == kind {
			return s, true
		}
	}
	return nil, false
}
