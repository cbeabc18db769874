package pricing

import (
	"fmt"
	"strings"

	"github.com/mohitkumar/fotoflow/catalog"
	"github.com/mohitkumar/fotoflow/model"
	"github.com/mohitkumar/fotoflow/step"
)

// Summarize renders the selection as "title: answer" bullets in catalog step
// order, using the option labels of the catalog. The print package bullet
// carries what the package provides in the chosen format.
func Summarize(sel *model.Selection, cat *catalog.Catalog) []string {
	var bullets []string
	add := func(kind model.StepKind, values ...string) {
		s, ok := cat.StepOfKind(kind)
		if !ok || len(values) == 0 || values[0] == "" {
			return
		}
		labels := make([]string, 0, len(values))
		for _, v := range values {
			labels = append(labels, optionLabel(s, v))
		}
		bullets = append(bullets, fmt.Sprintf("%s: %s", s.GetTitle(), strings.Join(labels, ", ")))
	}
	add(model.STEP_KIND_MODE, string(sel.Mode()))
	add(model.STEP_KIND_EVENT, sel.EventType())
	if sel.IsPrint() {
		add(model.STEP_KIND_GUESTS, sel.GuestBracket())
		add(model.STEP_KIND_FORMAT, string(sel.PrintFormat()))
		if desired, ok := sel.PrintPackage(); ok {
			n := len(bullets)
			add(model.STEP_KIND_PRINT_PACKAGE, desired.String())
			if hint := packageHint(desired, sel.PrintFormat(), cat.Pricing()); hint != "" && len(bullets) > n {
				bullets[len(bullets)-1] += " " + hint
			}
		}
	}
	add(model.STEP_KIND_ACCESSORIES, sel.Accessories()...)
	if text := sel.PrintRecommendationText(); sel.IsPrint() && text != "" {
		bullets = append(bullets, text)
	}
	return bullets
}

func packageHint(desired model.PackageKey, format model.PrintFormat, table model.PriceTableDef) string {
	if format == "" {
		format = model.FORMAT_POSTCARD
	}
	conv, err := ConvertPackage(desired, format, table)
	if err != nil {
		return ""
	}
	return "(" + conv.Describe() + ")"
}

func optionLabel(s step.Step, value string) string {
	for _, opt := range s.GetOptions() {
		if opt.Key() == value {
			return opt.Label
		}
	}
	if key, err := model.ParsePackageKey(value); err == nil {
		for _, opt := range s.GetOptions() {
			if optKey, err := model.ParsePackageKey(opt.Key()); err == nil && optKey == key {
				return opt.Label
			}
		}
	}
	return value
}
