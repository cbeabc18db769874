package catalog

import (
	"testing"

	"github.com/mohitkumar/fotoflow/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validDef() model.Catalog {
	return model.Catalog{
		Name: "test",
		Steps: []model.StepDef{
			{Id: "mode", Kind: "mode", Options: []model.OptionDef{{Label: "Digital", Value: "digital"}, {Label: "Print", Value: "digital-and-print"}}},
			{Id: "format", Kind: "format", Precondition: "{$.mode} == 'digital-and-print'", Options: []model.OptionDef{{Label: "Streifen", Value: "strip"}}},
			{Id: "accessories", Kind: "accessories", Multi: true, Options: []model.OptionDef{{Label: "Requisiten"}}},
			{Id: "summary", Kind: "summary"},
		},
		Pricing: model.PriceTableDef{
			Base:           model.PriceEntryDef{Label: "Grundpaket", Amount: decimal.NewFromInt(350)},
			Accessories:    []model.AccessoryPriceDef{{Key: "Requisiten", Amount: decimal.NewFromInt(30)}},
			BundleEligible: []string{"Requisiten"},
		},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(validDef()))

	for scenario, mutate := range map[string]func(def *model.Catalog){
		"empty name":        func(def *model.Catalog) { def.Name = "" },
		"no steps":          func(def *model.Catalog) { def.Steps = nil },
		"duplicate step id": func(def *model.Catalog) { def.Steps[1].Id = "mode" },
		"unknown kind":      func(def *model.Catalog) { def.Steps[1].Kind = "colour" },
		"summary not last": func(def *model.Catalog) {
			def.Steps[0], def.Steps[3] = def.Steps[3], def.Steps[0]
		},
		"missing summary":      func(def *model.Catalog) { def.Steps = def.Steps[:3] },
		"empty option domain":  func(def *model.Catalog) { def.Steps[1].Options = nil },
		"unknown format value": func(def *model.Catalog) { def.Steps[1].Options[0].Value = "poster" },
		"duplicate option": func(def *model.Catalog) {
			def.Steps[0].Options[1].Value = "digital"
		},
		"bad precondition":       func(def *model.Catalog) { def.Steps[1].Precondition = "{$.mode ==" },
		"summary precondition":   func(def *model.Catalog) { def.Steps[3].Precondition = "{$.mode}" },
		"unknown bundle key":     func(def *model.Catalog) { def.Pricing.BundleEligible = []string{"Gala-Paket"} },
		"negative base":          func(def *model.Catalog) { def.Pricing.Base.Amount = decimal.NewFromInt(-1) },
		"negative strip minimum": func(def *model.Catalog) { def.Pricing.StripMinimum = -100 },
		"event rule without match": func(def *model.Catalog) {
			def.EventKeys = []model.EventKeyRule{{Key: "Hochzeit"}}
		},
		"duplicate package": func(def *model.Catalog) {
			def.Pricing.Packages = []model.PackagePriceDef{{Size: 200}, {Size: 200}}
		},
	} {
		t.Run(scenario, func(t *testing.T) {
			def := validDef()
			mutate(&def)
			require.Error(t, Validate(def))
		})
	}
}
