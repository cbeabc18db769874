package model

import "github.com/shopspring/decimal"

type StepKind string

const STEP_KIND_MODE StepKind = "mode"
const STEP_KIND_EVENT StepKind = "event"
const STEP_KIND_GUESTS StepKind = "guests"
const STEP_KIND_FORMAT StepKind = "format"
const STEP_KIND_PRINT_PACKAGE StepKind = "print-package"
const STEP_KIND_ACCESSORIES StepKind = "accessories"
const STEP_KIND_SUMMARY StepKind = "summary"
const STEP_KIND_INFO StepKind = "info"
const STEP_KIND_CONSENT StepKind = "consent"

// Catalog is the immutable configuration snapshot a session runs against:
// the ordered steps, recommendation texts and the price table.
type Catalog struct {
	Name            string            `json:"name"`
	Currency        string            `json:"currency"`
	Steps           []StepDef         `json:"steps"`
	EventKeys       []EventKeyRule    `json:"eventKeys"`
	Recommendations RecommendationDef `json:"recommendations"`
	Pricing         PriceTableDef     `json:"pricing"`
}

type StepDef struct {
	Id           string            `json:"id"`
	Kind         string            `json:"kind"`
	Title        string            `json:"title"`
	Ask          string            `json:"ask"`
	Options      []OptionDef       `json:"options"`
	Multi        bool              `json:"multi"`
	Required     bool              `json:"required"`
	Precondition string            `json:"precondition"`
	Help         map[string]string `json:"help"`
	SubSteps     []SubStepDef      `json:"substeps"`
}

type OptionDef struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Key returns the semantic value of the option, the label when no value is set.
func (o OptionDef) Key() string {
	if o.Value != "" {
		return o.Value
	}
	return o.Label
}

type SubStepDef struct {
	Key        string      `json:"key"`
	Say        string      `json:"say"`
	ConfirmYes string      `json:"confirmYes"`
	ConfirmNo  string      `json:"confirmNo"`
	Options    []OptionDef `json:"options"`
}

type EventKeyRule struct {
	Key   string   `json:"key"`
	Match []string `json:"match"`
}

type RecommendationDef struct {
	// ByGuests holds the default text per guest bracket.
	ByGuests map[string]string `json:"byGuests"`
	// ByEvent overrides ByGuests, keyed by normalized event key then guest bracket.
	ByEvent map[string]map[string]string `json:"byEvent"`
}

type PriceTableDef struct {
	Base           PriceEntryDef            `json:"base"`
	Packages       []PackagePriceDef        `json:"packages"`
	Accessories    []AccessoryPriceDef      `json:"accessories"`
	BundleEligible []string                 `json:"bundleEligible"`
	Surcharges     map[string]PriceEntryDef `json:"surcharges"`
	StripMinimum   int                      `json:"stripMinimum"`
	Disclosures    []DisclosureDef          `json:"disclosures"`
}

type PriceEntryDef struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

type PackagePriceDef struct {
	Size    int             `json:"size"`
	Variant string          `json:"variant"`
	Label   string          `json:"label"`
	Amount  decimal.Decimal `json:"amount"`
}

func (p PackagePriceDef) Key() PackageKey {
	return PackageKey{Size: p.Size, Variant: p.Variant}
}

type AccessoryPriceDef struct {
	Key    string          `json:"key"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

type DisclosureDef struct {
	EventKey string `json:"eventKey"`
	Text     string `json:"text"`
}

const SURCHARGE_DUAL_FORMAT = "dual-format"
