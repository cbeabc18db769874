package pricing

import (
	"fmt"
	"sort"

	"github.com/mohitkumar/fotoflow/model"
)

// Conversion is the result of mapping a desired print quantity, counted in the
// chosen format, onto the postcard package the price table is keyed by.
type Conversion struct {
	Desired model.PackageKey
	Format  model.PrintFormat
	// Units is the postcard equivalent of Desired before rounding.
	Units int
	Tier  model.PackagePriceDef
	// Upgraded is set when the strip minimum raised the tier.
	Upgraded bool
}

// PostcardUnits converts n prints of format into postcard units. Strips are
// cut from a postcard, so two strips take one print; a large print takes two.
func PostcardUnits(n int, format model.PrintFormat) int {
	switch format {
	case model.FORMAT_STRIP:
		return (n + 1) / 2
	case model.FORMAT_LARGE:
		return n * 2
	default:
		return n
	}
}

// ConvertPackage rounds the desired quantity up to the smallest package of the
// same variant. For dual format the larger of the postcard and the strip
// package wins.
func ConvertPackage(desired model.PackageKey, format model.PrintFormat, table model.PriceTableDef) (Conversion, error) {
	conv := Conversion{Desired: desired, Format: format}
	switch format {
	case model.FORMAT_STRIP:
		conv.Units = PostcardUnits(desired.Size, format)
		tier, upgraded, err := stripTier(conv.Units, desired.Variant, table)
		if err != nil {
			return conv, err
		}
		conv.Tier, conv.Upgraded = tier, upgraded
	case model.FORMAT_DUAL:
		postcardUnits := PostcardUnits(desired.Size, model.FORMAT_POSTCARD)
		postcard, err := tierFor(postcardUnits, desired.Variant, table)
		if err != nil {
			return conv, err
		}
		strip, upgraded, err := stripTier(PostcardUnits(desired.Size, model.FORMAT_STRIP), desired.Variant, table)
		if err != nil {
			return conv, err
		}
		conv.Units, conv.Tier = postcardUnits, postcard
		if strip.Size > postcard.Size {
			conv.Tier, conv.Upgraded = strip, upgraded
		}
	default:
		conv.Units = PostcardUnits(desired.Size, format)
		tier, err := tierFor(conv.Units, desired.Variant, table)
		if err != nil {
			return conv, err
		}
		conv.Tier = tier
	}
	return conv, nil
}

func stripTier(units int, variant string, table model.PriceTableDef) (model.PackagePriceDef, bool, error) {
	tier, err := tierFor(units, variant, table)
	if err != nil {
		return tier, false, err
	}
	if tier.Size >= table.StripMinimum {
		return tier, false, nil
	}
	floor, err := tierFor(table.StripMinimum, variant, table)
	if err != nil {
		return tier, false, err
	}
	return floor, true, nil
}

func tierFor(units int, variant string, table model.PriceTableDef) (model.PackagePriceDef, error) {
	var tiers []model.PackagePriceDef
	for _, p := range table.Packages {
		if p.Variant == variant {
			tiers = append(tiers, p)
		}
	}
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].Size < tiers[j].Size
	})
	for _, t := range tiers {
		if t.Size >= units {
			return t, nil
		}
	}
	key := model.PackageKey{Size: units, Variant: variant}
	return model.PackagePriceDef{}, model.MissingPriceEntryError{Key: fmt.Sprintf("package %s", key)}
}

// PackageLabel describes what a postcard package provides in format.
func PackageLabel(tier model.PackageKey, format model.PrintFormat) string {
	n := tier.Size
	var label string
	switch format {
	case model.FORMAT_STRIP:
		label = fmt.Sprintf("%d Fotostreifen", n*2)
	case model.FORMAT_LARGE:
		label = fmt.Sprintf("%d Großbilder", n/2)
	case model.FORMAT_DUAL:
		label = fmt.Sprintf("%d Postkarten oder %d Fotostreifen", n, n*2)
	default:
		label = fmt.Sprintf("%d Postkarten", n)
	}
	if tier.Variant == model.VARIANT_DUAL_PRINTER {
		label += " mit 2 Drucksystemen"
	}
	return label
}

// Describe names the package the conversion landed on and what it provides.
func (c Conversion) Describe() string {
	label := c.Tier.Label
	if label == "" {
		label = fmt.Sprintf("Printpaket %s", c.Tier.Key())
	}
	return fmt.Sprintf("%s: %s", label, PackageLabel(c.Tier.Key(), c.Format))
}
