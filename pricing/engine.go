package pricing

import (
	"errors"
	"fmt"

	"github.com/mohitkumar/fotoflow/catalog"
	"github.com/mohitkumar/fotoflow/logger"
	"github.com/mohitkumar/fotoflow/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	LINE_KEY_BASE            = "base"
	LINE_KEY_PACKAGE         = "package"
	LINE_KEY_PACKAGE_MINIMUM = "package-minimum"
	LINE_KEY_DISCLOSURE      = "disclosure"
	LINE_KEY_ACCESSORY       = "accessory:"
	LINE_KEY_SURCHARGE       = "surcharge:"
)

// Price builds the quote for sel against the price table of cat. It has no side
// effects beyond logging configuration gaps, so it may be called on every
// change. Only selections the catalog can not represent fail; gaps in the
// price table become warning lines.
func Price(sel *model.Selection, cat *catalog.Catalog) (*model.Quote, error) {
	if err := check(sel, cat); err != nil {
		return nil, err
	}
	table := cat.Pricing()
	q := &model.Quote{Currency: cat.Currency}

	q.Lines = append(q.Lines, model.LineItem{
		Key:    LINE_KEY_BASE,
		Label:  table.Base.Label,
		Amount: table.Base.Amount,
		Kind:   model.LINE_PRICED,
	})
	if sel.IsPrint() {
		q.Lines = append(q.Lines, packageLines(sel, table)...)
		if sel.PrintFormat() == model.FORMAT_DUAL {
			q.Lines = append(q.Lines, surchargeLine(model.SURCHARGE_DUAL_FORMAT, table))
		}
	}
	q.Lines = append(q.Lines, accessoryLines(sel, table)...)
	if sel.IsPrint() {
		q.Lines = append(q.Lines, disclosureLines(cat.NormalizeEventKey(sel.EventType()), table)...)
	}

	total := decimal.Zero
	for _, l := range q.Lines {
		if l.Kind.Counted() {
			total = total.Add(l.Amount)
		}
	}
	q.Total = total
	return q, nil
}

func check(sel *model.Selection, cat *catalog.Catalog) error {
	if sel.Mode() != "" && !sel.Mode().Valid() {
		return model.InvalidSelectionError{Field: "mode", Value: string(sel.Mode())}
	}
	if sel.IsPrint() {
		if sel.PrintFormat() != "" && !sel.PrintFormat().Valid() {
			return model.InvalidSelectionError{Field: "printFormat", Value: string(sel.PrintFormat())}
		}
		if key, ok := sel.PrintPackage(); ok && !cat.DeclaresPackage(key) {
			return model.InvalidSelectionError{Field: "printPackage", Value: key.String()}
		}
	}
	for _, acc := range sel.Accessories() {
		if !cat.DeclaresAccessory(acc) {
			return model.InvalidSelectionError{Field: "accessories", Value: acc}
		}
	}
	return nil
}

func packageLines(sel *model.Selection, table model.PriceTableDef) []model.LineItem {
	desired, ok := sel.PrintPackage()
	if !ok {
		return nil
	}
	format := sel.PrintFormat()
	if format == "" {
		format = model.FORMAT_POSTCARD
	}
	conv, err := ConvertPackage(desired, format, table)
	if err != nil {
		var missing model.MissingPriceEntryError
		if !errors.As(err, &missing) {
			missing = model.MissingPriceEntryError{Key: "package " + desired.String()}
		}
		return []model.LineItem{warningLine(LINE_KEY_PACKAGE, missing)}
	}
	lines := []model.LineItem{{
		Key:    LINE_KEY_PACKAGE,
		Label:  conv.Describe(),
		Amount: conv.Tier.Amount,
		Kind:   model.LINE_PRICED,
	}}
	if conv.Upgraded {
		lines = append(lines, model.LineItem{
			Key:    LINE_KEY_PACKAGE_MINIMUM,
			Label:  fmt.Sprintf("Fotostreifen gibt es ab Printpaket %d, dein Paket wurde entsprechend angepasst", table.StripMinimum),
			Amount: decimal.Zero,
			Kind:   model.LINE_NOTE,
		})
	}
	return lines
}

func surchargeLine(name string, table model.PriceTableDef) model.LineItem {
	entry, ok := table.Surcharges[name]
	if !ok {
		return warningLine(LINE_KEY_SURCHARGE+name, model.MissingPriceEntryError{Key: "surcharge " + name})
	}
	return model.LineItem{
		Key:    LINE_KEY_SURCHARGE + name,
		Label:  entry.Label,
		Amount: entry.Amount,
		Kind:   model.LINE_PRICED,
	}
}

// accessoryLines prices accessories in insertion order. The first bundle
// eligible accessory is included at zero.
func accessoryLines(sel *model.Selection, table model.PriceTableDef) []model.LineItem {
	eligible := make(map[string]bool, len(table.BundleEligible))
	for _, key := range table.BundleEligible {
		eligible[key] = true
	}
	prices := make(map[string]model.AccessoryPriceDef, len(table.Accessories))
	for _, acc := range table.Accessories {
		prices[acc.Key] = acc
	}
	var lines []model.LineItem
	included := false
	for _, key := range sel.Accessories() {
		entry, found := prices[key]
		label := entry.Label
		if label == "" {
			label = key
		}
		if eligible[key] && !included {
			included = true
			lines = append(lines, model.LineItem{
				Key:    LINE_KEY_ACCESSORY + key,
				Label:  label + " (inklusive)",
				Amount: decimal.Zero,
				Kind:   model.LINE_INCLUDED,
			})
			continue
		}
		if !found {
			lines = append(lines, warningLine(LINE_KEY_ACCESSORY+key, model.MissingPriceEntryError{Key: "accessory " + key}))
			continue
		}
		lines = append(lines, model.LineItem{
			Key:    LINE_KEY_ACCESSORY + key,
			Label:  label,
			Amount: entry.Amount,
			Kind:   model.LINE_PRICED,
		})
	}
	return lines
}

func disclosureLines(eventKey string, table model.PriceTableDef) []model.LineItem {
	if eventKey == "" {
		return nil
	}
	var lines []model.LineItem
	for _, d := range table.Disclosures {
		if d.EventKey == eventKey {
			lines = append(lines, model.LineItem{
				Key:    LINE_KEY_DISCLOSURE,
				Label:  d.Text,
				Amount: decimal.Zero,
				Kind:   model.LINE_INFO,
			})
		}
	}
	return lines
}

// warningLine keeps the quote renderable when the price table has a gap.
func warningLine(key string, missing model.MissingPriceEntryError) model.LineItem {
	logger.Warn("price table entry missing", zap.String("line", key), zap.String("entry", missing.Key))
	return model.LineItem{
		Key:    key,
		Label:  fmt.Sprintf("Preis auf Anfrage (%s)", missing.Key),
		Amount: decimal.Zero,
		Kind:   model.LINE_WARNING,
	}
}
