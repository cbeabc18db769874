package pricing

import (
	"testing"

	"github.com/mohitkumar/fotoflow/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func table() model.PriceTableDef {
	return model.PriceTableDef{
		Packages: []model.PackagePriceDef{
			{Size: 800, Amount: decimal.NewFromInt(250)},
			{Size: 100, Amount: decimal.NewFromInt(70)},
			{Size: 400, Amount: decimal.NewFromInt(150)},
			{Size: 200, Amount: decimal.NewFromInt(100)},
			{Size: 800, Variant: model.VARIANT_DUAL_PRINTER, Amount: decimal.NewFromInt(280)},
		},
		StripMinimum: 200,
	}
}

func TestConvertPackage(t *testing.T) {
	for scenario, tc := range map[string]struct {
		desired  string
		format   model.PrintFormat
		tier     int
		upgraded bool
	}{
		"postcard exact":             {desired: "400", format: model.FORMAT_POSTCARD, tier: 400},
		"postcard rounds up":         {desired: "150", format: model.FORMAT_POSTCARD, tier: 200},
		"strip halves":               {desired: "800", format: model.FORMAT_STRIP, tier: 400},
		"strip odd count":            {desired: "401", format: model.FORMAT_STRIP, tier: 400},
		"strip below minimum":        {desired: "100", format: model.FORMAT_STRIP, tier: 200, upgraded: true},
		"strip rounds to minimum":    {desired: "300", format: model.FORMAT_STRIP, tier: 200},
		"large doubles":              {desired: "400", format: model.FORMAT_LARGE, tier: 800},
		"dual takes postcard":        {desired: "400", format: model.FORMAT_DUAL, tier: 400},
		"dual takes strip minimum":   {desired: "100", format: model.FORMAT_DUAL, tier: 200, upgraded: true},
		"dual printer keeps variant": {desired: "800/dual-printer", format: model.FORMAT_STRIP, tier: 800},
	} {
		t.Run(scenario, func(t *testing.T) {
			key, err := model.ParsePackageKey(tc.desired)
			require.NoError(t, err)
			conv, err := ConvertPackage(key, tc.format, table())
			require.NoError(t, err)
			require.Equal(t, tc.tier, conv.Tier.Size)
			require.Equal(t, key.Variant, conv.Tier.Variant)
			require.Equal(t, tc.upgraded, conv.Upgraded)
		})
	}
}

func TestConvertPackageMissingTier(t *testing.T) {
	_, err := ConvertPackage(model.PackageKey{Size: 800, Variant: model.VARIANT_DUAL_PRINTER}, model.FORMAT_LARGE, table())
	require.Equal(t, model.MissingPriceEntryError{Key: "package 1600/dual-printer"}, err)

	_, err = ConvertPackage(model.PackageKey{Size: 900}, model.FORMAT_POSTCARD, table())
	require.Error(t, err)
}

func TestStripConversionNeverUnderProvisions(t *testing.T) {
	for n := 1; n <= 1600; n++ {
		conv, err := ConvertPackage(model.PackageKey{Size: n}, model.FORMAT_STRIP, table())
		require.NoError(t, err)
		require.GreaterOrEqual(t, conv.Tier.Size*2, n)
		require.GreaterOrEqual(t, conv.Tier.Size, table().StripMinimum)
	}
}

func TestPackageLabel(t *testing.T) {
	for _, tc := range []struct {
		key    model.PackageKey
		format model.PrintFormat
		want   string
	}{
		{model.PackageKey{Size: 200}, model.FORMAT_POSTCARD, "200 Postkarten"},
		{model.PackageKey{Size: 200}, model.FORMAT_STRIP, "400 Fotostreifen"},
		{model.PackageKey{Size: 200}, model.FORMAT_LARGE, "100 Großbilder"},
		{model.PackageKey{Size: 400}, model.FORMAT_DUAL, "400 Postkarten oder 800 Fotostreifen"},
		{model.PackageKey{Size: 800, Variant: model.VARIANT_DUAL_PRINTER}, model.FORMAT_STRIP, "1600 Fotostreifen mit 2 Drucksystemen"},
	} {
		require.Equal(t, tc.want, PackageLabel(tc.key, tc.format))
	}
}

func TestConversionDescribe(t *testing.T) {
	conv, err := ConvertPackage(model.PackageKey{Size: 100}, model.FORMAT_STRIP, table())
	require.NoError(t, err)
	require.Equal(t, "Printpaket 200: 400 Fotostreifen", conv.Describe())

	labelled := table()
	labelled.Packages[4].Label = "Printpaket 802 (2 Drucksysteme)"
	conv, err = ConvertPackage(model.PackageKey{Size: 800, Variant: model.VARIANT_DUAL_PRINTER}, model.FORMAT_POSTCARD, labelled)
	require.NoError(t, err)
	require.Equal(t, "Printpaket 802 (2 Drucksysteme): 800 Postkarten mit 2 Drucksystemen", conv.Describe())
}
