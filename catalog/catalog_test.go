package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mohitkumar/fotoflow/model"
	"github.com/stretchr/testify/require"
)

func builtin(t *testing.T, name string) *Catalog {
	t.Helper()
	def, err := LoadBuiltin(name)
	require.NoError(t, err)
	cat, err := New(*def)
	require.NoError(t, err)
	return cat
}

func TestBuiltinCatalogsLoad(t *testing.T) {
	for _, name := range []string{"fobi", "fobi-chat"} {
		t.Run(name, func(t *testing.T) {
			cat := builtin(t, name)
			require.Equal(t, name, cat.Name)
			require.Equal(t, model.STEP_KIND_SUMMARY, cat.StepAt(cat.Len()-1).GetKind())
			require.True(t, cat.DeclaresAccessory("Requisiten"))
			require.True(t, cat.DeclaresPackage(model.PackageKey{Size: 800, Variant: model.VARIANT_DUAL_PRINTER}))
		})
	}
}

func TestStepLookup(t *testing.T) {
	cat := builtin(t, "fobi")
	s, i, err := cat.Step("format")
	require.NoError(t, err)
	require.Equal(t, model.STEP_KIND_FORMAT, s.GetKind())
	require.Equal(t, s, cat.StepAt(i))

	_, _, err = cat.Step("colour")
	require.True(t, errors.Is(err, model.ErrStepNotFound))

	summary, ok := cat.StepOfKind(model.STEP_KIND_SUMMARY)
	require.True(t, ok)
	require.Equal(t, summary, cat.StepAt(cat.Len()-1))

	_, ok = builtin(t, "fobi-chat").StepOfKind(model.STEP_KIND_CONSENT)
	require.False(t, ok)
}

func TestNormalizeEventKey(t *testing.T) {
	cat := builtin(t, "fobi")
	for _, tc := range []struct {
		label string
		want  string
	}{
		{"💍 Hochzeit", "Hochzeit"},
		{"Hochzeit", "Hochzeit"},
		{"🎉 Geburtstag", "Geburtstag"},
		{"🤝 Externes Kundenevent (z. B. Messe, Promotion)", "Externes Kundenevent"},
		{"Messe (z. B. Recruitingday)", "Externes Kundenevent"},
		{"Internes Firmenevent", "Internes Mitarbeiterevent"},
		{"🎪 Öffentliche Veranstaltung / Party", "Öffentliche Veranstaltung"},
		{"  🎓 ABSCHLUSSBALL ", "Abschlussball"},
		{"Sonstiges", "Sonstiges"},
		{"🌈 Sommerfest", "Sommerfest"},
		{"", ""},
	} {
		require.Equal(t, tc.want, cat.NormalizeEventKey(tc.label), tc.label)
	}
}

func TestRecommend(t *testing.T) {
	cat := builtin(t, "fobi")
	for scenario, tc := range map[string]struct {
		event   string
		bracket string
		want    string
	}{
		"no bracket": {
			event: "Hochzeit",
			want:  "",
		},
		"bracket default": {
			event:   "Hochzeit",
			bracket: "50–120",
			want:    "Bei Feiern mit 50 bis 120 Gästen empfehle ich das Printpaket mit 400 Prints im Postkartenformat.",
		},
		"event override resolves tokens": {
			event:   "Messe (z. B. Recruitingday)",
			bracket: "120–250",
			want:    "Für euer Kundenevent mit 120–250 Gästen empfehle ich zwei Drucksysteme – abgerechnet wird nach Verbrauch in 100er-Schritten.",
		},
		"override missing for bracket falls back": {
			event:   "Abschlussball",
			bracket: "bis 30",
			want:    "Bei kleinen Feiern mit bis zu 30 Gästen reicht in der Regel das kleinste Printpaket mit 100 Prints im Postkartenformat vollkommen aus.",
		},
		"unknown bracket": {
			event:   "Hochzeit",
			bracket: "tausend",
			want:    "",
		},
	} {
		t.Run(scenario, func(t *testing.T) {
			sel := model.NewSelection()
			sel.SetMode(model.MODE_DIGITAL_AND_PRINT)
			sel.SetEventType(tc.event)
			sel.SetGuestBracket(tc.bracket)
			require.Equal(t, tc.want, cat.Recommend(sel))
		})
	}
}

func TestLoadPrefersUserFile(t *testing.T) {
	dir := t.TempDir()
	def, err := LoadBuiltin("fobi")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "fobi.json"), []byte(`{"name":"fobi","currency":"CHF"}`), 0o644))

	user, err := Load("fobi", dir)
	require.NoError(t, err)
	require.Equal(t, "CHF", user.Currency)
	require.Equal(t, "EUR", def.Currency)

	fallback, err := Load("fobi-chat", dir)
	require.NoError(t, err)
	require.Equal(t, "fobi-chat", fallback.Name)

	_, err = Load("missing", dir)
	require.Error(t, err)

	require.Equal(t, []string{"fobi-chat", "fobi", "fobi"}, List(dir))
}

func TestCatalogService(t *testing.T) {
	svc := NewCatalogService(NewInMemoryStorage(), "")
	cat, err := svc.GetCatalog("fobi")
	require.NoError(t, err)
	again, err := svc.GetCatalog("fobi")
	require.NoError(t, err)
	require.Same(t, cat, again)

	stored, err := svc.GetCatalogStorage().GetCatalogDefinition("fobi")
	require.NoError(t, err)
	stored.Name = "fobi-eur"
	stored.Currency = "EUR"
	require.NoError(t, svc.RegisterCatalog(*stored))
	custom, err := svc.GetCatalog("fobi-eur")
	require.NoError(t, err)
	require.Equal(t, "fobi-eur", custom.Name)

	stored.Steps = nil
	require.Error(t, svc.RegisterCatalog(*stored))

	_, err = svc.GetCatalog("nope")
	require.Error(t, err)
}

type readOnlyStorage struct {
	*InMemoryStorage
}

var errReadOnly = errors.New("storage is read only")

func (readOnlyStorage) SaveCatalogDefinition(model.Catalog) error {
	return errReadOnly
}

func TestCatalogServiceStorageFailure(t *testing.T) {
	svc := NewCatalogService(readOnlyStorage{NewInMemoryStorage()}, "")
	_, err := svc.GetCatalog("fobi")
	require.True(t, errors.Is(err, errReadOnly))

	def, err := LoadBuiltin("fobi")
	require.NoError(t, err)
	require.True(t, errors.Is(svc.RegisterCatalog(*def), errReadOnly))
}
