package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveText(t *testing.T) {
	data := map[string]any{
		"guestBracket": "50–120",
		"accessories":  []any{"Requisiten", "Hintergrund"},
	}
	for scenario, tc := range map[string]struct {
		in   string
		want string
	}{
		"no tokens":      {in: "Alles klar.", want: "Alles klar."},
		"single token":   {in: "Für {$.guestBracket} Gäste", want: "Für 50–120 Gäste"},
		"list token":     {in: "Zubehör: {$.accessories}", want: "Zubehör: Requisiten, Hintergrund"},
		"missing path":   {in: "Event: {$.eventType}!", want: "Event: !"},
		"plain braces":   {in: "{not a path} {$.guestBracket}", want: "{not a path} 50–120"},
		"repeated token": {in: "{$.guestBracket}/{$.guestBracket}", want: "50–120/50–120"},
	} {
		t.Run(scenario, func(t *testing.T) {
			require.Equal(t, tc.want, ResolveText(data, tc.in))
		})
	}
}
