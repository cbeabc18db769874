package catalog

import (
	"github.com/mohitkumar/fotoflow/model"
	"github.com/mohitkumar/fotoflow/util"
)

type recommender struct {
	normalizer *EventNormalizer
	def        model.RecommendationDef
}

// Recommend looks up the print recommendation for the selection's event and
// guest bracket: event specific override first, then the guest bracket
// default, then nothing.
func (r *recommender) Recommend(sel *model.Selection) string {
	bracket := sel.GuestBracket()
	if bracket == "" {
		return ""
	}
	text := ""
	eventKey := r.normalizer.Normalize(sel.EventType())
	if byGuests, ok := r.def.ByEvent[eventKey]; ok {
		text = byGuests[bracket]
	}
	if text == "" {
		text = r.def.ByGuests[bracket]
	}
	if text == "" {
		return ""
	}
	return util.ResolveText(sel.AsMap(), text)
}
