package model

import (
	"encoding/json"

	"golang.org/x/exp/slices"
)

type Mode string

const MODE_DIGITAL Mode = "digital"
const MODE_DIGITAL_AND_PRINT Mode = "digital-and-print"

func (m Mode) Valid() bool {
	return m == MODE_DIGITAL || m == MODE_DIGITAL_AND_PRINT
}

type PrintFormat string

const FORMAT_POSTCARD PrintFormat = "postcard"
const FORMAT_STRIP PrintFormat = "strip"
const FORMAT_DUAL PrintFormat = "dual"
const FORMAT_LARGE PrintFormat = "large"

func (f PrintFormat) Valid() bool {
	switch f {
	case FORMAT_POSTCARD, FORMAT_STRIP, FORMAT_DUAL, FORMAT_LARGE:
		return true
	}
	return false
}

// Selection is the mutable record of a session's answers. Every mutation goes
// through a setter so the version counter always moves with the content.
type Selection struct {
	mode                    Mode
	eventType               string
	guestBracket            string
	printFormat             PrintFormat
	printPackage            *PackageKey
	accessories             []string
	printRecommendationText string
	consented               bool
	version                 uint64
}

func NewSelection() *Selection {
	return &Selection{}
}

func (s *Selection) Mode() Mode                      { return s.mode }
func (s *Selection) EventType() string               { return s.eventType }
func (s *Selection) GuestBracket() string            { return s.guestBracket }
func (s *Selection) PrintFormat() PrintFormat        { return s.printFormat }
func (s *Selection) PrintRecommendationText() string { return s.printRecommendationText }
func (s *Selection) Consented() bool                 { return s.consented }
func (s *Selection) Version() uint64                 { return s.version }

func (s *Selection) PrintPackage() (PackageKey, bool) {
	if s.printPackage == nil {
		return PackageKey{}, false
	}
	return *s.printPackage, true
}

// Accessories returns a copy of the chosen accessory keys in insertion order.
func (s *Selection) Accessories() []string {
	return slices.Clone(s.accessories)
}

func (s *Selection) HasAccessory(key string) bool {
	return slices.Contains(s.accessories, key)
}

// IsPrint reports whether print fields are meaningful for this selection.
func (s *Selection) IsPrint() bool {
	return s.mode == MODE_DIGITAL_AND_PRINT
}

// SetMode stores the mode. Leaving digital-and-print drops every print-only
// answer; accessories survive.
func (s *Selection) SetMode(mode Mode) {
	s.mode = mode
	if mode != MODE_DIGITAL_AND_PRINT {
		s.guestBracket = ""
		s.printFormat = ""
		s.printPackage = nil
		s.printRecommendationText = ""
	}
	s.version++
}

func (s *Selection) SetEventType(eventType string) {
	s.eventType = eventType
	s.version++
}

func (s *Selection) SetGuestBracket(bracket string) {
	s.guestBracket = bracket
	s.version++
}

func (s *Selection) SetPrintFormat(format PrintFormat) {
	s.printFormat = format
	s.version++
}

func (s *Selection) SetPrintPackage(key PackageKey) {
	s.printPackage = &key
	s.version++
}

func (s *Selection) SetPrintRecommendationText(text string) {
	if s.printRecommendationText == text {
		return
	}
	s.printRecommendationText = text
	s.version++
}

func (s *Selection) SetConsented(consented bool) {
	s.consented = consented
	s.version++
}

// ToggleAccessory adds the key at the end when absent and removes it when
// present. It returns whether the key is selected afterwards.
func (s *Selection) ToggleAccessory(key string) bool {
	selected := !s.HasAccessory(key)
	s.SetAccessory(key, selected)
	return selected
}

// SetAccessory selects or deselects key. Selecting an already selected key keeps
// its original position.
func (s *Selection) SetAccessory(key string, selected bool) {
	idx := slices.Index(s.accessories, key)
	switch {
	case selected && idx < 0:
		s.accessories = append(s.accessories, key)
	case !selected && idx >= 0:
		s.accessories = slices.Delete(s.accessories, idx, idx+1)
	default:
		return
	}
	s.version++
}

// Reset empties every answer. The version keeps counting so cached quotes of the
// previous run never match.
func (s *Selection) Reset() {
	v := s.version
	*s = Selection{}
	s.version = v + 1
}

func (s *Selection) Clone() *Selection {
	c := *s
	c.accessories = slices.Clone(s.accessories)
	if s.printPackage != nil {
		p := *s.printPackage
		c.printPackage = &p
	}
	return &c
}

type selectionView struct {
	Mode                    Mode        `json:"mode"`
	EventType               string      `json:"eventType"`
	GuestBracket            string      `json:"guestBracket"`
	PrintFormat             PrintFormat `json:"printFormat"`
	PrintPackage            string      `json:"printPackage"`
	Accessories             []string    `json:"accessories"`
	PrintRecommendationText string      `json:"printRecommendationText"`
	Consented               bool        `json:"consented"`
}

func (s *Selection) view() selectionView {
	v := selectionView{
		Mode:                    s.mode,
		EventType:               s.eventType,
		GuestBracket:            s.guestBracket,
		PrintFormat:             s.printFormat,
		Accessories:             slices.Clone(s.accessories),
		PrintRecommendationText: s.printRecommendationText,
		Consented:               s.consented,
	}
	if v.Accessories == nil {
		v.Accessories = []string{}
	}
	if s.printPackage != nil {
		v.PrintPackage = s.printPackage.String()
	}
	return v
}

func (s *Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.view())
}

// AsMap returns the JSON view of the selection as generic data, the shape
// expression evaluators and text templates work on.
func (s *Selection) AsMap() map[string]any {
	v := s.view()
	accessories := make([]any, 0, len(v.Accessories))
	for _, a := range v.Accessories {
		accessories = append(accessories, a)
	}
	return map[string]any{
		"mode":                    string(v.Mode),
		"eventType":               v.EventType,
		"guestBracket":            v.GuestBracket,
		"printFormat":             string(v.PrintFormat),
		"printPackage":            v.PrintPackage,
		"accessories":             accessories,
		"printRecommendationText": v.PrintRecommendationText,
		"consented":               v.Consented,
	}
}
