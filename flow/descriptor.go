package flow

import "github.com/mohitkumar/fotoflow/model"

// StepDescriptor is what the presentation layer renders for the active step.
// It is built fresh from the stored selection on every call, so going back to
// a step shows the answers given before.
type StepDescriptor struct {
	Id             string         `json:"id"`
	Kind           model.StepKind `json:"kind"`
	Title          string         `json:"title"`
	Ask            string         `json:"ask"`
	Options        []Option       `json:"options"`
	Multi          bool           `json:"multi"`
	Required       bool           `json:"required"`
	SubStep        *SubStep       `json:"subStep,omitempty"`
	Help           string         `json:"help,omitempty"`
	Recommendation string         `json:"recommendation,omitempty"`
	// Notice acknowledges the answer that led here.
	Notice    string `json:"notice,omitempty"`
	Terminal  bool   `json:"terminal"`
	Completed bool   `json:"completed"`
}

type Option struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Hint     string `json:"hint,omitempty"`
	Selected bool   `json:"selected"`
}

type SubStep struct {
	Index  int    `json:"index"`
	Count  int    `json:"count"`
	Key    string `json:"key"`
	Prompt string `json:"prompt"`
}

func (d StepDescriptor) SelectedValues() []string {
	var out []string
	for _, o := range d.Options {
		if o.Selected {
			out = append(out, o.Value)
		}
	}
	return out
}
