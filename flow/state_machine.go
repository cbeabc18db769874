package flow

import (
	"fmt"

	"github.com/mohitkumar/fotoflow/analytics"
	"github.com/mohitkumar/fotoflow/catalog"
	"github.com/mohitkumar/fotoflow/logger"
	"github.com/mohitkumar/fotoflow/model"
	"github.com/mohitkumar/fotoflow/pricing"
	"github.com/mohitkumar/fotoflow/step"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// FlowController walks a session through the steps of a catalog. Steps whose
// precondition fails are never presented, whichever direction the user moves.
// A controller is not safe for concurrent use; every session owns one.
type FlowController struct {
	SessionId string
	catalog   *catalog.Catalog
	selection *model.Selection
	collector analytics.SelectionDataCollector
	current   int
	sub       int
	notice    string
	completed bool
}

type ControllerOption func(f *FlowController)

func WithCollector(collector analytics.SelectionDataCollector) ControllerOption {
	return func(f *FlowController) {
		f.collector = collector
	}
}

func WithSessionId(id string) ControllerOption {
	return func(f *FlowController) {
		f.SessionId = id
	}
}

// NewFlowController positions a controller on the first presentable step of
// cat. A nil selection starts empty.
func NewFlowController(cat *catalog.Catalog, sel *model.Selection, opts ...ControllerOption) *FlowController {
	if sel == nil {
		sel = model.NewSelection()
	}
	f := &FlowController{
		catalog:   cat,
		selection: sel,
		collector: analytics.Noop,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.current = f.nextPresentable(-1)
	return f
}

func (f *FlowController) Selection() *model.Selection {
	return f.selection
}

func (f *FlowController) Catalog() *catalog.Catalog {
	return f.catalog
}

func (f *FlowController) Completed() bool {
	return f.completed
}

func (f *FlowController) CurrentStep() StepDescriptor {
	return f.describe(f.catalog.StepAt(f.current))
}

// Enter jumps to stepId. A step whose precondition fails is skipped in the
// direction of the jump, backwards when stepId lies before the active step.
func (f *FlowController) Enter(stepId string) (StepDescriptor, error) {
	_, idx, err := f.catalog.Step(stepId)
	if err != nil {
		return f.CurrentStep(), err
	}
	if !f.presentable(idx) {
		target := -1
		if idx < f.current {
			target = f.prevPresentable(idx)
		}
		if target < 0 {
			target = f.nextPresentable(idx)
		}
		idx = target
	}
	f.moveTo(idx, 0)
	return f.CurrentStep(), nil
}

// Choose applies value to the active step. Values outside the step's option
// domain mean the caller and the flow disagree and fail with
// InvalidChoiceError. A toggle on a multi-select step keeps the step active,
// every other answer advances.
func (f *FlowController) Choose(stepId string, value string) (StepDescriptor, error) {
	active := f.catalog.StepAt(f.current)
	if active.GetId() != stepId {
		return f.CurrentStep(), model.InvalidChoiceError{StepId: stepId, Value: value, Reason: fmt.Sprintf("active step is %s", active.GetId())}
	}
	if !inDomain(active.Domain(f.sub), value) {
		return f.CurrentStep(), model.InvalidChoiceError{StepId: stepId, Value: value, Reason: "value is not an option of the step"}
	}
	if err := active.Apply(f.selection, f.sub, value); err != nil {
		return f.CurrentStep(), model.InvalidChoiceError{StepId: stepId, Value: value, Reason: err.Error()}
	}
	logger.Debug("choice applied", zap.String("session", f.SessionId), zap.String("step", stepId),
		zap.String("value", value), zap.Uint64("version", f.selection.Version()))
	f.collector.RecordChoice(f.catalog.Name, f.SessionId, stepId, value, f.selection)

	notice := acknowledge(active, f.sub, value)
	if active.IsMulti() && len(active.SubSteps()) == 0 {
		f.notice = notice
		return f.CurrentStep(), nil
	}
	desc, err := f.Advance()
	if err != nil {
		return desc, err
	}
	f.notice = notice
	desc.Notice = notice
	return desc, nil
}

// Advance moves to the next sub-step or the next presentable step. On the
// summary step it only marks the flow completed.
func (f *FlowController) Advance() (StepDescriptor, error) {
	active := f.catalog.StepAt(f.current)
	if active.GetKind() == model.STEP_KIND_SUMMARY {
		if !f.completed {
			f.completed = true
			logger.Info("flow completed", zap.String("session", f.SessionId), zap.String("catalog", f.catalog.Name))
		}
		return f.CurrentStep(), nil
	}
	if active.IsRequired() && !active.Answered(f.selection) {
		return f.CurrentStep(), fmt.Errorf("%w: %s", model.ErrAnswerRequired, active.GetId())
	}
	if subs := active.SubSteps(); f.sub < len(subs)-1 {
		f.moveTo(f.current, f.sub+1)
		return f.CurrentStep(), nil
	}
	f.moveTo(f.nextPresentable(f.current), 0)
	return f.CurrentStep(), nil
}

// Back moves to the previous sub-step or the previous presentable step,
// landing on the last sub-step of a sub-stepped step. It is a no-op on the
// first presentable step.
func (f *FlowController) Back() (StepDescriptor, error) {
	if f.sub > 0 {
		f.moveTo(f.current, f.sub-1)
		return f.CurrentStep(), nil
	}
	prev := f.prevPresentable(f.current)
	if prev < 0 {
		f.moveTo(f.current, 0)
		return f.CurrentStep(), nil
	}
	sub := 0
	if n := len(f.catalog.StepAt(prev).SubSteps()); n > 0 {
		sub = n - 1
	}
	f.moveTo(prev, sub)
	return f.CurrentStep(), nil
}

// Reset empties the selection and returns to the first presentable step.
func (f *FlowController) Reset() StepDescriptor {
	f.selection.Reset()
	f.moveTo(f.nextPresentable(-1), 0)
	logger.Info("flow reset", zap.String("session", f.SessionId), zap.String("catalog", f.catalog.Name))
	return f.CurrentStep()
}

func (f *FlowController) moveTo(idx int, sub int) {
	f.current = idx
	f.sub = sub
	f.notice = ""
	f.completed = false
}

// presentable evaluates the precondition of the step at idx. A precondition
// that fails to evaluate hides the step.
func (f *FlowController) presentable(idx int) bool {
	s := f.catalog.StepAt(idx)
	ok, err := s.GetPrecondition().Holds(f.selection)
	if err != nil {
		logger.Error("error evaluating precondition, skipping step", zap.String("session", f.SessionId),
			zap.String("step", s.GetId()), zap.String("precondition", s.GetPrecondition().String()), zap.Error(err))
		return false
	}
	if !ok {
		logger.Debug("precondition false, skipping step", zap.String("session", f.SessionId), zap.String("step", s.GetId()))
	}
	return ok
}

// nextPresentable never runs past the summary step, which is last and always
// presentable.
func (f *FlowController) nextPresentable(from int) int {
	last := f.catalog.Len() - 1
	for i := from + 1; i < last; i++ {
		if f.presentable(i) {
			return i
		}
	}
	return last
}

func (f *FlowController) prevPresentable(from int) int {
	for i := from - 1; i >= 0; i-- {
		if f.presentable(i) {
			return i
		}
	}
	return -1
}

func (f *FlowController) describe(s step.Step) StepDescriptor {
	desc := StepDescriptor{
		Id:        s.GetId(),
		Kind:      s.GetKind(),
		Title:     s.GetTitle(),
		Ask:       s.GetAsk(),
		Multi:     s.IsMulti(),
		Required:  s.IsRequired(),
		Notice:    f.notice,
		Terminal:  s.GetKind() == model.STEP_KIND_SUMMARY,
		Completed: f.completed,
	}
	if subs := s.SubSteps(); len(subs) > 0 {
		sub := subs[f.sub]
		desc.SubStep = &SubStep{Index: f.sub, Count: len(subs), Key: sub.Key, Prompt: sub.Say}
	}
	selected := s.Selected(f.selection, f.sub)
	for _, opt := range s.Domain(f.sub) {
		o := Option{
			Label:    opt.Label,
			Value:    opt.Key(),
			Selected: slices.Contains(selected, opt.Key()),
		}
		if s.GetKind() == model.STEP_KIND_PRINT_PACKAGE {
			o.Hint = f.packageHint(opt.Key())
		}
		if o.Selected && desc.Help == "" {
			desc.Help = s.GetHelp(opt.Key())
		}
		desc.Options = append(desc.Options, o)
	}
	switch s.GetKind() {
	case model.STEP_KIND_GUESTS, model.STEP_KIND_PRINT_PACKAGE:
		desc.Recommendation = f.selection.PrintRecommendationText()
	}
	return desc
}

func (f *FlowController) packageHint(value string) string {
	key, err := model.ParsePackageKey(value)
	if err != nil {
		return ""
	}
	format := f.selection.PrintFormat()
	if format == "" {
		format = model.FORMAT_POSTCARD
	}
	conv, err := pricing.ConvertPackage(key, format, f.catalog.Pricing())
	if err != nil {
		return ""
	}
	return conv.Describe()
}

// acknowledge returns the text confirming an answer: the confirmation of a
// yes/no sub-step or the help text of the chosen option.
func acknowledge(s step.Step, sub int, value string) string {
	if subs := s.SubSteps(); len(subs) > 0 {
		if value == step.ANSWER_YES {
			return subs[sub].ConfirmYes
		}
		return subs[sub].ConfirmNo
	}
	return s.GetHelp(value)
}

func inDomain(domain []model.OptionDef, value string) bool {
	for _, opt := range domain {
		if opt.Key() == value {
			return true
		}
	}
	return false
}
