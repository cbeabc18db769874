// Package precondition compiles the step preconditions of a catalog. Two forms
// are understood: jsonpath comparisons such as
//
//	{$.mode} == 'digital-and-print' AND {$.printFormat} != 'large'
//
// and, for anything that does not start with a brace, a JavaScript expression
// evaluated with $ bound to the selection.
package precondition

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dop251/goja"
	"github.com/oliveagle/jsonpath"
)

// Subject is what a precondition is evaluated against.
type Subject interface {
	AsMap() map[string]any
}

type Precondition interface {
	Holds(subject Subject) (bool, error)
	String() string
}

var Always Precondition = always{}

type always struct{}

func (always) Holds(Subject) (bool, error) { return true, nil }
func (always) String() string              { return "" }

func Compile(expr string) (Precondition, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Always, nil
	}
	if strings.HasPrefix(expr, "{") {
		node, err := compilePath(expr)
		if err != nil {
			return nil, err
		}
		return &pathCondition{expression: expr, root: node}, nil
	}
	return compileJs(expr)
}

// MustCompile is Compile for expressions known at build time.
func MustCompile(expr string) Precondition {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

type pathCondition struct {
	expression string
	root       node
}

func (p *pathCondition) Holds(subject Subject) (bool, error) {
	return p.root.eval(subject.AsMap()), nil
}

func (p *pathCondition) String() string {
	return p.expression
}

type node interface {
	eval(data map[string]any) bool
}

type orNode struct{ left, right node }
type andNode struct{ left, right node }

func (n orNode) eval(data map[string]any) bool  { return n.left.eval(data) || n.right.eval(data) }
func (n andNode) eval(data map[string]any) bool { return n.left.eval(data) && n.right.eval(data) }

type compareNode struct {
	path    *jsonpath.Compiled
	op      string
	literal string
}

func (n compareNode) eval(data map[string]any) bool {
	value := lookup(n.path, data)
	switch n.op {
	case "==":
		return value == n.literal
	case "!=":
		return value != n.literal
	default:
		return value != "" && value != "false" && value != "[]"
	}
}

func lookup(path *jsonpath.Compiled, data map[string]any) string {
	value, err := path.Lookup(data)
	if err != nil || value == nil {
		return ""
	}
	if list, ok := value.([]any); ok {
		if len(list) == 0 {
			return "[]"
		}
	}
	return fmt.Sprintf("%v", value)
}

// OR binds weaker than AND.
func compilePath(expr string) (node, error) {
	expr = strings.TrimSpace(expr)
	if idx := indexUnquoted(expr, " OR "); idx != -1 {
		left, err := compilePath(expr[:idx])
		if err != nil {
			return nil, err
		}
		right, err := compilePath(expr[idx+4:])
		if err != nil {
			return nil, err
		}
		return orNode{left: left, right: right}, nil
	}
	if idx := indexUnquoted(expr, " AND "); idx != -1 {
		left, err := compilePath(expr[:idx])
		if err != nil {
			return nil, err
		}
		right, err := compilePath(expr[idx+5:])
		if err != nil {
			return nil, err
		}
		return andNode{left: left, right: right}, nil
	}
	return compileCompare(expr)
}

// indexUnquoted is strings.Index that ignores matches inside quoted literals.
func indexUnquoted(expr, sep string) int {
	var quote byte
	for i := 0; i < len(expr); i++ {
		switch ch := expr[i]; {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"':
			quote = ch
		case strings.HasPrefix(expr[i:], sep):
			return i
		}
	}
	return -1
}

func compileCompare(expr string) (node, error) {
	if !strings.HasPrefix(expr, "{") {
		return nil, fmt.Errorf("precondition %q: path should be enclosed in {}", expr)
	}
	end := strings.Index(expr, "}")
	if end < 0 {
		return nil, fmt.Errorf("precondition %q: path should be enclosed in {}", expr)
	}
	path := strings.TrimSpace(expr[1:end])
	if !strings.HasPrefix(path, "$") {
		return nil, fmt.Errorf("precondition %q: path should start with $", expr)
	}
	compiled, err := jsonpath.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("precondition %q: should be a valid jsonpath expression: %w", expr, err)
	}
	rest := strings.TrimSpace(expr[end+1:])
	if rest == "" {
		return compareNode{path: compiled}, nil
	}
	for _, op := range []string{"==", "!="} {
		if strings.HasPrefix(rest, op) {
			literal := strings.TrimSpace(rest[len(op):])
			literal = strings.Trim(literal, "'\"")
			return compareNode{path: compiled, op: op, literal: literal}, nil
		}
	}
	return nil, fmt.Errorf("precondition %q: unsupported operator in %q", expr, rest)
}

type jsCondition struct {
	expression string
	program    *goja.Program
}

func compileJs(expr string) (Precondition, error) {
	program, err := goja.Compile("precondition", "("+expr+")", true)
	if err != nil {
		return nil, fmt.Errorf("precondition %q: invalid javascript: %w", expr, err)
	}
	return &jsCondition{expression: expr, program: program}, nil
}

func (j *jsCondition) Holds(subject Subject) (bool, error) {
	data, err := json.Marshal(subject.AsMap())
	if err != nil {
		return false, err
	}
	vm := goja.New()
	if _, err := vm.RunString(fmt.Sprintf("var $ = %s;", data)); err != nil {
		return false, fmt.Errorf("error binding selection: %w", err)
	}
	val, err := vm.RunProgram(j.program)
	if err != nil {
		return false, fmt.Errorf("error executing javascript %w", err)
	}
	return val.ToBoolean(), nil
}

func (j *jsCondition) String() string {
	return j.expression
}
