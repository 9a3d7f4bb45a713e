package libcmd

import (
	"fmt"
	"strconv"
)

// Kind identifies what an [Option] is bound to.
type Kind int

const (
	KindBool Kind = iota + 1
	KindString
	KindInt
	KindFloat
	KindAction
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindAction:
		return "action"
	default:
		return "unknown"
	}
}

// ActionFunc is invoked when an action option is matched. It receives the command whose options
// are being parsed. The builtin help and license actions print and then exit.
type ActionFunc func(c *Command) error

// Option binds one or more command-line names to a caller-owned storage location or an action.
//
// Hands are the names shown in help output. AnonymousHands match exactly like Hands but are never
// rendered. Use the constructors [Bool], [String], [Int], [Float] and [Action] to build one.
type Option struct {
	// Hands are the displayed names, e.g. "-i" and "--input".
	Hands []string
	// AnonymousHands are additional names accepted on the command line but hidden from help.
	AnonymousHands []string
	// Description is shown next to the hands in help output.
	Description string

	value value
}

// value is implemented once per Kind.
type value interface {
	kind() Kind
	// set stores text. Bool values ignore it; action values never get here.
	set(text string) error
	get() any
	String() string
}

// Bool returns an option that sets *p to true when any of its names appears.
func Bool(p *bool, hands []string, description string, anonymous ...string) *Option {
	if p == nil {
		panic("libcmd: Bool called with nil pointer")
	}
	return newOption(&boolValue{p}, hands, description, anonymous)
}

// String returns an option that stores the following token verbatim in *p.
func String(p *string, hands []string, description string, anonymous ...string) *Option {
	if p == nil {
		panic("libcmd: String called with nil pointer")
	}
	return newOption(&stringValue{p}, hands, description, anonymous)
}

// Int returns an option that parses the following token as a base 10 integer into *p.
func Int(p *int, hands []string, description string, anonymous ...string) *Option {
	if p == nil {
		panic("libcmd: Int called with nil pointer")
	}
	return newOption(&intValue{p}, hands, description, anonymous)
}

// Float returns an option that parses the following token as a float64 into *p.
func Float(p *float64, hands []string, description string, anonymous ...string) *Option {
	if p == nil {
		panic("libcmd: Float called with nil pointer")
	}
	return newOption(&floatValue{p}, hands, description, anonymous)
}

// Action returns an option that calls fn when any of its names appears. Actions never consume a
// following token.
func Action(fn ActionFunc, hands []string, description string, anonymous ...string) *Option {
	if fn == nil {
		panic("libcmd: Action called with nil function")
	}
	return newOption(&actionValue{fn}, hands, description, anonymous)
}

func newOption(v value, hands []string, description string, anonymous []string) *Option {
	return &Option{
		Hands:          hands,
		AnonymousHands: anonymous,
		Description:    description,
		value:          v,
	}
}

// Kind reports what the option is bound to.
func (o *Option) Kind() Kind {
	if o == nil || o.value == nil {
		return 0
	}
	return o.value.kind()
}

// Names returns the hands followed by the anonymous hands.
func (o *Option) Names() []string {
	names := make([]string, 0, len(o.Hands)+len(o.AnonymousHands))
	names = append(names, o.Hands...)
	return append(names, o.AnonymousHands...)
}

// IsFlag reports whether the option stands alone on the command line, i.e. it is a bool or an
// action.
func (o *Option) IsFlag() bool {
	k := o.Kind()
	return k == KindBool || k == KindAction
}

func (o *Option) run(c *Command) error {
	a, ok := o.value.(*actionValue)
	if !ok {
		return fmt.Errorf("option %v is not an action", o.Hands)
	}
	return a.fn(c)
}

type boolValue struct{ p *bool }

func (v *boolValue) kind() Kind { return KindBool }
func (v *boolValue) set(string) error {
	*v.p = true
	return nil
}
func (v *boolValue) get() any       { return *v.p }
func (v *boolValue) String() string { return strconv.FormatBool(*v.p) }

type stringValue struct{ p *string }

func (v *stringValue) kind() Kind { return KindString }
func (v *stringValue) set(text string) error {
	*v.p = text
	return nil
}
func (v *stringValue) get() any       { return *v.p }
func (v *stringValue) String() string { return *v.p }

type intValue struct{ p *int }

func (v *intValue) kind() Kind { return KindInt }
func (v *intValue) set(text string) error {
	n, err := parseInt(text)
	if err != nil {
		return err
	}
	*v.p = n
	return nil
}
func (v *intValue) get() any       { return *v.p }
func (v *intValue) String() string { return strconv.Itoa(*v.p) }

type floatValue struct{ p *float64 }

func (v *floatValue) kind() Kind { return KindFloat }
func (v *floatValue) set(text string) error {
	f, err := parseFloat(text)
	if err != nil {
		return err
	}
	*v.p = f
	return nil
}
func (v *floatValue) get() any       { return *v.p }
func (v *floatValue) String() string { return strconv.FormatFloat(*v.p, 'g', -1, 64) }

type actionValue struct{ fn ActionFunc }

func (v *actionValue) kind() Kind       { return KindAction }
func (v *actionValue) set(string) error { return nil }
func (v *actionValue) get() any         { return v.fn }
func (v *actionValue) String() string   { return "" }
