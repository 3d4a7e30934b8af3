package game

import (
	"errors"
	"fmt"

	"colonists/result"
)

// Violation classifies why a rule rejected an action.
type Violation int

const (
	PhaseViolation Violation = iota + 1
	AuthorizationViolation
	EconomicViolation
	TopologicalViolation
	CardStateViolation
	UnrecognizedAction
	InvalidAction
)

var violationNames = map[Violation]string{
	PhaseViolation:         "phase",
	AuthorizationViolation: "authorization",
	EconomicViolation:      "economic",
	TopologicalViolation:   "topological",
	CardStateViolation:     "card_state",
	UnrecognizedAction:     "unrecognized_action",
	InvalidAction:          "invalid_action",
}

func (v Violation) String() string {
	if name, ok := violationNames[v]; ok {
		return name
	}
	return "unknown"
}

// RuleError is the failure payload of every rejected action. Error returns
// the reason exactly as it is shown to the player.
type RuleError struct {
	Kind   Violation
	Reason string
}

func (e *RuleError) Error() string {
	return e.Reason
}

// Is matches on the violation kind only.
func (e *RuleError) Is(target error) bool {
	t, ok := target.(*RuleError)
	if !ok {
		return false
	}
	return t.Reason == "" && t.Kind == e.Kind
}

// Sentinels for errors.Is checks against a kind.
var (
	ErrPhase         = &RuleError{Kind: PhaseViolation}
	ErrAuthorization = &RuleError{Kind: AuthorizationViolation}
	ErrEconomic      = &RuleError{Kind: EconomicViolation}
	ErrTopological   = &RuleError{Kind: TopologicalViolation}
	ErrCardState     = &RuleError{Kind: CardStateViolation}
	ErrUnrecognized  = &RuleError{Kind: UnrecognizedAction}
	ErrInvalid       = &RuleError{Kind: InvalidAction}
)

// KindOf returns the violation behind err, 0 when err is not a RuleError.
func KindOf(err error) Violation {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Kind
	}
	return 0
}

// NewViolation builds a RuleError with a formatted reason.
func NewViolation(kind Violation, format string, args ...any) *RuleError {
	return &RuleError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

func fail(kind Violation, format string, args ...any) result.Result[World] {
	return result.FailWith[World](NewViolation(kind, format, args...))
}
