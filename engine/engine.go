// Package engine resolves actions to rules and folds them over a World.
package engine

import (
	"colonists/experiments/metrics"
	"colonists/game"
	"colonists/result"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	env     game.Env
	metrics metrics.Collector
}

type Option func(*Engine)

// WithRules replaces the standard rule table.
func WithRules(r game.Rules) Option {
	return func(e *Engine) {
		e.env.Rules = r
	}
}

// WithRandom sets the source of dice rolls, card draws and steals.
func WithRandom(r game.Random) Option {
	return func(e *Engine) {
		e.env.Rand = r
	}
}

// WithSeed makes dice rolls and card draws reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.env.Rand = game.NewRandom(seed)
	}
}

func WithMetrics(c metrics.Collector) Option {
	return func(e *Engine) {
		e.metrics = c
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.env.Rules == nil {
		e.env.Rules = game.NewStandardRules()
	}
	if e.env.Rand == nil {
		e.env.Rand = game.NewRandom(0)
	}
	if e.metrics == nil {
		e.metrics = metrics.NewDummyCollector()
	}
	return e
}

func (e *Engine) Rules() game.Rules {
	return e.env.Rules
}

func (e *Engine) Random() game.Random {
	return e.env.Rand
}

// RuleFor resolves the rule of a single action. Unknown discriminants fail
// with an unrecognized action.
func (e *Engine) RuleFor(a game.Action) result.Result[game.Rule] {
	if a == nil {
		return result.FailWith[game.Rule](game.NewViolation(game.UnrecognizedAction, "could not map an empty action"))
	}
	if !a.Type().Known() {
		return result.FailWith[game.Rule](game.NewViolation(game.UnrecognizedAction, "could not map action %q", a.Type()))
	}
	return result.Success(a.Rule(e.env))
}

// MapRules resolves a batch. Actions that cannot be resolved are returned as
// failures and never take part in the fold.
func (e *Engine) MapRules(actions []game.Action) ([]game.Rule, []error) {
	rules, _, _, failures := e.resolve(actions)
	return rules, failures
}

// resolve is MapRules that also returns the actions behind the rules and the
// ones it skipped.
func (e *Engine) resolve(actions []game.Action) (rules []game.Rule, resolved, skipped []game.Action, failures []error) {
	rules = make([]game.Rule, 0, len(actions))
	resolved = make([]game.Action, 0, len(actions))
	for _, a := range actions {
		r := e.RuleFor(a)
		if r.IsFailure() {
			log.Warn().Str("reason", r.Reason()).Msg("skipping action")
			skipped = append(skipped, a)
			failures = append(failures, r.Err())
			continue
		}
		rules = append(rules, r.Value())
		resolved = append(resolved, a)
	}
	return rules, resolved, skipped, failures
}

// Reduce applies the rules in order, each to the previous outcome.
func Reduce(start result.Result[game.World], rules ...game.Rule) result.Result[game.World] {
	acc := start
	for _, rule := range rules {
		acc = rule(acc)
	}
	return acc
}

// Apply runs a batch of actions against w. When none of them resolves, the
// first dispatch failure is returned.
func (e *Engine) Apply(w game.World, actions ...game.Action) result.Result[game.World] {
	rules, resolved, skipped, failures := e.resolve(actions)
	for _, a := range skipped {
		e.metrics.AddRejected(kindOf(a), game.UnrecognizedAction.String())
	}
	if len(rules) == 0 {
		if len(failures) > 0 {
			return result.FailWith[game.World](failures[0])
		}
		return result.Success(w)
	}
	out := Reduce(result.Success(w), rules...)
	e.record(resolved, out)
	return out
}

// record counts the actions that took part in the fold.
func (e *Engine) record(actions []game.Action, out result.Result[game.World]) {
	for _, a := range actions {
		if out.IsFailure() {
			e.metrics.AddRejected(kindOf(a), game.KindOf(out.Err()).String())
			continue
		}
		e.metrics.AddAccepted(kindOf(a))
		if a.Type() == game.EndTurnAction {
			e.metrics.AddRoll(int(out.Value().CurrentDie))
		}
	}
}

func kindOf(a game.Action) string {
	if a == nil {
		return "<nil>"
	}
	return string(a.Type())
}
