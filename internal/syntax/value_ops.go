package syntax

import "fmt"

// InvariantViolationError marks an evaluator "should not happen" path
// (spec §7, §9): an elimination applied to a value that a passing
// type-checker would never have let through. These are bugs, not user
// errors, so they carry a plain message and are meant to be raised as
// panics, matching the teacher's own fatal-on-impossible-shape
// handling in evaluator.ApplyFunction and the original's panic!
// calls in eval.rs.
type InvariantViolationError struct {
	Message string
}

func (e *InvariantViolationError) Error() string { return e.Message }

func invariantf(format string, args ...any) {
	panic(&InvariantViolationError{Message: fmt.Sprintf(format, args...)})
}

// Fst runs .1 on a value ("vfst" in Mini-TT, spec §4.1.2): on a Pair,
// returns the first component; on a neutral, returns the neutral
// First projection; anything else is an invariant violation.
func Fst(v *Value) *Value {
	switch v.Kind {
	case KPair:
		return v.First
	case KNeutral:
		return VNeutral(NFst(v.Neutral))
	default:
		invariantf("cannot take first projection of: %v", v.Kind)
		return nil
	}
}

// Snd runs .2 on a value ("vsnd" in Mini-TT, spec §4.1.2).
func Snd(v *Value) *Value {
	switch v.Kind {
	case KPair:
		return v.Second
	case KNeutral:
		return VNeutral(NSnd(v.Neutral))
	default:
		invariantf("cannot take second projection of: %v", v.Kind)
		return nil
	}
}

// Destruct combines Fst and Snd in one call.
func Destruct(v *Value) (*Value, *Value) {
	switch v.Kind {
	case KPair:
		return v.First, v.Second
	case KNeutral:
		return VNeutral(NFst(v.Neutral)), VNeutral(NSnd(v.Neutral))
	default:
		invariantf("cannot destruct: %v", v.Kind)
		return nil, nil
	}
}

// Instantiate instantiates a closure with value (spec §4.1.4):
// Abstraction evaluates its body under the environment extended by
// pattern:=value; Value ignores the argument and returns the wrapped
// value; Choice tags value with its constructor name and recurses
// into the inner closure.
func (c *Closure) Instantiate(value *Value) *Value {
	switch c.Kind {
	case CAbstraction:
		return evalFn(c.Body, UpVar(c.Env, c.Param, value))
	case CValue:
		return c.Val
	case CChoice:
		return c.Inner.Instantiate(VConstructor(c.ConstructorName, value))
	default:
		invariantf("malformed closure")
		return nil
	}
}

// Apply applies a value to an argument (spec §4.1.3, "app" in
// Mini-TT):
//
//   - Lambda(closure)                  -> closure.instantiate(argument)
//   - Split(tree) on Constructor(c, p) -> tree[c].reduceToValue().apply(p)
//   - Split(tree) on Neutral(k)        -> Neutral(Split(tree, k))
//   - Neutral(k)                       -> Neutral(Application(k, argument))
//   - anything else is an invariant violation: a passing type-check
//     rules it out.
func Apply(fn, argument *Value) *Value {
	switch fn.Kind {
	case KLambda:
		return fn.Closure.Instantiate(argument)
	case KSplit:
		switch argument.Kind {
		case KConstructor:
			c, ok := fn.Cases.Get(argument.Name)
			if !ok {
				invariantf("cannot find constructor `%s`", argument.Name)
			}
			return Apply(c.ReduceToValue(), argument.Payload)
		case KNeutral:
			return VNeutral(NSplitOn(fn.Cases, argument.Neutral))
		default:
			invariantf("cannot apply a split to: %v", argument.Kind)
			return nil
		}
	case KNeutral:
		return VNeutral(NApp(fn.Neutral, argument))
	default:
		invariantf("cannot apply: %v", fn.Kind)
		return nil
	}
}
