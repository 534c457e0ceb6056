package checker

import "github.com/minitt-lang/minitt/internal/syntax"

// Gamma is the typing context Γ (spec §4.3): name to value-type,
// represented as a persistent cons-list exactly like syntax.Env so
// that extending Γ never mutates a shared ancestor (spec §5's
// no-mutation rule) — mirroring the original source's Cow<BTreeMap>
// without needing a copy-on-write map of our own.
type Gamma struct {
	name   string
	typ    *syntax.Value
	parent *Gamma
}

// Empty is the empty typing context.
var Empty *Gamma

// Lookup walks Γ outward from the most recent binding, returning the
// first match ("lookupG" in Mini-TT).
func (g *Gamma) Lookup(name string) (*syntax.Value, bool) {
	for e := g; e != nil; e = e.parent {
		if e.name == name {
			return e.typ, true
		}
	}
	return nil, false
}

func (g *Gamma) extend(name string, typ *syntax.Value) *Gamma {
	return &Gamma{name: name, typ: typ, parent: g}
}

// UpdateGamma extends gamma by binding every name in pattern to its
// corresponding component of typeValue, destructuring boundValue in
// lockstep to compute the dependent second-component types ("upG" in
// Mini-TT, spec §4.3.4 and the original source's update_gamma):
//
//   - Unit binds nothing.
//   - Var binds its one name directly to typeValue.
//   - Pair requires typeValue to be a Σ; it destructures boundValue
//     into its two parts, binds the first sub-pattern against the
//     domain, then binds the second sub-pattern against the Σ's
//     closure instantiated with the first part.
func UpdateGamma(gamma *Gamma, pattern syntax.Pattern, typeValue, boundValue *syntax.Value) (*Gamma, error) {
	switch p := pattern.(type) {
	case syntax.PatUnit:
		return gamma, nil
	case syntax.PatVar:
		return gamma.extend(p.Name, typeValue), nil
	case syntax.PatPair:
		if typeValue.Kind != syntax.KSigma {
			return nil, &PatternMismatchError{Pattern: pattern}
		}
		firstVal, secondVal := syntax.Destruct(boundValue)
		gamma, err := UpdateGamma(gamma, p.First, typeValue.Domain, firstVal)
		if err != nil {
			return nil, err
		}
		secondType := typeValue.Closure.Instantiate(firstVal)
		return UpdateGamma(gamma, p.Second, secondType, secondVal)
	default:
		return nil, &PatternMismatchError{Pattern: pattern}
	}
}
