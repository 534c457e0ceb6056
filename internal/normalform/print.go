package normalform

import (
	"fmt"
	"strings"
)

// String renders a normal form as a compact s-expression-like string
// for REPL/CLI display (the `:normalize` driver command, spec §6.2).
// This is a presentation convenience, not a re-parsable surface
// syntax — Mini-TT's surface syntax lives with the parser, which is
// out of this core's scope.
func (n *NormalExpr) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case NUnit:
		return "Unit"
	case NOne:
		return "One"
	case NType:
		return fmt.Sprintf("Type(%d)", n.Level)
	case NLambda:
		return fmt.Sprintf("λx%d. %s", n.BinderDepth, n.Body)
	case NPi:
		return fmt.Sprintf("Π x%d:%s. %s", n.BinderDepth, n.Domain, n.Body)
	case NSigma:
		return fmt.Sprintf("Σ x%d:%s. %s", n.BinderDepth, n.Domain, n.Body)
	case NPair:
		return fmt.Sprintf("(%s, %s)", n.First, n.Second)
	case NConstructor:
		return fmt.Sprintf("%s %s", n.Name, n.Payload)
	case NSplit:
		return fmt.Sprintf("split { %s }", n.Cases.string())
	case NSum:
		return fmt.Sprintf("Sum { %s }", n.Cases.string())
	case NNeutral:
		return n.Neutral.String()
	default:
		return "<invalid>"
	}
}

func (t *CaseTree) string() string {
	parts := make([]string, 0, len(t.Names))
	for _, name := range t.Names {
		c, _ := t.Get(name)
		if c.HasValue {
			parts = append(parts, fmt.Sprintf("%s => %s", name, c.Value))
		} else {
			parts = append(parts, fmt.Sprintf("%s => <clause>", name))
		}
	}
	return strings.Join(parts, " | ")
}

func (n *Neutral) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case NGenerated:
		return fmt.Sprintf("x%d", n.Generated)
	case NApplication:
		return fmt.Sprintf("(%s %s)", n.Inner, n.Argument)
	case NFirst:
		return fmt.Sprintf("%s.1", n.Inner)
	case NSecond:
		return fmt.Sprintf("%s.2", n.Inner)
	case NSplitNeutral:
		return fmt.Sprintf("(split { %s } %s)", n.Cases.string(), n.Inner)
	default:
		return "<invalid>"
	}
}
