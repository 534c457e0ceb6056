package normalform

import (
	"testing"

	"github.com/minitt-lang/minitt/internal/syntax"
)

func TestReadbackCanonicalForms(t *testing.T) {
	if got := Readback(syntax.VUnit(), 0); got.Kind != NUnit {
		t.Errorf("Readback(Unit) = %v, want NUnit", got.Kind)
	}
	if got := Readback(syntax.VType(2), 0); got.Kind != NType || got.Level != 2 {
		t.Errorf("Readback(Type(2)) = %v/%d, want NType/2", got.Kind, got.Level)
	}
}

func TestReadbackLambdaIsAlphaInvariant(t *testing.T) {
	// Two differently-named but structurally identical identity
	// closures must read back to byte-for-byte identical normal forms
	// (spec's α-invariance-via-depth property): binders are recorded by
	// the depth they're introduced at, not by a captured name.
	idA := syntax.VLambda(syntax.CloAbstraction(syntax.PatVar{Name: "a"}, nil, syntax.Var{Name: "a"}, syntax.Nil))
	idB := syntax.VLambda(syntax.CloAbstraction(syntax.PatVar{Name: "zzz"}, nil, syntax.Var{Name: "zzz"}, syntax.Nil))

	if !Equal(Readback(idA, 0), Readback(idB, 0)) {
		t.Fatalf("two alpha-equivalent identity lambdas read back to different normal forms")
	}
}

func TestReadbackNeutralGenerated(t *testing.T) {
	v := syntax.VNeutral(syntax.NGen(3))
	got := Readback(v, 0)
	if got.Kind != NNeutral || got.Neutral.Kind != NGenerated || got.Neutral.Generated != 3 {
		t.Fatalf("Readback(Gen(3)) = %+v, want NNeutral/NGenerated/3", got)
	}
}

func TestReadbackEnvFrames(t *testing.T) {
	env := syntax.UpVar(syntax.Nil, syntax.PatVar{Name: "x"}, syntax.VUnit())
	got := ReadbackEnv(env, 0)
	if got.Kind != EUpVar || got.Value.Kind != NUnit {
		t.Fatalf("ReadbackEnv(UpVar) = %+v, want EUpVar wrapping NUnit", got)
	}
	if ReadbackEnv(syntax.Nil, 0).Kind != ENil {
		t.Fatalf("ReadbackEnv(Nil) did not stay ENil")
	}
}
