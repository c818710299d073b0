package strategy

import "testing"

func TestPrimaryPure(t *testing.T) {
	if got := Pure(ActionShove).Primary(); got != ActionShove {
		t.Fatalf("expected shove, got %s", got)
	}
}

func TestPrimaryBlendDominant(t *testing.T) {
	h := Blend(map[Action]int{ActionFold: 70, ActionCall: 30})
	if got := h.Primary(); got != ActionFold {
		t.Fatalf("expected fold, got %s", got)
	}
}

func TestPrimaryBlendTieBreak(t *testing.T) {
	h := Blend(map[Action]int{ActionRaise: 50, ActionFold: 50})
	if got := h.Primary(); got != ActionRaise {
		t.Fatalf("expected raise on tie, got %s", got)
	}

	h = Blend(map[Action]int{ActionCall: 50, ActionShove: 50})
	if got := h.Primary(); got != ActionCall {
		t.Fatalf("expected call on tie, got %s", got)
	}
}

func TestSignatureOrdering(t *testing.T) {
	h := Blend(map[Action]int{ActionFold: 80, ActionRaise: 20})
	sig := h.Signature()
	if len(sig) != 2 || sig[0] != ActionRaise || sig[1] != ActionFold {
		t.Fatalf("expected [raise fold], got %v", sig)
	}
	if got := h.SignatureString(); got != "raise-fold" {
		t.Fatalf("expected raise-fold, got %s", got)
	}
}

func TestSignaturePureIsNil(t *testing.T) {
	if sig := Pure(ActionCall).Signature(); sig != nil {
		t.Fatalf("expected nil signature, got %v", sig)
	}
	if s := Pure(ActionCall).SignatureString(); s != "" {
		t.Fatalf("expected empty signature string, got %s", s)
	}
}

func TestBlendStripsNonPositive(t *testing.T) {
	h := Blend(map[Action]int{ActionRaise: 100, ActionFold: 0, ActionCall: -5})
	if len(h.Signature()) != 1 {
		t.Fatalf("expected single component, got %v", h.Signature())
	}
	if !h.Equal(Blend(map[Action]int{ActionRaise: 100})) {
		t.Fatal("blends differing only in zero components must compare equal")
	}
}

func TestDistributionPure(t *testing.T) {
	dist := Pure(ActionRaise).Distribution()
	if len(dist) != 1 || dist[ActionRaise] != 1.0 {
		t.Fatalf("expected {raise: 1}, got %v", dist)
	}
}

func TestDistributionBlend(t *testing.T) {
	dist := Blend(map[Action]int{ActionRaise: 70, ActionCall: 30}).Distribution()
	if dist[ActionRaise] != 0.7 || dist[ActionCall] != 0.3 {
		t.Fatalf("unexpected distribution %v", dist)
	}
}

func TestDistributionBlack(t *testing.T) {
	if dist := Pure(ActionBlack).Distribution(); len(dist) != 0 {
		t.Fatalf("black must yield an empty distribution, got %v", dist)
	}
}

func TestEqualPureVsBlend(t *testing.T) {
	pure := Pure(ActionRaise)
	blend := Blend(map[Action]int{ActionRaise: 100})
	if pure.Equal(blend) || blend.Equal(pure) {
		t.Fatal("a pure hand must never equal a blend")
	}
}

func TestEqualBlends(t *testing.T) {
	a := Blend(map[Action]int{ActionRaise: 60, ActionFold: 40})
	b := Blend(map[Action]int{ActionFold: 40, ActionRaise: 60})
	if !a.Equal(b) {
		t.Fatal("expected equal blends")
	}
	c := Blend(map[Action]int{ActionRaise: 61, ActionFold: 39})
	if a.Equal(c) {
		t.Fatal("expected different blends to be unequal")
	}
}

func TestIsBlack(t *testing.T) {
	if !Pure(ActionBlack).IsBlack() {
		t.Fatal("pure black must report black")
	}
	var zero HandAction
	if !zero.IsBlack() {
		t.Fatal("zero value must report black")
	}
	if Pure(ActionFold).IsBlack() {
		t.Fatal("fold is not black")
	}
}

func TestStringBlendDescendingWeights(t *testing.T) {
	h := Blend(map[Action]int{ActionCall: 30, ActionRaise: 70})
	if got := h.String(); got != "raise:70 call:30" {
		t.Fatalf("expected raise:70 call:30, got %s", got)
	}
}
