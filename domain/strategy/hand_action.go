package strategy

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// HandAction is the reference ("solver") truth for a single hand: either a
// pure action played at full frequency, or a blend of actions with relative
// 0-100 weights. The zero value is a pure black hand.
type HandAction struct {
	pure  Action
	blend map[Action]int
}

// Pure creates a HandAction played at full frequency.
func Pure(a Action) HandAction {
	return HandAction{pure: a}
}

// Blend creates a mixed HandAction from relative 0-100 weights.
// Non-positive entries and the black sentinel are stripped, so two blends
// that differ only in zero-weight components compare equal. Weights do not
// need to sum to 100; they are normalized at scoring time.
func Blend(weights map[Action]int) HandAction {
	b := make(map[Action]int, len(weights))
	for _, a := range Order {
		if w := weights[a]; w > 0 {
			b[a] = w
		}
	}
	return HandAction{blend: b}
}

// IsPure reports whether the hand plays a single action at full frequency.
func (h HandAction) IsPure() bool {
	return h.blend == nil
}

// IsBlack reports whether the hand is excluded from hero's range.
func (h HandAction) IsBlack() bool {
	return h.blend == nil && (h.pure == ActionBlack || h.pure == "")
}

// Primary returns the dominant action: the action itself for a pure hand,
// the highest-weighted component for a blend. Exact ties go to the earlier
// action in Order.
func (h HandAction) Primary() Action {
	if h.IsPure() {
		return h.pure
	}
	best := Order[0]
	bestWeight := h.blend[best]
	for _, a := range Order[1:] {
		if h.blend[a] > bestWeight {
			best = a
			bestWeight = h.blend[a]
		}
	}
	return best
}

// Signature returns the present components of a blend ordered by Order,
// or nil for a pure hand. "raise-fold" style signatures are derived from it.
func (h HandAction) Signature() []Action {
	if h.IsPure() {
		return nil
	}
	var sig []Action
	for _, a := range Order {
		if h.blend[a] > 0 {
			sig = append(sig, a)
		}
	}
	return sig
}

// SignatureString returns the blend signature as "raise-fold", or "" for a
// pure hand.
func (h HandAction) SignatureString() string {
	sig := h.Signature()
	if sig == nil {
		return ""
	}
	parts := make([]string, len(sig))
	for i, a := range sig {
		parts[i] = string(a)
	}
	return strings.Join(parts, "-")
}

// Distribution converts the hand to a weight map over actions: {a: 1} for a
// pure hand, weight/100 per component for a blend. Black hands yield an
// empty distribution. The scorer re-normalizes defensively, so callers may
// pass non-normalized blends straight through.
func (h HandAction) Distribution() map[Action]float64 {
	dist := make(map[Action]float64, len(h.blend)+1)
	if h.IsPure() {
		if !h.IsBlack() {
			dist[h.pure] = 1.0
		}
		return dist
	}
	for a, w := range h.blend {
		dist[a] = float64(w) / 100.0
	}
	return dist
}

// Equal reports structural equality: pure hands compare by action name,
// blends by deep weight equality, and a pure hand never equals a blend.
func (h HandAction) Equal(other HandAction) bool {
	if h.IsPure() != other.IsPure() {
		return false
	}
	if h.IsPure() {
		return h.pure == other.pure
	}
	return maps.Equal(h.blend, other.blend)
}

// String returns "raise" for pure hands and "raise:70 call:30" for blends,
// components ordered by descending weight.
func (h HandAction) String() string {
	if h.IsPure() {
		return string(h.pure)
	}
	sig := h.Signature()
	sort.SliceStable(sig, func(i, j int) bool {
		return h.blend[sig[i]] > h.blend[sig[j]]
	})
	parts := make([]string, len(sig))
	for i, a := range sig {
		parts[i] = fmt.Sprintf("%s:%d", a, h.blend[a])
	}
	return strings.Join(parts, " ")
}
