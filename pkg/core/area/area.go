// Package area declares the creative areas the generation service knows
// about and, per area, the field schema and document skeleton used by the
// prompt composers. The schema evolved across deployments; each variant is
// an explicit, reviewed structure rather than a loose map.
package area

import (
	"errors"
	"fmt"
)

// Area identifies one of the supported creative domains.
type Area string

const (
	BTL     Area = "btl"
	Trade   Area = "trade"
	Digital Area = "digital"
	Ideas   Area = "ideas"
)

// ErrInvalidArea is returned for area identifiers outside the supported set.
// Unknown areas are a caller error, never silently defaulted.
var ErrInvalidArea = errors.New("área no válida")

// All returns the supported areas in a stable order.
func All() []Area {
	return []Area{BTL, Trade, Digital, Ideas}
}

// Parse validates a caller-supplied area identifier.
func Parse(s string) (Area, error) {
	switch Area(s) {
	case BTL, Trade, Digital, Ideas:
		return Area(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidArea, s)
}

// Variant selects which generation of the per-area templates is active.
// Exactly one variant is active per deployment; it is a startup
// configuration choice, not a per-request parameter.
type Variant string

const (
	// VariantMinimal asks for disruptive proposals with no constraints.
	// Missing fields render as raw empty strings.
	VariantMinimal Variant = "minimal"
	// VariantContextual adds brand alignment fields (objective, target,
	// restrictions, budget) and asks every proposal to cross-reference
	// them. Missing fields render as an explicit "No especificado" marker.
	VariantContextual Variant = "contextual"
	// VariantAvoidance echoes each current/conventional field value and
	// instructs the model to produce the opposite.
	VariantAvoidance Variant = "avoidance"
)

// ParseVariant validates a deployment-configured variant name.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantMinimal, VariantContextual, VariantAvoidance:
		return Variant(s), nil
	}
	return "", fmt.Errorf("variante de prompt desconocida: %q", s)
}
