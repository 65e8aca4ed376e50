// core/classify/classify.go
package classify

// Type is the canonical predicted terpene-synthase class.
type Type string

const (
	Mono    Type = "mono"
	Sesq    Type = "sesq"
	Di      Type = "di"
	Tri     Type = "tri"
	Unknown Type = "unknown"
)

// NormalizeLabel maps a raw classifier model label to the canonical type.
// Only the four *_clustalw model names are recognized; everything else,
// including an empty label, is Unknown.
func NormalizeLabel(label string) Type {
	switch label {
	case "mono_clustalw":
		return Mono
	case "sesq_clustalw":
		return Sesq
	case "di_clustalw":
		return Di
	case "tri_clustalw":
		return Tri
	}
	return Unknown
}

// ParseType validates a canonical type token as written in candidate tables.
func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case Mono, Sesq, Di, Tri, Unknown:
		return Type(s), true
	}
	return Unknown, false
}
