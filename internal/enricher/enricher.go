package enricher

import "github.com/olehluchkiv/gopatterns/internal/analyzer"

// PatternKind names a recognised design pattern.
type PatternKind string

const (
	Strategy  PatternKind = "Strategy"
	Decorator PatternKind = "Decorator"
)

// DetectedPattern is one occurrence of a pattern in the type graph.
type DetectedPattern struct {
	Kind        PatternKind
	Description string
	Holder      string   // type key of the struct holding the interface
	Field       string   // the interface-typed field
	Interface   string   // interface key
	Variants    []string // implementing type keys, or pkg.Value keys for enum-like types; holder excluded
}

// PatternDetector identifies design patterns in the interface graph.
type PatternDetector interface {
	Detect(result *analyzer.Result) []DetectedPattern
}

var _ PatternDetector = (*StructuralDetector)(nil)
