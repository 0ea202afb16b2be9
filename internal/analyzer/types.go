package analyzer

import "go/types"

// InterfaceDef represents a discovered Go interface.
type InterfaceDef struct {
	Name       string
	PkgPath    string
	PkgName    string
	Methods    []MethodSig
	TypeObj    *types.Interface
	SourceFile string
}

func (i *InterfaceDef) Key() string { return i.PkgPath + "." + i.Name }

// TypeDef represents a discovered named, non-interface Go type.
type TypeDef struct {
	Name       string
	PkgPath    string
	PkgName    string
	IsStruct   bool
	Methods    []MethodSig
	TypeObj    *types.Named
	SourceFile string
	// Values are the exported package-level constants and variables of
	// exactly this type, e.g. the members of an enum.
	Values []string
}

func (t *TypeDef) Key() string { return t.PkgPath + "." + t.Name }

// MethodSig captures a method name and its signature string.
type MethodSig struct {
	Name      string
	Signature string
}

// Relation captures that a concrete type implements an interface.
type Relation struct {
	Type       *TypeDef
	Interface  *InterfaceDef
	ViaPointer bool // true if only *T (not T) satisfies the interface
}

// Holding captures that a struct keeps a value of an interface type in
// one of its fields. This is where a strategy or a wrapped component lives.
type Holding struct {
	Holder    *TypeDef
	Field     string
	Interface *InterfaceDef
}

// Result holds the complete analysis output.
type Result struct {
	Interfaces []InterfaceDef
	Types      []TypeDef
	Relations  []Relation
	Holdings   []Holding
}

// Implementers returns the types that implement iface, in result order.
func (r *Result) Implementers(iface *InterfaceDef) []*TypeDef {
	var out []*TypeDef
	for _, rel := range r.Relations {
		if rel.Interface.Key() == iface.Key() {
			out = append(out, rel.Type)
		}
	}
	return out
}

// Implements reports whether typ satisfies iface according to the result.
func (r *Result) Implements(typ *TypeDef, iface *InterfaceDef) bool {
	for _, rel := range r.Relations {
		if rel.Type.Key() == typ.Key() && rel.Interface.Key() == iface.Key() {
			return true
		}
	}
	return false
}

// AnalyzeOptions controls analysis behavior.
type AnalyzeOptions struct {
	Filter            string // package path prefix filter
	IncludeStdlib     bool
	IncludeUnexported bool
}
