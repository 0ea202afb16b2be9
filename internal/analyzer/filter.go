package analyzer

import (
	"strings"
	"unicode"
)

// Filter applies filtering options to the analysis result. Interfaces and
// types that no longer take part in a relation or holding are dropped.
func Filter(result *Result, opts AnalyzeOptions) *Result {
	filtered := &Result{}
	ifaceSet := make(map[string]bool)
	typeSet := make(map[string]bool)

	for _, rel := range result.Relations {
		if !keepInterface(rel.Interface, opts) || !keepType(rel.Type, opts) {
			continue
		}
		if !matchesPrefix(opts.Filter, rel.Interface.PkgPath, rel.Type.PkgPath) {
			continue
		}
		filtered.Relations = append(filtered.Relations, rel)
		ifaceSet[rel.Interface.Key()] = true
		typeSet[rel.Type.Key()] = true
	}

	// Holders are kept even when they implement nothing: a strategy
	// holder usually doesn't. Unexported field names don't matter here.
	for _, h := range result.Holdings {
		if !keepInterface(h.Interface, opts) || !keepType(h.Holder, opts) {
			continue
		}
		if !matchesPrefix(opts.Filter, h.Interface.PkgPath, h.Holder.PkgPath) {
			continue
		}
		filtered.Holdings = append(filtered.Holdings, h)
		ifaceSet[h.Interface.Key()] = true
		typeSet[h.Holder.Key()] = true
	}

	for i := range result.Interfaces {
		if ifaceSet[result.Interfaces[i].Key()] {
			filtered.Interfaces = append(filtered.Interfaces, result.Interfaces[i])
		}
	}
	for i := range result.Types {
		if typeSet[result.Types[i].Key()] {
			filtered.Types = append(filtered.Types, result.Types[i])
		}
	}
	return filtered
}

func keepInterface(iface *InterfaceDef, opts AnalyzeOptions) bool {
	if !opts.IncludeStdlib && isStdlib(iface.PkgPath) {
		return false
	}
	return opts.IncludeUnexported || !isUnexported(iface.Name)
}

func keepType(typ *TypeDef, opts AnalyzeOptions) bool {
	return opts.IncludeUnexported || !isUnexported(typ.Name)
}

func matchesPrefix(prefix string, paths ...string) bool {
	if prefix == "" {
		return true
	}
	for _, p := range paths {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

func isStdlib(pkgPath string) bool {
	// Stdlib packages have no dot in the first path element
	firstPart, _, _ := strings.Cut(pkgPath, "/")
	return !strings.Contains(firstPart, ".")
}

func isUnexported(name string) bool {
	if name == "" {
		return true
	}
	return unicode.IsLower(rune(name[0]))
}
