package enricher

import (
	"fmt"
	"go/token"
	"sort"

	"github.com/olehluchkiv/gopatterns/internal/analyzer"
)

// StructuralDetector finds patterns from holdings and relations alone:
//
//   - Decorator: a type holds a field of interface I and implements I.
//   - Strategy: a type with methods holds a field of interface I, does not
//     implement it, and I has at least MinVariants variants.
//
// A variant is an implementing type or, for enum-like types, each of its
// exported package-level values. Method-less holders with an exported
// field are plain data and never count as strategy holders.
type StructuralDetector struct {
	MinVariants int
}

func NewStructuralDetector() *StructuralDetector {
	return &StructuralDetector{MinVariants: 2}
}

func (d *StructuralDetector) Detect(result *analyzer.Result) []DetectedPattern {
	var out []DetectedPattern
	for _, h := range result.Holdings {
		variants := variantsOf(result, h)

		p := DetectedPattern{
			Holder:    h.Holder.Key(),
			Field:     h.Field,
			Interface: h.Interface.Key(),
			Variants:  variants,
		}
		switch {
		case result.Implements(h.Holder, h.Interface):
			p.Kind = Decorator
			p.Description = fmt.Sprintf("%s wraps a %s in %s and is one itself", h.Holder.Name, h.Interface.Name, h.Field)
		case isPlainData(h):
			continue
		case len(variants) >= d.MinVariants:
			p.Kind = Strategy
			p.Description = fmt.Sprintf("%s delegates to a %s held in %s (%d variants)", h.Holder.Name, h.Interface.Name, h.Field, len(variants))
		default:
			continue
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		if out[i].Holder != out[j].Holder {
			return out[i].Holder < out[j].Holder
		}
		return out[i].Field < out[j].Field
	})
	return out
}

// variantsOf lists the implementations of the held interface, holder
// excluded, expanding enum-like types into their values.
func variantsOf(result *analyzer.Result, h analyzer.Holding) []string {
	var variants []string
	for _, impl := range result.Implementers(h.Interface) {
		if impl.Key() == h.Holder.Key() {
			continue
		}
		if len(impl.Values) == 0 {
			variants = append(variants, impl.Key())
			continue
		}
		for _, v := range impl.Values {
			variants = append(variants, impl.PkgPath+"."+v)
		}
	}
	sort.Strings(variants)
	return variants
}

func isPlainData(h analyzer.Holding) bool {
	return len(h.Holder.Methods) == 0 && token.IsExported(h.Field)
}
