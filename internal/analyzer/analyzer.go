package analyzer

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// Analyze loads the Go packages under dir and records interfaces, the
// types implementing them, and the struct fields that hold them.
func Analyze(ctx context.Context, dir string, opts AnalyzeOptions, logger *slog.Logger) (*Result, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax |
			packages.NeedTypesInfo | packages.NeedImports,
		Dir:     dir,
		Context: ctx,
	}

	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	logger.Info("packages loaded", "packages_count", len(pkgs))

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			logger.Warn("package load error", "package", pkg.PkgPath, "error", e.Msg)
		}
	}

	c := &collector{dir: dir, seen: make(map[string]bool), index: make(map[string]int), logger: logger}
	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		c.collect(pkg.Types, pkg.Fset, true)
		if opts.IncludeStdlib {
			for _, imp := range pkg.Imports {
				if imp.Types != nil {
					c.collect(imp.Types, imp.Fset, false)
				}
			}
		}
	}
	for _, pkg := range pkgs {
		if pkg.Types != nil {
			c.collectValues(pkg.Types)
		}
	}
	logger.Info("types collected", "interfaces", len(c.ifaces), "types", len(c.types))

	result := &Result{Interfaces: c.ifaces, Types: c.types}
	result.Relations = matchImplementations(result, logger)
	result.Holdings = collectHoldings(result)

	logger.Info("analysis complete", "relations", len(result.Relations), "holdings", len(result.Holdings))
	return result, nil
}

type collector struct {
	dir    string
	seen   map[string]bool
	index  map[string]int // type key -> position in types
	ifaces []InterfaceDef
	types  []TypeDef
	logger *slog.Logger
}

// collect records the named types declared at package scope. Concrete
// types are only taken from the packages being analyzed; imports
// contribute interfaces alone.
func (c *collector) collect(pkg *types.Package, fset *token.FileSet, withTypes bool) {
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}
		key := pkg.Path() + "." + tn.Name()
		if c.seen[key] {
			continue
		}

		if iface, ok := named.Underlying().(*types.Interface); ok {
			c.seen[key] = true
			c.ifaces = append(c.ifaces, InterfaceDef{
				Name:       tn.Name(),
				PkgPath:    pkg.Path(),
				PkgName:    pkg.Name(),
				Methods:    extractIfaceMethods(iface),
				TypeObj:    iface,
				SourceFile: resolveSourceFile(fset, tn.Pos(), c.dir),
			})
			c.logger.Debug("found interface", "name", tn.Name(), "package", pkg.Path(), "methods", iface.NumMethods())
			continue
		}
		if !withTypes {
			continue
		}
		c.seen[key] = true
		c.index[key] = len(c.types)
		methods := extractTypeMethods(named)
		c.types = append(c.types, TypeDef{
			Name:       tn.Name(),
			PkgPath:    pkg.Path(),
			PkgName:    pkg.Name(),
			IsStruct:   isStruct(named),
			Methods:    methods,
			TypeObj:    named,
			SourceFile: resolveSourceFile(fset, tn.Pos(), c.dir),
		})
		c.logger.Debug("found type", "name", tn.Name(), "package", pkg.Path(), "methods", len(methods))
	}
}

// collectValues attaches exported package-level constants and variables
// to the collected type they are declared with.
func (c *collector) collectValues(pkg *types.Package) {
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		switch obj.(type) {
		case *types.Const, *types.Var:
		default:
			continue
		}
		if !obj.Exported() {
			continue
		}
		named, ok := types.Unalias(obj.Type()).(*types.Named)
		if !ok || named.Obj().Pkg() == nil {
			continue
		}
		i, ok := c.index[named.Obj().Pkg().Path()+"."+named.Obj().Name()]
		if !ok {
			continue
		}
		c.types[i].Values = append(c.types[i].Values, obj.Name())
	}
}

func matchImplementations(result *Result, logger *slog.Logger) []Relation {
	var methodSetCache typeutil.MethodSetCache
	var relations []Relation

	for i := range result.Types {
		t := &result.Types[i]
		valMethodSet := methodSetCache.MethodSet(t.TypeObj)
		ptrMethodSet := methodSetCache.MethodSet(types.NewPointer(t.TypeObj))

		for j := range result.Interfaces {
			iface := &result.Interfaces[j]
			if iface.TypeObj.NumMethods() == 0 {
				continue
			}

			switch {
			case types.Implements(t.TypeObj, iface.TypeObj) || matchesMethodSet(valMethodSet, iface.TypeObj):
				relations = append(relations, Relation{Type: t, Interface: iface})
				logger.Debug("match found", "type", t.Name, "interface", iface.Name, "via_pointer", false)
			case types.Implements(types.NewPointer(t.TypeObj), iface.TypeObj) || matchesMethodSet(ptrMethodSet, iface.TypeObj):
				relations = append(relations, Relation{Type: t, Interface: iface, ViaPointer: true})
				logger.Debug("match found", "type", t.Name, "interface", iface.Name, "via_pointer", true)
			}
		}
	}
	return relations
}

// collectHoldings finds struct fields, embedded or named, whose declared
// type is one of the collected interfaces.
func collectHoldings(result *Result) []Holding {
	byKey := make(map[string]*InterfaceDef, len(result.Interfaces))
	for i := range result.Interfaces {
		byKey[result.Interfaces[i].Key()] = &result.Interfaces[i]
	}

	var holdings []Holding
	for i := range result.Types {
		t := &result.Types[i]
		st, ok := t.TypeObj.Underlying().(*types.Struct)
		if !ok {
			continue
		}
		for f := 0; f < st.NumFields(); f++ {
			field := st.Field(f)
			named, ok := types.Unalias(field.Type()).(*types.Named)
			if !ok || named.Obj().Pkg() == nil {
				continue
			}
			iface, ok := byKey[named.Obj().Pkg().Path()+"."+named.Obj().Name()]
			if !ok {
				continue
			}
			holdings = append(holdings, Holding{Holder: t, Field: field.Name(), Interface: iface})
		}
	}
	return holdings
}

func extractIfaceMethods(iface *types.Interface) []MethodSig {
	methods := make([]MethodSig, iface.NumMethods())
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		methods[i] = MethodSig{
			Name:      m.Name(),
			Signature: formatSignature(m),
		}
	}
	return methods
}

func extractTypeMethods(named *types.Named) []MethodSig {
	var methods []MethodSig
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		methods = append(methods, MethodSig{
			Name:      m.Name(),
			Signature: formatSignature(m),
		})
	}
	return methods
}

func formatSignature(fn *types.Func) string {
	sig := fn.Type().(*types.Signature)
	var b strings.Builder
	b.WriteString(fn.Name())
	writeTuple(&b, sig.Params())
	results := sig.Results()
	switch results.Len() {
	case 0:
	case 1:
		b.WriteString(" ")
		b.WriteString(shortType(results.At(0).Type()))
	default:
		b.WriteString(" ")
		writeTuple(&b, results)
	}
	return b.String()
}

func writeTuple(b *strings.Builder, tuple *types.Tuple) {
	b.WriteString("(")
	for i := 0; i < tuple.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(shortType(tuple.At(i).Type()))
	}
	b.WriteString(")")
}

func shortType(t types.Type) string {
	return types.TypeString(t, func(pkg *types.Package) string {
		return pkg.Name()
	})
}

func isStruct(named *types.Named) bool {
	_, ok := named.Underlying().(*types.Struct)
	return ok
}

func matchesMethodSet(mset *types.MethodSet, iface *types.Interface) bool {
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		if mset.Lookup(m.Pkg(), m.Name()) == nil {
			return false
		}
	}
	return true
}

// resolveSourceFile resolves a token position to a file path relative to moduleRoot.
func resolveSourceFile(fset *token.FileSet, pos token.Pos, moduleRoot string) string {
	if fset == nil || !pos.IsValid() {
		return ""
	}
	position := fset.Position(pos)
	if !position.IsValid() || position.Filename == "" {
		return ""
	}
	rel, err := filepath.Rel(moduleRoot, position.Filename)
	if err != nil {
		return position.Filename
	}
	return rel
}
