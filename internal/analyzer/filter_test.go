package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleResult() *Result {
	r := &Result{
		Interfaces: []InterfaceDef{
			{Name: "FlyBehavior", PkgPath: "example.com/app/strategy", PkgName: "strategy"},
			{Name: "Stringer", PkgPath: "fmt", PkgName: "fmt"},
			{Name: "validator", PkgPath: "example.com/app/strategy", PkgName: "strategy"},
		},
		Types: []TypeDef{
			{Name: "Flight", PkgPath: "example.com/app/strategy", PkgName: "strategy"},
			{Name: "Loadout", PkgPath: "example.com/app/strategy", PkgName: "strategy", IsStruct: true},
			{Name: "Base", PkgPath: "example.com/app/beverage", PkgName: "beverage"},
		},
	}
	fly, stringer, validator := &r.Interfaces[0], &r.Interfaces[1], &r.Interfaces[2]
	flight, loadout, base := &r.Types[0], &r.Types[1], &r.Types[2]
	r.Relations = []Relation{
		{Type: flight, Interface: fly},
		{Type: flight, Interface: stringer},
		{Type: flight, Interface: validator},
		{Type: base, Interface: stringer},
	}
	r.Holdings = []Holding{{Holder: loadout, Field: "Fly", Interface: fly}}
	return r
}

func TestFilter_Defaults(t *testing.T) {
	got := Filter(sampleResult(), AnalyzeOptions{})

	// fmt.Stringer and the unexported validator are gone; Base only
	// implemented Stringer so it goes too. Loadout implements nothing
	// but stays as a holder.
	var ifaces, typs []string
	for _, i := range got.Interfaces {
		ifaces = append(ifaces, i.Name)
	}
	for _, ty := range got.Types {
		typs = append(typs, ty.Name)
	}
	assert.Equal(t, []string{"FlyBehavior"}, ifaces)
	assert.Equal(t, []string{"Flight", "Loadout"}, typs)
	assert.Len(t, got.Relations, 1)
	assert.Len(t, got.Holdings, 1)
}

func TestFilter_IncludeStdlibAndUnexported(t *testing.T) {
	got := Filter(sampleResult(), AnalyzeOptions{IncludeStdlib: true, IncludeUnexported: true})
	assert.Len(t, got.Interfaces, 3)
	assert.Len(t, got.Types, 3)
	assert.Len(t, got.Relations, 4)
}

func TestFilter_Prefix(t *testing.T) {
	got := Filter(sampleResult(), AnalyzeOptions{Filter: "example.com/app/beverage", IncludeStdlib: true})
	assert.Len(t, got.Relations, 1)
	assert.Equal(t, "Base", got.Relations[0].Type.Name)
	assert.Empty(t, got.Holdings)
}

func TestIsStdlib(t *testing.T) {
	assert.True(t, isStdlib("fmt"))
	assert.True(t, isStdlib("log/slog"))
	assert.False(t, isStdlib("github.com/stretchr/testify"))
	assert.False(t, isStdlib("example.com/ducks"))
}
