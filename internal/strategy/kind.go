package strategy

import "fmt"

// Kind is one of the built-in ducks. Each kind fixes a display line and
// the behaviors a new duck starts with.
type Kind int

const (
	Mallard Kind = iota + 1
	Rubber
	Decoy
)

type kindInfo struct {
	name    string
	display string
	loadout Loadout
}

var kinds = [...]kindInfo{
	Mallard: {
		name:    "mallard",
		display: "Soy un verdadero pato Mallard.",
		loadout: Loadout{Fly: FlyWithWings, Quack: Quack, Eat: PickyEater},
	},
	Rubber: {
		name:    "rubber",
		display: "Soy un pato de goma.",
		loadout: Loadout{Fly: FlyNoWay, Quack: Squeak, Eat: NoEat},
	},
	Decoy: {
		name:    "decoy",
		display: "Soy un pato señuelo (decoy).",
		loadout: Loadout{Fly: FlyNoWay, Quack: MuteQuack, Eat: NoEat},
	},
}

// Kinds lists every built-in duck kind.
var Kinds = []Kind{Mallard, Rubber, Decoy}

func (k Kind) Valid() bool { return k > 0 && int(k) < len(kinds) }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}

// Display is the identity line for ducks of this kind.
func (k Kind) Display() string {
	if !k.Valid() {
		return ""
	}
	return kinds[k].display
}

// Loadout is the set of behaviors a duck of this kind starts with.
func (k Kind) Loadout() Loadout {
	if !k.Valid() {
		return Loadout{}
	}
	return kinds[k].loadout
}
