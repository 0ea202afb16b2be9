package ducks

type Flyer interface {
	Fly() string
}

type Wings struct{}

func (Wings) Fly() string { return "flap" }

type Grounded struct{}

func (*Grounded) Fly() string { return "..." }

// Duck holds its flight as a swappable strategy.
type Duck struct {
	Name string
	fly  Flyer
}

func (d *Duck) SetFly(f Flyer) { d.fly = f }

// Rocket is a third Flyer.
type Rocket struct{}

func (Rocket) Fly() string { return "whoosh" }

// Pond has no interface-typed fields.
type Pond struct {
	Ducks []*Duck
}

// Glide is an enum of flights; each value is a Flyer of its own.
type Glide int

const (
	Soar Glide = iota + 1
	Hover
	drift
)

func (g Glide) Fly() string { return [...]string{"", "soar", "hover", "drift"}[g] }
