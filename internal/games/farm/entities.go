package farm

import "gonum.org/v1/gonum/spatial/r2"

// ItemID identifies an item within one game instance.
type ItemID uint64

// NoItem is the zero ItemID; it is never assigned to an item.
const NoItem ItemID = 0

// Item is a collectible on the field.
type Item struct {
	ID   ItemID
	Type string // Emoji
	Pos  r2.Vec
	Vel  r2.Vec // Zero for static items
}

// Wandering reports whether the item moves on its own.
func (it Item) Wandering() bool {
	return it.Vel != (r2.Vec{})
}

// FarmerStatus is the farmer's movement state.
type FarmerStatus int

const (
	StatusIdle     FarmerStatus = iota // No target, empty hands
	StatusPursuing                     // Walking to an item
	StatusCarrying                     // Walking to the farm with an item
)

func (s FarmerStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPursuing:
		return "pursuing"
	case StatusCarrying:
		return "carrying"
	default:
		return "unknown"
	}
}

// Farmer is the player character. It holds at most one item.
type Farmer struct {
	Pos      r2.Vec
	TargetID ItemID // NoItem unless pursuing
	Carrying *Item  // Off the field while carried
}

// Status derives the movement state.
func (f Farmer) Status() FarmerStatus {
	switch {
	case f.Carrying != nil:
		return StatusCarrying
	case f.TargetID != NoItem:
		return StatusPursuing
	default:
		return StatusIdle
	}
}

// Particle is one glyph of a deposit burst.
type Particle struct {
	ID      uint64
	Kind    string
	Glyph   string
	Pos     r2.Vec
	Vel     r2.Vec
	Born    float64 // Simulation time at spawn
	Age     float64
	MaxLife float64
}

// FloatingText is a short-lived label such as "+1".
type FloatingText struct {
	ID   uint64
	Text string
	Pos  r2.Vec
	Born float64
	TTL  float64
}
