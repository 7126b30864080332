package sand

import "fmt"

// Op enumerates the outcomes a rule may select for its cell.
type Op uint8

const (
	OpStayPut Op = iota
	OpPop
	OpMoveInto
	OpGrowInto
	OpBecome
)

// Action is the result of evaluating one cell. DX/DY are used by MoveInto and
// GrowInto, Kind by GrowInto and Become.
type Action struct {
	Op     Op
	DX, DY int
	Kind   Kind
}

// StayPut leaves the cell unchanged.
func StayPut() Action { return Action{Op: OpStayPut} }

// Pop empties the acting cell.
func Pop() Action { return Action{Op: OpPop} }

// MoveInto relocates the acting particle by (dx, dy).
func MoveInto(dx, dy int) Action { return Action{Op: OpMoveInto, DX: dx, DY: dy} }

// GrowInto creates a fresh particle of kind k at offset (dx, dy).
func GrowInto(dx, dy int, k Kind) Action {
	return Action{Op: OpGrowInto, DX: dx, DY: dy, Kind: k}
}

// Become replaces the acting particle with a fresh instance of kind k.
func Become(k Kind) Action { return Action{Op: OpBecome, Kind: k} }

func (a Action) String() string {
	switch a.Op {
	case OpStayPut:
		return "StayPut"
	case OpPop:
		return "Pop"
	case OpMoveInto:
		return fmt.Sprintf("MoveInto{%d,%d}", a.DX, a.DY)
	case OpGrowInto:
		return fmt.Sprintf("GrowInto{%d,%d,%s}", a.DX, a.DY, a.Kind)
	case OpBecome:
		return fmt.Sprintf("Become(%s)", a.Kind)
	default:
		return fmt.Sprintf("Op(%d)", a.Op)
	}
}
