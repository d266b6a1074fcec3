package brain

// entry is one element of an expression stack. Entries are never modified
// after they are pushed.
type entry struct {
	kind entryKind

	// name is the variable or constant name, or the operation symbol.
	name string
	// val is the value of an operand or constant.
	val float64

	un  func(float64) float64
	bin func(a, b float64) float64
}

type entryKind int8

const (
	entryNone entryKind = iota

	entryOperand  // val
	entryVariable // lookup(name)
	entryConstant // name, with val fixed at push time
	entryUnary    // un(top)
	entryBinary   // bin(top, next)
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=entryKind -trimprefix=entry
//go:generate go mod tidy

// String returns the text of the entry as it appears on a calculator's
// history: the number for an operand, otherwise the name or symbol.
func (e entry) String() string {
	switch e.kind {
	case entryOperand:
		return formatNum(e.val)
	case entryVariable, entryConstant, entryUnary, entryBinary:
		return e.name
	default:
		panic("brain: invalid entry kind " + e.kind.String())
	}
}
