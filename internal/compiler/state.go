package compiler

import "strings"

// state is the parser mode bitset. Unit parsing nests inside argument
// list parsing, so the flags compose bitwise; everything else is
// mutually exclusive in practice.
type state uint32

const (
	stateStart state = 0

	withinComment  state = 0x001
	withinItem     state = 0x002
	withinArgList  state = 0x004
	withinArg      state = 0x008
	withinParam    state = 0x010
	withinHexLit   state = 0x020
	withinNumLit   state = 0x040
	withinUnitSys  state = 0x080
	withinUnitDesc state = 0x100
	withinUnit     state = 0x200
	withinUnitExp  state = 0x400
)

func (s state) has(f state) bool {
	return s&f != 0
}

var stateNames = [...]string{
	"COMMENT", "ITEM", "ARG_LIST", "ARG", "PARAM", "HEX_LIT",
	"NUM_LIT", "UNIT_SYS", "UNIT_DESC", "UNIT", "UNIT_EXP",
}

// String renders the bitset for trace logging.
func (s state) String() string {
	if s == stateStart {
		return "START"
	}
	var b strings.Builder
	for i, name := range stateNames {
		if (s>>i)&1 != 0 {
			if b.Len() > 0 {
				b.WriteByte('|')
			}
			b.WriteString(name)
		}
	}
	return b.String()
}
