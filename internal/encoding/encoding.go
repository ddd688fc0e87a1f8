// Package encoding holds the static, read-only HID descriptor encoding
// dictionary: item opcodes, usage-page tables, argument-value maps, and
// unit maps. Every map is an immutable package-level value and may be
// shared read-only across any number of concurrent compiles.
package encoding

import (
	"strings"

	"github.com/hiddesc/hiddesc/internal/lexer"
	"github.com/hiddesc/hiddesc/internal/types"
)

// UsageType bitmask values, HID 1.11 ch. 3.4. Carried as descriptive
// metadata on usage entries; validating a usage against these bits is an
// explicit non-goal of the compiler.
const (
	UTNone = 0
	UTLC   = 1 << 0
	UTOOC  = 1 << 1
	UTMC   = 1 << 2
	UTOSC  = 1 << 3
	UTRTC  = 1 << 4
	UTSEL  = 1 << 5
	UTSV   = 1 << 6
	UTSF   = 1 << 7
	UTDV   = 1 << 8
	UTDF   = 1 << 9
	UTNARY = 1 << 10
	UTCA   = 1 << 11
	UTCL   = 1 << 12
	UTCP   = 1 << 13
	UTUS   = 1 << 14
	UTUM   = 1 << 15
	UTBB   = 1 << 16
)

// Encoding is one entry in an encoding table: a name, its numeric value,
// an optional UsageType bitmask, and an optional pointer to a child table
// (an item's argument map, a usage page's usage table, a base unit's
// exponent table).
type Encoding struct {
	Name      string
	Value     uint32
	UsageType uint32
	Child     *Table
}

// Table is a linear, name-terminated encoding map. Lookup is a
// case-insensitive linear scan; the tables are small and static.
type Table []Encoding

// Sentinel child tables. The compiler compares a map entry's Child field
// against the address of one of these to classify the argument without
// attaching real lookup data. Identity is the address, never the
// contents.
var (
	NumArg       = Table{}
	SignedNumArg = Table{}
	ClearArg     = Table{}
	UsageArg     = Table{}
	EndCol       = Table{}
)

// IsClearArg reports whether e is tagged as the "clear this bit" name of
// a multi-value flag argument (e.g. "Data" clears the bit that "Cnst"
// sets).
func (e Encoding) IsClearArg() bool {
	return e.Child == &ClearArg
}

// Find looks up token in table, case-insensitively. It returns the
// matching entry and true on success. If the name is not found at all it
// returns (zero, false, types.None) — the caller decides which Kind
// applies in that context. In a table with an indexed entry (e.g.
// "Button#"), a name that matches no entry before it is checked against
// that entry instead, and any failure returns (zero, false, kind) with
// kind set to the specific failure: InvalidArgumentName for a prefix
// mismatch or a leading zero, UnexpectedArgumentNameChar for a
// non-digit suffix, ArgumentIndexOutOfRange for an index out of range.
func Find(token []byte, table Table) (Encoding, bool, types.Kind) {
	if len(token) == 0 || table == nil {
		return Encoding{}, false, types.None
	}
	for i := range table {
		e := table[i]
		if e.Name == "" {
			break // end-of-map sentinel
		}
		if lexer.EqualFold(token, e.Name) {
			return e, true, types.None
		}
		// Indexed entries ("Button#", "Instance#", ...) are only ever
		// placed in the first three slots of a table; the scan does not
		// look for them past that.
		if i < 3 && strings.IndexByte(e.Name, '#') >= 0 {
			return findIndexed(token, table, i, e)
		}
	}
	return Encoding{}, false, types.None
}

// findIndexed handles a "Name#"-shaped entry: two consecutive records
// with the same Name carrying the first and last legal numeric suffix.
func findIndexed(token []byte, table Table, i int, e Encoding) (Encoding, bool, types.Kind) {
	idx := strings.IndexByte(e.Name, '#')
	if idx+1 != len(e.Name) || i+1 >= len(table) || table[i+1].Name != e.Name {
		return Encoding{}, false, types.Internal
	}
	if len(token) <= idx || !lexer.HasPrefixFold(token, e.Name[:idx]) {
		return Encoding{}, false, types.InvalidArgumentName
	}
	var num uint32
	for _, c := range token[idx:] {
		if !lexer.IsDigit(c) {
			return Encoding{}, false, types.UnexpectedArgumentNameChar
		}
		old := num
		num = num*10 + uint32(c-'0')
		if old > num {
			return Encoding{}, false, types.ArgumentIndexOutOfRange
		}
	}
	if num < e.Value || num > table[i+1].Value {
		return Encoding{}, false, types.ArgumentIndexOutOfRange
	}
	if num != 0 && token[idx] == '0' {
		return Encoding{}, false, types.InvalidArgumentName
	}
	return Encoding{Name: e.Name, Value: num, UsageType: e.UsageType}, true, types.None
}
