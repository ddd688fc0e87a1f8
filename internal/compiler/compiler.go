// Package compiler implements the mode-driven state machine and the
// semantic encoder of the HID report descriptor compiler: it drives the
// lexical recognizer over the source bytes, enforces the structural
// rules (collection and delimiter balance, usage-page coupling,
// ReportSize/ReportCount pairing), selects the minimum payload width
// for every item, and writes the short-item byte stream to the sink.
//
// The machine is a single pass over the source. No output byte is
// written before the item it belongs to has been fully parsed and
// validated, so on an error the sink holds exactly the bytes of the
// items emitted before the failure.
package compiler

import (
	"log/slog"

	"github.com/hiddesc/hiddesc/internal/encoding"
	"github.com/hiddesc/hiddesc/internal/lexer"
	"github.com/hiddesc/hiddesc/internal/types"
)

// Source is the compiler's view of a descriptor source: the raw bytes
// plus the parameter environment resolving {name} references. Names
// are matched byte-exact, including any surrounding whitespace.
type Source interface {
	Bytes() []byte
	Find(name string) (value int64, present bool)
}

// Sink receives the compiled descriptor bytes in strict order. Write
// reports whether the byte was accepted; a refusal stops all further
// emission. Position returns the number of bytes accepted so far.
type Sink interface {
	Write(b byte) bool
	Position() int
}

// Error is a failed compile: the message kind plus the byte offset it
// was raised at. Kind types.None means success.
type Error struct {
	Kind   types.Kind
	Offset int
}

// Config carries the ambient hooks of a compile. The zero value
// disables logging and notice collection.
type Config struct {
	Logger types.Logger
	// Notify, when non-nil, receives advisory notices (numeric usage
	// pages, redundant Push/Pop, ...). Notices never affect the byte
	// output or the returned Error.
	Notify func(types.Notice)
}

// machine holds the per-call parser state. It lives on the stack of
// Compile and never escapes.
type machine struct {
	source []byte
	src    Source
	w      writer
	cfg    Config

	n     int
	flags state

	colLevel     int
	delimLevel   int
	usageAtLevel int
	reportSizes  int
	reportCounts int

	hasUsagePage bool
	hasArg       bool
	multiArg     bool
	negLit       bool
	argNamed     bool

	tItem  lexer.Token
	tArg   lexer.Token
	litTok lexer.Token

	item uint32
	arg  uint32
	lit  uint32

	encMap  encoding.Encoding
	encUnit encoding.Encoding

	usagePage    encoding.Encoding
	usagePageSet bool

	prevItem uint32
}

// Compile runs the state machine over src, writing the descriptor to
// out. The returned Error has Kind types.None on success. Bytes already
// written for earlier items are kept on the error path; the sink
// observes a prefix of the full output.
func Compile(src Source, out Sink, cfg Config) Error {
	m := machine{
		source:       src.Bytes(),
		src:          src,
		w:            writer{out: out},
		cfg:          cfg,
		usageAtLevel: -1,
	}
	m.cfg.Logger.Log(slog.LevelDebug, "compile started", slog.Int("bytes", len(m.source)))
	err := m.run()
	if err.Kind == types.None {
		m.cfg.Logger.Log(slog.LevelDebug, "compile finished", slog.Int("written", out.Position()))
	} else {
		m.cfg.Logger.Log(slog.LevelDebug, "compile failed",
			slog.String("kind", err.Kind.String()), slog.Int("offset", err.Offset))
	}
	return err
}

func (m *machine) errorAt(offset int, kind types.Kind) *Error {
	return &Error{Kind: kind, Offset: offset}
}

func (m *machine) notify(code string, span types.Span, format string, args ...any) {
	if m.cfg.Notify != nil {
		m.cfg.Notify(types.NewNotice(types.SeverityStyle, code, span, format, args...))
	}
}

func (m *machine) trace() {
	if m.cfg.Logger.TraceEnabled() {
		m.cfg.Logger.Trace("step",
			slog.Int("in", m.n),
			slog.Int("out", m.w.out.Position()),
			slog.String("char", string(rune(m.source[m.n]))),
			slog.String("flags", m.flags.String()))
	}
}

func (m *machine) run() Error {
	for m.n < len(m.source) && m.source[m.n] != 0 {
		m.trace()
		var err *Error
		var redo bool
		switch {
		case m.flags == stateStart:
			err, redo = m.stepStart()
		case m.flags.has(withinComment):
			m.stepComment()
		case m.flags.has(withinParam):
			err = m.stepParam()
		case m.flags.has(withinItem):
			err = m.stepItem()
		case m.flags.has(withinArg):
			err, redo = m.stepArg()
		case m.flags.has(withinHexLit):
			err, redo = m.stepHexLit()
		case m.flags.has(withinNumLit):
			err, redo = m.stepNumLit()
		case m.flags.has(withinArgList):
			err, redo = m.stepArgList()
		}
		if err != nil {
			return *err
		}
		if redo {
			continue
		}
		m.n++
	}
	return m.finish()
}

// stepStart handles the top-level mode between constructs.
func (m *machine) stepStart() (*Error, bool) {
	b := m.source[m.n]
	switch {
	case lexer.IsItemChar(b):
		m.flags = withinItem
		m.tItem = lexer.NewToken(m.n, 1)
	case b == '{':
		m.flags = withinParam
		m.tArg = lexer.NewToken(m.n+1, 0)
	case b == '0' && m.n+1 < len(m.source) && m.source[m.n+1] == 'x':
		m.flags = withinHexLit
		if m.n+2 >= len(m.source) {
			return m.errorAt(m.n+2, types.UnexpectedEndOfSource), false
		}
		if !lexer.IsHexDigit(m.source[m.n+2]) {
			return m.errorAt(m.n+2, types.InvalidHexValue), false
		}
		m.lit = 0
		m.litTok = lexer.NewToken(m.n, 0)
		m.n++
	case lexer.IsDigit(b):
		// negative literals are only allowed as arguments
		m.flags = withinNumLit
		m.lit = 0
		m.litTok = lexer.NewToken(m.n, 0)
		return nil, true // re-parse as number literal
	case b == '-':
		return m.errorAt(m.n, types.NegativeNotAllowed), false
	case lexer.IsComment(b):
		m.flags = withinComment
	default:
		if !lexer.IsWhitespace(b) {
			return m.errorAt(m.n, types.UnexpectedToken), false
		}
	}
	return nil, false
}

func (m *machine) stepComment() {
	if b := m.source[m.n]; b == '\r' || b == '\n' {
		m.flags = stateStart
	}
}

// stepParam handles a {name} parameter reference. The name is captured
// verbatim; the source's Find decides what resolves.
func (m *machine) stepParam() *Error {
	if m.source[m.n] != '}' {
		m.tArg.Length++
		return nil
	}
	m.flags &^= withinParam
	val, ok := m.src.Find(string(m.tArg.Bytes(m.source)))
	if !ok {
		return m.errorAt(m.n, types.ExpectedValidParameterName)
	}
	if m.flags.has(withinArgList) {
		// merge multiple arguments via OR
		if m.encMap.Child == &encoding.SignedNumArg {
			if val < -0x80000000 || val > 0x7FFFFFFF {
				return m.errorAt(m.n, types.ParameterOutOfRange)
			}
		} else if val < 0 || val > 0xFFFFFFFF {
			return m.errorAt(m.n, types.ParameterOutOfRange)
		}
		m.arg |= uint32(val)
		m.hasArg = true
		return nil
	}
	// encode as bare literal
	if val < 0 {
		return m.errorAt(m.n, types.NegativeNotAllowed)
	}
	if val > 0xFFFFFFFF {
		return m.errorAt(m.n, types.ParameterOutOfRange)
	}
	m.prevItem = 0
	m.w.unsigned(uint32(val))
	return nil
}

// resolveItem looks up the accumulated item name and applies the
// structural bookkeeping attached to it: collection balance,
// ReportSize/ReportCount pairing, and the Usage-before-Collection rule.
func (m *machine) resolveItem() *Error {
	e, ok, kind := encoding.Find(m.tItem.Bytes(m.source), encoding.ItemMap)
	if !ok {
		if kind == types.None {
			kind = types.InvalidItemName
		}
		return m.errorAt(m.n, kind)
	}
	m.encMap = e
	switch {
	case e.Child == &encoding.ColArgMap:
		if m.usageAtLevel != m.colLevel {
			return m.errorAt(m.n, types.MissingUsageForCollection)
		}
		m.colLevel++
	case e.Child == &encoding.EndCol:
		if m.colLevel <= 0 {
			return m.errorAt(m.n, types.UnexpectedEndCollection)
		}
		if m.reportSizes < m.reportCounts {
			return m.errorAt(m.n, types.MissingReportSize)
		}
		if m.reportCounts < m.reportSizes {
			return m.errorAt(m.n, types.MissingReportCount)
		}
		m.colLevel--
		m.usageAtLevel--
	default:
		if m.tItem.EqualFold(m.source, "Usage") {
			// needed to check that every Collection has a Usage
			m.usageAtLevel = m.colLevel
		}
	}
	return nil
}

// tableHasNames reports whether t is a real lookup table rather than a
// sentinel marker.
func tableHasNames(t *encoding.Table) bool {
	return t != nil && len(*t) > 0 && (*t)[0].Name != ""
}

// stepItem accumulates an item name and, at its end, resolves it and
// either opens the argument list or emits the item directly.
func (m *machine) stepItem() *Error {
	b := m.source[m.n]
	switch {
	case lexer.IsItemChar(b):
		m.tItem.Length++
	case lexer.IsWhitespace(b) || b == '(':
		if lexer.IsWhitespace(b) {
			m.n = lexer.SkipToCall(m.source, m.n)
			b = m.source[m.n]
		}
		m.flags &^= withinItem
		if err := m.resolveItem(); err != nil {
			return err
		}
		if b == '(' {
			m.flags |= withinArgList
			if m.encMap.Child == nil {
				return m.errorAt(m.n, types.ThisItemHasNoArguments)
			}
			if m.encMap.Child == &encoding.UnitSystemMap {
				m.flags |= withinUnitSys
			}
			m.item = m.encMap.Value
			m.arg = 0
			m.hasArg = false
			m.argNamed = false
			m.multiArg = m.encMap.Child == &encoding.InputArgMap ||
				m.encMap.Child == &encoding.OutputFeatureArgMap
			return nil
		}
		// end of item without argument list
		if m.encMap.Child != nil &&
			(tableHasNames(m.encMap.Child) || m.encMap.Child == &encoding.UsageArg) {
			return m.errorAt(m.n, types.MissingArgument)
		}
		m.emitPlainItem()
	default:
		return m.errorAt(m.n, types.UnexpectedItemNameChar)
	}
	return nil
}

// emitPlainItem writes an item that carries no payload (Push, Pop,
// EndCollection and friends).
func (m *machine) emitPlainItem() {
	if m.encMap.Value == 0xB4 && m.prevItem == 0xA4 {
		m.notify(types.NoticeRedundantPushPop, m.tItem.Span(),
			"Pop directly after Push has no effect")
	}
	m.prevItem = m.encMap.Value
	m.w.unsigned(m.encMap.Value)
}

// stepArg handles argument-name accumulation, including the nested
// unit system / unit description / unit exponent modes.
func (m *machine) stepArg() (*Error, bool) {
	b := m.source[m.n]
	if m.flags.has(withinUnitDesc) {
		return m.stepUnitDesc(b)
	}
	if lexer.IsArgChar(b) {
		m.tArg.Length++
		return nil, false
	}
	if m.flags.has(withinUnitSys) {
		return m.stepUnitSys(b)
	}
	if lexer.IsWhitespace(b) || b == ')' || (m.multiArg && b == ',') {
		// end of argument
		m.flags &^= withinArg
		// a Usage/UsageMinimum/UsageMaximum name resolves against the
		// active usage page
		if m.encMap.Child == &encoding.UsageArg {
			if !m.usagePageSet || m.usagePage.Child == nil {
				if m.hasUsagePage {
					return m.errorAt(m.n, types.MissingNamedUsagePage), false
				}
				return m.errorAt(m.n, types.MissingUsagePage), false
			}
			m.encMap = m.usagePage
		}
		e, ok, kind := encoding.Find(m.tArg.Bytes(m.source), m.childTable())
		if !ok {
			if kind == types.None {
				kind = types.InvalidArgumentName
			}
			return m.errorAt(m.n, kind), false
		}
		if m.encMap.Child == &encoding.UsagePageMap {
			// the resolved page serves all subsequent Usage items
			m.usagePage = e
			m.usagePageSet = true
		}
		if e.Child == &encoding.ClearArg {
			m.arg &^= e.Value
		} else {
			// merge multiple arguments via OR
			m.arg |= e.Value
		}
		m.argNamed = true
		m.hasArg = !m.multiArg || b != ','
		if b == ')' {
			return nil, true // re-parse as argument list
		}
		return nil, false
	}
	return m.errorAt(m.n, types.UnexpectedArgumentNameChar), false
}

// childTable dereferences the current item's argument map.
func (m *machine) childTable() encoding.Table {
	if m.encMap.Child == nil {
		return nil
	}
	return *m.encMap.Child
}

// stepUnitSys terminates a unit system name (Unit's first argument).
func (m *machine) stepUnitSys(b byte) (*Error, bool) {
	if m.hasArg {
		// invalid internal state
		return m.errorAt(m.n, types.Internal), false
	}
	switch {
	case lexer.IsWhitespace(b) || b == '(':
		if lexer.IsWhitespace(b) {
			m.n = lexer.SkipToCall(m.source, m.n)
		}
		// start of the unit description for the given system
		e, ok, kind := encoding.Find(m.tArg.Bytes(m.source), m.childTable())
		if !ok {
			if kind == types.None {
				kind = types.InvalidUnitSystemName
			}
			return m.errorAt(m.n, kind), false
		}
		m.flags |= withinUnitDesc
		m.arg = e.Value
		m.encMap = e
		m.hasArg = true
		return nil, false
	case b == ')':
		// end of unit system without description
		m.flags &^= withinUnitSys
		return nil, true // re-parse as argument
	default:
		return m.errorAt(m.n, types.UnexpectedArgumentNameChar), false
	}
}

// stepUnitDesc handles the inside of a unit description: base unit
// names, their optional ^exponents, and the closing parenthesis.
func (m *machine) stepUnitDesc(b byte) (*Error, bool) {
	switch {
	case m.flags.has(withinUnit):
		if lexer.IsAlpha(b) {
			m.tArg.Length++
			return nil, false
		}
		if lexer.IsWhitespace(b) || b == ')' || b == '^' {
			// end of unit name
			m.flags &^= withinUnit
			e, ok, kind := encoding.Find(m.tArg.Bytes(m.source), m.childTable())
			if !ok {
				if kind == types.None {
					kind = types.InvalidUnitName
				}
				return m.errorAt(m.n, kind), false
			}
			m.encUnit = e
			if b == '^' {
				m.flags |= withinUnitExp
				m.tArg = lexer.NewToken(m.n+1, 0)
				return nil, false
			}
			// no exponent given: treat as exponent 1
			offset := 4 * m.encUnit.Value
			m.arg &^= 0xF << offset
			m.arg |= 1 << offset
			return nil, true // re-parse as unit description
		}
		return m.errorAt(m.n, types.UnexpectedUnitNameChar), false
	case m.flags.has(withinUnitExp):
		if b == '-' {
			// sign is only allowed at the beginning of the exponent
			if m.tArg.Length > 0 {
				return m.errorAt(m.n, types.InvalidUnitExponent), false
			}
			m.tArg.Length++
			return nil, false
		}
		if lexer.IsDigit(b) {
			m.tArg.Length++
			return nil, false
		}
		// end of unit exponent
		m.flags &^= withinUnitExp
		var expTable encoding.Table
		if m.encUnit.Child != nil {
			expTable = *m.encUnit.Child
		}
		e, ok, kind := encoding.Find(m.tArg.Bytes(m.source), expTable)
		if !ok {
			if kind == types.None {
				kind = types.InvalidUnitExponent
			}
			return m.errorAt(m.n, kind), false
		}
		// the exponent is stored at the unit's fixed nibble
		offset := 4 * m.encUnit.Value
		m.arg &^= 0xF << offset
		m.arg |= e.Value << offset
		m.flags |= withinUnitDesc
		return nil, true // re-parse as unit description
	case lexer.IsAlpha(b):
		// start of unit name
		m.flags |= withinUnit
		m.tArg = lexer.NewToken(m.n, 1)
		return nil, false
	case b == ')':
		// end of unit description
		m.flags &^= withinArg | withinUnitSys | withinUnitDesc
		return nil, false
	default:
		if !lexer.IsWhitespace(b) {
			return m.errorAt(m.n, types.UnexpectedUnitNameChar), false
		}
		return nil, false
	}
}

// stepHexLit accumulates a hex literal, either as an argument or as a
// bare top-level literal.
func (m *machine) stepHexLit() (*Error, bool) {
	b := m.source[m.n]
	if lexer.IsHexDigit(b) {
		var ok bool
		m.lit, ok = lexer.AccumulateHex(m.lit, b)
		if !ok {
			return m.errorAt(m.n, types.NumberOverflow), false
		}
		return nil, false
	}
	if m.flags.has(withinArgList) {
		if lexer.IsWhitespace(b) || b == ')' || (m.multiArg && b == ',') {
			// end of hex literal argument, merged via OR
			m.flags &^= withinHexLit
			if m.encMap.Child == &encoding.SignedNumArg && m.lit > 0x7FFFFFFF {
				return m.errorAt(m.n, types.NumberOverflow), false
			}
			m.arg |= m.lit
			m.hasArg = !m.multiArg || b != ','
			if b == ')' {
				return nil, true // re-parse as argument list
			}
			return nil, false
		}
		return m.errorAt(m.n, types.InvalidHexValue), false
	}
	if lexer.IsWhitespace(b) {
		// end of bare hex literal
		m.flags &^= withinHexLit
		m.emitBareLiteral()
		return nil, false
	}
	return m.errorAt(m.n, types.InvalidHexValue), false
}

// stepNumLit accumulates a decimal literal, either as an argument
// (optionally negative) or as a bare top-level literal.
func (m *machine) stepNumLit() (*Error, bool) {
	b := m.source[m.n]
	if lexer.IsDigit(b) {
		var ok bool
		m.lit, ok = lexer.AccumulateDecimal(m.lit, b)
		if !ok {
			return m.errorAt(m.n, types.NumberOverflow), false
		}
		return nil, false
	}
	if m.flags.has(withinArgList) {
		if lexer.IsWhitespace(b) || b == ')' || (m.multiArg && b == ',') {
			// end of number literal argument, merged via OR
			m.flags &^= withinNumLit
			if m.negLit {
				if m.lit > 0x80000000 {
					return m.errorAt(m.n, types.NumberOverflow), false
				}
				m.arg |= uint32(-int32(m.lit))
				m.negLit = false
			} else {
				if m.encMap.Child == &encoding.SignedNumArg && m.lit > 0x7FFFFFFF {
					return m.errorAt(m.n, types.NumberOverflow), false
				}
				m.arg |= m.lit
			}
			m.hasArg = !m.multiArg || b != ','
			if b == ')' {
				return nil, true // re-parse as argument list
			}
			return nil, false
		}
		return m.errorAt(m.n, types.InvalidNumericValue), false
	}
	if lexer.IsWhitespace(b) {
		// end of bare number literal
		m.flags &^= withinNumLit
		m.emitBareLiteral()
		return nil, false
	}
	return m.errorAt(m.n, types.InvalidNumericValue), false
}

// emitBareLiteral writes a top-level literal: data bytes only, no item
// prefix, unsigned minimum width.
func (m *machine) emitBareLiteral() {
	if m.cfg.Notify != nil {
		text := m.source[m.litTok.Start:m.n]
		digits := text
		if len(text) > 2 && text[1] == 'x' {
			digits = text[2:]
		}
		if len(digits) > 1 && digits[0] == '0' {
			span := types.NewSpan(types.ByteOffset(m.litTok.Start), types.ByteOffset(m.n))
			m.notify(types.NoticeOversizedLiteral, span,
				"leading zeros do not widen the encoded literal")
		}
	}
	m.prevItem = 0
	m.w.unsigned(m.lit)
}

// stepArgList dispatches inside parentheses: it starts arguments and
// literals, skips separators, and emits the item at ')'.
func (m *machine) stepArgList() (*Error, bool) {
	b := m.source[m.n]
	if m.hasArg {
		switch {
		case b == ')':
			return m.emitItem(), false
		case m.multiArg && b == ',':
			m.hasArg = false
		default:
			if !lexer.IsWhitespace(b) {
				return m.errorAt(m.n, types.UnexpectedToken), false
			}
		}
		return nil, false
	}
	switch {
	case lexer.IsItemChar(b):
		// start of argument name
		m.flags |= withinArg
		m.tArg = lexer.NewToken(m.n, 1)
	case b == '0' && m.n+1 < len(m.source) && m.source[m.n+1] == 'x':
		m.flags |= withinHexLit
		if m.n+2 >= len(m.source) {
			return m.errorAt(m.n+2, types.UnexpectedEndOfSource), false
		}
		if !lexer.IsHexDigit(m.source[m.n+2]) {
			return m.errorAt(m.n+2, types.InvalidHexValue), false
		}
		m.lit = 0
		m.n++
	case b == '-':
		// start of a negative number literal
		if m.encMap.Child != &encoding.SignedNumArg && m.encMap.Child != &encoding.UnitExpMap {
			return m.errorAt(m.n, types.NegativeNotAllowed), false
		}
		m.flags |= withinNumLit
		m.lit = 0
		m.negLit = true
	case lexer.IsDigit(b):
		m.flags |= withinNumLit
		m.lit = 0
		return nil, true // re-parse as number literal
	case b == '{':
		m.flags |= withinParam
		m.tArg = lexer.NewToken(m.n+1, 0)
	case b == ')':
		return m.errorAt(m.n, types.MissingArgument), false
	default:
		if !lexer.IsWhitespace(b) {
			return m.errorAt(m.n, types.UnexpectedArgumentNameChar), false
		}
	}
	return nil, false
}

// emitItem closes the argument list: it applies the per-item semantic
// checks, selects the payload width, and writes prefix plus payload.
func (m *machine) emitItem() *Error {
	m.flags &^= withinArgList | withinUnitSys
	switch {
	case m.encMap.Child == &encoding.SignedNumArg:
		m.item |= sizeValue(signedSize(int32(m.arg)))
		m.w.unsigned(m.item)
		m.w.signed(int32(m.arg))
	case m.encMap.Child == &encoding.UnitExpMap:
		// UnitExponent
		sArg := int32(m.arg)
		if sArg > 7 || sArg < -8 {
			return m.errorAt(m.n, types.ArgumentValueOutOfRange)
		}
		m.w.unsigned(m.item | 1) // one byte of data
		m.w.unsigned(uint32(sArg) & 0xF)
	default:
		switch {
		case m.encMap.Child == &encoding.DelimMap:
			switch m.arg {
			case 0: // Delimiter(Close)
				if m.delimLevel <= 0 {
					return m.errorAt(m.n, types.UnexpectedDelimiterClose)
				}
				m.delimLevel--
			case 1: // Delimiter(Open)
				m.delimLevel++
			default:
				return m.errorAt(m.n, types.UnexpectedDelimiterValue)
			}
			if !m.argNamed {
				m.notify(types.NoticeDelimiterByNumber, m.tItem.Span(),
					"Delimiter(%d) is clearer as Delimiter(%s)", m.arg, delimName(m.arg))
			}
		case m.encMap.Child == &encoding.UsagePageMap || m.encMap.Child == &encoding.UsageArg:
			// UsagePage/Usage/UsageMinimum/UsageMaximum by value
			if m.arg > 0xFFFF {
				return m.errorAt(m.n, types.ArgumentValueOutOfRange)
			}
			if m.encMap.Child == &encoding.UsagePageMap {
				m.hasUsagePage = true
				if !m.argNamed {
					m.notify(types.NoticeNumericUsagePage, m.tItem.Span(),
						"numeric usage page keeps later Usage items from using names")
				}
			}
		case m.encMap.Value == 0x74: // ReportSize
			m.reportSizes++
		case m.encMap.Value == 0x94: // ReportCount
			m.reportCounts++
		}
		m.item |= sizeValue(unsignedSize(m.arg))
		m.w.unsigned(m.item)
		m.w.unsigned(m.arg)
	}
	// commas are only valid within an argument list
	m.multiArg = false
	m.prevItem = 0
	return nil
}

func delimName(v uint32) string {
	if v == 0 {
		return "Close"
	}
	return "Open"
}

// finish applies the end-of-source rules: terminate any literal or
// item in flight, then check the structural balances.
func (m *machine) finish() Error {
	if m.flags.has(withinHexLit) || m.flags.has(withinNumLit) {
		// end of bare hex/number literal
		m.flags &^= withinHexLit | withinNumLit
		if m.flags == stateStart {
			m.emitBareLiteral()
		}
	}
	if m.flags.has(withinItem) {
		m.flags &^= withinItem
		if err := m.resolveItem(); err != nil {
			return *err
		}
		// end of item without argument list
		if m.encMap.Child != nil &&
			(tableHasNames(m.encMap.Child) || m.encMap.Child == &encoding.UsageArg) {
			return Error{Kind: types.MissingArgument, Offset: m.n}
		}
		if m.flags == stateStart {
			m.emitPlainItem()
		}
	}
	if m.colLevel > 0 {
		return Error{Kind: types.MissingEndCollection, Offset: m.n}
	}
	if m.delimLevel > 0 {
		return Error{Kind: types.MissingDelimiterClose, Offset: m.n}
	}
	if m.flags != stateStart && !m.flags.has(withinComment) {
		return Error{Kind: types.UnexpectedEndOfSource, Offset: m.n}
	}
	return Error{Kind: types.None}
}
