package compiler

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/hiddesc/hiddesc/internal/testutil"
	"github.com/hiddesc/hiddesc/internal/types"
)

// testSource pairs source bytes with a fixed parameter set. Parameter
// names match byte-exact, including surrounding whitespace.
type testSource struct {
	data   []byte
	params map[string]int64
}

func (s *testSource) Bytes() []byte {
	return s.data
}

func (s *testSource) Find(name string) (int64, bool) {
	v, ok := s.params[name]
	return v, ok
}

// testParams is the parameter environment shared by the case table,
// including a whitespace-padded name and an out-of-range value.
var testParams = map[string]int64{
	"arg1":     1,
	"arg2":     256,
	"arg3":     -1,
	"arg4":     4294967295,
	" arg5 ":   4294967296,
	"maxLedId": 5,
}

type bufSink struct {
	buf []byte
}

func (s *bufSink) Write(b byte) bool {
	s.buf = append(s.buf, b)
	return true
}

func (s *bufSink) Position() int {
	return len(s.buf)
}

// boundedSink refuses writes past its capacity.
type boundedSink struct {
	buf []byte
	cap int
}

func (s *boundedSink) Write(b byte) bool {
	if len(s.buf) >= s.cap {
		return false
	}
	s.buf = append(s.buf, b)
	return true
}

func (s *boundedSink) Position() int {
	return len(s.buf)
}

func compileString(source string) (Error, []byte) {
	sink := &bufSink{}
	err := Compile(&testSource{data: []byte(source), params: testParams}, sink, Config{})
	return err, sink.buf
}

type compileCase struct {
	source string
	kind   types.Kind
	pos    int    // byte offset of the error; unused when kind is None
	want   string // expected output, hex
}

// compileCases is the compiler's behavioral contract: every error
// kind, its exact position, and the bytes emitted before the failure.
var compileCases = []compileCase{
	// comments
	{source: "#", kind: types.None},
	{source: "#\n", kind: types.None},
	{source: "#\r", kind: types.None},
	{source: "#\n0", kind: types.None, want: "00"},
	{source: "#\r0", kind: types.None, want: "00"},
	{source: "# text", kind: types.None},
	{source: "# text\n", kind: types.None},
	{source: "# text\r", kind: types.None},
	{source: "# text\n0", kind: types.None, want: "00"},
	{source: "# text\r0", kind: types.None, want: "00"},
	{source: ";", kind: types.None},
	{source: ";\n", kind: types.None},
	{source: ";\r", kind: types.None},
	{source: ";\n0", kind: types.None, want: "00"},
	{source: ";\r0", kind: types.None, want: "00"},
	{source: "; text", kind: types.None},
	{source: "; text\n", kind: types.None},
	{source: "; text\r", kind: types.None},
	{source: "; text\n0", kind: types.None, want: "00"},
	{source: "; text\r0", kind: types.None, want: "00"},
	// number literals
	{source: "0", kind: types.None, want: "00"},
	{source: "0\n", kind: types.None, want: "00"},
	{source: "0\r", kind: types.None, want: "00"},
	{source: "0 ", kind: types.None, want: "00"},
	{source: "1", kind: types.None, want: "01"},
	{source: "256", kind: types.None, want: "00 01"}, // little endian
	{source: "4294967295", kind: types.None, want: "FF FF FF FF"},
	{source: "4294967296", kind: types.NumberOverflow, pos: 9},
	{source: "42949672950", kind: types.NumberOverflow, pos: 10},
	{source: "-1", kind: types.NegativeNotAllowed, pos: 0},
	{source: "1a", kind: types.InvalidNumericValue, pos: 1},
	{source: "1#", kind: types.InvalidNumericValue, pos: 1},
	{source: "1;", kind: types.InvalidNumericValue, pos: 1},
	// hex literals
	{source: "0x0", kind: types.None, want: "00"},
	{source: "0x0\n", kind: types.None, want: "00"},
	{source: "0x0\r", kind: types.None, want: "00"},
	{source: "0x0 ", kind: types.None, want: "00"},
	{source: "0x1", kind: types.None, want: "01"},
	{source: "0x100", kind: types.None, want: "00 01"}, // little endian
	{source: "0xFFFFFFFF", kind: types.None, want: "FF FF FF FF"},
	{source: "0xffffffff", kind: types.None, want: "FF FF FF FF"},
	{source: "0x100000000", kind: types.NumberOverflow, pos: 10},
	{source: "0X0", kind: types.InvalidNumericValue, pos: 1},
	{source: "0x0z", kind: types.InvalidHexValue, pos: 3},
	{source: "0x0#", kind: types.InvalidHexValue, pos: 3},
	{source: "0x0;", kind: types.InvalidHexValue, pos: 3},
	{source: "0x", kind: types.UnexpectedEndOfSource, pos: 2},
	{source: "0xZ", kind: types.InvalidHexValue, pos: 2},
	// parameters
	{source: "{arg1}", kind: types.None, want: "01"},
	{source: "{arg1}\n", kind: types.None, want: "01"},
	{source: "{arg1}\r", kind: types.None, want: "01"},
	{source: "{arg1} ", kind: types.None, want: "01"},
	{source: "{arg1}{arg1}", kind: types.None, want: "01 01"},
	{source: "{arg2}", kind: types.None, want: "00 01"}, // little endian
	{source: "{arg3}", kind: types.NegativeNotAllowed, pos: 5},
	{source: "{arg4}", kind: types.None, want: "FF FF FF FF"},
	{source: "{ arg5 }", kind: types.ParameterOutOfRange, pos: 7},
	{source: "{arg6}", kind: types.ExpectedValidParameterName, pos: 5},
	{source: "{ arg1}", kind: types.ExpectedValidParameterName, pos: 6},
	{source: "{arg1 }", kind: types.ExpectedValidParameterName, pos: 6},
	{source: "{ arg1 }", kind: types.ExpectedValidParameterName, pos: 7},
	{source: "{arg1", kind: types.UnexpectedEndOfSource, pos: 5},
	// items
	{source: "Push", kind: types.None, want: "A4"},
	{source: "PUSH", kind: types.None, want: "A4"},
	{source: "push", kind: types.None, want: "A4"},
	{source: "pushx", kind: types.InvalidItemName, pos: 5},
	{source: "pushx ", kind: types.InvalidItemName, pos: 5},
	{source: "push$", kind: types.UnexpectedItemNameChar, pos: 4},
	{source: "Push(10)", kind: types.ThisItemHasNoArguments, pos: 4},
	{source: "Pushx(10)", kind: types.InvalidItemName, pos: 5},
	{source: "UsagePage(GenericDesktop)", kind: types.None, want: "05 01"},
	{source: "USAGEPAGE(GENERICDESKTOP)", kind: types.None, want: "05 01"},
	{source: "  UsagePage  (  GenericDesktop  )  ", kind: types.None, want: "05 01"},
	{source: "\nUsagePage\n(\nGenericDesktop\n)\n", kind: types.None, want: "05 01"},
	{source: "\rUsagePage\r(\nGenericDesktop\r)\r", kind: types.None, want: "05 01"},
	{source: "\tUsagePage\t(\nGenericDesktop\t)\t", kind: types.None, want: "05 01"},
	{source: "UsagePage(1)", kind: types.None, want: "05 01"},
	{source: "UsagePage(0x1)", kind: types.None, want: "05 01"},
	{source: "Delimiter(Open)Delimiter(Close)", kind: types.None, want: "A9 01 A9 00"},
	{source: "Delimiter(Open) Delimiter(Close)", kind: types.None, want: "A9 01 A9 00"},
	{source: "Delimiter(Open)\nDelimiter(Close)", kind: types.None, want: "A9 01 A9 00"},
	{source: "Delimiter(Open)\tDelimiter(Close)", kind: types.None, want: "A9 01 A9 00"},
	{source: "Delimiter(Open)\rDelimiter(Close)", kind: types.None, want: "A9 01 A9 00"},
	{source: "Delimiter(Open Open)\rDelimiter(Close)", kind: types.UnexpectedToken, pos: 15},
	{source: "Delimiter(Open)\nDelimiter(Unknown)", kind: types.InvalidArgumentName, pos: 33, want: "A9 01"},
	{source: "Delimiter(2)", kind: types.UnexpectedDelimiterValue, pos: 11},
	{source: "UsagePage(-1)", kind: types.NegativeNotAllowed, pos: 10},
	{source: "UsagePage(1", kind: types.UnexpectedEndOfSource, pos: 11},
	{source: "UsagePage(0x", kind: types.UnexpectedEndOfSource, pos: 12},
	{source: "UsagePage(0x1", kind: types.UnexpectedEndOfSource, pos: 13},
	{source: "UsagePage(0xZ)", kind: types.InvalidHexValue, pos: 12},
	{source: "UsagePage(0xAZ)", kind: types.InvalidHexValue, pos: 13},
	{source: "UsagePage(a$)", kind: types.UnexpectedArgumentNameChar, pos: 11},
	// signed argument width ladder
	{source: "LogicalMaximum(1)", kind: types.None, want: "25 01"},
	{source: "LogicalMaximum(-1)", kind: types.None, want: "25 FF"},
	{source: "LogicalMaximum(127)", kind: types.None, want: "25 7F"},
	{source: "LogicalMaximum(-128)", kind: types.None, want: "25 80"},
	{source: "LogicalMaximum(128)", kind: types.None, want: "26 80 00"},
	{source: "LogicalMaximum(-129)", kind: types.None, want: "26 7F FF"},
	{source: "LogicalMaximum(32767)", kind: types.None, want: "26 FF 7F"},
	{source: "LogicalMaximum(-32768)", kind: types.None, want: "26 00 80"},
	{source: "LogicalMaximum(32768)", kind: types.None, want: "27 00 80 00 00"},
	{source: "LogicalMaximum(-32769)", kind: types.None, want: "27 FF 7F FF FF"},
	{source: "LogicalMaximum(2147483647)", kind: types.None, want: "27 FF FF FF 7F"},
	{source: "LogicalMaximum(0x7FFFFFFF)", kind: types.None, want: "27 FF FF FF 7F"},
	{source: "LogicalMaximum(0x7fffffff)", kind: types.None, want: "27 FF FF FF 7F"},
	{source: "LogicalMaximum(-2147483648)", kind: types.None, want: "27 00 00 00 80"},
	{source: "LogicalMaximum(2147483648)", kind: types.NumberOverflow, pos: 25},
	{source: "LogicalMaximum(0x80000000)", kind: types.NumberOverflow, pos: 25},
	{source: "LogicalMaximum(-2147483649)", kind: types.NumberOverflow, pos: 26},
	{source: "LogicalMaximum({arg4})", kind: types.ParameterOutOfRange, pos: 20},
	{source: "StringMaximum(4294967296)", kind: types.NumberOverflow, pos: 23},
	{source: "StringMaximum(42949672950)", kind: types.NumberOverflow, pos: 24},
	{source: "StringMaximum(0x100000000)", kind: types.NumberOverflow, pos: 24},
	{source: "StringMaximum(10z)", kind: types.InvalidNumericValue, pos: 16},
	{source: "ReportId(1)", kind: types.None, want: "85 01"},
	{source: "ReportId({arg4})", kind: types.None, want: "87 FF FF FF FF"},
	{source: "ReportId({arg4", kind: types.UnexpectedEndOfSource, pos: 14},
	{source: "ReportId(-1)", kind: types.NegativeNotAllowed, pos: 9},
	// usage page and usage ranges
	{source: "UsagePage(0x10000)", kind: types.ArgumentValueOutOfRange, pos: 17},
	{source: "UsagePage({arg4})", kind: types.ArgumentValueOutOfRange, pos: 16},
	{source: "UsagePage({ arg5 })", kind: types.ParameterOutOfRange, pos: 17},
	{source: "UsagePage(GenericDesktop)\nUsage(0x10000)", kind: types.ArgumentValueOutOfRange, pos: 39, want: "05 01"},
	{source: "UsagePage(GenericDesktop)\nUsage({arg4})", kind: types.ArgumentValueOutOfRange, pos: 38, want: "05 01"},
	{source: "UsagePage(GenericDesktop)\nUsageMinimum(0x10000)", kind: types.ArgumentValueOutOfRange, pos: 46, want: "05 01"},
	{source: "UsagePage(GenericDesktop)\nUsageMinimum({arg4})", kind: types.ArgumentValueOutOfRange, pos: 45, want: "05 01"},
	{source: "UsagePage(GenericDesktop)\nUsageMaximum(0x10000)", kind: types.ArgumentValueOutOfRange, pos: 46, want: "05 01"},
	{source: "UsagePage(GenericDesktop)\nUsageMaximum({arg4})", kind: types.ArgumentValueOutOfRange, pos: 45, want: "05 01"},
	{source: "UsagePage(Generic Desktop)", kind: types.InvalidArgumentName, pos: 17},
	{source: "UsagePage(Generic\nDesktop)", kind: types.InvalidArgumentName, pos: 17},
	// arguments with index
	{source: "UsagePage(Button)\nUsage(NoButtonPressed)", kind: types.None, want: "05 09 09 00"},
	{source: "UsagePage(Button)\nUsage(Button1)", kind: types.None, want: "05 09 09 01"},
	{source: "UsagePage(Button)\nUsage(Button65535)", kind: types.None, want: "05 09 0A FF FF"},
	{source: "UsagePage(MonitorEnumeratedValues)\nUsage(Enum0)", kind: types.None, want: "05 81 09 00"},
	{source: "UsagePage(Button)\nUsage(Button65536)", kind: types.ArgumentIndexOutOfRange, pos: 35, want: "05 09"},
	{source: "UsagePage(Button)\nUsage(Button01)", kind: types.InvalidArgumentName, pos: 32, want: "05 09"},
	{source: "UsagePage(Button)\nUsage(Button1x)", kind: types.UnexpectedArgumentNameChar, pos: 32, want: "05 09"},
	{source: "UsagePage(Button)\nUsage(Butto1)", kind: types.InvalidArgumentName, pos: 30, want: "05 09"},
	{source: "UsagePage(Button)\nUsage(Button4294967295)", kind: types.ArgumentIndexOutOfRange, pos: 40, want: "05 09"},
	{source: "UsagePage(Button)\nUsage(Button4294967296)", kind: types.ArgumentIndexOutOfRange, pos: 40, want: "05 09"},
	// multi-value arguments
	{source: "Input(0)", kind: types.None, want: "81 00"},
	{source: "Input(Cnst)", kind: types.None, want: "81 01"},
	{source: "Input(cnst)", kind: types.None, want: "81 01"},
	{source: "Input(CNST)", kind: types.None, want: "81 01"},
	{source: "Input(Cnst, Data)", kind: types.None, want: "81 00"},
	{source: "Input(Data, Cnst)", kind: types.None, want: "81 01"},
	{source: "Input(0,1)", kind: types.None, want: "81 01"},
	{source: "Input(2, 1, 256)", kind: types.None, want: "82 03 01"},
	{source: "Input(2, {arg1}, 0x100, Rel)", kind: types.None, want: "82 07 01"},
	{source: "Input(2, {arg1}, 0x100, Data)", kind: types.None, want: "82 02 01"},
	{source: "Input(Cnst, Var, Rel, Warp, NLin, NPrf, Null, Buf)", kind: types.None, want: "82 7F 01"},
	{source: "Output(Cnst, Var, Rel, Warp, NLin, NPrf, Null, Vol, Buf)", kind: types.None, want: "92 FF 01"},
	{source: "Feature(Cnst, Var, Rel, Warp, NLin, NPrf, Null, Vol, Buf)", kind: types.None, want: "B2 FF 01"},
	{source: "Input(0 1)", kind: types.UnexpectedToken, pos: 8},
	{source: "Input(NVol)", kind: types.InvalidArgumentName, pos: 10},
	{source: "Input(Null", kind: types.UnexpectedEndOfSource, pos: 10},
	// UnitExponent argument
	{source: "UnitExponent(0)", kind: types.None, want: "55 00"},
	{source: "UnitExponent(1)", kind: types.None, want: "55 01"},
	{source: "UnitExponent(7)", kind: types.None, want: "55 07"},
	{source: "UnitExponent(8)", kind: types.ArgumentValueOutOfRange, pos: 14},
	{source: "UnitExponent(-1)", kind: types.None, want: "55 0F"},
	{source: "UnitExponent(-8)", kind: types.None, want: "55 08"},
	{source: "UnitExponent(-9)", kind: types.ArgumentValueOutOfRange, pos: 15},
	{source: "UnitExponent(x1)", kind: types.InvalidArgumentName, pos: 15},
	// Unit argument
	{source: "Unit(1)", kind: types.None, want: "65 01"},
	{source: "Unit(0x1)", kind: types.None, want: "65 01"},
	{source: "Unit({arg1})", kind: types.None, want: "65 01"},
	{source: "Unit(None)", kind: types.None, want: "65 00"},
	{source: "Unit(SiLin)", kind: types.None, want: "65 01"},
	{source: "Unit(None())", kind: types.None, want: "65 00"},
	{source: "Unit(SiLin())", kind: types.None, want: "65 01"},
	{source: "Unit(SiRot())", kind: types.None, want: "65 02"},
	{source: "Unit(ENGLIN())", kind: types.None, want: "65 03"},
	{source: "Unit(engrot())", kind: types.None, want: "65 04"},
	{source: "Unit(None(Length))", kind: types.None, want: "65 10"},
	{source: "Unit(SiLin(Length))", kind: types.None, want: "65 11"},
	{source: "Unit  (  SiLin  (  Length  )  )  ", kind: types.None, want: "65 11"},
	{source: "Unit(SiLin(Length Mass))", kind: types.None, want: "66 11 01"},
	{source: "Unit(SiLin(Length^1Mass^1))", kind: types.None, want: "66 11 01"},
	{source: "Unit(SiLin(Length Mass^1))", kind: types.None, want: "66 11 01"},
	{source: "Unit(SiLin(Length^1 Mass))", kind: types.None, want: "66 11 01"},
	{source: "Unit(SiLin(Length^0 Mass))", kind: types.None, want: "66 01 01"},
	{source: "Unit(SiLin(Length Mass^0))", kind: types.None, want: "65 11"},
	{source: "Unit(SiLin(Length^-8Mass^7))", kind: types.None, want: "66 81 07"},
	{source: "Unit(SiLin(Length^7Mass^-1))", kind: types.None, want: "66 71 0F"},
	{source: "Unit(SiLin(Temp^3))", kind: types.None, want: "67 01 00 03 00"},
	{source: "Unit(SiLin(Length^2Mass^3Time^4temp^5CURRENT^6luminouS^7))", kind: types.None, want: "67 21 43 65 07"},
	{source: "Unit(SiLin(luminouS^7CURRENT^6temp^5Time^4Mass^3Length^2))", kind: types.None, want: "67 21 43 65 07"},
	{source: "Unit(())", kind: types.UnexpectedArgumentNameChar, pos: 5},
	{source: "Unit()", kind: types.MissingArgument, pos: 5},
	{source: "Unit(Unknown())", kind: types.InvalidUnitSystemName, pos: 12},
	{source: "Unit(None(Length$))", kind: types.UnexpectedUnitNameChar, pos: 16},
	{source: "Unit(None(LengthX))", kind: types.InvalidUnitName, pos: 17},
	{source: "Unit(None(^1))", kind: types.UnexpectedUnitNameChar, pos: 10},
	{source: "Unit(None(1))", kind: types.UnexpectedUnitNameChar, pos: 10},
	{source: "Unit(None(-1))", kind: types.UnexpectedUnitNameChar, pos: 10},
	{source: "Unit(None(Length^1-))", kind: types.InvalidUnitExponent, pos: 18},
	{source: "Unit(None(Length^x))", kind: types.InvalidUnitExponent, pos: 17},
	{source: "Unit(None(Length^8))", kind: types.InvalidUnitExponent, pos: 18},
	{source: "Unit(None(Length^-9))", kind: types.InvalidUnitExponent, pos: 19},
	{source: "Unit(None(Length^-0))", kind: types.InvalidUnitExponent, pos: 19},
	{source: "Unit(None$())", kind: types.UnexpectedArgumentNameChar, pos: 9},
	{source: "Unit(None None)", kind: types.InvalidUnitName, pos: 14},
	{source: "Unit(None() None)", kind: types.UnexpectedToken, pos: 12},
	{source: "Unit(", kind: types.UnexpectedEndOfSource, pos: 5},
	{source: "Unit(None(", kind: types.UnexpectedEndOfSource, pos: 10},
	{source: "Unit(None()", kind: types.UnexpectedEndOfSource, pos: 11},
	// semantic errors
	{source: "UsagePage", kind: types.MissingArgument, pos: 9},
	{source: "UsagePage ", kind: types.MissingArgument, pos: 9},
	{source: "UsagePage(GenericDesktop)\nUsage", kind: types.MissingArgument, pos: 31, want: "05 01"},
	{source: "UsagePage(GenericDesktop)\nUsage ", kind: types.MissingArgument, pos: 31, want: "05 01"},
	{source: "Usage", kind: types.MissingArgument, pos: 5},
	{source: "Usage ", kind: types.MissingArgument, pos: 5},
	{source: "Usage(Pointer)", kind: types.MissingUsagePage, pos: 13},
	{source: "Collection", kind: types.MissingUsageForCollection, pos: 10},
	{source: "Collection(Application)", kind: types.MissingUsageForCollection, pos: 10},
	{source: "EndCollection", kind: types.UnexpectedEndCollection, pos: 13},
	{source: "EndCollection ", kind: types.UnexpectedEndCollection, pos: 13},
	// valid, but without named Usage arguments
	{source: "UsagePage(1)\nUsage(1)", kind: types.None, want: "05 01 09 01"},
	{source: "UsagePage(0x1)\nUsage(0x1)", kind: types.None, want: "05 01 09 01"},
	{source: "UsagePage({arg1})\nUsage({arg1})", kind: types.None, want: "05 01 09 01"},
	{source: "UsagePage(1)\nUsage(Pointer)", kind: types.MissingNamedUsagePage, pos: 26, want: "05 01"},
	{source: "UsagePage(0x1)\nUsage(Pointer)", kind: types.MissingNamedUsagePage, pos: 28, want: "05 01"},
	{source: "UsagePage({arg1})\nUsage(Pointer)", kind: types.MissingNamedUsagePage, pos: 31, want: "05 01"},
	{source: "UsagePage(GenericDesktop)\nUsage(Pointer)\nCollection", kind: types.MissingArgument, pos: 51, want: "05 01 09 01"},
	{source: "UsagePage(GenericDesktop)\nUsage(Pointer)\nCollection(Application)", kind: types.MissingEndCollection, pos: 64, want: "05 01 09 01 A1 01"},
	{source: "UsagePage(GenericDesktop)\nUsage(Pointer)\nCollection(Application) ", kind: types.MissingEndCollection, pos: 65, want: "05 01 09 01 A1 01"},
	{source: "UsagePage(GenericDesktop)\nUsage(Pointer)\nCollection(Application)\nReportSize(1)\nEndCollection", kind: types.MissingReportCount, pos: 92, want: "05 01 09 01 A1 01 75 01"},
	{source: "UsagePage(GenericDesktop)\nUsage(Pointer)\nCollection(Application)\nReportSize(1)\nEndCollection ", kind: types.MissingReportCount, pos: 92, want: "05 01 09 01 A1 01 75 01"},
	{source: "UsagePage(GenericDesktop)\nUsage(Pointer)\nCollection(Application)\nReportCount(1)\nEndCollection", kind: types.MissingReportSize, pos: 93, want: "05 01 09 01 A1 01 95 01"},
	{source: "UsagePage(GenericDesktop)\nUsage(Pointer)\nCollection(Application)\nReportCount(1)\nEndCollection ", kind: types.MissingReportSize, pos: 93, want: "05 01 09 01 A1 01 95 01"},
	{source: "UsagePage(GenericDesktop)\nUsage(Pointer)\nCollection(Application)\nReportSize(1)\nReportCount(1)\nEndCollection", kind: types.None, want: "05 01 09 01 A1 01 75 01 95 01 C0"},
	{source: "UsagePage(GenericDesktop)\nUsage(Pointer)\nCollection(Application)\nReportSize(1)\nReportCount(1)\nEndCollection ", kind: types.None, want: "05 01 09 01 A1 01 75 01 95 01 C0"},
	// delimiter balance
	{source: "Delimiter(0)", kind: types.UnexpectedDelimiterClose, pos: 11},
	{source: "Delimiter(Close)", kind: types.UnexpectedDelimiterClose, pos: 15},
	{source: "Delimiter(Open)", kind: types.MissingDelimiterClose, pos: 15, want: "A9 01"},
	{source: "Delimiter(Open) ", kind: types.MissingDelimiterClose, pos: 16, want: "A9 01"},
	// miscellaneous
	{source: "", kind: types.None},
	{source: "$", kind: types.UnexpectedToken, pos: 0},
	// parameter substitution in usage ranges
	{source: "UsageMaximum({maxLedId})", kind: types.None, want: "29 05"},
}

func TestCompileCases(t *testing.T) {
	for _, tc := range compileCases {
		err, got := compileString(tc.source)
		want := testutil.ParseHex(tc.want)
		if err.Kind != tc.kind {
			t.Errorf("%q: kind = %s, want %s", tc.source, err.Kind, tc.kind)
			continue
		}
		if tc.kind != types.None && err.Offset != tc.pos {
			t.Errorf("%q: offset = %d, want %d", tc.source, err.Offset, tc.pos)
			continue
		}
		if testutil.HexString(got) != testutil.HexString(want) {
			t.Errorf("%q:\n  got:  [%s]\n  want: [%s]", tc.source, testutil.HexString(got), testutil.HexString(want))
		}
	}
}

func TestJoystickDescriptor(t *testing.T) {
	sink := &bufSink{}
	src := &testSource{data: testutil.JoystickSource(), params: testutil.JoystickParams()}
	err := Compile(src, sink, Config{})
	testutil.Equal(t, types.None, err.Kind, "joystick source must compile")
	testutil.BytesEqual(t, testutil.JoystickBytes(), sink.buf)
}

func TestSanityDescriptor(t *testing.T) {
	source := "\nUsagePage(Button)\nUsage(Button20)\nCollection(Application)\n" +
		"Unit(SiLin(Length Mass^2))\nInput(3, Rel, {arg2})\n0x13\n{arg1}\nEndCollection\n"
	sink := &bufSink{}
	src := &testSource{data: []byte(source), params: map[string]int64{"arg1": 1, "arg2": 2, "arg3": 3}}
	err := Compile(src, sink, Config{})
	testutil.Equal(t, types.None, err.Kind)
	testutil.BytesEqual(t, testutil.ParseHex("05 09 09 14 A1 01 66 11 02 81 07 13 01 C0"), sink.buf)
}

// A NUL byte ends the source early, exactly like the reference
// implementation's null-terminated buffers.
func TestNulTerminatesSource(t *testing.T) {
	sink := &bufSink{}
	src := &testSource{data: []byte("Push\x00Garbage$$$")}
	err := Compile(src, sink, Config{})
	testutil.Equal(t, types.None, err.Kind)
	testutil.BytesEqual(t, []byte{0xA4}, sink.buf)
}

// A refused write stops emission but not parsing: the sink holds a
// prefix of the full output and structural errors are still found.
func TestSinkRefusalStopsEmission(t *testing.T) {
	full := &bufSink{}
	src := &testSource{data: testutil.JoystickSource(), params: testutil.JoystickParams()}
	err := Compile(src, full, Config{})
	testutil.Equal(t, types.None, err.Kind)

	bounded := &boundedSink{cap: 10}
	err = Compile(src, bounded, Config{})
	testutil.Equal(t, types.None, err.Kind)
	testutil.Equal(t, 10, bounded.Position())
	testutil.BytesEqual(t, full.buf[:10], bounded.buf)
}

func collectNotices(t *testing.T, source string) []types.Notice {
	t.Helper()
	var notices []types.Notice
	sink := &bufSink{}
	src := &testSource{data: []byte(source), params: testParams}
	Compile(src, sink, Config{Notify: func(n types.Notice) { notices = append(notices, n) }})
	return notices
}

func noticeCodes(notices []types.Notice) []string {
	codes := make([]string, len(notices))
	for i, n := range notices {
		codes[i] = n.Code
	}
	return codes
}

func TestNotices(t *testing.T) {
	notices := collectNotices(t, "UsagePage(1)")
	testutil.SliceEqual(t, []string{types.NoticeNumericUsagePage}, noticeCodes(notices))

	notices = collectNotices(t, "Delimiter(1)Delimiter(0)")
	testutil.SliceEqual(t,
		[]string{types.NoticeDelimiterByNumber, types.NoticeDelimiterByNumber},
		noticeCodes(notices))

	notices = collectNotices(t, "Push Pop")
	testutil.SliceEqual(t, []string{types.NoticeRedundantPushPop}, noticeCodes(notices))

	notices = collectNotices(t, "0x00FF 007 ")
	testutil.SliceEqual(t,
		[]string{types.NoticeOversizedLiteral, types.NoticeOversizedLiteral},
		noticeCodes(notices))

	// clean input produces none, and notices never change the output
	notices = collectNotices(t, "UsagePage(GenericDesktop) Delimiter(Open) Delimiter(Close) Push 255")
	testutil.Len(t, notices, 0)
}

func TestNoticesDoNotChangeOutput(t *testing.T) {
	source := "Delimiter(1)Delimiter(0) UsagePage(1)"
	plainErr, plain := compileString(source)

	sink := &bufSink{}
	src := &testSource{data: []byte(source), params: testParams}
	err := Compile(src, sink, Config{Notify: func(types.Notice) {}})
	testutil.Equal(t, plainErr.Kind, err.Kind)
	testutil.BytesEqual(t, plain, sink.buf)
}

func TestTraceLogging(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: types.LevelTrace}))
	sink := &bufSink{}
	src := &testSource{data: []byte("UsagePage(GenericDesktop)")}
	err := Compile(src, sink, Config{Logger: types.Logger{L: logger}})
	testutil.Equal(t, types.None, err.Kind)
	testutil.Greater(t, out.Len(), 0, "trace output expected")
	testutil.Contains(t, out.String(), "flags=ARG_LIST")
}
