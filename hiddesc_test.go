package hiddesc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hiddesc/hiddesc"
	"github.com/hiddesc/hiddesc/internal/testutil"
)

// compileToBytes compiles src into a fresh buffer large enough for any
// test descriptor and returns the written bytes.
func compileToBytes(t *testing.T, src hiddesc.Source) []byte {
	t.Helper()
	w := hiddesc.NewBufferWriter(make([]byte, 4096))
	require.NoError(t, hiddesc.Compile(src, w))
	return w.Bytes()
}

// The end-to-end scenarios: one source per major feature, with the
// exact byte stream it must produce.
func TestScenarios(t *testing.T) {
	cases := []struct {
		name   string
		source string
		params map[string]int64
		want   string // hex
	}{
		{
			name:   "minimal mouse",
			source: "UsagePage(GenericDesktop) Usage(Mouse)",
			want:   "05 01 09 02",
		},
		{
			name:   "button range",
			source: "UsagePage(Button) Usage(Button1) Usage(Button65535)",
			want:   "05 09 09 01 0A FF FF",
		},
		{
			name:   "unit SI linear centimeter",
			source: "Unit(SiLin(Length))",
			want:   "65 11",
		},
		{
			name:   "unit with mixed exponents",
			source: "Unit(SiLin(Length^-8 Mass^7))",
			want:   "66 81 07",
		},
		{
			name:   "signed logical bound wide",
			source: "LogicalMaximum(32768)",
			want:   "27 00 80 00 00",
		},
		{
			name:   "signed logical bound narrow",
			source: "LogicalMaximum(-1)",
			want:   "25 FF",
		},
		{
			name:   "parameter substitution",
			source: "UsageMaximum({maxLedId})",
			params: map[string]int64{"maxLedId": 5},
			want:   "29 05",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := hiddesc.FromString(tc.source).SetAll(tc.params)
			got := compileToBytes(t, src)
			require.Equal(t, testutil.ParseHex(tc.want), got)
		})
	}
}

func TestScenarioErrors(t *testing.T) {
	cases := []struct {
		name   string
		source string
		kind   hiddesc.Kind
	}{
		{
			name:   "unbalanced collection",
			source: "UsagePage(GenericDesktop) Usage(Pointer) Collection(Application)",
			kind:   hiddesc.MissingEndCollection,
		},
		{
			name:   "named usage without page",
			source: "Usage(Pointer)",
			kind:   hiddesc.MissingUsagePage,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := hiddesc.Compile(hiddesc.FromString(tc.source), hiddesc.NullWriter{})
			require.Error(t, err)
			require.ErrorIs(t, err, tc.kind)
		})
	}
}

func joystickSource() *hiddesc.MapSource {
	return hiddesc.FromBytes(testutil.JoystickSource()).SetAll(testutil.JoystickParams())
}

func TestJoystickDescriptor(t *testing.T) {
	got := compileToBytes(t, joystickSource())
	require.Equal(t, testutil.JoystickBytes(), got)
}

// Size agreement: CompiledSize equals the byte count of a real compile,
// and CompileError agrees on success, for each source below.
func TestOperationAgreement(t *testing.T) {
	sources := []*hiddesc.MapSource{
		hiddesc.FromString("UsagePage(GenericDesktop) Usage(Mouse)"),
		hiddesc.FromString("Unit(SiLin(Length^-8 Mass^7))"),
		joystickSource(),
	}
	for _, src := range sources {
		got := compileToBytes(t, src)
		require.Equal(t, len(got), hiddesc.CompiledSize(src))
		require.True(t, hiddesc.CompileError(src).Ok())
	}

	bad := hiddesc.FromString("Usage(Pointer)")
	require.Equal(t, 0, hiddesc.CompiledSize(bad))
	require.Equal(t, hiddesc.MissingUsagePage, hiddesc.CompileError(bad).Kind)
	require.Error(t, hiddesc.Compile(bad, hiddesc.NullWriter{}))
}

// Prefix preservation: a buffer at least as large as the descriptor
// yields identical bytes, an exactly-sized buffer included.
func TestPrefixPreservation(t *testing.T) {
	src := joystickSource()
	full := compileToBytes(t, src)

	exact := hiddesc.NewBufferWriter(make([]byte, len(full)))
	require.NoError(t, hiddesc.Compile(src, exact))
	require.Equal(t, full, exact.Bytes())

	// an undersized buffer keeps a prefix; the compile itself still
	// succeeds since truncation is the sink's condition, not the
	// source's
	short := hiddesc.NewBufferWriter(make([]byte, 7))
	require.NoError(t, hiddesc.Compile(src, short))
	require.Equal(t, full[:7], short.Bytes())
}

func TestCallbackWriter(t *testing.T) {
	var got []byte
	w := hiddesc.NewCallbackWriter(func(pos int, b byte) bool {
		require.Equal(t, len(got), pos)
		got = append(got, b)
		return true
	})
	src := hiddesc.FromString("UsagePage(GenericDesktop) Usage(Mouse)")
	require.NoError(t, hiddesc.Compile(src, w))
	require.Equal(t, testutil.ParseHex("05 01 09 02"), got)
	require.Equal(t, 4, w.Position())

	// a refusing callback stops emission after the accepted prefix
	var kept []byte
	limited := hiddesc.NewCallbackWriter(func(pos int, b byte) bool {
		if pos >= 2 {
			return false
		}
		kept = append(kept, b)
		return true
	})
	require.NoError(t, hiddesc.Compile(src, limited))
	require.Equal(t, testutil.ParseHex("05 01"), kept)
	require.Equal(t, 2, limited.Position())
}

// Position fidelity with multi-byte UTF-8: offsets count code points,
// lines and columns start at 1, only a line feed resets the column.
func TestErrorPosition(t *testing.T) {
	src := hiddesc.FromString("# π\nUsage(Pointer)")
	e := hiddesc.CompileError(src)
	require.Equal(t, hiddesc.MissingUsagePage, e.Kind)
	require.Equal(t, 17, e.Pos.Offset, "code points, not bytes")
	require.Equal(t, 2, e.Pos.Line)
	require.Equal(t, 14, e.Pos.Column)

	err := hiddesc.Compile(src, hiddesc.NullWriter{})
	require.EqualError(t, err, "2:14: missing usage page")
}

func TestErrorsIs(t *testing.T) {
	err := hiddesc.Compile(hiddesc.FromString("Delimiter(Open)"), hiddesc.NullWriter{})
	require.True(t, errors.Is(err, hiddesc.MissingDelimiterClose))
	require.False(t, errors.Is(err, hiddesc.MissingEndCollection))

	var e *hiddesc.Error
	require.True(t, errors.As(err, &e))
	require.Equal(t, hiddesc.MissingDelimiterClose, e.Kind)
}

func TestMapSourceFindIsByteExact(t *testing.T) {
	src := hiddesc.FromString("{ maxLedId }").Set("maxLedId", 5)
	e := hiddesc.CompileError(src)
	require.Equal(t, hiddesc.ExpectedValidParameterName, e.Kind)

	v, ok := src.Find("maxLedId")
	require.True(t, ok)
	require.Equal(t, int64(5), v)
	_, ok = src.Find(" maxLedId ")
	require.False(t, ok)
}

func TestLint(t *testing.T) {
	notices, e := hiddesc.Lint(hiddesc.FromString("UsagePage(1) Delimiter(1) Delimiter(0)"))
	require.True(t, e.Ok())
	require.Len(t, notices, 3)
	require.Equal(t, hiddesc.NoticeNumericUsagePage, notices[0].Code)
	require.Equal(t, hiddesc.NoticeDelimiterByNumber, notices[1].Code)
	require.Contains(t, notices[0].String(), "[numeric-usage-page]")

	// lint agrees with compile on the outcome and carries no notices
	// for clean sources
	notices, e = hiddesc.Lint(hiddesc.FromString("UsagePage(GenericDesktop) Usage(Mouse)"))
	require.True(t, e.Ok())
	require.Empty(t, notices)

	_, e = hiddesc.Lint(hiddesc.FromString("Usage(Pointer)"))
	require.Equal(t, hiddesc.MissingUsagePage, e.Kind)
}
