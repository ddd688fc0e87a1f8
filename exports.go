package hiddesc

import (
	"log/slog"

	"github.com/hiddesc/hiddesc/internal/types"
)

// LevelTrace is a custom log level more verbose than Debug. Use for
// per-byte state machine tracing.
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// Position is a UTF-8-aware location in source text.
type Position = types.Position

// Kind is the closed set of compile outcomes. None means success.
type Kind = types.Kind

// Compile error kinds. The compiler tests hold one witness input for
// each kind except Internal, which only a malformed encoding table
// raises.
const (
	None                       = types.None
	Internal                   = types.Internal
	UnexpectedToken            = types.UnexpectedToken
	NumberOverflow             = types.NumberOverflow
	ParameterOutOfRange        = types.ParameterOutOfRange
	UnexpectedEndOfSource      = types.UnexpectedEndOfSource
	ExpectedValidParameterName = types.ExpectedValidParameterName
	InvalidItemName            = types.InvalidItemName
	MissingArgument            = types.MissingArgument
	MissingNamedUsagePage      = types.MissingNamedUsagePage
	MissingUsagePage           = types.MissingUsagePage
	MissingUsageForCollection  = types.MissingUsageForCollection
	ThisItemHasNoArguments     = types.ThisItemHasNoArguments
	UnexpectedItemNameChar     = types.UnexpectedItemNameChar
	InvalidArgumentName        = types.InvalidArgumentName
	ArgumentValueOutOfRange    = types.ArgumentValueOutOfRange
	ArgumentIndexOutOfRange    = types.ArgumentIndexOutOfRange
	UnexpectedArgumentNameChar = types.UnexpectedArgumentNameChar
	UnexpectedUnitNameChar     = types.UnexpectedUnitNameChar
	InvalidUnitSystemName      = types.InvalidUnitSystemName
	InvalidUnitName            = types.InvalidUnitName
	InvalidUnitExponent        = types.InvalidUnitExponent
	UnexpectedEndCollection    = types.UnexpectedEndCollection
	UnexpectedDelimiterClose   = types.UnexpectedDelimiterClose
	UnexpectedDelimiterValue   = types.UnexpectedDelimiterValue
	MissingEndCollection       = types.MissingEndCollection
	MissingDelimiterClose      = types.MissingDelimiterClose
	MissingReportSize          = types.MissingReportSize
	MissingReportCount         = types.MissingReportCount
	InvalidHexValue            = types.InvalidHexValue
	InvalidNumericValue        = types.InvalidNumericValue
	NegativeNotAllowed         = types.NegativeNotAllowed
)

// Notice is a non-fatal observation collected by Lint. Notices never
// change whether a source compiles or what bytes it compiles to.
type Notice = types.Notice

// Notice severity levels.
const (
	SeverityWarning = types.SeverityWarning
	SeverityStyle   = types.SeverityStyle
	SeverityInfo    = types.SeverityInfo
)

// Notice codes emitted by Lint.
const (
	NoticeNumericUsagePage  = types.NoticeNumericUsagePage
	NoticeOversizedLiteral  = types.NoticeOversizedLiteral
	NoticeRedundantPushPop  = types.NoticeRedundantPushPop
	NoticeDelimiterByNumber = types.NoticeDelimiterByNumber
)
