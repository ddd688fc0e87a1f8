package types

// Kind is the closed set of compile outcomes. None means success. The
// numeric order is stable; tools may persist it.
type Kind int

const (
	None Kind = iota
	Internal
	UnexpectedToken
	NumberOverflow
	ParameterOutOfRange
	UnexpectedEndOfSource
	ExpectedValidParameterName
	InvalidItemName
	MissingArgument
	MissingNamedUsagePage
	MissingUsagePage
	MissingUsageForCollection
	ThisItemHasNoArguments
	UnexpectedItemNameChar
	InvalidArgumentName
	ArgumentValueOutOfRange
	ArgumentIndexOutOfRange
	UnexpectedArgumentNameChar
	UnexpectedUnitNameChar
	InvalidUnitSystemName
	InvalidUnitName
	InvalidUnitExponent
	UnexpectedEndCollection
	UnexpectedDelimiterClose
	UnexpectedDelimiterValue
	MissingEndCollection
	MissingDelimiterClose
	MissingReportSize
	MissingReportCount
	InvalidHexValue
	InvalidNumericValue
	NegativeNotAllowed
)

var kindStrings = [...]string{
	None:                       "no error",
	Internal:                   "internal error",
	UnexpectedToken:            "unexpected token",
	NumberOverflow:             "number overflow",
	ParameterOutOfRange:        "parameter value out of range",
	UnexpectedEndOfSource:      "unexpected end of source",
	ExpectedValidParameterName: "expected a valid parameter name here",
	InvalidItemName:            "invalid item name",
	MissingArgument:            "missing argument",
	MissingNamedUsagePage:      "missing named usage page",
	MissingUsagePage:           "missing usage page",
	MissingUsageForCollection:  "missing usage for collection",
	ThisItemHasNoArguments:     "this item has no arguments",
	UnexpectedItemNameChar:     "unexpected item name character",
	InvalidArgumentName:        "invalid argument name",
	ArgumentValueOutOfRange:    "argument value out of range",
	ArgumentIndexOutOfRange:    "argument index out of range",
	UnexpectedArgumentNameChar: "unexpected argument name character",
	UnexpectedUnitNameChar:     "unexpected unit name character",
	InvalidUnitSystemName:      "invalid unit system name",
	InvalidUnitName:            "invalid unit name",
	InvalidUnitExponent:        "invalid unit exponent",
	UnexpectedEndCollection:    "unexpected EndCollection",
	UnexpectedDelimiterClose:   "unexpected DelimiterClose",
	UnexpectedDelimiterValue:   "unexpected Delimiter value",
	MissingEndCollection:       "missing EndCollection",
	MissingDelimiterClose:      "missing DelimiterClose",
	MissingReportSize:          "missing ReportSize",
	MissingReportCount:         "missing ReportCount",
	InvalidHexValue:            "invalid hex value",
	InvalidNumericValue:        "invalid numeric value",
	NegativeNotAllowed:         "negative numbers are not allowed in this context",
}

// String returns the human-readable message for a Kind.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindStrings) && kindStrings[k] != "" {
		return kindStrings[k]
	}
	return "unknown error"
}

// Error makes a Kind usable as an errors.Is target for compile errors.
func (k Kind) Error() string {
	return k.String()
}
