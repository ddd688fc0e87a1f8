package encoding

// ItemMap is the top-level item dictionary. Every opcode already embeds
// tag<<4 | type<<2 with the two width bits zeroed; the compiler ORs in
// the width selected by the minimum-width encoder at emission time.
var ItemMap = Table{
	{Name: "Input", Value: 0x80, Child: &InputArgMap},
	{Name: "Output", Value: 0x90, Child: &OutputFeatureArgMap},
	{Name: "Feature", Value: 0xB0, Child: &OutputFeatureArgMap},
	{Name: "Collection", Value: 0xA0, Child: &ColArgMap},
	{Name: "EndCollection", Value: 0xC0, Child: &EndCol},
	{Name: "UsagePage", Value: 0x04, Child: &UsagePageMap},
	{Name: "LogicalMinimum", Value: 0x14, Child: &SignedNumArg},
	{Name: "LogicalMaximum", Value: 0x24, Child: &SignedNumArg},
	{Name: "PhysicalMinimum", Value: 0x34, Child: &SignedNumArg},
	{Name: "PhysicalMaximum", Value: 0x44, Child: &SignedNumArg},
	{Name: "UnitExponent", Value: 0x54, Child: &UnitExpMap},
	{Name: "Unit", Value: 0x64, Child: &UnitSystemMap},
	{Name: "ReportSize", Value: 0x74, Child: &NumArg},
	{Name: "ReportId", Value: 0x84, Child: &NumArg},
	{Name: "ReportCount", Value: 0x94, Child: &NumArg},
	{Name: "Push", Value: 0xA4},
	{Name: "Pop", Value: 0xB4},
	{Name: "Usage", Value: 0x08, Child: &UsageArg},
	{Name: "UsageMinimum", Value: 0x18, Child: &UsageArg},
	{Name: "UsageMaximum", Value: 0x28, Child: &UsageArg},
	{Name: "DesignatorIndex", Value: 0x38, Child: &NumArg},
	{Name: "DesignatorMinimum", Value: 0x48, Child: &NumArg},
	{Name: "DesignatorMaximum", Value: 0x58, Child: &NumArg},
	{Name: "StringIndex", Value: 0x78, Child: &NumArg},
	{Name: "StringMinimum", Value: 0x88, Child: &NumArg},
	{Name: "StringMaximum", Value: 0x98, Child: &NumArg},
	{Name: "Delimiter", Value: 0xA8, Child: &DelimMap},
}

// ColArgMap is the Collection(...) argument map, HID 1.11 ch. 6.2.2.6.
var ColArgMap = Table{
	{Name: "Physical", Value: 0x00},
	{Name: "Application", Value: 0x01},
	{Name: "Logical", Value: 0x02},
	{Name: "Report", Value: 0x03},
	{Name: "NamedArray", Value: 0x04},
	{Name: "UsageSwitch", Value: 0x05},
	{Name: "UsageModifier", Value: 0x06},
}

// InputArgMap is the Input(...) flag argument map, HID 1.11 ch. 6.2.2.5.
// Input items carry no Volatile bit.
var InputArgMap = Table{
	{Name: "Data", Value: 0x001, Child: &ClearArg},
	{Name: "Cnst", Value: 0x001},
	{Name: "Ary", Value: 0x002, Child: &ClearArg},
	{Name: "Var", Value: 0x002},
	{Name: "Abs", Value: 0x004, Child: &ClearArg},
	{Name: "Rel", Value: 0x004},
	{Name: "NWarp", Value: 0x008, Child: &ClearArg},
	{Name: "Warp", Value: 0x008},
	{Name: "Lin", Value: 0x010, Child: &ClearArg},
	{Name: "NLin", Value: 0x010},
	{Name: "Prf", Value: 0x020, Child: &ClearArg},
	{Name: "NPrf", Value: 0x020},
	{Name: "NNull", Value: 0x040, Child: &ClearArg},
	{Name: "Null", Value: 0x040},
	{Name: "Bit", Value: 0x100, Child: &ClearArg},
	{Name: "Buf", Value: 0x100},
}

// OutputFeatureArgMap is the Output(...)/Feature(...) flag argument map,
// HID 1.11 ch. 6.2.2.5. Unlike Input, these carry a Volatile bit (0x080).
var OutputFeatureArgMap = Table{
	{Name: "Data", Value: 0x001, Child: &ClearArg},
	{Name: "Cnst", Value: 0x001},
	{Name: "Ary", Value: 0x002, Child: &ClearArg},
	{Name: "Var", Value: 0x002},
	{Name: "Abs", Value: 0x004, Child: &ClearArg},
	{Name: "Rel", Value: 0x004},
	{Name: "NWarp", Value: 0x008, Child: &ClearArg},
	{Name: "Warp", Value: 0x008},
	{Name: "Lin", Value: 0x010, Child: &ClearArg},
	{Name: "NLin", Value: 0x010},
	{Name: "Prf", Value: 0x020, Child: &ClearArg},
	{Name: "NPrf", Value: 0x020},
	{Name: "NNull", Value: 0x040, Child: &ClearArg},
	{Name: "Null", Value: 0x040},
	{Name: "NVol", Value: 0x080, Child: &ClearArg},
	{Name: "Vol", Value: 0x080},
	{Name: "Bit", Value: 0x100, Child: &ClearArg},
	{Name: "Buf", Value: 0x100},
}

// UnitExpMap maps a unit exponent literal ("-8".."7") to its 4-bit
// two's-complement nibble code, HID 1.11 ch. 6.2.2.7.
var UnitExpMap = Table{
	{Name: "0", Value: 0x0},
	{Name: "1", Value: 0x1},
	{Name: "2", Value: 0x2},
	{Name: "3", Value: 0x3},
	{Name: "4", Value: 0x4},
	{Name: "5", Value: 0x5},
	{Name: "6", Value: 0x6},
	{Name: "7", Value: 0x7},
	{Name: "-8", Value: 0x8},
	{Name: "-7", Value: 0x9},
	{Name: "-6", Value: 0xA},
	{Name: "-5", Value: 0xB},
	{Name: "-4", Value: 0xC},
	{Name: "-3", Value: 0xD},
	{Name: "-2", Value: 0xE},
	{Name: "-1", Value: 0xF},
}

// UnitMap maps a base dimension name to its nibble index, HID 1.11 ch. 6.2.2.7.
var UnitMap = Table{
	{Name: "Length", Value: 1, Child: &UnitExpMap},
	{Name: "Mass", Value: 2, Child: &UnitExpMap},
	{Name: "Time", Value: 3, Child: &UnitExpMap},
	{Name: "Temp", Value: 4, Child: &UnitExpMap},
	{Name: "Current", Value: 5, Child: &UnitExpMap},
	{Name: "Luminous", Value: 6, Child: &UnitExpMap},
}

// UnitSystemMap maps a unit system name to its system nibble value, HID
// 1.11 ch. 6.2.2.7. The unit description is generalized across systems;
// e.g. SiLin's Length dimension is centimeters, EngLin's is inches.
var UnitSystemMap = Table{
	{Name: "None", Value: 0x00, Child: &UnitMap},
	{Name: "SiLin", Value: 0x01, Child: &UnitMap},
	{Name: "SiRot", Value: 0x02, Child: &UnitMap},
	{Name: "EngLin", Value: 0x03, Child: &UnitMap},
	{Name: "EngRot", Value: 0x04, Child: &UnitMap},
}

// DelimMap is the Delimiter(...) argument map, HID 1.11 ch. 6.2.2.8.
var DelimMap = Table{
	{Name: "Close", Value: 0x00},
	{Name: "Open", Value: 0x01},
}
