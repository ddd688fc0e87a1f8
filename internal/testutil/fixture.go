package testutil

// The joystick fixture is the compiler's end-to-end regression oracle:
// the HID 1.11 appendix D.1 example extended with bare literals,
// parameters, Push/Pop and a unit description, together with the byte
// stream it must compile to when the parameter arg1 is 1. Multiple test
// packages compare against it, so it lives here rather than in any one
// of them.

// JoystickSource returns the joystick descriptor source.
func JoystickSource() []byte {
	return []byte(joystickSource)
}

// JoystickParams returns the parameter set the fixture is compiled
// with.
func JoystickParams() map[string]int64 {
	return map[string]int64{"arg1": 1}
}

// JoystickBytes returns the expected 94-byte descriptor.
func JoystickBytes() []byte {
	return ParseHex(joystickHex)
}

const joystickSource = `0xFF
254 819 189 481 0x1242 {arg1}
UsagePage(GenericDesktop)
Usage(Joystick)
Collection(Application)
	UsagePage(GenericDesktop)
	Usage(Pointer)
	Collection(Physical)
		LogicalMinimum(-127)
		LogicalMaximum(127)
		ReportSize(8)
		ReportCount(2)
		Push
		Usage(X)
		Usage(Y)
		Input(Data, Var, Abs)
		Usage(HatSwitch)
		LogicalMinimum(0)
		LogicalMaximum(3)
		PhysicalMinimum(0)
		PhysicalMaximum(270)
		Unit(EngRot(Length)) # Degrees
		ReportCount(1)
		ReportSize(4)
		Input(Data, Var, Abs, Null)
		LogicalMinimum(0)
		LogicalMaximum(1)
		ReportCount(2)
		ReportSize(1)
		UsagePage(Button)
		UsageMinimum(Button1)
		UsageMaximum(Button2)
		Unit(None())
		Input(Data, Var, Abs)
	EndCollection
	UsageMinimum(Button3)
	UsageMinimum(Button4)
	Input(Data, Var, Abs)
	# use LogicalMinimum/LogicalMaximum from before Push
	Pop
	UsagePage(SimulationControls)
	Usage(Throttle)
	ReportCount({arg1})
	ReportSize(1)
	Input(Data, Var, Abs)
EndCollection
0xFF
`

const joystickHex = `FF FE 33 03 BD E1 01 42 12 01 05 01 09 04 A1 01
05 01 09 01 A1 00 15 81 25 7F 75 08 95 02 A4 09
30 09 31 81 02 09 39 15 00 25 03 35 00 46 0E 01
65 14 95 01 75 04 81 42 15 00 25 01 95 02 75 01
05 09 19 01 29 02 65 00 81 02 C0 19 03 19 04 81
02 B4 05 02 09 BB 95 01 75 01 81 02 C0 FF`
