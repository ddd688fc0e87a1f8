package encoding

// UsagePageMap is the master usage-page registry consulted by a named
// UsagePage(...) item. Page numbers and names are HID 1.11 / HID Usage
// Tables assigned values; 0x11 and 0x13 are reserved in the registry
// and intentionally absent.
var UsagePageMap = Table{
	{Name: "GenericDesktop", Value: 0x01, Child: &GenDeskMap},
	{Name: "SimulationControls", Value: 0x02, Child: &SimCtrlMap},
	{Name: "VrControls", Value: 0x03, Child: &VrCtrlMap},
	{Name: "SportControls", Value: 0x04, Child: &SportCtrlMap},
	{Name: "GameControls", Value: 0x05, Child: &GameCtrlMap},
	{Name: "GenericDeviceControls", Value: 0x06, Child: &GenDevCtrlMap},
	{Name: "Keyboard", Value: 0x07, Child: &KeyboardMap},
	{Name: "Led", Value: 0x08, Child: &LedMap},
	{Name: "Button", Value: 0x09, Child: &ButtonMap},
	{Name: "Ordinal", Value: 0x0A, Child: &OrdinalMap},
	{Name: "TelephonyDevice", Value: 0x0B, Child: &TelDevMap},
	{Name: "Consumer", Value: 0x0C, Child: &ConsumerMap},
	{Name: "Digitizers", Value: 0x0D, Child: &DigitizersMap},
	{Name: "Haptics", Value: 0x0E, Child: &HapticsMap},
	{Name: "Pid", Value: 0x0F, Child: &PidMap},
	{Name: "Unicode", Value: 0x10, Child: &UnicodeMap},
	{Name: "EyeAndHeadTrackers", Value: 0x12, Child: &EyeHeadMap},
	{Name: "AuxiliaryDisplay", Value: 0x14, Child: &AuxDisplayMap},
	{Name: "Sensors", Value: 0x20, Child: &SensorMap},
	{Name: "MediacalInstrument", Value: 0x40, Child: &MedInstMap},
	{Name: "BrailleDisplay", Value: 0x41, Child: &BrailleMap},
	{Name: "LightingAndIllumination", Value: 0x59, Child: &LightMap},
	{Name: "Monitor", Value: 0x80, Child: &MonitorMap},
	{Name: "MonitorEnumeratedValues", Value: 0x81, Child: &MonitorEnumMap},
	{Name: "VesaVirtualControls", Value: 0x82, Child: &VesaCtrlMap},
	{Name: "Power", Value: 0x84, Child: &PwrDevMap},
	{Name: "BarCodeScanner", Value: 0x8C, Child: &BarcodeMap},
	{Name: "WeighingDevices", Value: 0x8D, Child: &WeightDevMap},
	{Name: "MagneticStripeReaderDevices", Value: 0x8E, Child: &MsrMap},
	{Name: "CameraControl", Value: 0x90, Child: &CameraCtrlMap},
	{Name: "Arcade", Value: 0x91, Child: &ArcadeMap},
	{Name: "GamingDevice", Value: 0x92},
	{Name: "FidoAlliance", Value: 0xF1D0, Child: &FidoMap},
}

// GenDeskMap is the Generic Desktop usage page, HID Usage Tables ch. 4.
var GenDeskMap = Table{
	{Name: "Pointer", Value: 0x01, UsageType: UTCP},
	{Name: "Mouse", Value: 0x02, UsageType: UTCA},
	{Name: "Joystick", Value: 0x04, UsageType: UTCA},
	{Name: "Gamepad", Value: 0x05, UsageType: UTCA},
	{Name: "Keyboard", Value: 0x06, UsageType: UTCA},
	{Name: "Keypad", Value: 0x07, UsageType: UTCA},
	{Name: "MultiAxisController", Value: 0x08, UsageType: UTCA},
	{Name: "TabletPcSystemControls", Value: 0x09, UsageType: UTCA},
	{Name: "WaterCoolingDevice", Value: 0x0A, UsageType: UTCA},
	{Name: "ComputerChassisDevice", Value: 0x0B, UsageType: UTCA},
	{Name: "WirelessRadioControls", Value: 0x0C, UsageType: UTCA},
	{Name: "PortableDeviceControl", Value: 0x0D, UsageType: UTCA},
	{Name: "SystemMultiAxisController", Value: 0x0E, UsageType: UTCA},
	{Name: "SpatialController", Value: 0x0F, UsageType: UTCA},
	{Name: "AssistiveControl", Value: 0x10, UsageType: UTCA},
	{Name: "DeviceDock", Value: 0x11, UsageType: UTCA},
	{Name: "DockableDevice", Value: 0x12, UsageType: UTCA},
	{Name: "X", Value: 0x30, UsageType: UTDV},
	{Name: "Y", Value: 0x31, UsageType: UTDV},
	{Name: "Z", Value: 0x32, UsageType: UTDV},
	{Name: "Rx", Value: 0x33, UsageType: UTDV},
	{Name: "Ry", Value: 0x34, UsageType: UTDV},
	{Name: "Rz", Value: 0x35, UsageType: UTDV},
	{Name: "Slider", Value: 0x36, UsageType: UTDV},
	{Name: "Dial", Value: 0x37, UsageType: UTDV},
	{Name: "Wheel", Value: 0x38, UsageType: UTDV},
	{Name: "HatSwitch", Value: 0x39, UsageType: UTDV},
	{Name: "CountedBuffer", Value: 0x3A, UsageType: UTCL},
	{Name: "ByteCount", Value: 0x3B, UsageType: UTDV},
	{Name: "MotionWakeup", Value: 0x3C, UsageType: UTOSC | UTDF},
	{Name: "Start", Value: 0x3D, UsageType: UTOOC},
	{Name: "Select", Value: 0x3E, UsageType: UTOOC},
	{Name: "Vx", Value: 0x40, UsageType: UTDV},
	{Name: "Vy", Value: 0x41, UsageType: UTDV},
	{Name: "Vz", Value: 0x42, UsageType: UTDV},
	{Name: "Vbrx", Value: 0x43, UsageType: UTDV},
	{Name: "Vbry", Value: 0x44, UsageType: UTDV},
	{Name: "Vbrz", Value: 0x45, UsageType: UTDV},
	{Name: "Vno", Value: 0x46, UsageType: UTDV},
	{Name: "FeatureNotification", Value: 0x47, UsageType: UTDV | UTDF},
	{Name: "ResolutionMultiplier", Value: 0x48, UsageType: UTDV},
	{Name: "Qx", Value: 0x49, UsageType: UTDV},
	{Name: "Qy", Value: 0x4A, UsageType: UTDV},
	{Name: "Qz", Value: 0x4B, UsageType: UTDV},
	{Name: "Qw", Value: 0x4C, UsageType: UTDV},
	{Name: "SystemControl", Value: 0x80, UsageType: UTCA},
	{Name: "SystemPowerDown", Value: 0x81, UsageType: UTOSC},
	{Name: "SystemSleep", Value: 0x82, UsageType: UTOSC},
	{Name: "SystemWakeUp", Value: 0x83, UsageType: UTOSC},
	{Name: "SystemContextMenu", Value: 0x84, UsageType: UTOSC},
	{Name: "SystemMainMenu", Value: 0x85, UsageType: UTOSC},
	{Name: "SystemAppMenu", Value: 0x86, UsageType: UTOSC},
	{Name: "SystemMenuHelp", Value: 0x87, UsageType: UTOSC},
	{Name: "SystemMenuExit", Value: 0x88, UsageType: UTOSC},
	{Name: "SystemMenuSelect", Value: 0x89, UsageType: UTOSC},
	{Name: "SystemMenuRight", Value: 0x8A, UsageType: UTRTC},
	{Name: "SystemMenuLeft", Value: 0x8B, UsageType: UTRTC},
	{Name: "SystemMenuUp", Value: 0x8C, UsageType: UTRTC},
	{Name: "SystemMenuDown", Value: 0x8D, UsageType: UTRTC},
	{Name: "SystemColdRestart", Value: 0x8E, UsageType: UTOSC},
	{Name: "SystemWarmRestart", Value: 0x8F, UsageType: UTOSC},
	{Name: "DpadUp", Value: 0x90, UsageType: UTOOC},
	{Name: "DpadDown", Value: 0x91, UsageType: UTOOC},
	{Name: "DpadRight", Value: 0x92, UsageType: UTOOC},
	{Name: "DpadLeft", Value: 0x93, UsageType: UTOOC},
	{Name: "IndexTrigger", Value: 0x94, UsageType: UTMC | UTDV},
	{Name: "PalmTrigger", Value: 0x95, UsageType: UTMC | UTDV},
	{Name: "Thumbstick", Value: 0x96, UsageType: UTCP},
	{Name: "SystemFunctionShift", Value: 0x97, UsageType: UTMC},
	{Name: "SystemFunctionShiftLock", Value: 0x98, UsageType: UTOOC},
	{Name: "SystemFunctionShiftLockIndicator", Value: 0x99, UsageType: UTDV},
	{Name: "SystemDismissNotification", Value: 0x9A, UsageType: UTOSC},
	{Name: "SystemDoNotDisturb", Value: 0x9B, UsageType: UTOOC},
	{Name: "SystemDock", Value: 0xA0, UsageType: UTOSC},
	{Name: "SystemUndock", Value: 0xA1, UsageType: UTOSC},
	{Name: "SystemSetup", Value: 0xA2, UsageType: UTOSC},
	{Name: "SystemBreak", Value: 0xA3, UsageType: UTOSC},
	{Name: "SystemDebuggerBreak", Value: 0xA4, UsageType: UTOSC},
	{Name: "ApplicationBreak", Value: 0xA5, UsageType: UTOSC},
	{Name: "ApplicationDebuggerBreak", Value: 0xA6, UsageType: UTOSC},
	{Name: "SystemSpeakerMute", Value: 0xA7, UsageType: UTOSC},
	{Name: "SystemHibernate", Value: 0xA8, UsageType: UTOSC},
	{Name: "SystemDisplayInvert", Value: 0xB0, UsageType: UTOSC},
	{Name: "SystemDisplayInternal", Value: 0xB1, UsageType: UTOSC},
	{Name: "SystemDisplayExternal", Value: 0xB2, UsageType: UTOSC},
	{Name: "SystemDisplayBoth", Value: 0xB3, UsageType: UTOSC},
	{Name: "SystemDisplayDual", Value: 0xB4, UsageType: UTOSC},
	{Name: "SystemDisplayToggleIntExtMode", Value: 0xB5, UsageType: UTOSC},
	{Name: "SystemDisplaySwapPrimarySecondary", Value: 0xB6, UsageType: UTOSC},
	{Name: "SystemDisplayToggleLcdAutoscale", Value: 0xB7, UsageType: UTOSC},
	{Name: "SensorZone", Value: 0xC0, UsageType: UTCL},
	{Name: "Rpm", Value: 0xC1, UsageType: UTDV},
	{Name: "CoolantLevel", Value: 0xC2, UsageType: UTDV},
	{Name: "CoolantCriticalLevel", Value: 0xC3, UsageType: UTSV},
	{Name: "CoolantPump", Value: 0xC4, UsageType: UTUS},
	{Name: "ChassisEnclosure", Value: 0xC5, UsageType: UTCL},
	{Name: "WirelessRadioButton", Value: 0xC6, UsageType: UTOOC},
	{Name: "WirelessRadioLed", Value: 0xC7, UsageType: UTOOC},
	{Name: "WirelessRadioSliderSwitch", Value: 0xC8, UsageType: UTOOC},
	{Name: "SystemDisplayRotationLockButton", Value: 0xC9, UsageType: UTOOC},
	{Name: "SystemDisplayRotationLockSliderSwitch", Value: 0xCA, UsageType: UTOOC},
	{Name: "ControlEnable", Value: 0xCB, UsageType: UTDF},
	{Name: "DockableDeviceUniqueId", Value: 0xD0, UsageType: UTDV},
	{Name: "DockableDeviceVendorId", Value: 0xD1, UsageType: UTDV},
	{Name: "DockableDevicePrimaryUsagePage", Value: 0xD2, UsageType: UTDV},
	{Name: "DockableDevicePrimaryUsageId", Value: 0xD3, UsageType: UTDV},
	{Name: "DockableDeviceDockingState", Value: 0xD4, UsageType: UTDF},
	{Name: "DockableDeviceDisplayOcclusion", Value: 0xD5, UsageType: UTCL},
	{Name: "DockableDeviceObjectType", Value: 0xD6, UsageType: UTDV},
}

// SimCtrlMap is the Simulation Controls usage page, HID Usage Tables ch. 5.
var SimCtrlMap = Table{
	{Name: "FlighSimulationDevice", Value: 0x01, UsageType: UTCA},
	{Name: "AutomobileSimulationDevice", Value: 0x02, UsageType: UTCA},
	{Name: "TankSimulationDevice", Value: 0x03, UsageType: UTCA},
	{Name: "SpaceshipSimulationDevice", Value: 0x04, UsageType: UTCA},
	{Name: "SubmarineSimulationDevice", Value: 0x05, UsageType: UTCA},
	{Name: "SailingSimulationDevice", Value: 0x06, UsageType: UTCA},
	{Name: "MotorcycleSimiulationDevice", Value: 0x07, UsageType: UTCA},
	{Name: "SportsSimulationDevice", Value: 0x08, UsageType: UTCA},
	{Name: "AirplaneSimulationDevice", Value: 0x09, UsageType: UTCA},
	{Name: "HelicopterSimulationDevice", Value: 0x0A, UsageType: UTCA},
	{Name: "MagicCarpetSimulationDevice", Value: 0x0B, UsageType: UTCA},
	{Name: "BicycleSimulationDevice", Value: 0x0C, UsageType: UTCA},
	{Name: "FlightControlStick", Value: 0x20, UsageType: UTCA},
	{Name: "FlightStick", Value: 0x21, UsageType: UTCA},
	{Name: "CyclicControl", Value: 0x22, UsageType: UTCP},
	{Name: "CyclicTrim", Value: 0x23, UsageType: UTCP},
	{Name: "FlightYoke", Value: 0x24, UsageType: UTCA},
	{Name: "TrackControl", Value: 0x25, UsageType: UTCP},
	{Name: "Aileron", Value: 0xB0, UsageType: UTDV},
	{Name: "AileronTrim", Value: 0xB1, UsageType: UTDV},
	{Name: "AntiTorqueControl", Value: 0xB2, UsageType: UTDV},
	{Name: "AutopilotEnable", Value: 0xB3, UsageType: UTOOC},
	{Name: "ChaffRelease", Value: 0xB4, UsageType: UTOSC},
	{Name: "CollectiveControl", Value: 0xB5, UsageType: UTDV},
	{Name: "DiveBrake", Value: 0xB6, UsageType: UTDV},
	{Name: "ElectronicCountermeasures", Value: 0xB7, UsageType: UTOOC},
	{Name: "Elevator", Value: 0xB8, UsageType: UTDV},
	{Name: "ElevatorTrim", Value: 0xB9, UsageType: UTDV},
	{Name: "Rudder", Value: 0xBA, UsageType: UTDV},
	{Name: "Throttle", Value: 0xBB, UsageType: UTDV},
	{Name: "FlightCommunications", Value: 0xBC, UsageType: UTOOC},
	{Name: "FlareRelease", Value: 0xBD, UsageType: UTOSC},
	{Name: "LandingGear", Value: 0xBE, UsageType: UTOOC},
	{Name: "ToeBrake", Value: 0xBF, UsageType: UTDV},
	{Name: "Trigger", Value: 0xC0, UsageType: UTMC},
	{Name: "WeaponsArm", Value: 0xC1, UsageType: UTOOC},
	{Name: "WeaponsSelect", Value: 0xC2, UsageType: UTOSC},
	{Name: "WingFlaps", Value: 0xC3, UsageType: UTDV},
	{Name: "Accelerator", Value: 0xC4, UsageType: UTDV},
	{Name: "Brake", Value: 0xC5, UsageType: UTDV},
	{Name: "Clutch", Value: 0xC6, UsageType: UTDV},
	{Name: "Shifter", Value: 0xC7, UsageType: UTDV},
	{Name: "Steering", Value: 0xC8, UsageType: UTDV},
	{Name: "TurretDirection", Value: 0xC9, UsageType: UTDV},
	{Name: "BarrelElevation", Value: 0xCA, UsageType: UTDV},
	{Name: "DivePlane", Value: 0xCB, UsageType: UTDV},
	{Name: "Ballast", Value: 0xCC, UsageType: UTDV},
	{Name: "BicycleCrank", Value: 0xCD, UsageType: UTDV},
	{Name: "HandleBars", Value: 0xCE, UsageType: UTDV},
	{Name: "FrontBrake", Value: 0xCF, UsageType: UTDV},
	{Name: "RearBrake", Value: 0xD0, UsageType: UTDV},
}

// The remaining usage pages are curated rather than transcribed in
// full: the HID Usage Tables registry assigns several thousand usage
// IDs across pages like Consumer and Sensors. Each table below carries
// the commonly used entries; an ID missing here is still reachable
// through the numeric or parameter form of Usage, which never consults
// these tables.

var VrCtrlMap = Table{
	{Name: "Belt", Value: 0x01, UsageType: UTCA},
	{Name: "BodySuit", Value: 0x02, UsageType: UTCA},
	{Name: "Flexor", Value: 0x03, UsageType: UTCL},
	{Name: "Glove", Value: 0x04, UsageType: UTCA},
	{Name: "HeadTracker", Value: 0x05, UsageType: UTCP},
	{Name: "HeadMountedDisplay", Value: 0x06, UsageType: UTCA},
	{Name: "HandTracker", Value: 0x07, UsageType: UTCA},
	{Name: "Oculometer", Value: 0x08, UsageType: UTCA},
	{Name: "Vest", Value: 0x09, UsageType: UTCA},
	{Name: "AnimatronicDevice", Value: 0x0A, UsageType: UTCA},
	{Name: "StereoEnable", Value: 0x20, UsageType: UTOOC},
	{Name: "DisplayEnable", Value: 0x21, UsageType: UTOOC},
}

var SportCtrlMap = Table{
	{Name: "BaseballBat", Value: 0x01, UsageType: UTCA},
	{Name: "GolfClub", Value: 0x02, UsageType: UTCA},
	{Name: "RowingMachine", Value: 0x03, UsageType: UTCA},
	{Name: "Treadmill", Value: 0x04, UsageType: UTCA},
	{Name: "Oar", Value: 0x30, UsageType: UTDV},
	{Name: "Slope", Value: 0x31, UsageType: UTDV},
	{Name: "Rate", Value: 0x32, UsageType: UTDV},
	{Name: "StickSpeed", Value: 0x33, UsageType: UTDV},
	{Name: "StickFaceAngle", Value: 0x34, UsageType: UTDV},
	{Name: "StickHeelToe", Value: 0x35, UsageType: UTDV},
	{Name: "StickFollowThrough", Value: 0x36, UsageType: UTDV},
	{Name: "StickTempo", Value: 0x37, UsageType: UTDV},
	{Name: "StickType", Value: 0x38, UsageType: UTNARY},
	{Name: "StickHeight", Value: 0x39, UsageType: UTDV},
	{Name: "Putter", Value: 0x50, UsageType: UTSEL},
	{Name: "1Iron", Value: 0x51, UsageType: UTSEL},
	{Name: "2Iron", Value: 0x52, UsageType: UTSEL},
	{Name: "3Iron", Value: 0x53, UsageType: UTSEL},
	{Name: "4Iron", Value: 0x54, UsageType: UTSEL},
	{Name: "5Iron", Value: 0x55, UsageType: UTSEL},
}

var GameCtrlMap = Table{
	{Name: "3DGameController", Value: 0x01, UsageType: UTCA},
	{Name: "PinballDevice", Value: 0x02, UsageType: UTCA},
	{Name: "GunDevice", Value: 0x03, UsageType: UTCA},
	{Name: "PointOfView", Value: 0x20, UsageType: UTCP},
	{Name: "TurnRightLeft", Value: 0x21, UsageType: UTDV},
	{Name: "PitchForwardBackward", Value: 0x22, UsageType: UTDV},
	{Name: "RollRightLeft", Value: 0x23, UsageType: UTDV},
	{Name: "MoveRightLeft", Value: 0x24, UsageType: UTDV},
	{Name: "MoveForwardBackward", Value: 0x25, UsageType: UTDV},
	{Name: "MoveUpDown", Value: 0x26, UsageType: UTDV},
	{Name: "LeanRightLeft", Value: 0x27, UsageType: UTDV},
	{Name: "LeanForwardBackward", Value: 0x28, UsageType: UTDV},
	{Name: "HeightOfPOV", Value: 0x29, UsageType: UTDV},
	{Name: "Flipper", Value: 0x2A, UsageType: UTMC},
	{Name: "SecondaryFlipper", Value: 0x2B, UsageType: UTMC},
	{Name: "Bump", Value: 0x2C, UsageType: UTMC},
	{Name: "NewGame", Value: 0x2D, UsageType: UTOSC},
	{Name: "ShootBall", Value: 0x2E, UsageType: UTOSC},
	{Name: "Player", Value: 0x2F, UsageType: UTOSC},
	{Name: "GunBolt", Value: 0x30, UsageType: UTOOC},
	{Name: "GunClip", Value: 0x31, UsageType: UTOOC},
	{Name: "GunSelector", Value: 0x32, UsageType: UTNARY},
	{Name: "GunSingleShot", Value: 0x33, UsageType: UTSEL},
	{Name: "GunBurst", Value: 0x34, UsageType: UTSEL},
	{Name: "GunAutomatic", Value: 0x35, UsageType: UTSEL},
	{Name: "GunSafety", Value: 0x36, UsageType: UTOOC},
	{Name: "GamepadFireJump", Value: 0x37, UsageType: UTCL},
	{Name: "GamepadTrigger", Value: 0x39, UsageType: UTCL},
}

var GenDevCtrlMap = Table{
	{Name: "BackgroundNonUserControls", Value: 0x20, UsageType: UTCA},
	{Name: "BatteryStrength", Value: 0x20, UsageType: UTDV},
	{Name: "WirelessChannel", Value: 0x21, UsageType: UTDV},
	{Name: "WirelessID", Value: 0x22, UsageType: UTDV},
	{Name: "DiscoverWirelessControl", Value: 0x23, UsageType: UTOSC},
	{Name: "SecurityCodeCharacterEntered", Value: 0x24, UsageType: UTOSC},
	{Name: "SecurityCodeCharacterErased", Value: 0x25, UsageType: UTOSC},
	{Name: "SecurityCodeCleared", Value: 0x26, UsageType: UTOSC},
}

var TelDevMap = Table{
	{Name: "Phone", Value: 0x01, UsageType: UTCA},
	{Name: "AnsweringMachine", Value: 0x02, UsageType: UTCA},
	{Name: "MessageControls", Value: 0x03, UsageType: UTCL},
	{Name: "Handset", Value: 0x04, UsageType: UTCL},
	{Name: "Headset", Value: 0x05, UsageType: UTCL},
	{Name: "Keypad", Value: 0x06, UsageType: UTNARY},
	{Name: "ProgrammableButton", Value: 0x07, UsageType: UTCL},
	{Name: "HookSwitch", Value: 0x20, UsageType: UTOOC},
	{Name: "Flash", Value: 0x21, UsageType: UTMC},
	{Name: "Feature", Value: 0x22, UsageType: UTOOC},
	{Name: "Hold", Value: 0x23, UsageType: UTOOC},
	{Name: "Redial", Value: 0x24, UsageType: UTOSC},
	{Name: "Transfer", Value: 0x25, UsageType: UTOSC},
	{Name: "Drop", Value: 0x26, UsageType: UTOSC},
	{Name: "Line0", Value: 0x31, UsageType: UTOOC | UTSEL},
	{Name: "SpeedDial", Value: 0x50, UsageType: UTOSC},
	{Name: "Mute", Value: 0x2F, UsageType: UTOOC},
}

// ConsumerMap is a curated subset of the large Consumer usage page, HID
// Usage Tables ch. 15; the entries a firmware HID descriptor most
// commonly references.
var ConsumerMap = Table{
	{Name: "ConsumerControl", Value: 0x01, UsageType: UTCA},
	{Name: "Power", Value: 0x30, UsageType: UTOSC},
	{Name: "Reset", Value: 0x31, UsageType: UTOSC},
	{Name: "Sleep", Value: 0x32, UsageType: UTOSC},
	{Name: "Menu", Value: 0x40, UsageType: UTOOC},
	{Name: "VolumeIncrement", Value: 0xE9, UsageType: UTRTC},
	{Name: "VolumeDecrement", Value: 0xEA, UsageType: UTRTC},
	{Name: "PlayPause", Value: 0xCD, UsageType: UTOSC},
	{Name: "Mute", Value: 0xE2, UsageType: UTOOC},
	{Name: "Volume", Value: 0xE0, UsageType: UTLC},
	{Name: "Bass", Value: 0xE1, UsageType: UTLC},
	{Name: "ScanNextTrack", Value: 0xB5, UsageType: UTOSC},
	{Name: "ScanPreviousTrack", Value: 0xB6, UsageType: UTOSC},
	{Name: "Stop", Value: 0xB7, UsageType: UTOSC},
	{Name: "Eject", Value: 0xB8, UsageType: UTOSC},
	{Name: "FastForward", Value: 0xB3, UsageType: UTOOC},
	{Name: "Rewind", Value: 0xB4, UsageType: UTOOC},
	{Name: "ACHome", Value: 0x223, UsageType: UTOSC},
	{Name: "ACBack", Value: 0x224, UsageType: UTOSC},
	{Name: "ACSearch", Value: 0x221, UsageType: UTOSC},
	{Name: "ACBookmarks", Value: 0x22A, UsageType: UTOSC},
	{Name: "Email", Value: 0x18A, UsageType: UTOSC},
	{Name: "Calculator", Value: 0x192, UsageType: UTOSC},
	{Name: "MyComputer", Value: 0x194, UsageType: UTOSC},
}

// DigitizersMap is a curated subset of the Digitizers usage page, HID
// Usage Tables ch. 16.
var DigitizersMap = Table{
	{Name: "Digitizer", Value: 0x01, UsageType: UTCA},
	{Name: "Pen", Value: 0x02, UsageType: UTCA},
	{Name: "LightPen", Value: 0x03, UsageType: UTCA},
	{Name: "TouchScreen", Value: 0x04, UsageType: UTCA},
	{Name: "TouchPad", Value: 0x05, UsageType: UTCA},
	{Name: "Stylus", Value: 0x20, UsageType: UTCL},
	{Name: "Puck", Value: 0x21, UsageType: UTCL},
	{Name: "Finger", Value: 0x22, UsageType: UTCL},
	{Name: "TipPressure", Value: 0x30, UsageType: UTDV},
	{Name: "BarrelPressure", Value: 0x31, UsageType: UTDV},
	{Name: "InRange", Value: 0x32, UsageType: UTMC},
	{Name: "Touch", Value: 0x33, UsageType: UTMC},
	{Name: "Untouch", Value: 0x34, UsageType: UTOSC},
	{Name: "Tap", Value: 0x35, UsageType: UTOSC},
	{Name: "TipSwitch", Value: 0x42, UsageType: UTMC},
	{Name: "SecondaryTipSwitch", Value: 0x43, UsageType: UTMC},
	{Name: "BarrelSwitch", Value: 0x44, UsageType: UTMC},
	{Name: "Eraser", Value: 0x45, UsageType: UTMC},
	{Name: "TabletPick", Value: 0x46, UsageType: UTMC},
	{Name: "ContactIdentifier", Value: 0x51, UsageType: UTDV},
	{Name: "ContactCount", Value: 0x54, UsageType: UTDV},
}

var HapticsMap = Table{
	{Name: "SimpleHapticController", Value: 0x01, UsageType: UTCA},
	{Name: "WaveformList", Value: 0x10, UsageType: UTNARY},
	{Name: "DurationList", Value: 0x11, UsageType: UTNARY},
	{Name: "WaveformCutoffTime", Value: 0x20, UsageType: UTDV},
	{Name: "WaveformNone", Value: 0x1001, UsageType: UTSEL},
	{Name: "WaveformStop", Value: 0x1002, UsageType: UTSEL},
	{Name: "WaveformClick", Value: 0x1003, UsageType: UTSEL},
}

// PidMap is a curated subset of the Physical Interface Device usage
// page, HID Usage Tables ch. 17.
var PidMap = Table{
	{Name: "PhysicalInputDevice", Value: 0x01, UsageType: UTCA},
	{Name: "NormalizedPhysicalVector", Value: 0x2, Child: &NumArg},
	{Name: "ConstantForceEffect", Value: 0x26, UsageType: UTCA},
	{Name: "RampForceEffect", Value: 0x27, UsageType: UTCA},
	{Name: "SquareEffect", Value: 0x30, UsageType: UTCA},
	{Name: "SineEffect", Value: 0x31, UsageType: UTCA},
	{Name: "TriangleEffect", Value: 0x32, UsageType: UTCA},
	{Name: "EffectOperation", Value: 0x78, UsageType: UTNARY},
	{Name: "OpEffectStart", Value: 0x79, UsageType: UTSEL},
	{Name: "OpEffectStop", Value: 0x7A, UsageType: UTSEL},
	{Name: "DeviceGainReport", Value: 0x7B, UsageType: UTCL},
}

var EyeHeadMap = Table{
	{Name: "EyeTracker", Value: 0x01, UsageType: UTCA},
	{Name: "HeadTracker", Value: 0x02, UsageType: UTCA},
}

var AuxDisplayMap = Table{
	{Name: "AlphanumericDisplay", Value: 0x01, UsageType: UTCA},
	{Name: "AuxiliaryDisplay", Value: 0x02, UsageType: UTCA},
	{Name: "DisplayBrightness", Value: 0x20, UsageType: UTDV},
	{Name: "DisplayContrast", Value: 0x21, UsageType: UTDV},
	{Name: "CharacterReport", Value: 0x22, UsageType: UTCL},
	{Name: "DisplayStatus", Value: 0x24, UsageType: UTNARY},
}

// SensorMap is a curated subset of the large Sensors usage page, HID
// Usage Tables ch. 21; motion and environmental sensors most commonly
// seen on USB HID devices.
var SensorMap = Table{
	{Name: "Sensor", Value: 0x01, UsageType: UTCA},
	{Name: "BiometricHumanPresence", Value: 0x0711, UsageType: UTCA},
	{Name: "ElectricalCurrent", Value: 0x0850, UsageType: UTCA},
	{Name: "EnvironmentalTemperature", Value: 0x0A0D, UsageType: UTCA},
	{Name: "EnvironmentalHumidity", Value: 0x0A16, UsageType: UTCA},
	{Name: "LightAmbientLight", Value: 0x0D41, UsageType: UTCA},
	{Name: "MotionAccelerometer3D", Value: 0x0E73, UsageType: UTCA},
	{Name: "MotionGyrometer3D", Value: 0x0E76, UsageType: UTCA},
	{Name: "OrientationCompass3D", Value: 0x0F86, UsageType: UTCA},
	{Name: "DataFieldHumidity", Value: 0x043A, Child: &NumArg},
	{Name: "DataFieldTemperature", Value: 0x0434, Child: &NumArg},
	{Name: "EventSensorState", Value: 0x0201, Child: &NumArg},
}

var MedInstMap = Table{
	{Name: "MedicalUltrasound", Value: 0x01, UsageType: UTCA},
	{Name: "VcrAcquisition", Value: 0x20, UsageType: UTOOC},
	{Name: "FreezeThaw", Value: 0x21, UsageType: UTOOC},
	{Name: "ClipStore", Value: 0x22, UsageType: UTOSC},
}

var BrailleMap = Table{
	{Name: "BrailleDisplay", Value: 0x01, UsageType: UTCA},
	{Name: "BrailleRow", Value: 0x02, UsageType: UTNARY},
	{Name: "8DotBrailleCell", Value: 0x03, Child: &NumArg},
	{Name: "6DotBrailleCell", Value: 0x04, Child: &NumArg},
	{Name: "BraillePanLeft", Value: 0x05, UsageType: UTOSC},
	{Name: "BraillePanRight", Value: 0x06, UsageType: UTOSC},
}

var LightMap = Table{
	{Name: "LightingAndIlluminationComp", Value: 0x01, UsageType: UTCA},
	{Name: "LampArray", Value: 0x01, UsageType: UTCA},
	{Name: "LampArrayAttributesReport", Value: 0x02, UsageType: UTCL},
	{Name: "LampCount", Value: 0x03, Child: &NumArg},
	{Name: "LampArrayKind", Value: 0x05, Child: &NumArg},
}

var MonitorMap = Table{
	{Name: "MonitorControl", Value: 0x01, Child: &NumArg},
}

var VesaCtrlMap = Table{
	{Name: "Brightness", Value: 0x10, Child: &NumArg},
	{Name: "Contrast", Value: 0x12, Child: &NumArg},
	{Name: "RedVideoGain", Value: 0x16, Child: &NumArg},
	{Name: "GreenVideoGain", Value: 0x18, Child: &NumArg},
	{Name: "BlueVideoGain", Value: 0x1A, Child: &NumArg},
	{Name: "Degauss", Value: 0x1E, Child: &NumArg},
}

var PwrDevMap = Table{
	{Name: "IName", Value: 0x01, Child: &NumArg},
	{Name: "PresentStatus", Value: 0x02, Child: &NumArg},
	{Name: "ChangedStatus", Value: 0x03, Child: &NumArg},
	{Name: "UPS", Value: 0x04, UsageType: UTCA},
	{Name: "PowerSupply", Value: 0x05, UsageType: UTCA},
	{Name: "BatterySystem", Value: 0x10, UsageType: UTCP},
	{Name: "Output", Value: 0x1C, UsageType: UTCP},
	{Name: "Input", Value: 0x1A, UsageType: UTCP},
}

var BarcodeMap = Table{
	{Name: "BarCodeBadgeReader", Value: 0x01, UsageType: UTCA},
	{Name: "BarCodeScanner", Value: 0x02, UsageType: UTCA},
	{Name: "BarCodeScannerDevice", Value: 0x03, UsageType: UTCL},
}

var WeightDevMap = Table{
	{Name: "WeighingDevice", Value: 0x01, UsageType: UTCA},
	{Name: "ScaleDevice", Value: 0x20, UsageType: UTCL},
	{Name: "ScaleWeight", Value: 0x31, Child: &NumArg},
}

var MsrMap = Table{
	{Name: "MSRDeviceReadOnly", Value: 0x01, UsageType: UTCA},
	{Name: "Track1Length", Value: 0x11, Child: &NumArg},
	{Name: "Track2Length", Value: 0x12, Child: &NumArg},
	{Name: "Track3Length", Value: 0x13, Child: &NumArg},
}

var CameraCtrlMap = Table{
	{Name: "CameraAutoFocus", Value: 0x20, UsageType: UTOSC},
	{Name: "CameraShutter", Value: 0x21, UsageType: UTOSC},
}

var ArcadeMap = Table{
	{Name: "GeneralPurposeIoCard", Value: 0x01, UsageType: UTCA},
	{Name: "CoinDoor", Value: 0x02, UsageType: UTCA},
	{Name: "WatchdogTimer", Value: 0x03, UsageType: UTCA},
	{Name: "GeneralPurposeAnalogInputState", Value: 0x30, Child: &NumArg},
}

// FidoMap is the FIDO Alliance usage page used by U2F security keys.
var FidoMap = Table{
	{Name: "U2fAuthenticatorDevice", Value: 0x01, UsageType: UTCA},
	{Name: "InputReportData", Value: 0x20, UsageType: UTDV},
	{Name: "OutputReportData", Value: 0x21, UsageType: UTDV},
}

// KeyboardMap is the full Keyboard/Keypad usage page, HID Usage Tables
// ch. 10.
var KeyboardMap = Table{
	{Name: "NoEventIndicated", Value: 0x00, UsageType: UTSEL},
	{Name: "KeyboardErrorRollOver", Value: 0x01, UsageType: UTSEL},
	{Name: "KeyboardPostFail", Value: 0x02, UsageType: UTSEL},
	{Name: "KeyboardErrorUndefined", Value: 0x03, UsageType: UTSEL},
	{Name: "KeyboardA", Value: 0x04, UsageType: UTSEL},
	{Name: "KeyboardB", Value: 0x05, UsageType: UTSEL},
	{Name: "KeyboardC", Value: 0x06, UsageType: UTSEL},
	{Name: "KeyboardD", Value: 0x07, UsageType: UTSEL},
	{Name: "KeyboardE", Value: 0x08, UsageType: UTSEL},
	{Name: "KeyboardF", Value: 0x09, UsageType: UTSEL},
	{Name: "KeyboardG", Value: 0x0A, UsageType: UTSEL},
	{Name: "KeyboardH", Value: 0x0B, UsageType: UTSEL},
	{Name: "KeyboardI", Value: 0x0C, UsageType: UTSEL},
	{Name: "KeyboardJ", Value: 0x0D, UsageType: UTSEL},
	{Name: "KeyboardK", Value: 0x0E, UsageType: UTSEL},
	{Name: "KeyboardL", Value: 0x0F, UsageType: UTSEL},
	{Name: "KeyboardM", Value: 0x10, UsageType: UTSEL},
	{Name: "KeyboardN", Value: 0x11, UsageType: UTSEL},
	{Name: "KeyboardO", Value: 0x12, UsageType: UTSEL},
	{Name: "KeyboardP", Value: 0x13, UsageType: UTSEL},
	{Name: "KeyboardQ", Value: 0x14, UsageType: UTSEL},
	{Name: "KeyboardR", Value: 0x15, UsageType: UTSEL},
	{Name: "KeyboardS", Value: 0x16, UsageType: UTSEL},
	{Name: "KeyboardT", Value: 0x17, UsageType: UTSEL},
	{Name: "KeyboardU", Value: 0x18, UsageType: UTSEL},
	{Name: "KeyboardV", Value: 0x19, UsageType: UTSEL},
	{Name: "KeyboardW", Value: 0x1A, UsageType: UTSEL},
	{Name: "KeyboardX", Value: 0x1B, UsageType: UTSEL},
	{Name: "KeyboardY", Value: 0x1C, UsageType: UTSEL},
	{Name: "KeyboardZ", Value: 0x1D, UsageType: UTSEL},
	{Name: "Keyboard1", Value: 0x1E, UsageType: UTSEL},
	{Name: "Keyboard2", Value: 0x1F, UsageType: UTSEL},
	{Name: "Keyboard3", Value: 0x20, UsageType: UTSEL},
	{Name: "Keyboard4", Value: 0x21, UsageType: UTSEL},
	{Name: "Keyboard5", Value: 0x22, UsageType: UTSEL},
	{Name: "Keyboard6", Value: 0x23, UsageType: UTSEL},
	{Name: "Keyboard7", Value: 0x24, UsageType: UTSEL},
	{Name: "Keyboard8", Value: 0x25, UsageType: UTSEL},
	{Name: "Keyboard9", Value: 0x26, UsageType: UTSEL},
	{Name: "Keyboard0", Value: 0x27, UsageType: UTSEL},
	{Name: "KeyboardEnter", Value: 0x28, UsageType: UTSEL},
	{Name: "KeyboardEscape", Value: 0x29, UsageType: UTSEL},
	{Name: "KeyboardDelete", Value: 0x2A, UsageType: UTSEL},
	{Name: "KeyboardTab", Value: 0x2B, UsageType: UTSEL},
	{Name: "KeyboardSpacebar", Value: 0x2C, UsageType: UTSEL},
	{Name: "KeyboardMinus", Value: 0x2D, UsageType: UTSEL},
	{Name: "KeyboardEqual", Value: 0x2E, UsageType: UTSEL},
	{Name: "KeyboardCurlyBracketOpen", Value: 0x2F, UsageType: UTSEL},
	{Name: "KeyboardCurlyBracketClose", Value: 0x30, UsageType: UTSEL},
	{Name: "KeyboardBackslash", Value: 0x31, UsageType: UTSEL},
	{Name: "KeyboardNonUsHash", Value: 0x32, UsageType: UTSEL},
	{Name: "KeyboardColon", Value: 0x33, UsageType: UTSEL},
	{Name: "KeyboardApostrophe", Value: 0x34, UsageType: UTSEL},
	{Name: "KeyboardGraveAccentAndTilde", Value: 0x35, UsageType: UTSEL},
	{Name: "KeyboardComma", Value: 0x36, UsageType: UTSEL},
	{Name: "KeyboardPoint", Value: 0x37, UsageType: UTSEL},
	{Name: "KeyboardSlash", Value: 0x38, UsageType: UTSEL},
	{Name: "KeyboardCapsLock", Value: 0x39, UsageType: UTSEL},
	{Name: "KeyboardF1", Value: 0x3A, UsageType: UTSEL},
	{Name: "KeyboardF2", Value: 0x3B, UsageType: UTSEL},
	{Name: "KeyboardF3", Value: 0x3C, UsageType: UTSEL},
	{Name: "KeyboardF4", Value: 0x3D, UsageType: UTSEL},
	{Name: "KeyboardF5", Value: 0x3E, UsageType: UTSEL},
	{Name: "KeyboardF6", Value: 0x3F, UsageType: UTSEL},
	{Name: "KeyboardF7", Value: 0x40, UsageType: UTSEL},
	{Name: "KeyboardF8", Value: 0x41, UsageType: UTSEL},
	{Name: "KeyboardF9", Value: 0x42, UsageType: UTSEL},
	{Name: "KeyboardF10", Value: 0x43, UsageType: UTSEL},
	{Name: "KeyboardF11", Value: 0x44, UsageType: UTSEL},
	{Name: "KeyboardF12", Value: 0x45, UsageType: UTSEL},
	{Name: "KeyboardPrintScreen", Value: 0x46, UsageType: UTSEL},
	{Name: "KeyboardScrollLock", Value: 0x47, UsageType: UTSEL},
	{Name: "KeyboardPause", Value: 0x48, UsageType: UTSEL},
	{Name: "KeyboardInsert", Value: 0x49, UsageType: UTSEL},
	{Name: "KeyboardHome", Value: 0x4A, UsageType: UTSEL},
	{Name: "KeyboardPageUp", Value: 0x4B, UsageType: UTSEL},
	{Name: "KeyboardDeleteForward", Value: 0x4C, UsageType: UTSEL},
	{Name: "KeyboardEnd", Value: 0x4D, UsageType: UTSEL},
	{Name: "KeyboardPageDown", Value: 0x4E, UsageType: UTSEL},
	{Name: "KeyboardRightArrow", Value: 0x4F, UsageType: UTSEL},
	{Name: "KeyboardLeftArrow", Value: 0x50, UsageType: UTSEL},
	{Name: "KeyboardDownArrow", Value: 0x51, UsageType: UTSEL},
	{Name: "KeyboardUpArrow", Value: 0x52, UsageType: UTSEL},
	{Name: "KeypadNumLockAndClear", Value: 0x53, UsageType: UTSEL},
	{Name: "KeypadDivide", Value: 0x54, UsageType: UTSEL},
	{Name: "KeypadMultiply", Value: 0x55, UsageType: UTSEL},
	{Name: "KeypadMinus", Value: 0x56, UsageType: UTSEL},
	{Name: "KeypadPlus", Value: 0x57, UsageType: UTSEL},
	{Name: "KeypadEnter", Value: 0x58, UsageType: UTSEL},
	{Name: "Keypad1", Value: 0x59, UsageType: UTSEL},
	{Name: "Keypad2", Value: 0x5A, UsageType: UTSEL},
	{Name: "Keypad3", Value: 0x5B, UsageType: UTSEL},
	{Name: "Keypad4", Value: 0x5C, UsageType: UTSEL},
	{Name: "Keypad5", Value: 0x5D, UsageType: UTSEL},
	{Name: "Keypad6", Value: 0x5E, UsageType: UTSEL},
	{Name: "Keypad7", Value: 0x5F, UsageType: UTSEL},
	{Name: "Keypad8", Value: 0x60, UsageType: UTSEL},
	{Name: "Keypad9", Value: 0x61, UsageType: UTSEL},
	{Name: "Keypad0", Value: 0x62, UsageType: UTSEL},
	{Name: "KeypadPoint", Value: 0x63, UsageType: UTSEL},
	{Name: "KeyboardNonUsBackslash", Value: 0x64, UsageType: UTSEL},
	{Name: "KeyboardApplication", Value: 0x65, UsageType: UTSEL},
	{Name: "KeyboardPower", Value: 0x66, UsageType: UTSEL},
	{Name: "KeyboardEqual", Value: 0x67, UsageType: UTSEL},
	{Name: "KeyboardF13", Value: 0x68, UsageType: UTSEL},
	{Name: "KeyboardF14", Value: 0x69, UsageType: UTSEL},
	{Name: "KeyboardF15", Value: 0x6A, UsageType: UTSEL},
	{Name: "KeyboardF16", Value: 0x6B, UsageType: UTSEL},
	{Name: "KeyboardF17", Value: 0x6C, UsageType: UTSEL},
	{Name: "KeyboardF18", Value: 0x6D, UsageType: UTSEL},
	{Name: "KeyboardF19", Value: 0x6E, UsageType: UTSEL},
	{Name: "KeyboardF20", Value: 0x6F, UsageType: UTSEL},
	{Name: "KeyboardF21", Value: 0x70, UsageType: UTSEL},
	{Name: "KeyboardF22", Value: 0x71, UsageType: UTSEL},
	{Name: "KeyboardF23", Value: 0x72, UsageType: UTSEL},
	{Name: "KeyboardF24", Value: 0x73, UsageType: UTSEL},
	{Name: "KeyboardExecute", Value: 0x74, UsageType: UTSEL},
	{Name: "KeyboardHelp", Value: 0x75, UsageType: UTSEL},
	{Name: "KeyboardMenu", Value: 0x76, UsageType: UTSEL},
	{Name: "KeyboardSelect", Value: 0x77, UsageType: UTSEL},
	{Name: "KeyboardStop", Value: 0x78, UsageType: UTSEL},
	{Name: "KeyboardAgain", Value: 0x79, UsageType: UTSEL},
	{Name: "KeyboardUndo", Value: 0x7A, UsageType: UTSEL},
	{Name: "KeyboardCut", Value: 0x7B, UsageType: UTSEL},
	{Name: "KeyboardCopy", Value: 0x7C, UsageType: UTSEL},
	{Name: "KeyboardPaste", Value: 0x7D, UsageType: UTSEL},
	{Name: "KeyboardFind", Value: 0x7E, UsageType: UTSEL},
	{Name: "KeyboardMute", Value: 0x7F, UsageType: UTSEL},
	{Name: "KeyboardVolumeUp", Value: 0x80, UsageType: UTSEL},
	{Name: "KeyboardVolumeDown", Value: 0x81, UsageType: UTSEL},
	{Name: "KeyboardLockingCapsLock", Value: 0x82, UsageType: UTSEL},
	{Name: "KeyboardLockingNumLock", Value: 0x83, UsageType: UTSEL},
	{Name: "KeyboardLockingScrollLock", Value: 0x84, UsageType: UTSEL},
	{Name: "KeypadComma", Value: 0x85, UsageType: UTSEL},
	{Name: "KeypadEqual", Value: 0x86, UsageType: UTSEL},
	{Name: "KeyboardInternational1", Value: 0x87, UsageType: UTSEL},
	{Name: "KeyboardInternational2", Value: 0x88, UsageType: UTSEL},
	{Name: "KeyboardInternational3", Value: 0x89, UsageType: UTSEL},
	{Name: "KeyboardInternational4", Value: 0x8A, UsageType: UTSEL},
	{Name: "KeyboardInternational5", Value: 0x8B, UsageType: UTSEL},
	{Name: "KeyboardInternational6", Value: 0x8C, UsageType: UTSEL},
	{Name: "KeyboardInternational7", Value: 0x8D, UsageType: UTSEL},
	{Name: "KeyboardInternational8", Value: 0x8E, UsageType: UTSEL},
	{Name: "KeyboardInternational9", Value: 0x8F, UsageType: UTSEL},
	{Name: "KeyboardLang1", Value: 0x90, UsageType: UTSEL},
	{Name: "KeyboardLang2", Value: 0x91, UsageType: UTSEL},
	{Name: "KeyboardLang3", Value: 0x92, UsageType: UTSEL},
	{Name: "KeyboardLang4", Value: 0x93, UsageType: UTSEL},
	{Name: "KeyboardLang5", Value: 0x94, UsageType: UTSEL},
	{Name: "KeyboardLang6", Value: 0x95, UsageType: UTSEL},
	{Name: "KeyboardLang7", Value: 0x96, UsageType: UTSEL},
	{Name: "KeyboardLang8", Value: 0x97, UsageType: UTSEL},
	{Name: "KeyboardLang9", Value: 0x98, UsageType: UTSEL},
	{Name: "KeyboardAlternateErase", Value: 0x99, UsageType: UTSEL},
	{Name: "KeyboardSysReqAttention", Value: 0x9A, UsageType: UTSEL},
	{Name: "KeyboardCancel", Value: 0x9B, UsageType: UTSEL},
	{Name: "KeyboardClear", Value: 0x9C, UsageType: UTSEL},
	{Name: "KeyboardPrior", Value: 0x9D, UsageType: UTSEL},
	{Name: "KeyboardReturn", Value: 0x9E, UsageType: UTSEL},
	{Name: "KeyboardSeparator", Value: 0x9F, UsageType: UTSEL},
	{Name: "KeyboardOut", Value: 0xA0, UsageType: UTSEL},
	{Name: "KeyboardOper", Value: 0xA1, UsageType: UTSEL},
	{Name: "KeyboardClearAgain", Value: 0xA2, UsageType: UTSEL},
	{Name: "KeyboardCrSelProps", Value: 0xA3, UsageType: UTSEL},
	{Name: "KeyboardExSel", Value: 0xA4, UsageType: UTSEL},
	{Name: "Keypad00", Value: 0xB0, UsageType: UTSEL},
	{Name: "Keypad000", Value: 0xB1, UsageType: UTSEL},
	{Name: "ThausendsSeparator", Value: 0xB2, UsageType: UTSEL},
	{Name: "DecimalSeparator", Value: 0xB3, UsageType: UTSEL},
	{Name: "CurrencyUnit", Value: 0xB4, UsageType: UTSEL},
	{Name: "CurrencySubUnit", Value: 0xB5, UsageType: UTSEL},
	{Name: "KeypadBracketOpen", Value: 0xB6, UsageType: UTSEL},
	{Name: "KeypadBracketClose", Value: 0xB7, UsageType: UTSEL},
	{Name: "KeypadCurlyBracketOpen", Value: 0xB8, UsageType: UTSEL},
	{Name: "KeypadCurlyBracketClose", Value: 0xB9, UsageType: UTSEL},
	{Name: "KeypadTab", Value: 0xBA, UsageType: UTSEL},
	{Name: "KeypadBackspace", Value: 0xBB, UsageType: UTSEL},
	{Name: "KeypadA", Value: 0xBC, UsageType: UTSEL},
	{Name: "KeypadB", Value: 0xBD, UsageType: UTSEL},
	{Name: "KeypadC", Value: 0xBE, UsageType: UTSEL},
	{Name: "KeypadD", Value: 0xBF, UsageType: UTSEL},
	{Name: "KeypadE", Value: 0xC0, UsageType: UTSEL},
	{Name: "KeypadF", Value: 0xC1, UsageType: UTSEL},
	{Name: "KeypadXor", Value: 0xC2, UsageType: UTSEL},
	{Name: "KeypadCircumflex", Value: 0xC3, UsageType: UTSEL},
	{Name: "KeypadPercent", Value: 0xC4, UsageType: UTSEL},
	{Name: "KeypadLessThan", Value: 0xC5, UsageType: UTSEL},
	{Name: "KeypadGreaterThan", Value: 0xC6, UsageType: UTSEL},
	{Name: "KeypadAmpersand", Value: 0xC7, UsageType: UTSEL},
	{Name: "KeypadDoubleAmpersand", Value: 0xC8, UsageType: UTSEL},
	{Name: "KeypadVerticalBar", Value: 0xC9, UsageType: UTSEL},
	{Name: "KeypadDoubleVerticalBar", Value: 0xCA, UsageType: UTSEL},
	{Name: "KeypadColon", Value: 0xCB, UsageType: UTSEL},
	{Name: "KeypadHash", Value: 0xCC, UsageType: UTSEL},
	{Name: "KeypadSpace", Value: 0xCD, UsageType: UTSEL},
	{Name: "KeypadAtSign", Value: 0xCE, UsageType: UTSEL},
	{Name: "KeypadExclamationMark", Value: 0xCF, UsageType: UTSEL},
	{Name: "KeypadMemoryStore", Value: 0xD0, UsageType: UTSEL},
	{Name: "KeypadMemoryRecall", Value: 0xD1, UsageType: UTSEL},
	{Name: "KeypadMemoryClear", Value: 0xD2, UsageType: UTSEL},
	{Name: "KeypadMemoryAdd", Value: 0xD3, UsageType: UTSEL},
	{Name: "KeypadMemorySubtract", Value: 0xD4, UsageType: UTSEL},
	{Name: "KeypadMemoryMultiply", Value: 0xD5, UsageType: UTSEL},
	{Name: "KeypadMemoryDivide", Value: 0xD6, UsageType: UTSEL},
	{Name: "KeypadPlusMinus", Value: 0xD7, UsageType: UTSEL},
	{Name: "KeypadClear", Value: 0xD8, UsageType: UTSEL},
	{Name: "KeypadClearEntry", Value: 0xD9, UsageType: UTSEL},
	{Name: "KeypadBinary", Value: 0xDA, UsageType: UTSEL},
	{Name: "KeypadOctal", Value: 0xDB, UsageType: UTSEL},
	{Name: "KeypadDecimal", Value: 0xDC, UsageType: UTSEL},
	{Name: "KeypadHexadecimal", Value: 0xDD, UsageType: UTSEL},
	{Name: "KeyboardLeftControl", Value: 0xE0, UsageType: UTDV},
	{Name: "KeyboardLeftShift", Value: 0xE1, UsageType: UTDV},
	{Name: "KeyboardLeftAlt", Value: 0xE2, UsageType: UTDV},
	{Name: "KeyboardLeftGui", Value: 0xE3, UsageType: UTDV},
	{Name: "KeyboardRightControl", Value: 0xE4, UsageType: UTDV},
	{Name: "KeyboardRightShift", Value: 0xE5, UsageType: UTDV},
	{Name: "KeyboardRightAlt", Value: 0xE6, UsageType: UTDV},
	{Name: "KeyboardRightGui", Value: 0xE7, UsageType: UTDV},
}

// LedMap is the full LED/Indicator usage page, HID Usage Tables ch. 11.
var LedMap = Table{
	{Name: "NumLock", Value: 0x01, UsageType: UTOOC},
	{Name: "CapsLock", Value: 0x02, UsageType: UTOOC},
	{Name: "ScrollLock", Value: 0x03, UsageType: UTOOC},
	{Name: "Compose", Value: 0x04, UsageType: UTOOC},
	{Name: "Kana", Value: 0x05, UsageType: UTOOC},
	{Name: "Power", Value: 0x06, UsageType: UTOOC},
	{Name: "Shift", Value: 0x07, UsageType: UTOOC},
	{Name: "DoNotDisturb", Value: 0x08, UsageType: UTOOC},
	{Name: "Mute", Value: 0x09, UsageType: UTOOC},
	{Name: "ToneEnable", Value: 0x0A, UsageType: UTOOC},
	{Name: "HighCutFilter", Value: 0x0B, UsageType: UTOOC},
	{Name: "LowCutFitler", Value: 0x0C, UsageType: UTOOC},
	{Name: "EqualizerEnable", Value: 0x0D, UsageType: UTOOC},
	{Name: "SoundFieldOn", Value: 0x0E, UsageType: UTOOC},
	{Name: "SurroundOn", Value: 0x0F, UsageType: UTOOC},
	{Name: "Repeat", Value: 0x10, UsageType: UTOOC},
	{Name: "Stereo", Value: 0x11, UsageType: UTOOC},
	{Name: "SamplingRateDetect", Value: 0x12, UsageType: UTOOC},
	{Name: "Spinning", Value: 0x13, UsageType: UTOOC},
	{Name: "Cav", Value: 0x14, UsageType: UTOOC},
	{Name: "Clv", Value: 0x15, UsageType: UTOOC},
	{Name: "RecordingFormatDetect", Value: 0x16, UsageType: UTOOC},
	{Name: "OffHook", Value: 0x17, UsageType: UTOOC},
	{Name: "Ring", Value: 0x18, UsageType: UTOOC},
	{Name: "MessageWaiting", Value: 0x19, UsageType: UTOOC},
	{Name: "DataMode", Value: 0x1A, UsageType: UTOOC},
	{Name: "BatteryOperation", Value: 0x1B, UsageType: UTOOC},
	{Name: "BatteryOk", Value: 0x1C, UsageType: UTOOC},
	{Name: "BatteryLow", Value: 0x1D, UsageType: UTOOC},
	{Name: "Speaker", Value: 0x1E, UsageType: UTOOC},
	{Name: "HeadSet", Value: 0x1F, UsageType: UTOOC},
	{Name: "Hold", Value: 0x20, UsageType: UTOOC},
	{Name: "Microphone", Value: 0x21, UsageType: UTOOC},
	{Name: "Coverage", Value: 0x22, UsageType: UTOOC},
	{Name: "NightMode", Value: 0x23, UsageType: UTOOC},
	{Name: "SendCalls", Value: 0x24, UsageType: UTOOC},
	{Name: "CallPickup", Value: 0x25, UsageType: UTOOC},
	{Name: "Conference", Value: 0x26, UsageType: UTOOC},
	{Name: "Standby", Value: 0x27, UsageType: UTOOC},
	{Name: "CameraOn", Value: 0x28, UsageType: UTOOC},
	{Name: "CameraOff", Value: 0x29, UsageType: UTOOC},
	{Name: "OnLine", Value: 0x2A, UsageType: UTOOC},
	{Name: "OffLine", Value: 0x2B, UsageType: UTOOC},
	{Name: "Busy", Value: 0x2C, UsageType: UTOOC},
	{Name: "Ready", Value: 0x2D, UsageType: UTOOC},
	{Name: "PaperOut", Value: 0x2E, UsageType: UTOOC},
	{Name: "PaperJam", Value: 0x2F, UsageType: UTOOC},
	{Name: "Remote", Value: 0x30, UsageType: UTOOC},
	{Name: "Forward", Value: 0x31, UsageType: UTOOC},
	{Name: "Reverse", Value: 0x32, UsageType: UTOOC},
	{Name: "Stop", Value: 0x33, UsageType: UTOOC},
	{Name: "Rewind", Value: 0x34, UsageType: UTOOC},
	{Name: "FastForward", Value: 0x35, UsageType: UTOOC},
	{Name: "Play", Value: 0x36, UsageType: UTOOC},
	{Name: "Pause", Value: 0x37, UsageType: UTOOC},
	{Name: "Record", Value: 0x38, UsageType: UTOOC},
	{Name: "Error", Value: 0x39, UsageType: UTOOC},
	{Name: "UsageSelectedIndicator", Value: 0x3A, UsageType: UTUS},
	{Name: "UsageInUseIndicator", Value: 0x3B, UsageType: UTUS},
	{Name: "UsageMultiModeIndicator", Value: 0x3C, UsageType: UTUM},
	{Name: "IndicatorOn", Value: 0x3D, UsageType: UTSEL},
	{Name: "IndicatorFlash", Value: 0x3E, UsageType: UTSEL},
	{Name: "IndicatorSlowBlink", Value: 0x3F, UsageType: UTSEL},
	{Name: "IndicatorFastBlink", Value: 0x40, UsageType: UTSEL},
	{Name: "IndicatorOff", Value: 0x41, UsageType: UTSEL},
	{Name: "FlashOnTime", Value: 0x42, UsageType: UTDV},
	{Name: "SlowBlinkOnTime", Value: 0x43, UsageType: UTDV},
	{Name: "SlowBlinkOffTime", Value: 0x44, UsageType: UTDV},
	{Name: "FastBlinkOnTime", Value: 0x45, UsageType: UTDV},
	{Name: "FastBlinkOffTime", Value: 0x46, UsageType: UTDV},
	{Name: "UsageIndicatorColor", Value: 0x47, UsageType: UTUM},
	{Name: "IndicatorRed", Value: 0x48, UsageType: UTSEL},
	{Name: "IndicatorGreen", Value: 0x49, UsageType: UTSEL},
	{Name: "IndicatorAmber", Value: 0x4A, UsageType: UTSEL},
	{Name: "GenericIndicator", Value: 0x4B, UsageType: UTOOC},
	{Name: "SystemSyspend", Value: 0x4C, UsageType: UTOOC},
	{Name: "ExternalPowerConnected", Value: 0x4D, UsageType: UTOOC},
	{Name: "IndicatorBlue", Value: 0x4E, UsageType: UTSEL},
	{Name: "IndicatorOrange", Value: 0x4F, UsageType: UTSEL},
	{Name: "GoodStatus", Value: 0x50, UsageType: UTOOC},
	{Name: "WarningStatus", Value: 0x51, UsageType: UTOOC},
	{Name: "RgbLed", Value: 0x52, UsageType: UTCL},
	{Name: "RedLedChannel", Value: 0x53, UsageType: UTDV},
	{Name: "BlueLedChannel", Value: 0x54, UsageType: UTDV},
	{Name: "GreenLedChannel", Value: 0x55, UsageType: UTDV},
	{Name: "LedIntensity", Value: 0x56, UsageType: UTDV},
	{Name: "PlayerIndicator", Value: 0x60, UsageType: UTNARY},
	{Name: "Player1", Value: 0x61, UsageType: UTSEL},
	{Name: "Player2", Value: 0x62, UsageType: UTSEL},
	{Name: "Player3", Value: 0x63, UsageType: UTSEL},
	{Name: "Player4", Value: 0x64, UsageType: UTSEL},
	{Name: "Player5", Value: 0x65, UsageType: UTSEL},
	{Name: "Player6", Value: 0x66, UsageType: UTSEL},
	{Name: "Player7", Value: 0x67, UsageType: UTSEL},
	{Name: "Player8", Value: 0x68, UsageType: UTSEL},
}

// ButtonMap is the Button usage page, HID Usage Tables ch. 12. "Button#"
// is an index-bearing name: two adjacent entries with an identical name
// carry the first and last legal numeric suffix.
var ButtonMap = Table{
	{Name: "NoButtonPressed", Value: 0x00, UsageType: UTSEL | UTOOC | UTMC | UTOSC},
	{Name: "Button#", Value: 0x01, UsageType: UTSEL | UTOOC | UTMC | UTOSC},
	{Name: "Button#", Value: 0xFFFF, UsageType: UTSEL | UTOOC | UTMC | UTOSC},
}

// OrdinalMap is the Ordinal usage page, HID Usage Tables ch. 13.
var OrdinalMap = Table{
	{Name: "Instance#", Value: 0x01, UsageType: UTUM},
	{Name: "Instance#", Value: 0xFFFF, UsageType: UTUM},
}

// UnicodeMap is the Unicode usage page, HID Usage Tables ch. 18: each
// usage ID is a Unicode code point.
var UnicodeMap = Table{
	{Name: "Ucs#", Value: 0x0000},
	{Name: "Ucs#", Value: 0xFFFF},
}

// MonitorEnumMap is the Monitor Enumerated Values page, Monitor Control
// Class Specification 1.0 ch. 6.
var MonitorEnumMap = Table{
	{Name: "Enum#", Value: 0x00},
	{Name: "Enum#", Value: 0x3E},
}
