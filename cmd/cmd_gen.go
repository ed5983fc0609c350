package cmd

// Disconnect implements Disconnect (0x01|0x0006) [Vol 2, Part E, 7.1.6].
type Disconnect struct {
	ConnectionHandle uint16
	Reason           uint8
}

// OpCode returns the opcode of the command.
func (c *Disconnect) OpCode() int { return 0x0406 }

// Len returns the length of the command.
func (c *Disconnect) Len() int { return 3 }

// Marshal serializes the command parameters into binary wire format.
func (c *Disconnect) Marshal(b []byte) error {
	return marshal(c, b)
}

// SetEventMask implements Set Event Mask (0x03|0x0001) [Vol 2, Part E, 7.3.1].
type SetEventMask struct {
	EventMask uint64
}

// OpCode returns the opcode of the command.
func (c *SetEventMask) OpCode() int { return 0x0C01 }

// Len returns the length of the command.
func (c *SetEventMask) Len() int { return 8 }

// Marshal serializes the command parameters into binary wire format.
func (c *SetEventMask) Marshal(b []byte) error {
	return marshal(c, b)
}

// SetEventMaskRP returns the return parameter of Set Event Mask
type SetEventMaskRP struct {
	Status uint8
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *SetEventMaskRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// Reset implements Reset (0x03|0x0003) [Vol 2, Part E, 7.3.2].
type Reset struct {
}

// OpCode returns the opcode of the command.
func (c *Reset) OpCode() int { return 0x0C03 }

// Len returns the length of the command.
func (c *Reset) Len() int { return 0 }

// Marshal serializes the command parameters into binary wire format.
func (c *Reset) Marshal(b []byte) error {
	return marshal(c, b)
}

// ResetRP returns the return parameter of Reset
type ResetRP struct {
	Status uint8
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *ResetRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// WriteSimplePairingMode implements Write Simple Pairing Mode (0x03|0x0056) [Vol 2, Part E, 7.3.59].
type WriteSimplePairingMode struct {
	SimplePairingMode uint8
}

// OpCode returns the opcode of the command.
func (c *WriteSimplePairingMode) OpCode() int { return 0x0C56 }

// Len returns the length of the command.
func (c *WriteSimplePairingMode) Len() int { return 1 }

// Marshal serializes the command parameters into binary wire format.
func (c *WriteSimplePairingMode) Marshal(b []byte) error {
	return marshal(c, b)
}

// WriteSimplePairingModeRP returns the return parameter of Write Simple Pairing Mode
type WriteSimplePairingModeRP struct {
	Status uint8
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *WriteSimplePairingModeRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// ReadLocalVersionInformation implements Read Local Version Information (0x04|0x0001) [Vol 2, Part E, 7.4.1].
type ReadLocalVersionInformation struct {
}

// OpCode returns the opcode of the command.
func (c *ReadLocalVersionInformation) OpCode() int { return 0x1001 }

// Len returns the length of the command.
func (c *ReadLocalVersionInformation) Len() int { return 0 }

// Marshal serializes the command parameters into binary wire format.
func (c *ReadLocalVersionInformation) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadLocalVersionInformationRP returns the return parameter of Read Local Version Information
type ReadLocalVersionInformationRP struct {
	Status           uint8
	HCIVersion       uint8
	HCIRevision      uint16
	LMPPAMVersion    uint8
	ManufacturerName uint16
	LMPPAMSubversion uint16
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *ReadLocalVersionInformationRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// ReadLocalSupportedCommands implements Read Local Supported Commands (0x04|0x0002) [Vol 2, Part E, 7.4.2].
type ReadLocalSupportedCommands struct {
}

// OpCode returns the opcode of the command.
func (c *ReadLocalSupportedCommands) OpCode() int { return 0x1002 }

// Len returns the length of the command.
func (c *ReadLocalSupportedCommands) Len() int { return 0 }

// Marshal serializes the command parameters into binary wire format.
func (c *ReadLocalSupportedCommands) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadLocalSupportedCommandsRP returns the return parameter of Read Local Supported Commands
type ReadLocalSupportedCommandsRP struct {
	Status            uint8
	SupportedCommands [64]byte
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *ReadLocalSupportedCommandsRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// ReadLocalSupportedFeatures implements Read Local Supported Features (0x04|0x0003) [Vol 2, Part E, 7.4.3].
type ReadLocalSupportedFeatures struct {
}

// OpCode returns the opcode of the command.
func (c *ReadLocalSupportedFeatures) OpCode() int { return 0x1003 }

// Len returns the length of the command.
func (c *ReadLocalSupportedFeatures) Len() int { return 0 }

// Marshal serializes the command parameters into binary wire format.
func (c *ReadLocalSupportedFeatures) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadLocalSupportedFeaturesRP returns the return parameter of Read Local Supported Features
type ReadLocalSupportedFeaturesRP struct {
	Status      uint8
	LMPFeatures uint64
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *ReadLocalSupportedFeaturesRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// ReadBufferSize implements Read Buffer Size (0x04|0x0005) [Vol 2, Part E, 7.4.5].
type ReadBufferSize struct {
}

// OpCode returns the opcode of the command.
func (c *ReadBufferSize) OpCode() int { return 0x1005 }

// Len returns the length of the command.
func (c *ReadBufferSize) Len() int { return 0 }

// Marshal serializes the command parameters into binary wire format.
func (c *ReadBufferSize) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadBufferSizeRP returns the return parameter of Read Buffer Size
type ReadBufferSizeRP struct {
	Status                           uint8
	HCACLDataPacketLength            uint16
	HCSynchronousDataPacketLength    uint8
	HCTotalNumACLDataPackets         uint16
	HCTotalNumSynchronousDataPackets uint16
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *ReadBufferSizeRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// ReadBDADDR implements Read BD_ADDR (0x04|0x0009) [Vol 2, Part E, 7.4.6].
type ReadBDADDR struct {
}

// OpCode returns the opcode of the command.
func (c *ReadBDADDR) OpCode() int { return 0x1009 }

// Len returns the length of the command.
func (c *ReadBDADDR) Len() int { return 0 }

// Marshal serializes the command parameters into binary wire format.
func (c *ReadBDADDR) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadBDADDRRP returns the return parameter of Read BD_ADDR
type ReadBDADDRRP struct {
	Status uint8
	BDADDR [6]byte
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *ReadBDADDRRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// LESetEventMask implements LE Set Event Mask (0x08|0x0001) [Vol 2, Part E, 7.8.1].
type LESetEventMask struct {
	LEEventMask uint64
}

// OpCode returns the opcode of the command.
func (c *LESetEventMask) OpCode() int { return 0x2001 }

// Len returns the length of the command.
func (c *LESetEventMask) Len() int { return 8 }

// Marshal serializes the command parameters into binary wire format.
func (c *LESetEventMask) Marshal(b []byte) error {
	return marshal(c, b)
}

// LESetEventMaskRP returns the return parameter of LE Set Event Mask
type LESetEventMaskRP struct {
	Status uint8
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *LESetEventMaskRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// LEReadBufferSize implements LE Read Buffer Size (0x08|0x0002) [Vol 2, Part E, 7.8.2].
type LEReadBufferSize struct {
}

// OpCode returns the opcode of the command.
func (c *LEReadBufferSize) OpCode() int { return 0x2002 }

// Len returns the length of the command.
func (c *LEReadBufferSize) Len() int { return 0 }

// Marshal serializes the command parameters into binary wire format.
func (c *LEReadBufferSize) Marshal(b []byte) error {
	return marshal(c, b)
}

// LEReadBufferSizeRP returns the return parameter of LE Read Buffer Size
type LEReadBufferSizeRP struct {
	Status                  uint8
	HCLEDataPacketLength    uint16
	HCTotalNumLEDataPackets uint8
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *LEReadBufferSizeRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// LESetScanParameters implements LE Set Scan Parameters (0x08|0x000B) [Vol 2, Part E, 7.8.10].
type LESetScanParameters struct {
	LEScanType           uint8
	LEScanInterval       uint16
	LEScanWindow         uint16
	OwnAddressType       uint8
	ScanningFilterPolicy uint8
}

// OpCode returns the opcode of the command.
func (c *LESetScanParameters) OpCode() int { return 0x200B }

// Len returns the length of the command.
func (c *LESetScanParameters) Len() int { return 7 }

// Marshal serializes the command parameters into binary wire format.
func (c *LESetScanParameters) Marshal(b []byte) error {
	return marshal(c, b)
}

// LESetScanParametersRP returns the return parameter of LE Set Scan Parameters
type LESetScanParametersRP struct {
	Status uint8
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *LESetScanParametersRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// LESetScanEnable implements LE Set Scan Enable (0x08|0x000C) [Vol 2, Part E, 7.8.11].
type LESetScanEnable struct {
	LEScanEnable     uint8
	FilterDuplicates uint8
}

// OpCode returns the opcode of the command.
func (c *LESetScanEnable) OpCode() int { return 0x200C }

// Len returns the length of the command.
func (c *LESetScanEnable) Len() int { return 2 }

// Marshal serializes the command parameters into binary wire format.
func (c *LESetScanEnable) Marshal(b []byte) error {
	return marshal(c, b)
}

// LESetScanEnableRP returns the return parameter of LE Set Scan Enable
type LESetScanEnableRP struct {
	Status uint8
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *LESetScanEnableRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// LERand implements LE Rand (0x08|0x0018) [Vol 2, Part E, 7.8.23].
type LERand struct {
}

// OpCode returns the opcode of the command.
func (c *LERand) OpCode() int { return 0x2018 }

// Len returns the length of the command.
func (c *LERand) Len() int { return 0 }

// Marshal serializes the command parameters into binary wire format.
func (c *LERand) Marshal(b []byte) error {
	return marshal(c, b)
}

// LERandRP returns the return parameter of LE Rand
type LERandRP struct {
	Status       uint8
	RandomNumber uint64
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *LERandRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// LELongTermKeyRequestReply implements LE Long Term Key Request Reply (0x08|0x001A) [Vol 2, Part E, 7.8.25].
type LELongTermKeyRequestReply struct {
	ConnectionHandle uint16
	LongTermKey      [16]byte
}

// OpCode returns the opcode of the command.
func (c *LELongTermKeyRequestReply) OpCode() int { return 0x201A }

// Len returns the length of the command.
func (c *LELongTermKeyRequestReply) Len() int { return 18 }

// Marshal serializes the command parameters into binary wire format.
func (c *LELongTermKeyRequestReply) Marshal(b []byte) error {
	return marshal(c, b)
}

// LELongTermKeyRequestReplyRP returns the return parameter of LE Long Term Key Request Reply
type LELongTermKeyRequestReplyRP struct {
	Status           uint8
	ConnectionHandle uint16
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *LELongTermKeyRequestReplyRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// LELongTermKeyRequestNegativeReply implements LE Long Term Key Request Negative Reply (0x08|0x001B) [Vol 2, Part E, 7.8.26].
type LELongTermKeyRequestNegativeReply struct {
	ConnectionHandle uint16
}

// OpCode returns the opcode of the command.
func (c *LELongTermKeyRequestNegativeReply) OpCode() int { return 0x201B }

// Len returns the length of the command.
func (c *LELongTermKeyRequestNegativeReply) Len() int { return 2 }

// Marshal serializes the command parameters into binary wire format.
func (c *LELongTermKeyRequestNegativeReply) Marshal(b []byte) error {
	return marshal(c, b)
}

// LELongTermKeyRequestNegativeReplyRP returns the return parameter of LE Long Term Key Request Negative Reply
type LELongTermKeyRequestNegativeReplyRP struct {
	Status           uint8
	ConnectionHandle uint16
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *LELongTermKeyRequestNegativeReplyRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// LEReadLocalP256PublicKey implements LE Read Local P-256 Public Key (0x08|0x0025) [Vol 2, Part E, 7.8.36].
type LEReadLocalP256PublicKey struct {
}

// OpCode returns the opcode of the command.
func (c *LEReadLocalP256PublicKey) OpCode() int { return 0x2025 }

// Len returns the length of the command.
func (c *LEReadLocalP256PublicKey) Len() int { return 0 }

// Marshal serializes the command parameters into binary wire format.
func (c *LEReadLocalP256PublicKey) Marshal(b []byte) error {
	return marshal(c, b)
}

// LEGenerateDHKey implements LE Generate DHKey (0x08|0x0026) [Vol 2, Part E, 7.8.37].
type LEGenerateDHKey struct {
	RemoteP256PublicKey [64]byte
}

// OpCode returns the opcode of the command.
func (c *LEGenerateDHKey) OpCode() int { return 0x2026 }

// Len returns the length of the command.
func (c *LEGenerateDHKey) Len() int { return 64 }

// Marshal serializes the command parameters into binary wire format.
func (c *LEGenerateDHKey) Marshal(b []byte) error {
	return marshal(c, b)
}

// ControllerDebugInfo implements the vendor Controller Debug Info command (0x3F|0x005B).
type ControllerDebugInfo struct {
}

// OpCode returns the opcode of the command.
func (c *ControllerDebugInfo) OpCode() int { return 0xFC5B }

// Len returns the length of the command.
func (c *ControllerDebugInfo) Len() int { return 0 }

// Marshal serializes the command parameters into binary wire format.
func (c *ControllerDebugInfo) Marshal(b []byte) error {
	return marshal(c, b)
}
