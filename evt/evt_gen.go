package evt

import "encoding/binary"

const InquiryCompleteCode = 0x01

// InquiryComplete implements Inquiry Complete (0x01) [Vol 2, Part E, 7.7.1].
type InquiryComplete []byte

func (r InquiryComplete) Status() uint8 { return r[0] }

const DisconnectionCompleteCode = 0x05

// DisconnectionComplete implements Disconnection Complete (0x05) [Vol 2, Part E, 7.7.5].
type DisconnectionComplete []byte

func (r DisconnectionComplete) Status() uint8 { return r[0] }

func (r DisconnectionComplete) ConnectionHandle() uint16 { return binary.LittleEndian.Uint16(r[1:]) }

func (r DisconnectionComplete) Reason() uint8 { return r[3] }

const AuthenticationCompleteCode = 0x06

// AuthenticationComplete implements Authentication Complete (0x06) [Vol 2, Part E, 7.7.6].
type AuthenticationComplete []byte

func (r AuthenticationComplete) Status() uint8 { return r[0] }

func (r AuthenticationComplete) ConnectionHandle() uint16 { return binary.LittleEndian.Uint16(r[1:]) }

const EncryptionChangeCode = 0x08

// EncryptionChange implements Encryption Change (0x08) [Vol 2, Part E, 7.7.8].
type EncryptionChange []byte

func (r EncryptionChange) Status() uint8 { return r[0] }

func (r EncryptionChange) ConnectionHandle() uint16 { return binary.LittleEndian.Uint16(r[1:]) }

func (r EncryptionChange) EncryptionEnabled() uint8 { return r[3] }

const ReadRemoteVersionInformationCompleteCode = 0x0C

// ReadRemoteVersionInformationComplete implements Read Remote Version Information Complete (0x0C) [Vol 2, Part E, 7.7.12].
type ReadRemoteVersionInformationComplete []byte

func (r ReadRemoteVersionInformationComplete) Status() uint8 { return r[0] }

func (r ReadRemoteVersionInformationComplete) ConnectionHandle() uint16 {
	return binary.LittleEndian.Uint16(r[1:])
}

func (r ReadRemoteVersionInformationComplete) Version() uint8 { return r[3] }

func (r ReadRemoteVersionInformationComplete) ManufacturerName() uint16 {
	return binary.LittleEndian.Uint16(r[4:])
}

func (r ReadRemoteVersionInformationComplete) Subversion() uint16 {
	return binary.LittleEndian.Uint16(r[6:])
}

const CommandCompleteCode = 0x0E

// CommandComplete implements Command Complete (0x0E) [Vol 2, Part E, 7.7.14].
type CommandComplete []byte

const CommandStatusCode = 0x0F

// CommandStatus implements Command Status (0x0F) [Vol 2, Part E, 7.7.15].
type CommandStatus []byte

const HardwareErrorCode = 0x10

// HardwareError implements Hardware Error (0x10) [Vol 2, Part E, 7.7.16].
type HardwareError []byte

func (r HardwareError) HardwareCode() uint8 { return r[0] }

const NumberOfCompletedPacketsCode = 0x13

// NumberOfCompletedPackets implements Number Of Completed Packets (0x13) [Vol 2, Part E, 7.7.19].
type NumberOfCompletedPackets []byte

const PINCodeRequestCode = 0x16

// PINCodeRequest implements PIN Code Request (0x16) [Vol 2, Part E, 7.7.22].
type PINCodeRequest []byte

func (r PINCodeRequest) BDADDR() [6]byte {
	b := [6]byte{}
	copy(b[:], r[0:])
	return b
}

const LinkKeyRequestCode = 0x17

// LinkKeyRequest implements Link Key Request (0x17) [Vol 2, Part E, 7.7.23].
type LinkKeyRequest []byte

func (r LinkKeyRequest) BDADDR() [6]byte {
	b := [6]byte{}
	copy(b[:], r[0:])
	return b
}

const LinkKeyNotificationCode = 0x18

// LinkKeyNotification implements Link Key Notification (0x18) [Vol 2, Part E, 7.7.24].
type LinkKeyNotification []byte

func (r LinkKeyNotification) BDADDR() [6]byte {
	b := [6]byte{}
	copy(b[:], r[0:])
	return b
}

func (r LinkKeyNotification) LinkKey() [16]byte {
	b := [16]byte{}
	copy(b[:], r[6:])
	return b
}

func (r LinkKeyNotification) KeyType() uint8 { return r[22] }

const DataBufferOverflowCode = 0x1A

// DataBufferOverflow implements Data Buffer Overflow (0x1A) [Vol 2, Part E, 7.7.26].
type DataBufferOverflow []byte

func (r DataBufferOverflow) LinkType() uint8 { return r[0] }

const EncryptionKeyRefreshCompleteCode = 0x30

// EncryptionKeyRefreshComplete implements Encryption Key Refresh Complete (0x30) [Vol 2, Part E, 7.7.39].
type EncryptionKeyRefreshComplete []byte

func (r EncryptionKeyRefreshComplete) Status() uint8 { return r[0] }

func (r EncryptionKeyRefreshComplete) ConnectionHandle() uint16 {
	return binary.LittleEndian.Uint16(r[1:])
}

const IOCapabilityRequestCode = 0x31

// IOCapabilityRequest implements IO Capability Request (0x31) [Vol 2, Part E, 7.7.40].
type IOCapabilityRequest []byte

func (r IOCapabilityRequest) BDADDR() [6]byte {
	b := [6]byte{}
	copy(b[:], r[0:])
	return b
}

const IOCapabilityResponseCode = 0x32

// IOCapabilityResponse implements IO Capability Response (0x32) [Vol 2, Part E, 7.7.41].
type IOCapabilityResponse []byte

func (r IOCapabilityResponse) BDADDR() [6]byte {
	b := [6]byte{}
	copy(b[:], r[0:])
	return b
}

func (r IOCapabilityResponse) IOCapability() uint8 { return r[6] }

func (r IOCapabilityResponse) OOBDataPresent() uint8 { return r[7] }

func (r IOCapabilityResponse) AuthenticationRequirements() uint8 { return r[8] }

const UserConfirmationRequestCode = 0x33

// UserConfirmationRequest implements User Confirmation Request (0x33) [Vol 2, Part E, 7.7.42].
type UserConfirmationRequest []byte

func (r UserConfirmationRequest) BDADDR() [6]byte {
	b := [6]byte{}
	copy(b[:], r[0:])
	return b
}

func (r UserConfirmationRequest) NumericValue() uint32 { return binary.LittleEndian.Uint32(r[6:]) }

const UserPasskeyRequestCode = 0x34

// UserPasskeyRequest implements User Passkey Request (0x34) [Vol 2, Part E, 7.7.43].
type UserPasskeyRequest []byte

func (r UserPasskeyRequest) BDADDR() [6]byte {
	b := [6]byte{}
	copy(b[:], r[0:])
	return b
}

const RemoteOOBDataRequestCode = 0x35

// RemoteOOBDataRequest implements Remote OOB Data Request (0x35) [Vol 2, Part E, 7.7.44].
type RemoteOOBDataRequest []byte

func (r RemoteOOBDataRequest) BDADDR() [6]byte {
	b := [6]byte{}
	copy(b[:], r[0:])
	return b
}

const SimplePairingCompleteCode = 0x36

// SimplePairingComplete implements Simple Pairing Complete (0x36) [Vol 2, Part E, 7.7.45].
type SimplePairingComplete []byte

func (r SimplePairingComplete) Status() uint8 { return r[0] }

func (r SimplePairingComplete) BDADDR() [6]byte {
	b := [6]byte{}
	copy(b[:], r[1:])
	return b
}

const UserPasskeyNotificationCode = 0x3B

// UserPasskeyNotification implements User Passkey Notification (0x3B) [Vol 2, Part E, 7.7.48].
type UserPasskeyNotification []byte

func (r UserPasskeyNotification) BDADDR() [6]byte {
	b := [6]byte{}
	copy(b[:], r[0:])
	return b
}

func (r UserPasskeyNotification) Passkey() uint32 { return binary.LittleEndian.Uint32(r[6:]) }

const KeypressNotificationCode = 0x3C

// KeypressNotification implements Keypress Notification (0x3C) [Vol 2, Part E, 7.7.49].
type KeypressNotification []byte

func (r KeypressNotification) BDADDR() [6]byte {
	b := [6]byte{}
	copy(b[:], r[0:])
	return b
}

func (r KeypressNotification) NotificationType() uint8 { return r[6] }

const LEMetaCode = 0x3E

// LEMeta is the generic view of an LE Meta (0x3E) event [Vol 2, Part E, 7.7.65].
type LEMeta []byte

const AuthenticatedPayloadTimeoutExpiredCode = 0x57

// AuthenticatedPayloadTimeoutExpired implements Authenticated Payload Timeout Expired (0x57) [Vol 2, Part E, 7.7.75].
type AuthenticatedPayloadTimeoutExpired []byte

func (r AuthenticatedPayloadTimeoutExpired) ConnectionHandle() uint16 {
	return binary.LittleEndian.Uint16(r[0:])
}

const LEConnectionCompleteSubCode = 0x01

// LEConnectionComplete implements LE Connection Complete (0x3E:0x01) [Vol 2, Part E, 7.7.65.1].
type LEConnectionComplete []byte

func (r LEConnectionComplete) SubeventCode() uint8 { return r[0] }

func (r LEConnectionComplete) Status() uint8 { return r[1] }

func (r LEConnectionComplete) ConnectionHandle() uint16 { return binary.LittleEndian.Uint16(r[2:]) }

func (r LEConnectionComplete) Role() uint8 { return r[4] }

func (r LEConnectionComplete) PeerAddressType() uint8 { return r[5] }

func (r LEConnectionComplete) PeerAddress() [6]byte {
	b := [6]byte{}
	copy(b[:], r[6:])
	return b
}

func (r LEConnectionComplete) ConnInterval() uint16 { return binary.LittleEndian.Uint16(r[12:]) }

func (r LEConnectionComplete) ConnLatency() uint16 { return binary.LittleEndian.Uint16(r[14:]) }

func (r LEConnectionComplete) SupervisionTimeout() uint16 {
	return binary.LittleEndian.Uint16(r[16:])
}

func (r LEConnectionComplete) MasterClockAccuracy() uint8 { return r[18] }

const LEAdvertisingReportSubCode = 0x02

// LEAdvertisingReport implements LE Advertising Report (0x3E:0x02) [Vol 2, Part E, 7.7.65.2].
type LEAdvertisingReport []byte

const LEConnectionUpdateCompleteSubCode = 0x03

// LEConnectionUpdateComplete implements LE Connection Update Complete (0x3E:0x03) [Vol 2, Part E, 7.7.65.3].
type LEConnectionUpdateComplete []byte

func (r LEConnectionUpdateComplete) SubeventCode() uint8 { return r[0] }

func (r LEConnectionUpdateComplete) Status() uint8 { return r[1] }

func (r LEConnectionUpdateComplete) ConnectionHandle() uint16 {
	return binary.LittleEndian.Uint16(r[2:])
}

const LEReadRemoteUsedFeaturesCompleteSubCode = 0x04

// LEReadRemoteUsedFeaturesComplete implements LE Read Remote Used Features Complete (0x3E:0x04) [Vol 2, Part E, 7.7.65.4].
type LEReadRemoteUsedFeaturesComplete []byte

func (r LEReadRemoteUsedFeaturesComplete) SubeventCode() uint8 { return r[0] }

func (r LEReadRemoteUsedFeaturesComplete) Status() uint8 { return r[1] }

func (r LEReadRemoteUsedFeaturesComplete) ConnectionHandle() uint16 {
	return binary.LittleEndian.Uint16(r[2:])
}

func (r LEReadRemoteUsedFeaturesComplete) LEFeatures() uint64 {
	return binary.LittleEndian.Uint64(r[4:])
}

const LELongTermKeyRequestSubCode = 0x05

// LELongTermKeyRequest implements LE Long Term Key Request (0x3E:0x05) [Vol 2, Part E, 7.7.65.5].
type LELongTermKeyRequest []byte

func (r LELongTermKeyRequest) SubeventCode() uint8 { return r[0] }

func (r LELongTermKeyRequest) ConnectionHandle() uint16 { return binary.LittleEndian.Uint16(r[1:]) }

func (r LELongTermKeyRequest) RandomNumber() uint64 { return binary.LittleEndian.Uint64(r[3:]) }

func (r LELongTermKeyRequest) EncryptionDiversifier() uint16 {
	return binary.LittleEndian.Uint16(r[11:])
}

const LERemoteConnectionParameterRequestSubCode = 0x06

// LERemoteConnectionParameterRequest implements LE Remote Connection Parameter Request (0x3E:0x06) [Vol 2, Part E, 7.7.65.6].
type LERemoteConnectionParameterRequest []byte

func (r LERemoteConnectionParameterRequest) SubeventCode() uint8 { return r[0] }

func (r LERemoteConnectionParameterRequest) ConnectionHandle() uint16 {
	return binary.LittleEndian.Uint16(r[1:])
}

const LEDataLengthChangeSubCode = 0x07

// LEDataLengthChange implements LE Data Length Change (0x3E:0x07) [Vol 2, Part E, 7.7.65.7].
type LEDataLengthChange []byte

func (r LEDataLengthChange) SubeventCode() uint8 { return r[0] }

func (r LEDataLengthChange) ConnectionHandle() uint16 { return binary.LittleEndian.Uint16(r[1:]) }

const LEReadLocalP256PublicKeyCompleteSubCode = 0x08

// LEReadLocalP256PublicKeyComplete implements LE Read Local P-256 Public Key Complete (0x3E:0x08) [Vol 2, Part E, 7.7.65.8].
type LEReadLocalP256PublicKeyComplete []byte

func (r LEReadLocalP256PublicKeyComplete) SubeventCode() uint8 { return r[0] }

func (r LEReadLocalP256PublicKeyComplete) Status() uint8 { return r[1] }

func (r LEReadLocalP256PublicKeyComplete) LocalP256PublicKey() [64]byte {
	b := [64]byte{}
	copy(b[:], r[2:])
	return b
}

const LEGenerateDHKeyCompleteSubCode = 0x09

// LEGenerateDHKeyComplete implements LE Generate DHKey Complete (0x3E:0x09) [Vol 2, Part E, 7.7.65.9].
type LEGenerateDHKeyComplete []byte

func (r LEGenerateDHKeyComplete) SubeventCode() uint8 { return r[0] }

func (r LEGenerateDHKeyComplete) Status() uint8 { return r[1] }

func (r LEGenerateDHKeyComplete) DHKey() [32]byte {
	b := [32]byte{}
	copy(b[:], r[2:])
	return b
}

const LEEnhancedConnectionCompleteSubCode = 0x0A

// LEEnhancedConnectionComplete implements LE Enhanced Connection Complete (0x3E:0x0A) [Vol 2, Part E, 7.7.65.10].
type LEEnhancedConnectionComplete []byte

func (r LEEnhancedConnectionComplete) SubeventCode() uint8 { return r[0] }

func (r LEEnhancedConnectionComplete) Status() uint8 { return r[1] }

func (r LEEnhancedConnectionComplete) ConnectionHandle() uint16 {
	return binary.LittleEndian.Uint16(r[2:])
}
