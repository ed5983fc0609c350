package hci

import "time"

// opcodeNop tags Command Complete events the controller emits purely to
// report command credit [Vol 2, Part E, 7.7.14]. They match no sent command.
const opcodeNop = 0x0000

// maxHciPayload is the longest command parameter block that fits the
// one byte length field.
const maxHciPayload = 255

// Packet boundary flags of HCI ACL Data Packet [Vol 2, Part E, 5.4.2].
const (
	PbfHostToControllerStart = 0x00 // Start of a non-automatically-flushable from host to controller.
	PbfContinuing            = 0x01 // Continuing fragment.
)

// defaultCmdTimeout bounds how long a sent command may stay unanswered
// before the watchdog escalates. Override with OptCommandTimeout.
const defaultCmdTimeout = time.Second * 2
