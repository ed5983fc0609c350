package evt

import (
	"bytes"
	"testing"
)

func TestCommandComplete(t *testing.T) {
	// Reset complete: 1 credit, opcode 0x0C03, status 0x00.
	e := CommandComplete{0x01, 0x03, 0x0c, 0x00}

	if got := e.NumHCICommandPackets(); got != 1 {
		t.Fatalf("NumHCICommandPackets: got %v, want 1", got)
	}
	if got := e.CommandOpcode(); got != 0x0c03 {
		t.Fatalf("CommandOpcode: got 0x%04x, want 0x0c03", got)
	}
	if got := e.ReturnParameters(); !bytes.Equal(got, []byte{0x00}) {
		t.Fatalf("ReturnParameters: got % X", got)
	}
}

func TestCommandCompleteTruncated(t *testing.T) {
	e := CommandComplete{0x01}

	if _, err := e.CommandOpcodeWErr(); err == nil {
		t.Fatal("expected error for truncated opcode")
	}
	// plain accessor falls back to the default
	if got := e.CommandOpcode(); got != 0xffff {
		t.Fatalf("CommandOpcode default: got 0x%04x", got)
	}
	if _, err := e.ReturnParametersWErr(); err == nil {
		t.Fatal("expected error for missing return parameters")
	}
}

func TestCommandStatus(t *testing.T) {
	e := CommandStatus{0x00, 0x01, 0x06, 0x04}

	if !e.Valid() {
		t.Fatal("expected valid status event")
	}
	if got := e.Status(); got != 0 {
		t.Fatalf("Status: got %v", got)
	}
	if got := e.NumHCICommandPackets(); got != 1 {
		t.Fatalf("NumHCICommandPackets: got %v", got)
	}
	if got := e.CommandOpcode(); got != 0x0406 {
		t.Fatalf("CommandOpcode: got 0x%04x", got)
	}

	if CommandStatus([]byte{0x00, 0x01}).Valid() {
		t.Fatal("short status event reported valid")
	}
}

func TestNumberOfCompletedPackets(t *testing.T) {
	// Two handles, interleaved handle/count pairs as seen on BCM20702A1.
	e := NumberOfCompletedPackets{0x02, 0x40, 0x00, 0x01, 0x00, 0x41, 0x00, 0x01, 0x00}

	if got := e.NumberOfHandles(); got != 2 {
		t.Fatalf("NumberOfHandles: got %v", got)
	}
	if got := e.ConnectionHandle(0); got != 0x0040 {
		t.Fatalf("ConnectionHandle(0): got 0x%04x", got)
	}
	if got := e.HCNumOfCompletedPackets(0); got != 1 {
		t.Fatalf("HCNumOfCompletedPackets(0): got %v", got)
	}
	if got := e.ConnectionHandle(1); got != 0x0041 {
		t.Fatalf("ConnectionHandle(1): got 0x%04x", got)
	}

	if _, err := e.ConnectionHandleWErr(2); err == nil {
		t.Fatal("expected error for out of range handle index")
	}
}

func TestLEMetaSubevent(t *testing.T) {
	e := LEMeta{0x05, 0x40, 0x00}
	if got := e.SubeventCode(); got != LELongTermKeyRequestSubCode {
		t.Fatalf("SubeventCode: got 0x%02x", got)
	}

	if _, err := LEMeta(nil).SubeventCodeWErr(); err == nil {
		t.Fatal("expected error for empty le meta event")
	}
}

func TestLEAdvertisingReport(t *testing.T) {
	e := LEAdvertisingReport{
		0x02,                               // subevent
		0x01,                               // num reports
		0x00,                               // event type: ADV_IND
		0x01,                               // address type: random
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, // address
		0x03,             // data length
		0x02, 0x01, 0x06, // data: flags
		0xbf, // rssi: -65
	}

	if got := e.NumReports(); got != 1 {
		t.Fatalf("NumReports: got %v", got)
	}
	if got := e.EventType(0); got != 0x00 {
		t.Fatalf("EventType: got %v", got)
	}
	if got := e.Address(0); got != [6]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06} {
		t.Fatalf("Address: got % X", got)
	}
	if got := e.Data(0); !bytes.Equal(got, []byte{0x02, 0x01, 0x06}) {
		t.Fatalf("Data: got % X", got)
	}
	if got := e.RSSI(0); got != -65 {
		t.Fatalf("RSSI: got %v", got)
	}
}

func TestLELongTermKeyRequest(t *testing.T) {
	e := LELongTermKeyRequest{
		0x05,       // subevent
		0x40, 0x00, // handle
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, // random
		0xcd, 0xab, // ediv
	}

	if got := e.ConnectionHandle(); got != 0x0040 {
		t.Fatalf("ConnectionHandle: got 0x%04x", got)
	}
	if got := e.RandomNumber(); got != 0x8877665544332211 {
		t.Fatalf("RandomNumber: got 0x%016x", got)
	}
	if got := e.EncryptionDiversifier(); got != 0xabcd {
		t.Fatalf("EncryptionDiversifier: got 0x%04x", got)
	}
}
