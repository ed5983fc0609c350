package hci

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// s2h decodes sample data printed most significant byte first into the
// little endian form the toolbox functions take.
func s2h(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return swapBuf(b)
}

// Sample data for the toolbox functions [Vol 3, Part H, Appendix D].

func TestAesCmacVectors(t *testing.T) {
	key := s2h(t, "2b7e151628aed2a6abf7158809cf4f3c")

	got, err := aesCMAC(key, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := s2h(t, "bb1d6929e95937287fa37d129b756746"); !bytes.Equal(got, want) {
		t.Fatalf("empty message: got % X", got)
	}

	got, err = aesCMAC(key, s2h(t, "6bc1bee22e409f96e93d7e117393172a"))
	if err != nil {
		t.Fatal(err)
	}
	if want := s2h(t, "070a16b46b4d4144f79bdd9dd04a287c"); !bytes.Equal(got, want) {
		t.Fatalf("one block message: got % X", got)
	}
}

func TestF4Vector(t *testing.T) {
	u := s2h(t, "20b003d2f297be2c5e2c83a7e9f9a5b9eff49111acf4fddbcc0301480e359de6")
	v := s2h(t, "55188b3d32f6bb9a900afcfbeed4e72a59cb9ac2f19d7cfb6b4fdd49f47fc5fd")
	x := s2h(t, "d5cb8454d177733effffb2ec712baeab")

	got, err := F4(u, v, x, 0x00)
	if err != nil {
		t.Fatal(err)
	}
	if want := s2h(t, "f2c916f107a9bd1cf1eda1bea974872d"); !bytes.Equal(got, want) {
		t.Fatalf("confirm value: got % X", got)
	}

	if _, err := F4(u[:31], v, x, 0x00); err == nil {
		t.Fatal("short input accepted")
	}
}

func TestF5Vector(t *testing.T) {
	w := s2h(t, "ec0234a357c8ad05341010a60a397d9b99796b13b4f866f1868d34f373bfa698")
	n1 := s2h(t, "d5cb8454d177733effffb2ec712baeab")
	n2 := s2h(t, "a6e8e7cc25a75f6e216583f7ff3dc4cf")
	a1 := s2h(t, "0056123737bfce")
	a2 := s2h(t, "00a713702dcfc1")

	macKey, ltk, err := F5(w, n1, n2, a1, a2)
	if err != nil {
		t.Fatal(err)
	}
	if want := s2h(t, "2965f176a1084a02fd3f6a20ce636e20"); !bytes.Equal(macKey, want) {
		t.Fatalf("mac key: got % X", macKey)
	}
	if want := s2h(t, "6986791169d7cd23980522b594750a38"); !bytes.Equal(ltk, want) {
		t.Fatalf("ltk: got % X", ltk)
	}
}

func TestF6Vector(t *testing.T) {
	n1 := s2h(t, "d5cb8454d177733effffb2ec712baeab")
	n2 := s2h(t, "a6e8e7cc25a75f6e216583f7ff3dc4cf")
	macKey := s2h(t, "2965f176a1084a02fd3f6a20ce636e20")
	r := s2h(t, "12a3343bb453bb5408da42d20c2d0fc8")
	ioCap := s2h(t, "010102")
	a1 := s2h(t, "0056123737bfce")
	a2 := s2h(t, "00a713702dcfc1")

	got, err := F6(macKey, n1, n2, r, ioCap, a1, a2)
	if err != nil {
		t.Fatal(err)
	}
	if want := s2h(t, "e3c473989cd0e8c5d26c0b09da958f61"); !bytes.Equal(got, want) {
		t.Fatalf("check value: got % X", got)
	}
}

func TestG2Vector(t *testing.T) {
	u := s2h(t, "20b003d2f297be2c5e2c83a7e9f9a5b9eff49111acf4fddbcc0301480e359de6")
	v := s2h(t, "55188b3d32f6bb9a900afcfbeed4e72a59cb9ac2f19d7cfb6b4fdd49f47fc5fd")
	x := s2h(t, "d5cb8454d177733effffb2ec712baeab")
	y := s2h(t, "a6e8e7cc25a75f6e216583f7ff3dc4cf")

	got, err := G2(u, v, x, y)
	if err != nil {
		t.Fatal(err)
	}
	// 0x2f9ed5ba reduced to six digits
	if got != 938554 {
		t.Fatalf("numeric comparison value: got %v", got)
	}
}

func TestECDHSharedSecret(t *testing.T) {
	a, err := GenerateKeys()
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateKeys()
	if err != nil {
		t.Fatal(err)
	}

	s1, err := GenerateSecret(a.Private(), b.Public())
	if err != nil {
		t.Fatal(err)
	}
	s2, err := GenerateSecret(b.Private(), a.Public())
	if err != nil {
		t.Fatal(err)
	}
	if len(s1) != 32 || !bytes.Equal(s1, s2) {
		t.Fatalf("secrets disagree: % X vs % X", s1, s2)
	}
}

func TestPublicKeyWireForm(t *testing.T) {
	k, err := GenerateKeys()
	if err != nil {
		t.Fatal(err)
	}

	w := MarshalPublicKeyXY(k.Public())
	if len(w) != 64 {
		t.Fatalf("wire form length: got %v", len(w))
	}
	if x := MarshalPublicKeyX(k.Public()); !bytes.Equal(x, w[:32]) {
		t.Fatalf("x coordinate: got % X", x)
	}

	pk, ok := UnmarshalPublicKey(w)
	if !ok {
		t.Fatal("unmarshal rejected own wire form")
	}
	if again := MarshalPublicKeyXY(pk); !bytes.Equal(again, w) {
		t.Fatalf("round trip: got % X, want % X", again, w)
	}

	if _, ok := UnmarshalPublicKey(w[:63]); ok {
		t.Fatal("truncated key accepted")
	}
}

func TestSwapBuf(t *testing.T) {
	in := []byte{0x01, 0x02, 0x03}
	out := swapBuf(in)
	if !bytes.Equal(out, []byte{0x03, 0x02, 0x01}) {
		t.Fatalf("got % X", out)
	}
	if !bytes.Equal(in, []byte{0x01, 0x02, 0x03}) {
		t.Fatal("input mutated")
	}
	if out := swapBuf(nil); len(out) != 0 {
		t.Fatalf("got % X", out)
	}
}
