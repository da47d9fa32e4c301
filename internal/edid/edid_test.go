package edid_test

import (
	"errors"
	"testing"

	"monserial/internal/edid"
	"monserial/internal/testsupport"
)

func TestDecodeReadsSerialNumber(t *testing.T) {
	block := testsupport.BuildEDID(testsupport.EDIDSpec{
		Manufacturer: "DEL",
		ProductCode:  0xa0c4,
		Serial:       0x4c4b4a42,
		Week:         12,
		Year:         2021,
		MonitorName:  "DELL U2720Q",
		SerialString: "7XH2Q13",
	})

	info, err := edid.Decode(block)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if info.SerialNumber != 0x4c4b4a42 {
		t.Fatalf("unexpected serial: got %d", info.SerialNumber)
	}
	if info.Manufacturer != "DEL" {
		t.Fatalf("unexpected manufacturer: %q", info.Manufacturer)
	}
	if info.ProductCode != 0xa0c4 {
		t.Fatalf("unexpected product code: %#x", info.ProductCode)
	}
	if info.Week != 12 || info.Year != 2021 {
		t.Fatalf("unexpected manufacture date: week %d year %d", info.Week, info.Year)
	}
	if info.Version != 1 || info.Revision != 4 {
		t.Fatalf("unexpected version: %d.%d", info.Version, info.Revision)
	}
	if info.MonitorName != "DELL U2720Q" {
		t.Fatalf("unexpected monitor name: %q", info.MonitorName)
	}
	if info.SerialString != "7XH2Q13" {
		t.Fatalf("unexpected serial string: %q", info.SerialString)
	}
	if !info.Checksum() {
		t.Fatal("expected checksum to validate")
	}
}

func TestDecodeSerialIsLittleEndian(t *testing.T) {
	block := testsupport.EDID(0)
	block[12], block[13], block[14], block[15] = 0x01, 0x02, 0x00, 0x00

	info, err := edid.Decode(block)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if info.SerialNumber != 0x0201 {
		t.Fatalf("expected 513, got %d", info.SerialNumber)
	}
}

func TestDecodeIgnoresExtensionBlocks(t *testing.T) {
	block := append(testsupport.EDID(77), make([]byte, edid.BlockSize)...)

	info, err := edid.Decode(block)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if info.SerialNumber != 77 {
		t.Fatalf("unexpected serial: %d", info.SerialNumber)
	}
}

func TestDecodeToleratesBadChecksum(t *testing.T) {
	block := testsupport.EDID(55)
	block[edid.BlockSize-1]++

	info, err := edid.Decode(block)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if info.Checksum() {
		t.Fatal("expected checksum mismatch to be reported")
	}
	if info.SerialNumber != 55 {
		t.Fatalf("unexpected serial: %d", info.SerialNumber)
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	valid := testsupport.EDID(1)
	badHeader := testsupport.EDID(1)
	badHeader[0] = 0x01

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "shorter than header", data: []byte{0x00, 0xff, 0xff}},
		{name: "bad header", data: badHeader},
		{name: "truncated", data: valid[:64]},
		{name: "text", data: []byte("not an edid block at all")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := edid.Decode(tt.data)
			if err == nil {
				t.Fatal("expected decode error")
			}
			if !errors.Is(err, edid.ErrDecode) {
				t.Fatalf("expected ErrDecode, got %v", err)
			}
			var decodeErr *edid.DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("expected *DecodeError, got %T", err)
			}
		})
	}
}

func TestDecodeUnknownManufacturerLetters(t *testing.T) {
	block := testsupport.EDID(9)
	block[8], block[9] = 0x00, 0x00

	info, err := edid.Decode(block)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if info.Manufacturer != "" {
		t.Fatalf("expected empty manufacturer, got %q", info.Manufacturer)
	}
}

func TestDecoderFuncAdapter(t *testing.T) {
	called := false
	dec := edid.DecoderFunc(func(data []byte) (edid.Info, error) {
		called = true
		return edid.Info{SerialNumber: uint32(len(data))}, nil
	})

	info, err := dec.Decode([]byte{1, 2, 3})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if !called || info.SerialNumber != 3 {
		t.Fatalf("adapter did not call through: called=%v serial=%d", called, info.SerialNumber)
	}
}
