package edid

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

const (
	// BlockSize is the length of the EDID base block.
	BlockSize = 128

	vendorOffset      = 8
	productOffset     = 10
	serialOffset      = 12
	weekOffset        = 16
	yearOffset        = 17
	versionOffset     = 18
	revisionOffset    = 19
	descriptorOffset  = 54
	descriptorSize    = 18
	descriptorCount   = 4
	descriptorTextLen = 13
	yearBase          = 1990
)

// Display descriptor tags that carry text.
const (
	tagSerialString = 0xFF
	tagMonitorName  = 0xFC
)

var header = []byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00}

// ErrDecode marks every failure returned by Decode.
var ErrDecode = errors.New("edid decode error")

// DecodeError describes why a byte slice is not a usable EDID block.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDecode, e.Reason)
}

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// Info holds the identification fields of an EDID base block.
type Info struct {
	Manufacturer string
	ProductCode  uint16
	SerialNumber uint32
	Week         uint8
	Year         int
	Version      uint8
	Revision     uint8
	MonitorName  string
	SerialString string

	checksumOK bool
}

// Checksum reports whether the base block bytes summed to zero modulo 256.
// Some panels ship broken checksums; Decode does not reject them.
func (i Info) Checksum() bool {
	return i.checksumOK
}

// Decoder turns raw EDID bytes into Info.
type Decoder interface {
	Decode(data []byte) (Info, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(data []byte) (Info, error)

// Decode calls f(data).
func (f DecoderFunc) Decode(data []byte) (Info, error) {
	return f(data)
}

// Standard is the package-level Decoder backed by Decode.
var Standard Decoder = DecoderFunc(Decode)

// Decode parses the EDID base block at the start of data. Extension blocks
// following the base block are ignored.
func Decode(data []byte) (Info, error) {
	if len(data) < len(header) || !bytes.Equal(data[:len(header)], header) {
		return Info{}, &DecodeError{Reason: "missing EDID header"}
	}
	if len(data) < BlockSize {
		return Info{}, &DecodeError{Reason: fmt.Sprintf("block too short: %d bytes, need %d", len(data), BlockSize)}
	}
	block := data[:BlockSize]

	info := Info{
		Manufacturer: decodeManufacturer(binary.BigEndian.Uint16(block[vendorOffset:])),
		ProductCode:  binary.LittleEndian.Uint16(block[productOffset:]),
		SerialNumber: binary.LittleEndian.Uint32(block[serialOffset:]),
		Week:         block[weekOffset],
		Year:         int(block[yearOffset]) + yearBase,
		Version:      block[versionOffset],
		Revision:     block[revisionOffset],
		checksumOK:   checksum(block) == 0,
	}

	for i := 0; i < descriptorCount; i++ {
		start := descriptorOffset + i*descriptorSize
		desc := block[start : start+descriptorSize]
		// Detailed timing descriptors have a non-zero pixel clock.
		if desc[0] != 0 || desc[1] != 0 {
			continue
		}
		switch desc[3] {
		case tagMonitorName:
			info.MonitorName = descriptorText(desc)
		case tagSerialString:
			info.SerialString = descriptorText(desc)
		}
	}

	return info, nil
}

// decodeManufacturer unpacks the three 5-bit letters of a PNP vendor ID.
func decodeManufacturer(raw uint16) string {
	letters := []uint16{(raw >> 10) & 0x1f, (raw >> 5) & 0x1f, raw & 0x1f}
	var b strings.Builder
	for _, v := range letters {
		if v < 1 || v > 26 {
			return ""
		}
		b.WriteByte(byte('A' + v - 1))
	}
	return b.String()
}

func descriptorText(desc []byte) string {
	text := desc[5 : 5+descriptorTextLen]
	if idx := bytes.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(string(text))
}

func checksum(block []byte) byte {
	var sum byte
	for _, b := range block {
		sum += b
	}
	return sum
}
