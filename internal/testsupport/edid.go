package testsupport

import "encoding/binary"

// EDIDSpec describes the identification fields of a synthetic EDID block.
type EDIDSpec struct {
	Manufacturer string
	ProductCode  uint16
	Serial       uint32
	Week         uint8
	Year         int
	MonitorName  string
	SerialString string
}

// EDID returns a valid 128-byte EDID base block carrying serial.
func EDID(serial uint32) []byte {
	return BuildEDID(EDIDSpec{Manufacturer: "TST", ProductCode: 0x1234, Serial: serial, Year: 2020})
}

// BuildEDID encodes spec into a 128-byte EDID 1.4 base block with a valid
// checksum. Unused descriptor slots are filled with dummy (0x10) descriptors.
func BuildEDID(spec EDIDSpec) []byte {
	block := make([]byte, 128)
	copy(block, []byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00})

	binary.BigEndian.PutUint16(block[8:], packManufacturer(spec.Manufacturer))
	binary.LittleEndian.PutUint16(block[10:], spec.ProductCode)
	binary.LittleEndian.PutUint32(block[12:], spec.Serial)
	block[16] = spec.Week
	if spec.Year >= 1990 {
		block[17] = byte(spec.Year - 1990)
	}
	block[18] = 1
	block[19] = 4

	descriptors := [][]byte{}
	if spec.MonitorName != "" {
		descriptors = append(descriptors, textDescriptor(0xFC, spec.MonitorName))
	}
	if spec.SerialString != "" {
		descriptors = append(descriptors, textDescriptor(0xFF, spec.SerialString))
	}
	for len(descriptors) < 4 {
		descriptors = append(descriptors, dummyDescriptor())
	}
	for i, desc := range descriptors {
		copy(block[54+i*18:], desc)
	}

	var sum byte
	for _, b := range block[:127] {
		sum += b
	}
	block[127] = byte(0x100 - int(sum))
	return block
}

func packManufacturer(id string) uint16 {
	if len(id) != 3 {
		return 0
	}
	var v uint16
	for i := 0; i < 3; i++ {
		v = v<<5 | uint16(id[i]-'A'+1)&0x1f
	}
	return v
}

func textDescriptor(tag byte, text string) []byte {
	desc := make([]byte, 18)
	desc[3] = tag
	payload := desc[5:]
	for i := range payload {
		payload[i] = ' '
	}
	n := copy(payload, text)
	if n < len(payload) {
		payload[n] = '\n'
	}
	return desc
}

func dummyDescriptor() []byte {
	desc := make([]byte, 18)
	desc[3] = 0x10
	return desc
}
