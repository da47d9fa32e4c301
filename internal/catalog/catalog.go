package catalog

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"monserial/internal/edid"
	"monserial/internal/logging"
	"monserial/internal/sysfs"
)

// Record is one discovered display.
type Record struct {
	Dir          string
	ShortName    string
	SerialNumber uint32
	Info         edid.Info
}

// Options tunes how Build treats the enumerated devices.
type Options struct {
	// SkipUnparsable logs and drops devices whose EDID fails to decode
	// instead of failing the whole build.
	SkipUnparsable bool
	// SortByName orders devices by directory name before building, which
	// makes the last-wins rule for duplicate serials independent of the
	// directory listing order.
	SortByName bool
	Logger     *slog.Logger
}

// Catalog is the set of displays discovered in one enumeration pass.
type Catalog struct {
	records []Record
}

// Build decodes every device in order and assembles the catalog. Unless
// opts.SkipUnparsable is set, the first decode failure aborts the build.
func Build(devices []sysfs.Device, dec edid.Decoder, opts Options) (*Catalog, error) {
	if dec == nil {
		dec = edid.Standard
	}
	logger := logging.NewComponentLogger(opts.Logger, "catalog")

	if opts.SortByName {
		sorted := make([]sysfs.Device, len(devices))
		copy(sorted, devices)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Dir < sorted[j].Dir })
		devices = sorted
	}

	records := make([]Record, 0, len(devices))
	for _, dev := range devices {
		info, err := dec.Decode(dev.EDID)
		if err != nil {
			if opts.SkipUnparsable {
				logging.WarnWithContext(logger, "skipping display with unparsable edid", "edid_decode_skipped",
					logging.String(logging.FieldDevice, dev.Dir),
					logging.Error(err),
					logging.String(logging.FieldErrorHint, "inspect the edid file with edid-decode"),
					logging.String(logging.FieldImpact, "display cannot be matched by serial number"),
				)
				continue
			}
			return nil, fmt.Errorf("decode %s: %w", dev.Dir, err)
		}
		logger.Debug("display decoded",
			logging.String(logging.FieldDevice, dev.Dir),
			logging.String("short_name", dev.ShortName),
			logging.Uint64(logging.FieldSerial, uint64(info.SerialNumber)),
			logging.String("manufacturer", info.Manufacturer),
			logging.String("model", info.MonitorName),
			logging.Bool("checksum_ok", info.Checksum()),
		)
		records = append(records, Record{
			Dir:          dev.Dir,
			ShortName:    dev.ShortName,
			SerialNumber: info.SerialNumber,
			Info:         info,
		})
	}
	return &Catalog{records: records}, nil
}

// Discover enumerates the DRM root described by src and builds a catalog.
func Discover(src sysfs.Options, dec edid.Decoder, opts Options) (*Catalog, error) {
	devices, err := sysfs.EnumerateWith(src)
	if err != nil {
		return nil, err
	}
	return Build(devices, dec, opts)
}

// Records returns the displays in enumeration order.
func (c *Catalog) Records() []Record {
	if c == nil {
		return nil
	}
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Len reports the number of displays.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// BySerial maps serial numbers to short names. Later records overwrite
// earlier ones that share a serial number.
func (c *Catalog) BySerial() map[uint32]string {
	out := make(map[uint32]string, c.Len())
	if c == nil {
		return out
	}
	for _, r := range c.records {
		out[r.SerialNumber] = r.ShortName
	}
	return out
}

// WriteListing writes one "Short Name: X   Serial: N" line per display.
func WriteListing(w io.Writer, c *Catalog) error {
	for _, r := range c.Records() {
		if _, err := fmt.Fprintf(w, "Short Name: %s   Serial: %d\n", r.ShortName, r.SerialNumber); err != nil {
			return err
		}
	}
	return nil
}
