// Package edid decodes the 128-byte base block of a VESA EDID (Extended
// Display Identification Data) structure as exposed by the kernel under
// /sys/class/drm/<connector>/edid.
//
// Only vendor/product identification and the text descriptors are decoded;
// timing and colour data are left untouched. The manufacturer serial number is
// the field the rest of monserial keys on, so Decode rejects anything that is
// too short or lacks the fixed header instead of guessing.
package edid
