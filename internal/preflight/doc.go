// Package preflight provides readiness checks for the sysfs paths monserial
// reads.
//
// The CLI "monserial check" command runs RunAll and renders the results, so a
// user can tell a permissions problem or an unparsable EDID apart from a
// display that simply is not connected.
package preflight
