// Package mapping parses VAR:S/N rules and reconciles them against the
// displays found on this machine, producing sway/i3 "set $VAR output" lines.
//
// Every rule yields exactly one set line in the order the rules were given.
// A rule whose serial number matches no display binds the variable to
// UnknownDisplay and is preceded by a "# No display for serial number N"
// comment.
package mapping
