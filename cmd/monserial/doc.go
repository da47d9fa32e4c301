// Package main hosts the monserial CLI entrypoint and command graph.
//
// The root command has two modes: --list prints every display found under
// /sys/class/drm with its EDID serial number, and --map VAR:S/N (repeatable)
// prints sway "set $VAR <output>" lines binding each variable to the output
// currently carrying that serial number. With neither flag the command does
// nothing. The config and check subcommands help set up and debug a machine.
//
// Stdout only ever carries listing and set lines; logs and errors go to
// stderr so the output can be redirected straight into a sway include file.
package main
