// Package catalog turns enumerated DRM connectors into the ordered list of
// displays known for this invocation and the serial-number lookup the mapping
// code reconciles against.
//
// A catalog is a snapshot: it is built from the filesystem once per run and
// never updated. When two connectors report the same serial number the one
// enumerated last wins the lookup.
package catalog
