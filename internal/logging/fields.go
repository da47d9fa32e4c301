package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEventType is the standardized key for machine-matchable event names.
	FieldEventType = "event_type"
	// FieldErrorHint is the standardized key for the next step a user should take.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldDevice is the standardized key for DRM connector directory names.
	FieldDevice = "device"
	// FieldSerial is the standardized key for EDID serial numbers.
	FieldSerial = "serial"
	// FieldPath is the standardized key for filesystem paths.
	FieldPath = "path"
)
