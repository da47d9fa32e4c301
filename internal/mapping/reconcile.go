package mapping

import (
	"fmt"
	"io"
	"log/slog"

	"monserial/internal/logging"
)

// UnknownDisplay is bound to variables whose serial number matched nothing.
const UnknownDisplay = "Unknown"

// Reconciler writes set lines for rules against a serial-to-name lookup.
type Reconciler struct {
	displays map[uint32]string
	logger   *slog.Logger
}

// NewReconciler returns a Reconciler over displays. A nil logger discards
// diagnostics.
func NewReconciler(displays map[uint32]string, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		displays: displays,
		logger:   logging.NewComponentLogger(logger, "mapping"),
	}
}

// Resolve returns the display name bound to rule and whether it matched.
func (r *Reconciler) Resolve(rule Rule) (string, bool) {
	name, ok := r.displays[rule.Serial]
	if !ok {
		return UnknownDisplay, false
	}
	return name, true
}

// Write emits one set line per rule, in order. Unmatched rules get a comment
// line first. Only write errors are returned.
func (r *Reconciler) Write(w io.Writer, rules []Rule) error {
	for _, rule := range rules {
		name, ok := r.Resolve(rule)
		if !ok {
			r.logger.Debug("no display for rule",
				logging.String("variable", rule.Variable),
				logging.Uint64(logging.FieldSerial, uint64(rule.Serial)),
			)
			if _, err := fmt.Fprintf(w, "# No display for serial number %d\n", rule.Serial); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "set $%s %s\n", rule.Variable, name); err != nil {
			return err
		}
	}
	return nil
}

// Reconcile writes the set lines for rules against displays.
func Reconcile(w io.Writer, displays map[uint32]string, rules []Rule) error {
	return NewReconciler(displays, nil).Write(w, rules)
}
