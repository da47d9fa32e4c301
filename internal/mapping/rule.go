package mapping

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrRuleParse marks every failure returned by ParseRule.
var ErrRuleParse = errors.New("invalid map rule")

// Rule binds a config variable to the display carrying Serial.
type Rule struct {
	Variable string
	Serial   uint32
}

func (r Rule) String() string {
	return fmt.Sprintf("%s:%d", r.Variable, r.Serial)
}

// RuleParseError reports a token that is not of the form VAR:S/N.
type RuleParseError struct {
	Token  string
	Reason string
	Err    error
}

func (e *RuleParseError) Error() string {
	msg := fmt.Sprintf("%s %q: %s", ErrRuleParse, e.Token, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RuleParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrRuleParse.
func (e *RuleParseError) Is(target error) bool {
	return target == ErrRuleParse
}

// ParseRule parses "<variable>:<serial>". The token is split at the first
// colon and the serial must be a base-10 unsigned 32-bit integer. The
// variable name is taken verbatim and may be empty.
func ParseRule(token string) (Rule, error) {
	variable, serial, ok := strings.Cut(token, ":")
	if !ok {
		return Rule{}, &RuleParseError{Token: token, Reason: "expected VAR:S/N"}
	}
	value, err := strconv.ParseUint(serial, 10, 32)
	if err != nil {
		return Rule{}, &RuleParseError{Token: token, Reason: "serial number must be an unsigned 32-bit integer", Err: err}
	}
	return Rule{Variable: variable, Serial: uint32(value)}, nil
}

// ParseRules parses tokens in order and stops at the first invalid one.
func ParseRules(tokens []string) ([]Rule, error) {
	rules := make([]Rule, 0, len(tokens))
	for _, token := range tokens {
		rule, err := ParseRule(token)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
