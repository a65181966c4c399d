package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownName is returned when a policy, alignment or axis name is not recognised.
var ErrUnknownName = errors.New("unknown name")

// ParsePolicy parses "fixed" or "fit", ignoring case.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed":
		return Fixed, nil
	case "fit":
		return Fit, nil
	}
	return Fixed, fmt.Errorf("policy %q: %w", s, ErrUnknownName)
}

// ParseAlign parses "start", "center" or "end". The edge names "left",
// "top", "right" and "bottom" are accepted as aliases.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start", "left", "top":
		return Start, nil
	case "center", "centre", "middle":
		return Center, nil
	case "end", "right", "bottom":
		return End, nil
	}
	return Start, fmt.Errorf("alignment %q: %w", s, ErrUnknownName)
}

// ParseAxis parses "horizontal" or "vertical", or the short forms "x" and "y".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "x", "row":
		return Horizontal, nil
	case "vertical", "y", "column":
		return Vertical, nil
	}
	return Vertical, fmt.Errorf("axis %q: %w", s, ErrUnknownName)
}

func (p Policy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }
func (a Align) MarshalText() ([]byte, error) { return []byte(a.String()), nil }
func (a Axis) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (p *Policy) UnmarshalText(b []byte) (err error) {
	*p, err = ParsePolicy(string(b))
	return err
}

func (a *Align) UnmarshalText(b []byte) (err error) {
	*a, err = ParseAlign(string(b))
	return err
}

func (a *Axis) UnmarshalText(b []byte) (err error) {
	*a, err = ParseAxis(string(b))
	return err
}
