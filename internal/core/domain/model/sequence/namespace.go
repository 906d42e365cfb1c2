// Package sequence provides the namespace value object behind the
// business code generator. A namespace fixes the prefix and suffix width
// of one code family (production numbers, model codes); within a
// namespace codes are unique, gap-free, and numerically increasing.
package sequence

import (
	"fmt"
	"strconv"
	"strings"

	"produzione/internal/pkg/errs"
)

// Namespace identifies one family of sequential business codes. Prefix
// and width are fixed configuration per namespace, never computed from
// the data.
type Namespace struct {
	name   string
	prefix string
	width  int
}

// NewNamespace creates a namespace with validation. Width is the fixed
// zero-padded suffix length; codes whose numeric suffix outgrows it are
// still formatted without truncation.
func NewNamespace(name, prefix string, width int) (Namespace, error) {
	if name == "" {
		return Namespace{}, errs.NewValueIsRequiredError("namespace name")
	}
	if prefix == "" {
		return Namespace{}, errs.NewValueIsRequiredError("namespace prefix")
	}
	if width <= 0 {
		return Namespace{}, errs.NewValueIsInvalidErrorWithCause("namespace width",
			fmt.Errorf("%d is not greater than 0", width))
	}
	return Namespace{name: name, prefix: prefix, width: width}, nil
}

// ProductionNumbers is the namespace of order production numbers.
func ProductionNumbers() Namespace {
	return Namespace{name: "production_number", prefix: "PRD", width: 6}
}

// ModelCodes is the namespace of article model codes.
func ModelCodes() Namespace {
	return Namespace{name: "model_code", prefix: "CQU", width: 6}
}

// Name returns the namespace name used to scope issued codes.
func (n Namespace) Name() string {
	return n.name
}

// Prefix returns the fixed code prefix.
func (n Namespace) Prefix() string {
	return n.prefix
}

// Width returns the fixed zero-padded suffix width.
func (n Namespace) Width() int {
	return n.width
}

// Validate returns an error for the zero value.
func (n Namespace) Validate() error {
	if n.name == "" || n.prefix == "" || n.width <= 0 {
		return errs.NewValueIsRequiredError("namespace must be created via NewNamespace")
	}
	return nil
}

// Format renders the code for a numeric suffix: prefix plus the
// zero-padded suffix.
func (n Namespace) Format(suffix int) string {
	return fmt.Sprintf("%s%0*d", n.prefix, n.width, suffix)
}

// ParseSuffix extracts the numeric suffix from a code of this namespace.
// Ordering codes by this value, not lexicographically, is what keeps the
// sequence correct once a suffix outgrows its padding.
func (n Namespace) ParseSuffix(code string) (int, error) {
	if !strings.HasPrefix(code, n.prefix) {
		return 0, errs.NewValueIsInvalidErrorWithCause("code",
			fmt.Errorf("%q does not match prefix %q", code, n.prefix))
	}
	suffix, err := strconv.Atoi(strings.TrimPrefix(code, n.prefix))
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("code", err)
	}
	if suffix < 1 {
		return 0, errs.NewValueIsInvalidErrorWithCause("code",
			fmt.Errorf("suffix %d is not greater than 0", suffix))
	}
	return suffix, nil
}

// Next returns the code following the given highest issued suffix;
// a zero highest suffix yields the first code of the namespace.
func (n Namespace) Next(highestSuffix int) string {
	return n.Format(highestSuffix + 1)
}
