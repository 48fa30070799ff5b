package order

import (
	"fmt"
	"strings"

	"orderflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	CREATED ──> PROCESSING ──> COMPLETED
//
// COMPLETED is terminal: no transition out of it is allowed, not even to
// COMPLETED itself. CREATED cannot jump directly to COMPLETED. Transitions
// between the two non-terminal states are otherwise unrestricted, which
// permits same-state updates and moving back from PROCESSING to CREATED.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first created.
	Created

	// Processing indicates the order is being worked on.
	Processing

	// Completed indicates the order is finished. This is a terminal state.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Created:    "CREATED",
		Processing: "PROCESSING",
		Completed:  "COMPLETED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "CREATED",
		Processing: "PROCESSING",
		Completed:  "COMPLETED",
	}
}

// ParseStatus converts a string such as "PROCESSING" into a Status.
// Matching is case-insensitive. Returns an error for unknown values.
func ParseStatus(s string) (Status, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getValidStatusStrings() {
		if name == upper {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is one of the valid states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the canonical uppercase name of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// TransitionTo validates moving from the current status to next and returns
// next on success.
//
// Rules:
//   - any transition from Completed fails: the order is finished
//   - Created -> Completed fails: the order must pass through Processing
//   - everything else between valid states is allowed
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if s == Completed {
		return Unknown, errs.NewBusinessRuleError("cannot change status of completed order")
	}

	if s == Created && next == Completed {
		return Unknown, errs.NewBusinessRuleError("order must be in PROCESSING status before completion")
	}

	return next, nil
}
