package ruleerrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// These constants are used to identify a specific RuleError.
var (
	// ErrUnexpectedDifficulty indicates specified bits do not align with
	// the expected value computed from the block's ancestors.
	ErrUnexpectedDifficulty = newRuleError("ErrUnexpectedDifficulty")

	// ErrTargetOutOfRange indicates specified bits do not encode a valid
	// target within the limit of the block's production mode. This covers
	// negative, zero and overflowing encodings.
	ErrTargetOutOfRange = newRuleError("ErrTargetOutOfRange")

	// ErrInvalidPoW indicates that the block proof-of-work (or the stake
	// kernel hash of a proof-of-stake block) is above the claimed target.
	ErrInvalidPoW = newRuleError("ErrInvalidPoW")

	// ErrMissingProofHash indicates a header that carries no hash to check
	// against its target.
	ErrMissingProofHash = newRuleError("ErrMissingProofHash")

	// ErrMissingParent indicates the header's parent is not in the block
	// index.
	ErrMissingParent = newRuleError("ErrMissingParent")
)

// RuleError identifies a rule violation. It is used to indicate that
// processing of a block failed due to one of the many validation
// rules. The caller can use type assertions to determine if a failure was
// specifically due to a rule violation.
type RuleError struct {
	message string
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e RuleError) Cause() error {
	return e.inner
}

// Is reports whether target is the sentinel RuleError this error was
// created from.
func (e RuleError) Is(target error) bool {
	var ruleErr RuleError
	switch targetErr := target.(type) {
	case RuleError:
		ruleErr = targetErr
	case *RuleError:
		ruleErr = *targetErr
	default:
		return false
	}
	return ruleErr.inner == nil && ruleErr.message == e.message
}

func newRuleError(message string) RuleError {
	return RuleError{message: message, inner: nil}
}

// ErrUnexpectedDifficultyBits holds the bits a header should have had next
// to the bits it carried.
type ErrUnexpectedDifficultyBits struct {
	Expected uint32
	Actual   uint32
}

func (e ErrUnexpectedDifficultyBits) Error() string {
	return fmt.Sprintf("expected bits %08x, found %08x", e.Expected, e.Actual)
}

// NewErrUnexpectedDifficulty returns a RuleError describing a header whose
// bits differ from the required ones.
func NewErrUnexpectedDifficulty(expected, actual uint32) error {
	return errors.WithStack(RuleError{
		message: "ErrUnexpectedDifficulty",
		inner:   ErrUnexpectedDifficultyBits{Expected: expected, Actual: actual},
	})
}
