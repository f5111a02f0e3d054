package serial

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// BatchContext provides context for batch generation guards.
type BatchContext struct {
	Count  int
	Length int
}

// CanGenerateBatch evaluates whether a batch request can terminate.
// Rules:
// - Count must not be negative
// - Length must not be negative
// - Count must not exceed the number of distinct length-digit suffixes
func CanGenerateBatch(ctx BatchContext) GuardResult {
	if ctx.Count < 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("batch count must not be negative (got %d)", ctx.Count),
		}
	}

	if ctx.Length < 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("serial length must not be negative (got %d)", ctx.Length),
		}
	}

	if space, bounded := suffixSpace(ctx.Length); bounded && ctx.Count > space {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot draw %d distinct serials from a %d-digit space (max %d)", ctx.Count, ctx.Length, space),
		}
	}

	return GuardResult{Allowed: true}
}

// suffixSpace returns the number of distinct length-digit suffixes.
// bounded is false when the space exceeds the int range.
func suffixSpace(length int) (space int, bounded bool) {
	if length >= 19 {
		return 0, false
	}
	space = 1
	for i := 0; i < length; i++ {
		space *= 10
	}
	return space, true
}
