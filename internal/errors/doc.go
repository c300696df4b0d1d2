// Package errors provides structured, actionable error messages for htmlelem.
//
// Element construction never fails: disallowed attributes and unknown child
// values are dropped silently. Errors only arise where a tree meets the
// outside world, when rendering to a sink or parsing command-line input.
// Those errors carry a code, a category and a hint.
//
// # Error Codes
//
// Each error has a unique code (e.g., "E100") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//
// # Usage
//
//	err := errors.New("E200").
//	    WithSuggestion(`Use --escape html or --escape none`)
//
//	fmt.Fprint(os.Stderr, err.Format())
//	// Output:
//	// ERROR E200: Unknown escape mode
//	//
//	//   The escape mode names the function applied to text leaves.
//	//
//	//   Hint: Use --escape html or --escape none
package errors
