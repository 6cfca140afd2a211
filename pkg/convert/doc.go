// Package convert moves field values between their normalised native form and
// the text a widget displays. Parsing is fail-soft: empty or malformed input
// becomes the zero value of the target type and no error ever reaches the
// caller. Committed numbers are clamped to the configured bounds and to the
// range of the underlying type; floats are rounded half to even at the
// configured precision both for display and on commit.
package convert
