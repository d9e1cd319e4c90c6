package passgen

// Character classes available for password composition.
//
// SpecialChars is a fixed set and must stay byte-for-byte stable:
// documented examples and downstream composition policies depend on its
// exact contents.
const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	DigitChars     = "0123456789"
	SpecialChars   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)
