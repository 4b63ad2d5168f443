package aoc

const (
	ASCIIDigits    = "0123456789"
	ASCIILowercase = "abcdefghijklmnopqrstuvwxyz"
	ASCIIUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

func IsDigit(r rune) bool { return r >= '0' && r <= '9' }
func IsLower(r rune) bool { return r >= 'a' && r <= 'z' }
func IsUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
