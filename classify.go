package minire

// Pattern-side classifiers.

// isLiteral reports whether c starts an atom that the compiler reads as a
// single plain character. Quantifiers and "." are resolved by the caller.
func isLiteral(c byte) bool {
	return !isEscape(c) && !isGroupOpener(c) && !isCaptureOpener(c)
}

func isEscape(c byte) bool {
	return c == '\\'
}

func isGroupOpener(c byte) bool {
	return c == '['
}

func isCaptureOpener(c byte) bool {
	return c == '('
}

func isNegatedGroup(pattern string, p int) bool {
	return p+1 < len(pattern) && pattern[p] == '[' && pattern[p+1] == '^'
}

func isBeginAnchor(c byte) bool {
	return c == '^'
}

// isEndAnchor reports whether pattern ends with a "$" that is not itself
// escaped. An even run of backslashes in front of it escapes only itself.
func isEndAnchor(pattern string) bool {
	n := len(pattern)
	if n == 0 || pattern[n-1] != '$' {
		return false
	}
	slashes := 0
	for i := n - 2; i >= 0 && pattern[i] == '\\'; i-- {
		slashes++
	}
	return slashes%2 == 0
}

func isDigitClass(c byte) bool {
	return c == 'd'
}

func isWordClass(c byte) bool {
	return c == 'w'
}

// isEscapableMeta reports whether "\c" denotes the literal character c.
func isEscapableMeta(c byte) bool {
	switch c {
	case '\\', '.', '+', '?', '(', ')', '[', ']', '^', '$':
		return true
	}
	return false
}

// Input-side classifiers.

func isDigit(c byte) bool {
	return c-'0' <= 9
}

func lowerASCII(c byte) byte {
	return c | ('a' - 'A')
}

func isASCIIWordChar(c byte) bool {
	return isDigit(c) || lowerASCII(c)-'a' <= 'z'-'a' || c == '_'
}
