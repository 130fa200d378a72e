package constvars

const (
	RegexEmail = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	RegexContainAtLeastOneSpecialChar = `[!@#\$%\^&\*\(\)_\+\-=\[\]\{\};:'",<>\./\?\\|]`
	RegexContainAtLeastOneUppercase   = `[A-Z]`

	// Dotted numeric version strings, e.g. "1.0", "2.1".
	RegexNumericVersion = `^\d+(\.\d+)?$`

	// "Section N: " prefix injected by section renumbering.
	RegexSectionPrefix = `^Section \d+:\s*`
)
