package agent

// Export internal helpers for testing
var (
	ResolveDateToken   = resolveDateToken
	ExtractQualityName = extractQualityName
	TokenAfter         = tokenAfter
)
