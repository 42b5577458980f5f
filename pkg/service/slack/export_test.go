package slack

// Export internal helpers for testing
var (
	ParseSlackTS = parseSlackTS
	SlackTS      = slackTS
)
