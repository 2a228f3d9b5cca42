package entities

// Sentinel outputs. These are valid results, not errors.
const (
	NoContentMessage  = "No content available."
	NoTopicsMessage   = "No topics detected."
	TooShortToSummary = "Text too short to summarize."
)
