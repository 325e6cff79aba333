package app

// IsRelevantExported exposes isRelevant for testing.
var IsRelevantExported = isRelevant
