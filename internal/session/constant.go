package session

// Log prefixes
const (
	LogPrefixSubmit = "internal.session.Submit"
)

// Log messages
const (
	LogMsgRouting       = "Routing query for session %s"
	LogMsgUnhandled     = "No specialist claimed the query, returning free text"
	LogMsgInvoking      = "Invoking tool %s for handler %s"
	LogMsgStageFailed   = "Query failed at stage %s: %v"
	LogMsgDone          = "Query done with result kind %s"
	LogMsgOutputInvalid = "Summarized output rejected by schema: %v"
)
