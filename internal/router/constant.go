package router

// Log prefixes
const (
	LogPrefixRoute = "internal.router.Route"
)

// Log messages
const (
	LogMsgSelected          = "Selected handler %q"
	LogMsgNoSelection       = "No handler selected, answering as free text"
	LogMsgUnresolvedHandoff = "Classifier named unknown handler %q, failing closed to no selection"
)
