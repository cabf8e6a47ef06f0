package constant

type ContextKey string

// RequestIDKey carries the per-request id assigned by the logging middleware.
const RequestIDKey ContextKey = "request_id"
