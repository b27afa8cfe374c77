package pkg

const (
	HeaderTraceId   string = "X-Trace-Id"
	HeaderRequestId string = "X-Request-Id"
)

const (
	TraceId   string = "trace_id"
	RequestId string = "request_id"
)

// SessionKey is the single durable key holding the serialized current user.
const SessionKey = "riskwatch_user"
