package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldBatchID      = "batch_id"
	FieldLineNumber   = "line_number"
	FieldParseReason  = "parse_reason"
	FieldUserAgent    = "user_agent"
	FieldSourceKey    = "source_key"
	FieldRecordCount  = "record_count"
	FieldFailureCount = "failure_count"
)
