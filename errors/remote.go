package errors

const (
	RemoteUnreachableErrorCode = 300_001
	RemoteNotFoundErrorCode    = 300_002
	RemoteStatusErrorCode      = 300_003
	MalformedPayloadErrorCode  = 300_004
)

// RemoteUnreachableError indicates the request never got a response (DNS, refused, timeout, CORS-like proxy failure)
var RemoteUnreachableError = new(RemoteUnreachableErrorCode, "RemoteUnreachable", "remote API is unreachable: %s")

// RemoteNotFoundError indicates the remote API answered 404
var RemoteNotFoundError = new(RemoteNotFoundErrorCode, "RemoteNotFound", "endpoint %s not found (404)")

// RemoteStatusError indicates the remote API answered with a non-2xx status other than 404
var RemoteStatusError = new(RemoteStatusErrorCode, "RemoteStatus", "remote API answered %d: %s")

// MalformedPayloadError indicates the response body could not be decoded into the expected shape
var MalformedPayloadError = new(MalformedPayloadErrorCode, "MalformedPayload", "malformed payload from %s: %s")
