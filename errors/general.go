package errors

const (
	UnknownErrorCode    = 100_001
	InvalidConfigCode   = 100_002
	InvalidArgumentCode = 100_003
)

var UnknownError = new(UnknownErrorCode, "UnknownError", "unexpected error: %s")

// InvalidConfigError indicates a configuration value could not be parsed or is out of range
var InvalidConfigError = new(InvalidConfigCode, "InvalidConfig", "config %s is invalid: %s")

// InvalidArgumentError indicates user gives a form value that fails validation
var InvalidArgumentError = new(InvalidArgumentCode, "InvalidArgument", "%s")
