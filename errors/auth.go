package errors

const (
	UnauthorizedErrorCode       = 400_001
	InvalidCredentialsErrorCode = 400_002
	CredentialsMissingErrorCode = 400_003
)

// UnauthorizedError indicates the request carries no session or an expired one
var UnauthorizedError = new(UnauthorizedErrorCode, "Unauthorized", "Please sign in to continue")

// InvalidCredentialsError indicates the remote API rejected the login
var InvalidCredentialsError = new(InvalidCredentialsErrorCode, "InvalidCredentials", "Login failed: %s")

// CredentialsMissingError indicates user submits the sign-in form without number or password
var CredentialsMissingError = new(CredentialsMissingErrorCode, "CredentialsMissing", "Phone number and password are required.")
