package middleware

import "errors"

var (
	errMissingCredentials     error = errors.New("bearer token or api key is required")
	errMalformedAuthorization error = errors.New("authorization header must be a bearer token")
)
