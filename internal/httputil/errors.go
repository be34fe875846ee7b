package httputil

import "errors"

var (
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrInvalidID        = errors.New("an ID specified in the request URL was not a valid number")
)
