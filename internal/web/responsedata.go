package web

import (
	"errors"
)

type errorResponse struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}

type multierr interface {
	Unwrap() []error
}

func unwrap(err error) []error {
	var merr multierr
	if errors.As(err, &merr) {
		var errs []error
		for _, err := range merr.Unwrap() {
			errs = append(errs, unwrap(err)...)
		}
		return errs
	}
	return []error{err}
}

func newErrorResponse(err error) errorResponse {
	resp := errorResponse{Error: err.Error()}
	if errs := unwrap(err); len(errs) > 1 {
		for _, err := range errs {
			if errors.Is(err, errBadRequest) {
				continue
			}
			resp.Errors = append(resp.Errors, err.Error())
		}
	}
	return resp
}
