package handler

import "net/http"

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a Response that passes err to the ErrorHandler configured
// on Wrap instead of rendering anything itself. Use it when the error
// should be logged; JSONError renders directly.
func Error(err error) Response {
	return errorResponse{err: err}
}
