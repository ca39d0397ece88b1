package exceptions

import (
	"cataractcare-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Success       bool     `json:"success"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
	cause         error
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

// BuildNewCustomError is the constructor behind every named error below.
// err may be nil.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
		cause:         err,
	}
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
}

func WrapWithError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    fmt.Sprintf("%s: %s", devMessage, err.Error()),
		Location:      location,
		cause:         err,
	}
}

// AsCustomError reports whether err carries a CustomError anywhere in its chain.
func AsCustomError(err error) (*CustomError, bool) {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr, true
	}
	return nil, false
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
