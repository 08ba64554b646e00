package filtergram

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strconv"
	"strings"

	"github.com/filtergram/filtergram/blend"
	"github.com/filtergram/filtergram/imageio"
)

// sysexits-style process exit codes
const (
	ExitOK         = 0
	ExitUsage      = 64
	ExitDataErr    = 65
	ExitNoInput    = 66
	ExitSoftware   = 70
	ExitCantCreate = 73
)

var (
	// ErrUnknownFilter filter name not in registry error
	ErrUnknownFilter = NewError("unknown filter", ExitUsage)
	// ErrNotFound input file not found error
	ErrNotFound = NewError("not found", ExitNoInput)
	// ErrDecode image decode error
	ErrDecode = NewError("decode failed", ExitDataErr)
	// ErrUnsupportedFormat unsupported output format error
	ErrUnsupportedFormat = NewError("unsupported format", ExitDataErr)
	// ErrEncode output write error
	ErrEncode = NewError("encode failed", ExitCantCreate)
	// ErrInternal internal error
	ErrInternal = NewError("internal error", ExitSoftware)
)

const errPrefix = "filtergram:"

var errMsgRegexp = regexp.MustCompile(fmt.Sprintf("^%s ([0-9]+) (.*)$", errPrefix))

// Error filtergram error convention
type Error struct {
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// Error implements error
func (e Error) Error() string {
	return fmt.Sprintf("%s %d %s", errPrefix, e.Code, e.Message)
}

// NewError creates filtergram Error from message and exit code
func NewError(msg string, code int) Error {
	return Error{Message: msg, Code: code}
}

// WrapError wraps Go error into filtergram Error
func WrapError(err error) Error {
	if err == nil {
		return ErrInternal
	}
	if e, ok := err.(Error); ok {
		return e
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return NewError(err.Error(), ExitSoftware)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	if errors.Is(err, imageio.ErrDecode) {
		return ErrDecode
	}
	if errors.Is(err, imageio.ErrUnsupportedFormat) {
		return ErrUnsupportedFormat
	}
	if errors.Is(err, blend.ErrDimensionMismatch) {
		return NewError(err.Error(), ExitSoftware)
	}
	if msg := err.Error(); errMsgRegexp.MatchString(msg) {
		if match := errMsgRegexp.FindStringSubmatch(msg); len(match) == 3 {
			code, _ := strconv.Atoi(match[1])
			return NewError(match[2], code)
		}
	}
	msg := strings.Replace(err.Error(), "\n", "", -1)
	return NewError(msg, ExitSoftware)
}

// ExitCode resolves the process exit code for err
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return WrapError(err).Code
}
