package error

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError is a sentinel that carries the key of its registered HTTP response.
// Services wrap it with fmt.Errorf("...: %w", ErrX) freely; the key survives the chain.
type DomainError interface {
	error
	Info() string
}

type domainSentinel struct {
	errInfo string
}

func (e *domainSentinel) Error() string {
	return e.errInfo
}

func (e *domainSentinel) Info() string {
	return e.errInfo
}

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"` // client message
}

var (
	domainErrorResponses = map[string]ErrorResponse{}

	ValidationFailed = ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ERROR-001", // METHOD_ARGUMENT_NOT_VALID
		Message: "잘못된 요청입니다.",
	}

	// InvalidRequest covers malformed bodies and path parameters
	InvalidRequest = ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ERROR-002", // INVALID_REQUEST
		Message: "잘못된 요청 형식입니다.",
	}

	InternalServerError = ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "ERROR-003", // INTERNAL_SERVER_ERROR
		Message: "서버 내부 오류가 발생했습니다.",
	}

	// Unauthenticated is sent when a protected handler runs without a member in context
	Unauthenticated = ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-000",
		Message: "로그인을 해주세요.",
	}
)

func NewDomainError(errInfo string) DomainError {
	return &domainSentinel{errInfo: errInfo}
}

// RegisterDomainErrorResponse binds a domain error key to its response.
// Packages call it from init; two packages claiming one key with different
// codes is a programming error and panics at startup.
func RegisterDomainErrorResponse(errInfo string, resp ErrorResponse) {
	if existing, ok := domainErrorResponses[errInfo]; ok && existing.Code != resp.Code {
		panic(fmt.Sprintf("domain error %q already registered as %s", errInfo, existing.Code))
	}
	domainErrorResponses[errInfo] = resp
}

// ResolveDomainError returns the registered response for err, if any.
func ResolveDomainError(err error) (ErrorResponse, bool) {
	if err == nil {
		return ErrorResponse{}, false
	}

	var domainErr DomainError
	if errors.As(err, &domainErr) {
		if resp, ok := domainErrorResponses[domainErr.Info()]; ok {
			return resp, true
		}
	}
	return ErrorResponse{}, false
}

// Resolve is ResolveDomainError with InternalServerError for anything unregistered.
// Unregistered sentinels (an unknown member status, say) land here too.
func Resolve(err error) ErrorResponse {
	if resp, ok := ResolveDomainError(err); ok {
		return resp
	}
	return InternalServerError
}
