// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInternalServer       = errors.New("internal server error")
	ErrEmptySelection       = errors.New("selection matches no words")
	ErrInvalidTransition    = errors.New("invalid session transition")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrRemoteUnavailable    = errors.New("remote mirror unavailable")
	ErrMissingRemoteID      = errors.New("remote id required")
)

// ErrorDetail はAPIエラーレスポンスに含める詳細情報です。
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はエラーレスポンスの外形です。
// 旧クライアントが期待する {success, error} 形式に合わせています。
type APIErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// AppError はエラーコード・利用者向けメッセージ・原因エラーを束ねる
// アプリケーション共通のエラー型です。
type AppError struct {
	Detail ErrorDetail
	cause  error
}

func NewAppError(code, message, field string, cause error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		cause:  cause,
	}
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return e.Detail.Message + ": " + e.cause.Error()
	}
	return e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}
