package service

import "errors"

// 业务层统一错误定义，处理器据此映射 HTTP 状态码与提示文案。
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account locked")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrPasswordMismatch   = errors.New("password confirmation mismatch")
	ErrWeakPassword       = errors.New("weak password")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCaptcha     = errors.New("invalid captcha")
	ErrEmailDisabled      = errors.New("email disabled")
)
