// errors.go: structured error handling for tinysketch
//
// This file provides structured error types using the go-errors library,
// giving every failure a stable code and a context map that callers can
// inspect without parsing messages.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package tinysketch

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes for tinysketch operations
const (
	// Argument errors
	ErrCodeInvalidArgument errors.ErrorCode = "TINYSKETCH_INVALID_ARGUMENT"

	// Configuration errors
	ErrCodeInvalidConfig errors.ErrorCode = "TINYSKETCH_INVALID_CONFIG"
	ErrCodeReloadFailed  errors.ErrorCode = "TINYSKETCH_RELOAD_FAILED"
)

// Common error messages
const (
	msgInvalidArgument = "invalid maximum size: must be non-negative"
	msgInvalidConfig   = "invalid sketch configuration"
	msgReloadFailed    = "failed to apply reloaded sketch capacity"
)

// NewErrInvalidArgument creates an error for a negative capacity hint
func NewErrInvalidArgument(maximumSize int64) error {
	return errors.NewWithContext(ErrCodeInvalidArgument, msgInvalidArgument, map[string]interface{}{
		"provided_capacity": maximumSize,
		"minimum_allowed":   0,
	})
}

// NewErrInvalidConfig creates an error for an unusable configuration field
func NewErrInvalidConfig(field string, reason string) error {
	return errors.NewWithContext(ErrCodeInvalidConfig, msgInvalidConfig, map[string]interface{}{
		"field":  field,
		"reason": reason,
	})
}

// NewErrReloadFailed creates an error when a watched capacity cannot be applied
func NewErrReloadFailed(configPath string, cause error) error {
	return errors.Wrap(cause, ErrCodeReloadFailed, msgReloadFailed).
		WithContext("config_path", configPath).
		AsRetryable()
}

// IsInvalidArgument checks if error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return errors.HasCode(err, ErrCodeInvalidArgument)
}

// IsConfigError checks if error is a configuration or reload error
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	code := GetErrorCode(err)
	return code == ErrCodeInvalidConfig || code == ErrCodeReloadFailed
}

// IsRetryable checks if the error can be retried
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var retryable errors.Retryable
	if goerrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts context from an error
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var sketchErr *errors.Error
	if goerrors.As(err, &sketchErr) {
		return sketchErr.Context
	}
	return nil
}
