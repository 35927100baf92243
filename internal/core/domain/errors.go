package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInternalServer = errors.New("internal server error")
)

// Employee errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDuplicateIDCard  = errors.New("an active employee with this id card already exists")
)

// Time record errors
var (
	ErrAlreadyClockedIn  = errors.New("employee already has an open record for today")
	ErrNoActiveShift     = errors.New("no active shift or lunch already taken")
	ErrNoLunchInProgress = errors.New("no lunch in progress")
	ErrNoOpenShift       = errors.New("no open clock-in record for this employee")
	ErrRecordNotFound    = errors.New("time record not found")
)

// Settings errors
var (
	ErrInvalidSetting = errors.New("invalid setting value")
)
