package services

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidPasscode     = errors.New("invalid passcode")
	ErrSessionNotFound     = errors.New("session not found or expired")
	ErrAccessDenied        = errors.New("access denied")
	ErrProjectNotFound     = errors.New("project not found")
	ErrDeliverableNotFound = errors.New("deliverable not found")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrAddonNotFound       = errors.New("add-on not found")
	ErrPlanNotFound        = errors.New("plan not found")
	ErrBookingNotFound     = errors.New("booking not found")
)
