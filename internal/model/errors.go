package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")

	// Dataset errors
	ErrDatasetNotFound = errors.New("dataset not loaded")
	ErrNoData          = errors.New("no usable player records")

	// Draft errors
	ErrDraftStateNotFound = errors.New("draft state not found")
	ErrPlayerNotInDataset = errors.New("player not in current dataset")
)
