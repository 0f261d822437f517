package redis

import "github.com/courtside/draftboard/internal/model"

// Key prefixes for all stored values
const (
	keyPrefix = "draftboard:"

	sessionPrefix = keyPrefix + "session:"
	draftPrefix   = keyPrefix + "draft:"
	datasetKeyStr = keyPrefix + "dataset"
)

func sessionKey(id model.SessionID) string {
	return sessionPrefix + string(id)
}

func draftKey(sessionID model.SessionID) string {
	return draftPrefix + string(sessionID)
}

func datasetKey() string {
	return datasetKeyStr
}
