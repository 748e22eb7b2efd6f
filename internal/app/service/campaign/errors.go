package campaign

import "errors"

// ErrNoConnections means the user has no authorized Amazon Ads profiles.
var ErrNoConnections = errors.New("no connections found for user")
