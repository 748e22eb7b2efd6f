package report

import "errors"

// ErrReportNotFound means no local row exists for the requested report id.
var ErrReportNotFound = errors.New("report not found")

// ErrNoConnections means the user has no authorized Amazon Ads profiles.
var ErrNoConnections = errors.New("no connections found for user")

// ErrNoMatchingReports means an explicitly scoped drain matched no pending
// reports. An unscoped drain over an empty table is a normal empty run.
var ErrNoMatchingReports = errors.New("no pending reports match the requested scope")
