package objstore

import "fmt"

const ContentTypeJSON = "application/json"

// ReportKey builds the deterministic object key for one report payload.
func ReportKey(userID, profileID, adProduct, reportID string) string {
	return fmt.Sprintf("reports/%s/%s/%s/%s.json", userID, profileID, adProduct, reportID)
}
