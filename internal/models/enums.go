package models

// ReportStatus mirrors the external report job status reported by Amazon.
type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "PENDING"
	ReportStatusProcessing ReportStatus = "PROCESSING"
	ReportStatusCompleted  ReportStatus = "COMPLETED"
	ReportStatusFailed     ReportStatus = "FAILED"
)

// DownloadStatus tracks whether this system has fetched the report payload.
// It is independent from the external ReportStatus.
type DownloadStatus string

const (
	DownloadStatusPending   DownloadStatus = "PENDING"
	DownloadStatusCompleted DownloadStatus = "COMPLETED"
	DownloadStatusFailed    DownloadStatus = "FAILED"
)

// ProcessedStatus tracks whether decoded rows were fully stored.
type ProcessedStatus string

const (
	ProcessedStatusPending   ProcessedStatus = "PENDING"
	ProcessedStatusCompleted ProcessedStatus = "COMPLETED"
	ProcessedStatusFailed    ProcessedStatus = "FAILED"
)

// AdProduct is one of the three Amazon advertising formats.
type AdProduct string

const (
	AdProductSponsoredProducts AdProduct = "SPONSORED_PRODUCTS"
	AdProductSponsoredBrands   AdProduct = "SPONSORED_BRANDS"
	AdProductSponsoredDisplay  AdProduct = "SPONSORED_DISPLAY"
)

// AllAdProducts lists the supported ad products in a stable order.
func AllAdProducts() []AdProduct {
	return []AdProduct{AdProductSponsoredProducts, AdProductSponsoredBrands, AdProductSponsoredDisplay}
}

func (p AdProduct) Valid() bool {
	switch p {
	case AdProductSponsoredProducts, AdProductSponsoredBrands, AdProductSponsoredDisplay:
		return true
	}
	return false
}

// ReportTypeID returns the Amazon reporting API report type for the product.
func (p AdProduct) ReportTypeID() string {
	switch p {
	case AdProductSponsoredProducts:
		return "spCampaigns"
	case AdProductSponsoredBrands:
		return "sbCampaigns"
	case AdProductSponsoredDisplay:
		return "sdCampaigns"
	}
	return ""
}
