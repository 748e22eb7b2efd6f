package report

import "github.com/buffapp/adsync/internal/models"

const (
	timeUnitDaily  = "DAILY"
	formatGzipJSON = "GZIP_JSON"
)

// Per-product column sets requested from the reporting API. Downstream
// consumers depend on specific fields being present (purchases7d/sales7d for
// SP, purchases/sales for SB and SD), so these lists must stay in sync with
// the fact table models.
var spColumns = []string{
	"campaignId",
	"campaignName",
	"campaignStatus",
	"campaignBudgetAmount",
	"campaignBudgetType",
	"campaignBudgetCurrencyCode",
	"date",
	"impressions",
	"clicks",
	"cost",
	"spend",
	"clickThroughRate",
	"costPerClick",
	"purchases1d",
	"purchases7d",
	"purchases14d",
	"purchases30d",
	"purchasesSameSku1d",
	"purchasesSameSku7d",
	"purchasesSameSku14d",
	"purchasesSameSku30d",
	"sales1d",
	"sales7d",
	"sales14d",
	"sales30d",
	"attributedSalesSameSku1d",
	"attributedSalesSameSku7d",
	"attributedSalesSameSku14d",
	"attributedSalesSameSku30d",
	"unitsSoldClicks1d",
	"unitsSoldClicks7d",
	"unitsSoldClicks14d",
	"unitsSoldClicks30d",
	"topOfSearchImpressionShare",
}

var sbColumns = []string{
	"campaignId",
	"campaignName",
	"campaignStatus",
	"campaignBudgetAmount",
	"campaignBudgetType",
	"campaignBudgetCurrencyCode",
	"date",
	"impressions",
	"viewableImpressions",
	"clicks",
	"cost",
	"purchases",
	"purchasesClicks",
	"sales",
	"salesClicks",
	"unitsSold",
	"detailPageViews",
	"newToBrandPurchases",
	"newToBrandSales",
	"newToBrandUnitsSold",
	"videoCompleteViews",
	"videoFirstQuartileViews",
}

var sdColumns = []string{
	"campaignId",
	"campaignName",
	"campaignStatus",
	"campaignBudgetCurrencyCode",
	"costType",
	"date",
	"impressions",
	"impressionsViews",
	"clicks",
	"cost",
	"purchases",
	"purchasesClicks",
	"sales",
	"salesClicks",
	"unitsSold",
	"detailPageViews",
	"newToBrandPurchases",
	"newToBrandSales",
}

// columnsFor returns the fixed column list for an ad product.
func columnsFor(p models.AdProduct) []string {
	switch p {
	case models.AdProductSponsoredProducts:
		return spColumns
	case models.AdProductSponsoredBrands:
		return sbColumns
	case models.AdProductSponsoredDisplay:
		return sdColumns
	}
	return nil
}
