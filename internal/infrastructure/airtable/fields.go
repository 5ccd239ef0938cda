package airtable

// Имена таблиц и полей базы. База правится руками операторов, поэтому
// имена живут здесь одним списком: переименование поля — правка одной строки.
const (
	tableSellers   = "Sellers"
	tableOrders    = "Orders"
	tableOffers    = "Offers"
	tableInventory = "Inventory"
)

const (
	fieldSellerCode    = "Seller Code"
	fieldSellerWebhook = "Webhook URL"
)

const (
	fieldOrderDealID          = "Deal ID"
	fieldOrderMessageIDs      = "Message IDs"
	fieldOrderButtonsDisabled = "Buttons Disabled"
	fieldOrderProductName     = "Product Name"
	fieldOrderSKU             = "SKU"
	fieldOrderSize            = "Size"
	fieldOrderBrand           = "Brand"
	fieldOrderPayout          = "Payout"
)

const (
	fieldOfferAmount = "Offer Amount"
	fieldOfferDate   = "Offer Date"
	fieldOfferSeller = "Seller"
	fieldOfferOrder  = "Order"
)

const (
	fieldInventoryProductName   = "Product Name"
	fieldInventorySKU           = "SKU"
	fieldInventorySize          = "Size"
	fieldInventoryBrand         = "Brand"
	fieldInventoryDealID        = "Deal ID"
	fieldInventoryPurchasePrice = "Purchase Price"
	fieldInventoryPurchaseDate  = "Purchase Date"
	fieldInventoryStatus        = "Status"
	fieldInventoryListed        = "Listed"
	fieldInventorySeller        = "Seller"
	fieldInventoryOrder         = "Order"
)

const dateLayout = "2006-01-02"
