package domain

// ProductStatus is the stock status shown for a catalogue product.
type ProductStatus string

const (
	ProductInStock    ProductStatus = "in-stock"
	ProductLowStock   ProductStatus = "low-stock"
	ProductOutOfStock ProductStatus = "out-of-stock"
)

// ItemStatus is the replenishment status of an inventory item.
type ItemStatus string

const (
	ItemHealthy   ItemStatus = "healthy"
	ItemLow       ItemStatus = "low"
	ItemCritical  ItemStatus = "critical"
	ItemOverstock ItemStatus = "overstock"
)

// AlertKind identifies the condition an inventory alert reports.
type AlertKind string

const (
	AlertLowStock   AlertKind = "low-stock"
	AlertOutOfStock AlertKind = "out-of-stock"
	AlertOverstock  AlertKind = "overstock"
)

// Severity of an inventory alert.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// StockOperation is how a stock update quantity is applied by the server.
type StockOperation string

const (
	StockAdd      StockOperation = "add"
	StockSubtract StockOperation = "subtract"
	StockSet      StockOperation = "set"
)

// Valid reports whether op is one of the supported operations.
func (op StockOperation) Valid() bool {
	switch op {
	case StockAdd, StockSubtract, StockSet:
		return true
	}
	return false
}

// ClassifyProduct derives a product status. Rules are evaluated in order,
// so an empty shelf is out of stock even when the threshold is zero.
func ClassifyProduct(stock, threshold int) ProductStatus {
	if stock == 0 {
		return ProductOutOfStock
	}
	if stock <= threshold {
		return ProductLowStock
	}
	return ProductInStock
}

// ClassifyItem derives an inventory item status from its stock bounds.
func ClassifyItem(current, min, max int) ItemStatus {
	switch {
	case current == 0:
		return ItemCritical
	case current < min:
		return ItemLow
	case current > max:
		return ItemOverstock
	default:
		return ItemHealthy
	}
}

// NeedsAttention reports whether the status counts towards low stock totals.
func (s ItemStatus) NeedsAttention() bool {
	return s == ItemLow || s == ItemCritical
}

// AlertKindFor maps an item status to the alert the server is expected to raise.
func AlertKindFor(status ItemStatus) (AlertKind, bool) {
	switch status {
	case ItemCritical:
		return AlertOutOfStock, true
	case ItemLow:
		return AlertLowStock, true
	case ItemOverstock:
		return AlertOverstock, true
	}
	return "", false
}

// SeverityFor returns the severity associated with an alert kind.
func SeverityFor(kind AlertKind) Severity {
	switch kind {
	case AlertOutOfStock:
		return SeverityHigh
	case AlertLowStock:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
