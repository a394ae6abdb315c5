package model

// AssetLiquidation is one asset's share of a liquidation window.
type AssetLiquidation struct {
	Asset      string
	TotalValue float64
	LongValue  float64
	ShortValue float64
}

// LiquidationWindow aggregates forced-position-closure events over a
// fixed trailing time span. A window missing from the upstream payload
// is represented as an all-zero window, not an error.
type LiquidationWindow struct {
	Label      string
	TotalValue float64
	LongValue  float64
	ShortValue float64
	TotalCount int
	ByAsset    []AssetLiquidation
}
