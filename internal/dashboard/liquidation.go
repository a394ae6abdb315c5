package dashboard

import (
	"sort"

	"DexBoard/internal/model"
)

// TopAssets caps the most-liquidated table.
const TopAssets = 6

// Window returns the labeled window, or an all-zero window when the
// label is absent, so downstream display always has a value to show.
func Window(windows map[string]model.LiquidationWindow, label string) model.LiquidationWindow {
	if w, ok := windows[label]; ok {
		return w
	}
	return model.LiquidationWindow{Label: label}
}

// RankAssets sorts asset breakdowns descending by total value and
// truncates to TopAssets. The sort is stable: ties keep their input
// order.
func RankAssets(assets []model.AssetLiquidation) []model.AssetLiquidation {
	if len(assets) == 0 {
		return nil
	}
	ranked := append([]model.AssetLiquidation(nil), assets...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalValue > ranked[j].TotalValue
	})
	if len(ranked) > TopAssets {
		ranked = ranked[:TopAssets]
	}
	return ranked
}
