package dashboard

import (
	"testing"

	"DexBoard/internal/model"
)

func TestWindow(t *testing.T) {
	windows := map[string]model.LiquidationWindow{
		"1h": {Label: "1h", TotalValue: 500, TotalCount: 12},
	}
	if w := Window(windows, "1h"); w.TotalValue != 500 {
		t.Errorf("expected present window, got %+v", w)
	}

	w := Window(windows, "24h")
	if w.Label != "24h" {
		t.Errorf("zero window keeps the requested label, got %q", w.Label)
	}
	if w.TotalValue != 0 || w.LongValue != 0 || w.ShortValue != 0 || w.TotalCount != 0 || len(w.ByAsset) != 0 {
		t.Errorf("absent window must be all-zero, got %+v", w)
	}

	if w := Window(nil, "1h"); w.Label != "1h" || w.TotalValue != 0 {
		t.Errorf("nil windows map must still yield a zero window, got %+v", w)
	}
}

func TestRankAssets_StableAndTruncated(t *testing.T) {
	assets := []model.AssetLiquidation{
		{Asset: "A", TotalValue: 100},
		{Asset: "B", TotalValue: 100},
		{Asset: "C", TotalValue: 50},
	}
	ranked := RankAssets(assets)
	want := []string{"A", "B", "C"}
	for i, name := range want {
		if ranked[i].Asset != name {
			t.Fatalf("ties must keep input order: expected %v, got %+v", want, ranked)
		}
	}

	// Input must not be reordered in place.
	if assets[2].Asset != "C" {
		t.Error("RankAssets mutated its input")
	}

	var many []model.AssetLiquidation
	for i := 0; i < 10; i++ {
		many = append(many, model.AssetLiquidation{Asset: string(rune('A' + i)), TotalValue: float64(100 - i)})
	}
	ranked = RankAssets(many)
	if len(ranked) != TopAssets {
		t.Fatalf("expected truncation to %d, got %d", TopAssets, len(ranked))
	}
	if ranked[0].Asset != "A" || ranked[TopAssets-1].Asset != "F" {
		t.Errorf("expected top assets A..F, got %+v", ranked)
	}
}

func TestRankAssets_Empty(t *testing.T) {
	if ranked := RankAssets(nil); len(ranked) != 0 {
		t.Errorf("expected empty result, got %+v", ranked)
	}
	if ranked := RankAssets([]model.AssetLiquidation{}); len(ranked) != 0 {
		t.Errorf("expected empty result, got %+v", ranked)
	}
}
