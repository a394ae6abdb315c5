package normalize

import "DexBoard/internal/model"

// Ticks converts a raw tick-history payload into a canonical series.
// The payload is either a bare list of records or a wrapper object
// holding the list under a synonym key; any other shape normalizes to
// an empty series with no latest price. Malformed fields degrade to
// their defaults record by record — this function never fails.
func Ticks(payload any) model.TickSeries {
	switch v := payload.(type) {
	case []any:
		records := buildRecords(v)
		return model.TickSeries{
			Ticks:  records,
			Count:  len(v),
			Latest: lastRecordPrice(v),
		}
	case map[string]any:
		return ticksFromObject(v)
	default:
		return model.TickSeries{}
	}
}

func ticksFromObject(obj map[string]any) model.TickSeries {
	var list []any
	if raw, ok := lookup(obj, tickListKeys); ok {
		list, _ = raw.([]any)
	}

	series := model.TickSeries{
		Ticks: buildRecords(list),
		Count: toInt(obj, tickCountKeys, len(list)),
	}

	// The response-level latest price is resolved independently of the
	// per-record prices; only when the wrapper has no usable field does
	// the last record stand in for it.
	if f, ok := lookupNumber(obj, latestKeys); ok {
		series.Latest = model.SomePrice(f)
	} else {
		series.Latest = lastRecordPrice(list)
	}
	return series
}

// buildRecords assigns 1-based sequence indices in input order. The
// input ordering is trusted as chronological; nothing is re-sorted or
// deduplicated here.
func buildRecords(list []any) []model.TickRecord {
	if len(list) == 0 {
		return nil
	}
	records := make([]model.TickRecord, 0, len(list))
	for i, item := range list {
		rec := model.TickRecord{Seq: i + 1, Time: "N/A"}
		if obj, ok := item.(map[string]any); ok {
			rec.Time, _ = ResolveTime(obj)
			if f, ok := lookupNumber(obj, priceKeys); ok {
				rec.Price = model.SomePrice(f)
			}
		}
		records = append(records, rec)
	}
	return records
}

func lastRecordPrice(list []any) model.Price {
	if len(list) == 0 {
		return model.Price{}
	}
	if obj, ok := list[len(list)-1].(map[string]any); ok {
		if f, ok := lookupNumber(obj, priceKeys); ok {
			return model.SomePrice(f)
		}
	}
	return model.Price{}
}
