package dispatch

// collectRecords projects a collection-shaped payload into a row slice.
// Recognized shapes are []map[string]any and []any whose elements are all
// maps; anything else is left to Result.Payload untouched.
func collectRecords(payload any) ([]map[string]any, bool) {
	switch rows := payload.(type) {
	case []map[string]any:
		return rows, true
	case []any:
		records := make([]map[string]any, 0, len(rows))
		for _, row := range rows {
			m, ok := row.(map[string]any)
			if !ok {
				return nil, false
			}
			records = append(records, m)
		}
		return records, true
	}
	return nil, false
}

// truncate caps records at limit and reports whether rows were dropped.
// A non-positive limit passes everything through.
func truncate(records []map[string]any, limit int) ([]map[string]any, bool) {
	if limit <= 0 || len(records) <= limit {
		return records, false
	}
	return records[:limit], true
}

// effectiveLimit reads the call's limit argument, falling back to the
// dispatcher default. Validation has already type-checked the value, but
// JSON decoding may deliver it as float64.
func effectiveLimit(args map[string]any, fallback int) int {
	switch v := args["limit"].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return fallback
}
