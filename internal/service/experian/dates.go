package experian

// NormalizeDate rewrites a positional 8-digit date (YYYYMMDD) to ISO form
// (YYYY-MM-DD). Any input whose length is not exactly 8 is returned
// unchanged: it is either already formatted or unrecoverable, and surfacing
// it as-is beats guessing.
func NormalizeDate(raw string) string {
	if len(raw) != 8 {
		return raw
	}
	return raw[:4] + "-" + raw[4:6] + "-" + raw[6:]
}
