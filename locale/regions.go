package locale

// Regions whose weeks do not start on Monday, following CLDR week data.
var (
	sundayFirst = regionSet(
		"AG", "AS", "BD", "BR", "BS", "BT", "BW", "BZ", "CA", "CN", "CO", "DM", "DO",
		"ET", "GT", "GU", "HK", "HN", "ID", "IL", "IN", "JM", "JP", "KE", "KH", "KR",
		"LA", "MH", "MM", "MO", "MT", "MX", "MZ", "NI", "NP", "PA", "PE", "PH", "PK",
		"PR", "PT", "PY", "SA", "SG", "SV", "TH", "TT", "TW", "UM", "US", "VE", "VI",
		"WS", "YE", "ZA", "ZW",
	)
	saturdayFirst = regionSet(
		"AE", "AF", "BH", "DJ", "DZ", "EG", "IQ", "IR", "JO", "KW", "LY", "OM", "QA",
		"SD", "SY",
	)
)

func regionSet(regions ...string) map[string]bool {
	out := make(map[string]bool, len(regions))
	for _, r := range regions {
		out[r] = true
	}
	return out
}
