package ruckus

// Region codes accepted by the RUCKUS One cloud.
const (
	RegionNA   = "na"
	RegionEU   = "eu"
	RegionAsia = "asia"

	// DefaultRegion is used when no region is configured and as the
	// fallback for unrecognized region codes.
	DefaultRegion = RegionNA
)

// regionHosts maps region codes to API host names. Read-only after init.
var regionHosts = map[string]string{
	RegionNA:   "api.ruckus.cloud",
	RegionEU:   "api.eu.ruckus.cloud",
	RegionAsia: "api.asia.ruckus.cloud",
}

// RegionHost returns the API host for a region code. Unknown codes fall back
// to the "na" host, matching the cloud's documented default. The second
// return reports whether the code was recognized so callers can warn about
// a probable typo without changing the resolution.
func RegionHost(region string) (string, bool) {
	if region == "" {
		return regionHosts[DefaultRegion], true
	}

	host, ok := regionHosts[region]
	if !ok {
		return regionHosts[DefaultRegion], false
	}

	return host, true
}

// BaseURL returns the full https base URL for a region code, applying the
// same fallback as RegionHost.
func BaseURL(region string) string {
	host, _ := RegionHost(region)

	return "https://" + host
}

// Regions returns the known region codes.
func Regions() []string {
	return []string{RegionNA, RegionEU, RegionAsia}
}
