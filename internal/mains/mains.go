// Package mains works out the local electrical mains frequency, which sets
// where powerline hum and its harmonics sit in a recording.
package mains

import (
	"strings"
	"sync"

	tz "github.com/medama-io/go-timezone-country"
	"github.com/thlib/go-timezone-local/tzlocal"
)

// defaultHz is used whenever detection fails. 50Hz grids cover most of the
// world's population.
const defaultHz = 50

// The timezone-to-country dataset is embedded JSON; parse it once.
var countryMap = sync.OnceValues(tz.NewTimezoneCountryMap)

// Frequency returns the local mains frequency in Hz (50 or 60), derived
// from the system timezone. The result seeds the hum notch stages of the
// filter chain.
func Frequency() int {
	timezone, err := tzlocal.RuntimeTZ()
	if err != nil {
		return defaultHz
	}
	return FrequencyForTimezone(timezone)
}

// FrequencyForTimezone returns the mains frequency for an IANA timezone
// name. Zones with no country association (UTC, GMT, Etc/*) fall back to
// 50Hz.
func FrequencyForTimezone(timezone string) int {
	if timezone == "UTC" || timezone == "GMT" || strings.HasPrefix(timezone, "Etc/") {
		return defaultHz
	}

	tzMap, err := countryMap()
	if err != nil {
		return defaultHz
	}

	country, err := tzMap.GetCountry(timezone)
	if err != nil {
		return defaultHz
	}

	return countryFrequency(country)
}

// countryFrequency maps a country name to its grid frequency. Unknown
// countries get 50Hz.
func countryFrequency(country string) int {
	// Japan runs both grids, split roughly east/west. The Tokyo side is
	// 50Hz and holds most of the population, so that wins.
	if country == "Japan" {
		return defaultHz
	}

	if hz60Countries[country] {
		return 60
	}
	return defaultHz
}

// hz60Countries lists the countries on 60Hz grids; everywhere else is 50Hz.
// Source: https://en.wikipedia.org/wiki/Mains_electricity_by_country
var hz60Countries = map[string]bool{
	// The Americas, minus the 50Hz southern cone
	"United States": true,
	"Canada":        true,
	"Mexico":        true,
	"Belize":        true,
	"Costa Rica":    true,
	"El Salvador":   true,
	"Guatemala":     true,
	"Honduras":      true,
	"Nicaragua":     true,
	"Panama":        true,
	"Brazil":        true, // mixed historically, 60Hz nationwide today
	"Colombia":      true,
	"Ecuador":       true,
	"Guyana":        true,
	"Peru":          true,
	"Suriname":      true,
	"Venezuela":     true,

	// Caribbean
	"Bahamas":             true,
	"Barbados":            true,
	"Cayman Islands":      true,
	"Cuba":                true,
	"Dominican Republic":  true,
	"Haiti":               true,
	"Jamaica":             true,
	"Puerto Rico":         true,
	"Trinidad and Tobago": true,
	"U.S. Virgin Islands": true,

	// Asia and the Gulf
	"South Korea":  true,
	"Taiwan":       true,
	"Philippines":  true,
	"Saudi Arabia": true,

	// Pacific
	"Guam":             true,
	"American Samoa":   true,
	"Marshall Islands": true,
	"Micronesia":       true,
	"Palau":            true,
}
