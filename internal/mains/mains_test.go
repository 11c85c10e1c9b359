package mains

import "testing"

func TestFrequencyForTimezone(t *testing.T) {
	tests := []struct {
		timezone string
		want     int
	}{
		// 50Hz grids
		{"Europe/London", 50},
		{"Europe/Berlin", 50},
		{"Europe/Madrid", 50},
		{"Africa/Lagos", 50},
		{"Australia/Sydney", 50},
		{"Asia/Shanghai", 50},
		{"Asia/Kolkata", 50},
		{"Asia/Tokyo", 50}, // Japan resolves to the 50Hz Tokyo grid

		// 60Hz grids
		{"America/New_York", 60},
		{"America/Los_Angeles", 60},
		{"America/Toronto", 60},
		{"America/Mexico_City", 60},
		{"America/Havana", 60},
		{"America/Lima", 60},
		{"America/Sao_Paulo", 60},
		{"Asia/Seoul", 60},
		{"Asia/Taipei", 60},
		{"Asia/Manila", 60},
		{"Asia/Riyadh", 60},
		{"Pacific/Guam", 60},

		// No country association
		{"UTC", 50},
		{"GMT", 50},
		{"Etc/UTC", 50},
		{"Etc/GMT+5", 50},

		// Unknown zone falls back
		{"Nowhere/Special", 50},
	}

	for _, tt := range tests {
		t.Run(tt.timezone, func(t *testing.T) {
			got := FrequencyForTimezone(tt.timezone)
			if got != tt.want {
				t.Errorf("FrequencyForTimezone(%q) = %d, want %d", tt.timezone, got, tt.want)
			}
		})
	}
}

func TestCountryFrequency(t *testing.T) {
	tests := []struct {
		country string
		want    int
	}{
		{"United States", 60},
		{"United Kingdom", 50},
		{"Japan", 50},
		{"Brazil", 60},
		{"Atlantis", 50},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			if got := countryFrequency(tt.country); got != tt.want {
				t.Errorf("countryFrequency(%q) = %d, want %d", tt.country, got, tt.want)
			}
		})
	}
}

func TestFrequency(t *testing.T) {
	// Whatever the host timezone, the answer must be one of the two grids.
	freq := Frequency()
	if freq != 50 && freq != 60 {
		t.Errorf("Frequency() = %d, want 50 or 60", freq)
	}
}
