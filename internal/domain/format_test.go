package domain

import "testing"

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"PT55M5S", "55:05"},
		{"PT1H2M3S", "1:02:03"},
		{"PT3S", "00:03"},
		{"PT5M", "05:00"},
		{"PT12H", "12:00:00"},
		{"pt2m10s", "02:10"},
		{"PT", "00:00"},
		{"", ""},
		{"P1DT2H", "P1DT2H"},
		{"garbage", "garbage"},
	}

	for _, tc := range cases {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Errorf("FormatDuration(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-03-09T15:04:05Z", "2024-03-09"},
		{"2019-12-31T23:59:59+01:00", "2019-12-31"},
		{"", ""},
		{"not-a-date", "not-a-date"},
	}

	for _, tc := range cases {
		if got := FormatDate(tc.in); got != tc.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
