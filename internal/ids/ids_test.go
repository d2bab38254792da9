package ids

import (
	"reflect"
	"testing"
)

func TestNormalizeSplitting(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"single id", []string{"dQw4w9WgXcQ"}, []string{"dQw4w9WgXcQ"}},
		{"comma separated", []string{"a,b,c"}, []string{"a", "b", "c"}},
		{"whitespace separated", []string{"a b\tc"}, []string{"a", "b", "c"}},
		{"mixed separators", []string{"a, b,,  c"}, []string{"a", "b", "c"}},
		{"multiple args", []string{"a,b", "c"}, []string{"a", "b", "c"}},
		{"empty", []string{"", "  ", ","}, nil},
		{"duplicates kept", []string{"a,a"}, []string{"a", "a"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Normalize(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFromURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtube.com/watch?v=abc&t=42s", "abc", true},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"youtu.be/dQw4w9WgXcQ?t=10", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/shorts/xyz123", "xyz123", true},
		{"https://www.youtube.com/embed/xyz123", "xyz123", true},
		{"https://www.youtube.com/live/xyz123", "xyz123", true},
		{"https://m.youtube.com/watch?v=abc", "abc", true},
		{"https://music.youtube.com/watch?v=abc", "abc", true},
		{"www.youtube.com/watch?v=abc", "abc", true},
		{"dQw4w9WgXcQ", "", false},
		{"https://vimeo.com/12345", "", false},
		{"https://www.youtube.com/feed/subscriptions", "", false},
	}

	for _, tc := range cases {
		got, ok := FromURL(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("FromURL(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNormalizeResolvesURLs(t *testing.T) {
	in := []string{"https://youtu.be/abc,def", "https://www.youtube.com/watch?v=ghi"}
	want := []string{"abc", "def", "ghi"}
	if got := Normalize(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize(%v) = %v, want %v", in, got, want)
	}
}
