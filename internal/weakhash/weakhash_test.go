package weakhash

import "testing"

func TestString(t *testing.T) {
	testCases := []struct {
		in   string
		want uint32
	}{
		{"", 0},
		{"x", 120},
		{"red", 10243},
		{"green", 768089},
		{"blue", 81344},
		{"transparent", 2431476722},
		// "ab" and "\x6a\x11" collide under the 9h+b recurrence; build
		// tests rely on this pair to force salt exhaustion.
		{"ab", 971},
		{"\x6a\x11", 971},
	}
	for _, tc := range testCases {
		if got := String(tc.in); got != tc.want {
			t.Errorf("String(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestBytesMatchesString(t *testing.T) {
	for _, s := range []string{"", "red", "mediumorchid", "\x00\xff\x80", "transparent"} {
		if got, want := Bytes([]byte(s)), String(s); got != want {
			t.Errorf("Bytes(%q) = %d, String = %d", s, got, want)
		}
	}
}

func TestReduce(t *testing.T) {
	testCases := []struct {
		key, salt, n uint32
		want         uint32
	}{
		{10243, 0, 3, 1},
		{10243, 7, 3, 2},
		{0, 0, 5, 0},
		{0xffffffff, 1, 10, 9},
	}
	for _, tc := range testCases {
		if got := Reduce(tc.key, tc.salt, tc.n); got != tc.want {
			t.Errorf("Reduce(%d, %d, %d) = %d, want %d", tc.key, tc.salt, tc.n, got, tc.want)
		}
	}
}

func TestReduceInRange(t *testing.T) {
	for n := uint32(1); n <= 64; n++ {
		for salt := uint32(0); salt < 100; salt++ {
			key := salt*2654435769 + n
			if got := Reduce(key, salt, n); got >= n {
				t.Fatalf("Reduce(%d, %d, %d) = %d, out of range", key, salt, n, got)
			}
		}
	}
}

// TestReduceSaltSensitivity checks the property the salt search relies on:
// for a fixed key, varying the salt over a bounded range separates a small
// set of colliding hashes with high probability.
func TestReduceSaltSensitivity(t *testing.T) {
	const n = 64
	keys := []uint32{10243, 768089, 81344, 2431476722}

	for salt := uint32(1); salt < 1000; salt++ {
		seen := make(map[uint32]bool, len(keys))
		distinct := true
		for _, k := range keys {
			slot := Reduce(k, salt, n)
			if seen[slot] {
				distinct = false
				break
			}
			seen[slot] = true
		}
		if distinct {
			return
		}
	}
	t.Fatal("no salt in [1, 1000) separated 4 keys over 64 slots")
}
