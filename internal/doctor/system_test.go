package doctor

import "testing"

func TestNormalizeArch(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"amd64", "x86_64"},
		{"386", "i386"},
		{"arm64", "arm64"},
		{"riscv64", "riscv64"},
	}
	for _, tc := range cases {
		if got := normalizeArch(tc.in); got != tc.want {
			t.Fatalf("normalizeArch(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestInfo_ArchitectureUsesUnameNaming(t *testing.T) {
	info := Info()
	if info.Architecture == "amd64" || info.Architecture == "386" {
		t.Fatalf("architecture not normalized: %q", info.Architecture)
	}
}

func TestCheckRequirements_SupportedHostArch(t *testing.T) {
	// The built-in catalogs declare arm64/x86_64; a host on either side
	// must not trip the architecture recommendation.
	req := Requirements{Architectures: []string{"arm64", "x86_64"}}
	for _, arch := range []string{"x86_64", "arm64"} {
		sys := SystemInfo{Architecture: arch}
		if recs := checkRequirements(sys, req); len(recs) != 0 {
			t.Fatalf("arch %s flagged as unsupported: %+v", arch, recs)
		}
	}
	if recs := checkRequirements(Info(), req); len(recs) != 0 {
		t.Fatalf("live host arch flagged as unsupported: %+v", recs)
	}
}
