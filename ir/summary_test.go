package ir

import "testing"

func TestSummaryTagRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		identity string
	}{
		{"plain", "pkg.Thing", "0x2a"},
		{"nested package", "a/b/c.Thing", "0x1"},
		{"generic with comma", "pkg.Pair[int,string]", "0xff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := SummaryTag(tt.typeName, tt.identity)
			info, ok := SummaryTagInfo(tag)
			if !ok {
				t.Fatalf("SummaryTagInfo(%q) not recognized", tag)
			}
			if info.TypeName != tt.typeName || info.Identity != tt.identity {
				t.Errorf("got %+v, want {%s %s}", info, tt.typeName, tt.identity)
			}
		})
	}
}

func TestIsSummary(t *testing.T) {
	sum := FromString("pkg.T (0x1) a thing").WithTag(SummaryTag("pkg.T", "0x1"))
	if !IsSummary(sum) {
		t.Error("tagged summary not recognized")
	}
	if IsSummary(FromString("pkg.T (0x1) a thing")) {
		t.Error("untagged string recognized as summary")
	}
	if IsSummary(nil) {
		t.Error("nil recognized as summary")
	}
	if IsSummary(FromString("x").WithTag("!summaryish")) {
		t.Error("unrelated tag recognized as summary")
	}
}

func TestSummaryTagInfoRejectsNonSummary(t *testing.T) {
	for _, tag := range []string{"", "!other(a,b)", "!summary", "!summary(noident)"} {
		if _, ok := SummaryTagInfo(tag); ok {
			t.Errorf("SummaryTagInfo(%q) = ok, want not ok", tag)
		}
	}
}
