package escape

import "testing"

func TestTextLeavesSafeInputAlone(t *testing.T) {
	in := "plain text, no markup () [] {} 'quotes' \"too\""
	if got := Text(in); got != in {
		t.Fatalf("expected %q unchanged, got %q", in, got)
	}
}

func TestTextEscapesEveryOccurrence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"a<b>c&d", "a&lt;b&gt;c&amp;d"},
		{"&&&", "&amp;&amp;&amp;"},
		{"<script>", "&lt;script&gt;"},
		{"1 < 2 && 3 > 2", "1 &lt; 2 &amp;&amp; 3 &gt; 2"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Text(tc.in); got != tc.want {
			t.Fatalf("Text(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTextKeepsMultibyteRunes(t *testing.T) {
	in := "héllo — ピコ & <demo>"
	want := "héllo — ピコ &amp; &lt;demo&gt;"
	if got := Text(in); got != want {
		t.Fatalf("Text(%q) = %q, want %q", in, got, want)
	}
}
