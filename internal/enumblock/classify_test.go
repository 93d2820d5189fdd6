package enumblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultClassifier() *Classifier {
	return NewClassifier([]string{"enum BNpcName", "enum class BNpcName"}, "};")
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		line     string
		inBlock  bool
		wantKind Kind
		want     RawEntry
	}{
		{name: "plain start", line: "  enum BNpcName\n", wantKind: KindBlockStart},
		{name: "class start", line: "enum class BNpcName : uint32_t\n", wantKind: KindBlockStart},
		{name: "start inside block", line: "enum BNpcName\n", inBlock: true, wantKind: KindBlockStart},
		{name: "outside passthrough", line: "foo 1\n", wantKind: KindPassthrough},
		{name: "end marker outside is passthrough", line: "};\n", wantKind: KindPassthrough},
		{name: "end marker", line: "  };\n", inBlock: true, wantKind: KindBlockEnd},
		{name: "simple entry", line: "fire3_aoe 205\n", inBlock: true, wantKind: KindEntry,
			want: RawEntry{Name: "fire3_aoe", Number: "205"}},
		{name: "indented entry with spaces in name", line: "\tSecond Hoplomachus   6621  \n", inBlock: true,
			wantKind: KindEntry, want: RawEntry{Name: "Second Hoplomachus", Number: "6621"}},
		{name: "number is last digit run", line: "Golem 12 34\n", inBlock: true, wantKind: KindEntry,
			want: RawEntry{Name: "Golem 12", Number: "34"}},
		{name: "cjk name", line: "片手剑 100\n", inBlock: true, wantKind: KindEntry,
			want: RawEntry{Name: "片手剑", Number: "100"}},
		{name: "leading zeros kept", line: "imp 007\n", inBlock: true, wantKind: KindEntry,
			want: RawEntry{Name: "imp", Number: "007"}},
		{name: "crlf terminator", line: "imp 7\r\n", inBlock: true, wantKind: KindEntry,
			want: RawEntry{Name: "imp", Number: "7"}},
		{name: "no terminator", line: "imp 7", inBlock: true, wantKind: KindEntry,
			want: RawEntry{Name: "imp", Number: "7"}},
		{name: "opening brace", line: "{\n", inBlock: true, wantKind: KindUnmatched},
		{name: "blank line", line: "\n", inBlock: true, wantKind: KindUnmatched},
		{name: "already formatted", line: "    imp = 7,\n", inBlock: true, wantKind: KindUnmatched},
		{name: "number only", line: "   42\n", inBlock: true, wantKind: KindUnmatched},
		{name: "no separator", line: "imp7\n", inBlock: true, wantKind: KindUnmatched},
		{name: "trailing text after number", line: "imp 7 boss\n", inBlock: true, wantKind: KindUnmatched},
		{name: "negative number", line: "imp -7\n", inBlock: true, wantKind: KindUnmatched},
	}
	c := defaultClassifier()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Classify(tc.line, tc.inBlock)
			assert.Equal(t, tc.wantKind, got.Kind, "kind %s", got.Kind)
			if tc.wantKind == KindEntry {
				assert.Equal(t, tc.want, got.Entry)
			}
		})
	}
}

func TestClassify_CustomMarkers(t *testing.T) {
	c := NewClassifier([]string{"enum ActionId"}, "END")
	assert.Equal(t, KindBlockStart, c.Classify("enum ActionId {\n", false).Kind)
	assert.Equal(t, KindPassthrough, c.Classify("enum BNpcName {\n", false).Kind)
	assert.Equal(t, KindUnmatched, c.Classify("};\n", true).Kind)
	assert.Equal(t, KindBlockEnd, c.Classify("END\n", true).Kind)
}

func TestClassify_EmptyMarkersIgnored(t *testing.T) {
	c := NewClassifier([]string{""}, "")
	assert.Equal(t, KindPassthrough, c.Classify("anything 1\n", false).Kind)
	assert.Equal(t, KindEntry, c.Classify("anything 1\n", true).Kind)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "entry", KindEntry.String())
	assert.Equal(t, "unmatched", KindUnmatched.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "    fire3_aoe = 205,\n", FormatDeclaration("fire3_aoe", "205"))
	assert.Equal(t, "    // {\n", FormatComment("  {\r\n"))
	assert.Equal(t, "    // \n", FormatComment("\n"))
}
