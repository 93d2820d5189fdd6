package audit

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/enumfix/internal/enumblock"
)

func TestFindDuplicates_Names(t *testing.T) {
	r := FindDuplicates(ExtractPairs("alpha = 1, beta = 2, alpha = 3"))
	assert.Equal(t, []string{"alpha"}, r.DuplicateNames)
	assert.Empty(t, r.DuplicateValues)
	assert.Equal(t, 3, r.Pairs)
	assert.False(t, r.Clean())
}

func TestFindDuplicates_Values(t *testing.T) {
	r := FindDuplicates(ExtractPairs("alpha = 1, beta = 1"))
	assert.Empty(t, r.DuplicateNames)
	assert.Equal(t, map[string][]string{"1": {"alpha", "beta"}}, r.ValueMap())
}

func TestFindDuplicates_Ordering(t *testing.T) {
	body := `
    zed = 5,
    amy = 2,
    bob = 5,
    zed = 9,
    amy = 2,
    cat = 2,
    bob = 7,
    dan = 5,
`
	r := FindDuplicates(ExtractPairs(body))
	assert.Equal(t, []string{"zed", "amy", "bob"}, r.DuplicateNames)
	assert.Equal(t, []ValueGroup{
		{Value: "5", Names: []string{"zed", "bob", "dan"}},
		{Value: "2", Names: []string{"amy", "cat"}},
	}, r.DuplicateValues)
}

func TestFindDuplicates_SameNameSameValueIsNotSharedValue(t *testing.T) {
	r := FindDuplicates(ExtractPairs("imp = 1, imp = 1"))
	assert.Equal(t, []string{"imp"}, r.DuplicateNames)
	assert.Empty(t, r.DuplicateValues)
}

func TestFindDuplicates_Empty(t *testing.T) {
	r := FindDuplicates(nil)
	assert.True(t, r.Clean())
	assert.NotNil(t, r.DuplicateNames)
	assert.NotNil(t, r.DuplicateValues)
}

func TestExtractPairs_IgnoresOtherShapes(t *testing.T) {
	pairs := ExtractPairs("a = 1, b = -2, c = 0x3, // d = 4\n e=5")
	assert.Equal(t, []Pair{
		{Identifier: "a", Value: "1"},
		{Identifier: "c", Value: "0"},
		{Identifier: "d", Value: "4"},
		{Identifier: "e", Value: "5"},
	}, pairs)
}

func TestAudit_NonASCIINames(t *testing.T) {
	text := "enum BNpcName { 片手剑 = 1, 片手剑 = 2, café = 3, imp = 3 };"
	r, err := NewAuditor("BNpcName").Audit(text)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Pairs)
	assert.Equal(t, []string{"片手剑"}, r.DuplicateNames)
	assert.Equal(t, []ValueGroup{{Value: "3", Names: []string{"café", "imp"}}}, r.DuplicateValues)
}

func TestAudit_LocatesBlock(t *testing.T) {
	text := `#pragma once
enum ActionId { imp = 1, imp = 1 };
namespace Sapphire
{
  enum BNpcName
  {
    imp = 1,
    golem = 2,
    // imp = 3,
    sprite = 2,
  };
  enum Other { imp = 1, imp = 2 };
}
`
	r, err := NewAuditor("BNpcName").Audit(text)
	require.NoError(t, err)
	assert.Equal(t, "BNpcName", r.Enum)
	assert.Equal(t, 4, r.Pairs)
	assert.Equal(t, []string{"imp"}, r.DuplicateNames, "commented entries still count")
	assert.Equal(t, []ValueGroup{{Value: "2", Names: []string{"golem", "sprite"}}}, r.DuplicateValues)
}

func TestAudit_BlockForms(t *testing.T) {
	forms := []string{
		"enum BNpcName{a = 1, b = 1}",
		"enum  class  BNpcName\n{\n a = 1,\n b = 1\n};",
		"enum class BNpcName : uint32_t { a = 1, b = 1 };",
		"enum BNpcName : unsigned int { a = 1, b = 1 };",
		"enum BNpcName : std::uint16_t\n{ a = 1, b = 1 };",
	}
	a := NewAuditor("BNpcName")
	for _, text := range forms {
		r, err := a.Audit(text)
		require.NoError(t, err, text)
		assert.Equal(t, []ValueGroup{{Value: "1", Names: []string{"a", "b"}}}, r.DuplicateValues, text)
	}
}

func TestAudit_NotFound(t *testing.T) {
	cases := map[string]string{
		"missing":      "enum Other { a = 1 };",
		"prefix name":  "enum BNpcNameEx { a = 1 };",
		"empty body":   "enum BNpcName {}",
		"no brace":     "enum BNpcName\n a 1\n",
		"empty string": "",
	}
	a := NewAuditor("BNpcName")
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := a.Audit(text)
			require.Nil(t, r)
			require.True(t, errors.Is(err, ErrBlockNotFound), "err = %v", err)
			assert.Contains(t, err.Error(), "BNpcName")
		})
	}
}

func TestAudit_Idempotent(t *testing.T) {
	text := "enum BNpcName { a = 1, b = 1, a = 2 };"
	a := NewAuditor("BNpcName")
	first, err := a.Audit(text)
	require.NoError(t, err)
	second, err := a.Audit(text)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAudit_RewriteOutputHasNoDuplicateNames(t *testing.T) {
	raw := strings.Join([]string{
		"namespace Sapphire::Common {",
		"enum BNpcName {",
		"Imp 1",
		"imp 2",
		"Golem 3",
		"片手剑 4",
		"片手剑 5",
		"2B 6",
		"Second Hoplomachus 7",
		"garbage line",
		"};",
		"}",
		"",
	}, "\n")

	rw := enumblock.NewRewriter([]string{"enum BNpcName", "enum class BNpcName"}, "};")
	var out strings.Builder
	_, err := rw.Rewrite(strings.NewReader(raw), &out)
	require.NoError(t, err)

	r, err := NewAuditor("BNpcName").Audit(out.String())
	require.NoError(t, err)
	assert.Empty(t, r.DuplicateNames)
	assert.Empty(t, r.DuplicateValues)
	assert.Equal(t, 7, r.Pairs)
}
