package weather

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescribeKnownCodes(t *testing.T) {
	for _, code := range KnownCodes() {
		entry, ok := Lookup(code)
		require.True(t, ok)
		require.NotEmpty(t, entry.Label)
		require.NotEmpty(t, entry.Icon)

		require.Equal(t, entry.Label+" "+entry.Icon, Describe(code, false), "code %d", code)
		require.Equal(t, entry.Icon, Describe(code, true), "code %d", code)
	}
}

func TestDescribeCloudy(t *testing.T) {
	require.Equal(t, "曇り ☁️", Describe(3, false))
	require.Equal(t, "☁️", Describe(3, true))
}

func TestDescribeUnknownCode(t *testing.T) {
	for _, code := range []int{4, 42, 100, -1} {
		_, ok := Lookup(code)
		require.False(t, ok)

		raw := strconv.Itoa(code)
		require.Contains(t, Describe(code, false), raw)
		require.Contains(t, Describe(code, true), raw)
	}
	require.Equal(t, "不明 (コード: 42) ❓", Describe(42, false))
}

func TestCodeTableEntriesAreClean(t *testing.T) {
	for code, entry := range codeTable {
		require.NotContains(t, entry.Label, ",", "code %d", code)
		require.NotContains(t, entry.Icon, " ", "code %d", code)
	}
}

func TestKnownCodesSorted(t *testing.T) {
	codes := KnownCodes()
	require.Len(t, codes, len(codeTable))
	for i := 1; i < len(codes); i++ {
		require.Less(t, codes[i-1], codes[i])
	}
}
