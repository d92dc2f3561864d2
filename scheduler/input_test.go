package scheduler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRequestList(t *testing.T) {
	t.Run("comma separated with spaces", func(t *testing.T) {
		requests, err := ParseRequestList("82, 170, 43, 140, 24, 16, 190")
		require.NoError(t, err)
		require.Equal(t, testRequests, requests)
	})

	t.Run("no spaces", func(t *testing.T) {
		requests, err := ParseRequestList("1,2,3")
		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3}, requests)
	})

	t.Run("blank input is an empty list", func(t *testing.T) {
		requests, err := ParseRequestList("   ")
		require.NoError(t, err)
		require.Empty(t, requests)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := ParseRequestList("10, twenty, 30")
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid input")
		require.Contains(t, err.Error(), "twenty")
	})

	t.Run("trailing comma", func(t *testing.T) {
		_, err := ParseRequestList("10, 20,")
		require.Error(t, err)
	})

	t.Run("negative cylinder", func(t *testing.T) {
		_, err := ParseRequestList("10, -5")
		require.Error(t, err)
	})
}

func TestWriteComparisonCSV(t *testing.T) {
	t.Run("fixed policy order with metrics", func(t *testing.T) {
		comparison := CompareAll(testRequests, testHead, testDiskSize)

		var buf bytes.Buffer
		require.NoError(t, WriteComparisonCSV(&buf, comparison))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 5)
		require.Equal(t, "Algorithm,Total Seek Time,Average Seek Time,Throughput", lines[0])
		require.True(t, strings.HasPrefix(lines[1], "FCFS,642,91.71,0.0109"))
		require.True(t, strings.HasPrefix(lines[2], "SSTF,208,"))
		require.True(t, strings.HasPrefix(lines[3], "SCAN,332,"))
		require.True(t, strings.HasPrefix(lines[4], "C-SCAN,391,"))
	})

	t.Run("failed entries render their error", func(t *testing.T) {
		comparison := CompareAll(nil, testHead, testDiskSize)

		var buf bytes.Buffer
		require.NoError(t, WriteComparisonCSV(&buf, comparison))
		require.Contains(t, buf.String(), ErrEmptyInput.Error())
	})
}
