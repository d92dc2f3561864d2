package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSSTF(t *testing.T) {
	t.Run("textbook workload", func(t *testing.T) {
		order, total := SSTF(testRequests, testHead)
		require.Equal(t, []int{50, 43, 24, 16, 82, 140, 170, 190}, order)
		require.Equal(t, 208, total)
	})

	t.Run("distance tie picks earliest remaining", func(t *testing.T) {
		// 40 and 60 are both 10 away from the head; 40 arrived first.
		order, _ := SSTF([]int{60, 40}, 50)
		require.Equal(t, []int{50, 60, 40}, order)

		order, _ = SSTF([]int{40, 60}, 50)
		require.Equal(t, []int{50, 40, 60}, order)
	})

	t.Run("duplicates serviced exactly once each", func(t *testing.T) {
		requests := []int{30, 30, 70, 30}
		order, total := SSTF(requests, 50)
		require.Len(t, order, len(requests)+1)
		require.Equal(t, []int{50, 30, 30, 30, 70}, order)
		require.Equal(t, 60, total)
	})

	t.Run("does not mutate caller slice", func(t *testing.T) {
		requests := []int{90, 10, 55}
		SSTF(requests, 50)
		require.Equal(t, []int{90, 10, 55}, requests)
	})

	t.Run("request equal to head costs nothing", func(t *testing.T) {
		order, total := SSTF([]int{50, 60}, 50)
		require.Equal(t, []int{50, 50, 60}, order)
		require.Equal(t, 10, total)
	})
}
