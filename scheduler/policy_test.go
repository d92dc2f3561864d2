package scheduler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolicyNames(t *testing.T) {
	tests := []struct {
		policy Policy
		name   string
	}{
		{PolicyFCFS, "FCFS"},
		{PolicySSTF, "SSTF"},
		{PolicySCAN, "SCAN"},
		{PolicyCSCAN, "C-SCAN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.name, tt.policy.String())

			parsed, err := ParsePolicy(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.policy, parsed)
		})
	}

	t.Run("CSCAN alias", func(t *testing.T) {
		parsed, err := ParsePolicy("CSCAN")
		require.NoError(t, err)
		require.Equal(t, PolicyCSCAN, parsed)
	})

	t.Run("unknown policy rejected", func(t *testing.T) {
		_, err := ParsePolicy("LOOK")
		require.Error(t, err)
	})
}

func TestPolicyJSON(t *testing.T) {
	data, err := json.Marshal(PolicyCSCAN)
	require.NoError(t, err)
	require.Equal(t, `"C-SCAN"`, string(data))

	var p Policy
	require.NoError(t, json.Unmarshal([]byte(`"SSTF"`), &p))
	require.Equal(t, PolicySSTF, p)

	require.Error(t, json.Unmarshal([]byte(`"N-STEP"`), &p))
}

func TestScheduleDispatch(t *testing.T) {
	// Each enum value must dispatch to its own ordering.
	fcfsOrder, _ := Schedule(PolicyFCFS, testRequests, testHead, testDiskSize)
	sstfOrder, _ := Schedule(PolicySSTF, testRequests, testHead, testDiskSize)
	scanOrder, _ := Schedule(PolicySCAN, testRequests, testHead, testDiskSize)
	cscanOrder, _ := Schedule(PolicyCSCAN, testRequests, testHead, testDiskSize)

	require.NotEqual(t, fcfsOrder, sstfOrder)
	require.NotEqual(t, scanOrder, cscanOrder)
	require.Equal(t, []int{50, 82, 170, 43, 140, 24, 16, 190}, fcfsOrder)
}
