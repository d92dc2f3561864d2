package scheduler

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseRequestList parses a comma-separated list of cylinder numbers, e.g.
// "82, 170, 43". Whitespace around entries is ignored. A blank string yields
// an empty list. Malformed or negative entries fail with an invalid-input
// error naming the offending token.
func ParseRequestList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return []int{}, nil
	}

	parts := strings.Split(s, ",")
	requests := make([]int, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, ErrInvalidInput(fmt.Sprintf("%q is not an integer", token))
		}
		if n < 0 {
			return nil, ErrInvalidInput(fmt.Sprintf("cylinder %d is negative", n))
		}
		requests = append(requests, n)
	}
	return requests, nil
}

// WriteComparisonCSV renders a comparison as CSV rows in fixed policy order:
// algorithm, total seek time, average seek time, throughput. Entries whose
// metrics failed render their error in place of the numeric columns.
func WriteComparisonCSV(w io.Writer, comparison ComparisonResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Algorithm", "Total Seek Time", "Average Seek Time", "Throughput"}); err != nil {
		return err
	}

	for _, p := range AllPolicies {
		result, ok := comparison[p.String()]
		if !ok {
			continue
		}
		row := []string{p.String(), strconv.Itoa(result.SeekCost)}
		if result.Metrics != nil {
			row = append(row,
				strconv.FormatFloat(result.Metrics.AverageSeekTime, 'f', 2, 64),
				strconv.FormatFloat(result.Metrics.Throughput, 'f', 4, 64))
		} else {
			row = append(row, result.Err, result.Err)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
