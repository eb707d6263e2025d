package gradebook

import (
	"encoding/json"
	"fmt"
)

// NoDataLabel is how an absent average is rendered.
const NoDataLabel = "N/A"

// Average is an optional arithmetic mean. The zero value is NoData.
type Average struct {
	Value float64
	Valid bool
}

// NoData is the explicit absence-of-result marker.
var NoData = Average{}

// Some wraps a computed mean.
func Some(v float64) Average {
	return Average{Value: v, Valid: true}
}

// String renders the average with two decimals, or N/A when absent.
func (a Average) String() string {
	if !a.Valid {
		return NoDataLabel
	}
	return fmt.Sprintf("%.2f", a.Value)
}

// MarshalJSON renders a number, or null when absent.
func (a Average) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(a.Value)
}

// UnmarshalJSON accepts a number or null.
func (a *Average) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = NoData
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = Some(v)
	return nil
}

// mean returns NoData for an empty sequence.
func mean(grades []float64) Average {
	if len(grades) == 0 {
		return NoData
	}
	var sum float64
	for _, g := range grades {
		sum += g
	}
	return Some(sum / float64(len(grades)))
}
