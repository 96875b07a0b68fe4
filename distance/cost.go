package distance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// unreachableText is the wire form of Unreachable in JSON and YAML output.
const unreachableText = "unreachable"

// Cost is a travel distance in kilometres, or Unreachable when no distance
// is recorded. The zero value is a finite cost of 0 km.
//
// Arithmetic saturates: adding anything to Unreachable yields Unreachable,
// and a finite sum that overflows float64 becomes Unreachable as well.
// Overflow is therefore indistinguishable from a missing distance; at
// kilometre scale it cannot occur.
// Ordering is total: every finite cost is Less than Unreachable, and two
// Unreachable costs are equal.
type Cost struct {
	km          float64
	unreachable bool
}

// Unreachable is the sentinel weight for a missing distance.
var Unreachable = Cost{unreachable: true}

// Finite returns a finite cost of km kilometres. NaN, ±Inf and negative
// inputs cannot be a travel distance and map to Unreachable.
func Finite(km float64) Cost {
	if math.IsNaN(km) || math.IsInf(km, 0) || km < 0 {
		return Unreachable
	}

	return Cost{km: km}
}

// IsUnreachable reports whether c is the Unreachable sentinel.
func (c Cost) IsUnreachable() bool { return c.unreachable }

// Km returns the distance in kilometres, or +Inf for Unreachable.
// Use it for display and metrics only; compare costs with Less.
func (c Cost) Km() float64 {
	if c.unreachable {
		return math.Inf(1)
	}

	return c.km
}

// Add returns c + o with saturation to Unreachable.
//
// Complexity: O(1).
func (c Cost) Add(o Cost) Cost {
	if c.unreachable || o.unreachable {
		return Unreachable
	}
	sum := c.km + o.km
	if math.IsInf(sum, 0) {
		return Unreachable
	}

	return Cost{km: sum}
}

// Less reports whether c is strictly cheaper than o.
func (c Cost) Less(o Cost) bool {
	switch {
	case c.unreachable:
		return false
	case o.unreachable:
		return true
	default:
		return c.km < o.km
	}
}

// Equal reports whether c and o denote the same cost.
func (c Cost) Equal(o Cost) bool {
	if c.unreachable || o.unreachable {
		return c.unreachable == o.unreachable
	}

	return c.km == o.km
}

// String renders c as "12.5 km" or "unreachable".
func (c Cost) String() string {
	if c.unreachable {
		return unreachableText
	}

	return strconv.FormatFloat(c.km, 'f', -1, 64) + " km"
}

// MarshalJSON encodes a finite cost as a number and Unreachable as the
// string "unreachable". sigs.k8s.io/yaml goes through this method too.
func (c Cost) MarshalJSON() ([]byte, error) {
	if c.unreachable {
		return json.Marshal(unreachableText)
	}

	return json.Marshal(c.km)
}

// UnmarshalJSON accepts the forms produced by MarshalJSON.
func (c *Cost) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s != unreachableText {
			return fmt.Errorf("distance: invalid cost %q", s)
		}
		*c = Unreachable

		return nil
	}
	var km float64
	if err := json.Unmarshal(b, &km); err != nil {
		return fmt.Errorf("distance: invalid cost: %w", err)
	}
	if km < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeDistance, km)
	}
	*c = Finite(km)

	return nil
}
