package loan

import (
	"database/sql/driver"
	"fmt"
	"strconv"
)

// Money is an immutable amount in the service's single implicit currency.
// It performs no validation of its own: callers construct it from already
// vetted input.
type Money struct {
	value float64
}

func NewMoney(value float64) Money { return Money{value: value} }

func (m Money) Float64() float64 { return m.value }

func (m Money) IsZero() bool { return m.value == 0 }

func (m Money) GreaterThan(other Money) bool { return m.value > other.value }

func (m Money) LessThan(other Money) bool { return m.value < other.value }

// Sub returns m - other without clamping; callers must ensure other <= m.
func (m Money) Sub(other Money) Money { return Money{value: m.value - other.value} }

func (m Money) String() string { return strconv.FormatFloat(m.value, 'f', 2, 64) }

// Value / Scan let gorm persist the wrapped amount as a plain decimal column.
func (m Money) Value() (driver.Value, error) { return m.value, nil }

func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case float64:
		m.value = v
	case int64:
		m.value = float64(v)
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return fmt.Errorf("money: scan %q: %w", v, err)
		}
		m.value = f
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("money: scan %q: %w", v, err)
		}
		m.value = f
	case nil:
		m.value = 0
	default:
		return fmt.Errorf("money: unsupported source type %T", src)
	}
	return nil
}
