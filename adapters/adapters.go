// Package adapters converts application values into SQL literals, deferring
// the choice of client encoding and server settings until a value is
// prepared against a connection.
package adapters

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Adapter renders a captured value as a SQL literal. Prepare binds the
// adapter to a connection's settings; GetQuoted is valid in either state.
type Adapter interface {
	Prepare(conn Conn)
	GetQuoted() ([]byte, error)
}

// asIs renders its bytes unchanged. Used for values whose literal form is
// pure ASCII and independent of any connection setting.
type asIs string

func (a asIs) Prepare(Conn) {}

func (a asIs) GetQuoted() ([]byte, error) { return []byte(a), nil }

// AsIs returns an adapter that emits s verbatim. The caller is responsible
// for s being valid SQL.
func AsIs(s string) Adapter { return asIs(s) }

// Adapt returns the adapter for a Go value: strings become QuotedString,
// byte slices become Binary, scalars render directly. Unknown types fail.
func Adapt(v any) (Adapter, error) {
	switch v := v.(type) {
	case nil:
		return asIs("NULL"), nil
	case string:
		return NewQuotedString(v), nil
	case []byte:
		return NewBinary(v), nil
	case bool:
		if v {
			return asIs("TRUE"), nil
		}
		return asIs("FALSE"), nil
	case int:
		return asIs(strconv.FormatInt(int64(v), 10)), nil
	case int8:
		return asIs(strconv.FormatInt(int64(v), 10)), nil
	case int16:
		return asIs(strconv.FormatInt(int64(v), 10)), nil
	case int32:
		return asIs(strconv.FormatInt(int64(v), 10)), nil
	case int64:
		return asIs(strconv.FormatInt(v, 10)), nil
	case uint:
		return asIs(strconv.FormatUint(uint64(v), 10)), nil
	case uint8:
		return asIs(strconv.FormatUint(uint64(v), 10)), nil
	case uint16:
		return asIs(strconv.FormatUint(uint64(v), 10)), nil
	case uint32:
		return asIs(strconv.FormatUint(uint64(v), 10)), nil
	case uint64:
		return asIs(strconv.FormatUint(v, 10)), nil
	case float32:
		return adaptFloat(float64(v)), nil
	case float64:
		return adaptFloat(v), nil
	case time.Time:
		return asIs("'" + v.Format("2006-01-02 15:04:05.999999-07:00") + "'::timestamptz"), nil
	default:
		return nil, fmt.Errorf("pgquote: cannot adapt type %T", v)
	}
}

// adaptFloat renders a float, spelling out the values that have no plain
// numeric literal form.
func adaptFloat(f float64) Adapter {
	switch {
	case math.IsNaN(f):
		return asIs("'NaN'::float8")
	case math.IsInf(f, 1):
		return asIs("'Infinity'::float8")
	case math.IsInf(f, -1):
		return asIs("'-Infinity'::float8")
	}
	return asIs(strconv.FormatFloat(f, 'g', -1, 64))
}
