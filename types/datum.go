// Copyright 2023 The flink Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import (
	"fmt"

	"github.com/pingcap/errors"
)

// Kind constants of a Datum.
const (
	KindNull byte = iota
	KindInt64
	KindFloat64
	KindString
)

// Datum is a value carrier used by expression evaluation. It avoids boxing
// scalar values into interface{}.
type Datum struct {
	k byte
	i int64
	f float64
	s string
}

// Kind gets the kind of the datum.
func (d Datum) Kind() byte {
	return d.k
}

// IsNull checks if datum is null.
func (d Datum) IsNull() bool {
	return d.k == KindNull
}

// GetInt64 gets the int64 value.
func (d Datum) GetInt64() int64 {
	return d.i
}

// GetFloat64 gets the float64 value.
func (d Datum) GetFloat64() float64 {
	return d.f
}

// GetString gets the string value.
func (d Datum) GetString() string {
	return d.s
}

// GetValue gets the value of the datum of any kind.
func (d Datum) GetValue() interface{} {
	switch d.k {
	case KindInt64:
		return d.i
	case KindFloat64:
		return d.f
	case KindString:
		return d.s
	}
	return nil
}

// SetInt64 sets the int64 value.
func (d *Datum) SetInt64(i int64) {
	d.k = KindInt64
	d.i = i
}

// SetFloat64 sets the float64 value.
func (d *Datum) SetFloat64(f float64) {
	d.k = KindFloat64
	d.f = f
}

// SetString sets the string value.
func (d *Datum) SetString(s string) {
	d.k = KindString
	d.s = s
}

// SetNull sets the datum to null.
func (d *Datum) SetNull() {
	*d = Datum{}
}

// Equals reports whether two datums hold the same kind and value.
func (d Datum) Equals(other Datum) bool {
	return d == other
}

// String implements fmt.Stringer interface.
func (d Datum) String() string {
	if d.IsNull() {
		return "NULL"
	}
	return fmt.Sprintf("%v", d.GetValue())
}

// ToBool converts the datum to a boolean, following SQL truthiness for the
// supported kinds.
func (d Datum) ToBool() (bool, error) {
	switch d.k {
	case KindInt64:
		return d.i != 0, nil
	case KindFloat64:
		return d.f != 0, nil
	case KindString:
		return len(d.s) != 0, nil
	}
	return false, errors.Errorf("cannot convert %s to bool", d)
}

// NewIntDatum creates a new Datum from an int64 value.
func NewIntDatum(i int64) (d Datum) {
	d.SetInt64(i)
	return d
}

// NewFloat64Datum creates a new Datum from a float64 value.
func NewFloat64Datum(f float64) (d Datum) {
	d.SetFloat64(f)
	return d
}

// NewStringDatum creates a new Datum from a string.
func NewStringDatum(s string) (d Datum) {
	d.SetString(s)
	return d
}

// NewDatum creates a new Datum from an interface{} value.
func NewDatum(in interface{}) (d Datum) {
	switch x := in.(type) {
	case nil:
	case bool:
		if x {
			d.SetInt64(1)
		} else {
			d.SetInt64(0)
		}
	case int:
		d.SetInt64(int64(x))
	case int64:
		d.SetInt64(x)
	case float64:
		d.SetFloat64(x)
	case string:
		d.SetString(x)
	case Datum:
		d = x
	default:
		panic(fmt.Sprintf("unsupported datum value %T", in))
	}
	return d
}
