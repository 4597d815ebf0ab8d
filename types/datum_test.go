// Copyright 2024 The flink Authors.
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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatumRoundTrip(t *testing.T) {
	cases := []struct {
		in   interface{}
		kind byte
	}{
		{int64(42), KindInt64},
		{3.14, KindFloat64},
		{"abc", KindString},
		{nil, KindNull},
	}
	for _, ca := range cases {
		d := NewDatum(ca.in)
		require.Equal(t, ca.kind, d.Kind())
		require.Equal(t, ca.in, d.GetValue())
	}
}

func TestDatumEquals(t *testing.T) {
	require.True(t, NewIntDatum(1).Equals(NewIntDatum(1)))
	require.False(t, NewIntDatum(1).Equals(NewIntDatum(2)))
	require.False(t, NewIntDatum(1).Equals(NewFloat64Datum(1)))
	require.True(t, Datum{}.Equals(Datum{}))
}

func TestDatumToBool(t *testing.T) {
	cases := []struct {
		d    Datum
		want bool
	}{
		{NewIntDatum(1), true},
		{NewIntDatum(0), false},
		{NewFloat64Datum(0.5), true},
		{NewStringDatum(""), false},
		{NewStringDatum("x"), true},
	}
	for _, ca := range cases {
		got, err := ca.d.ToBool()
		require.NoError(t, err)
		require.Equal(t, ca.want, got, "datum %s", ca.d)
	}
	_, err := Datum{}.ToBool()
	require.Error(t, err)
}
