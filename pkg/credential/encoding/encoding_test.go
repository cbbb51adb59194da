/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeValue(t *testing.T) {
	t.Run("numeric values in range pass through", func(t *testing.T) {
		require.Equal(t, "0", EncodeValue("0"))
		require.Equal(t, "99", EncodeValue("99"))
		require.Equal(t, "4294967295", EncodeValue("4294967295"))
	})

	t.Run("first out-of-range value is hashed", func(t *testing.T) {
		require.NotEqual(t, "4294967296", EncodeValue("4294967296"))
	})

	t.Run("known string vector", func(t *testing.T) {
		// SHA-256("John") read as an unsigned base-10 big integer.
		require.Equal(t,
			"76355713903561865866741292988746191972523015098789458240077478826513114743258",
			EncodeValue("John"))
	})

	t.Run("deterministic", func(t *testing.T) {
		for _, v := range []string{"John", "", "4294967296", "-5", "0.0"} {
			require.Equal(t, EncodeValue(v), EncodeValue(v))
		}
	})

	t.Run("empty string is hashed", func(t *testing.T) {
		encoded := EncodeValue("")
		require.NotEmpty(t, encoded)
		require.NotEqual(t, "", encoded)
	})

	t.Run("leading zeros canonicalize", func(t *testing.T) {
		require.Equal(t, "7", EncodeValue("007"))
		require.Equal(t, EncodeValue("7"), EncodeValue("007"))
		require.Equal(t, "0", EncodeValue("000"))
		require.Equal(t, "4294967295", EncodeValue("04294967295"))
	})

	t.Run("negative numbers are hashed", func(t *testing.T) {
		require.NotEqual(t, "-99", EncodeValue("-99"))
	})
}

func TestConvertPreviewAttributes(t *testing.T) {
	values := ConvertPreviewAttributes([]PreviewAttribute{
		{Name: "name", Value: "John"},
		{Name: "age", Value: "99"},
	})

	require.Len(t, values, 2)
	require.Equal(t, CredentialValue{Raw: "99", Encoded: "99"}, values["age"])
	require.Equal(t, "John", values["name"].Raw)
	require.Equal(t,
		"76355713903561865866741292988746191972523015098789458240077478826513114743258",
		values["name"].Encoded)
}

func TestAssertValuesMatch(t *testing.T) {
	expected := ConvertPreviewAttributes([]PreviewAttribute{
		{Name: "name", Value: "John"},
		{Name: "age", Value: "99"},
	})

	t.Run("identical values match", func(t *testing.T) {
		actual := ConvertPreviewAttributes([]PreviewAttribute{
			{Name: "age", Value: "99"},
			{Name: "name", Value: "John"},
		})
		require.NoError(t, AssertValuesMatch(expected, actual))
		require.True(t, CheckValuesMatch(expected, actual))
	})

	t.Run("missing attribute", func(t *testing.T) {
		actual := ConvertPreviewAttributes([]PreviewAttribute{{Name: "name", Value: "John"}})
		require.EqualError(t, AssertValuesMatch(expected, actual),
			`credential is missing expected attribute "age"`)
	})

	t.Run("unexpected attribute", func(t *testing.T) {
		actual := ConvertPreviewAttributes([]PreviewAttribute{
			{Name: "name", Value: "John"},
			{Name: "age", Value: "99"},
			{Name: "ssn", Value: "123"},
		})
		require.Error(t, AssertValuesMatch(expected, actual))
	})

	t.Run("raw mismatch", func(t *testing.T) {
		actual := ConvertPreviewAttributes([]PreviewAttribute{
			{Name: "name", Value: "Jane"},
			{Name: "age", Value: "99"},
		})
		require.False(t, CheckValuesMatch(expected, actual))
	})

	t.Run("encoded mismatch", func(t *testing.T) {
		actual := CredentialValues{
			"name": {Raw: "John", Encoded: "42"},
			"age":  {Raw: "99", Encoded: "99"},
		}
		require.False(t, CheckValuesMatch(expected, actual))
	})
}
