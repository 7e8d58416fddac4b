// Copyright (c) 2026 StoreRatings. All rights reserved.

package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamMohdZiya/storeratings/internal/platform/apperr"
)

// fieldsOf extracts the failing field names from a validation error.
func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	appError := apperr.As(err)
	require.NotNil(t, appError)
	require.Equal(t, "VALIDATION_ERROR", appError.Code)

	fields := make([]string, 0, len(appError.Details))
	for _, detail := range appError.Details {
		fields = append(fields, detail.Field)
	}
	return fields
}

func TestValidator_AllRulesPass(t *testing.T) {
	v := &Validator{}
	err := v.
		Required("name", "Jonathan Maximilian Archer").
		MinLen("name", "Jonathan Maximilian Archer", 20).
		MaxLen("name", "Jonathan Maximilian Archer", 60).
		Email("email", "jon@example.com").
		Password("password", "Str0ng!Pass").
		MaxLen("address", "1 Main Street", 400).
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

func TestValidator_CollectsMultipleFailures(t *testing.T) {
	v := &Validator{}
	err := v.
		Required("name", "  ").
		Email("email", "not-an-email").
		Range("score", 9, 1, 5).
		Err()

	require.Error(t, err)
	assert.ElementsMatch(t, []string{"name", "email", "score"}, fieldsOf(t, err))
}

func TestValidator_NameLengthBounds(t *testing.T) {
	tooShort := "Short Name"
	tooLong := strings.Repeat("x", 61)
	v := &Validator{}
	err := v.
		MinLen("short", tooShort, 20).
		MaxLen("long", tooLong, 60).
		Err()

	require.Error(t, err)
	assert.ElementsMatch(t, []string{"short", "long"}, fieldsOf(t, err))
}

func TestValidator_Password(t *testing.T) {
	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"valid", "Str0ng!Pass", true},
		{"valid at min length", "Abcdef1!", true},
		{"valid at max length", "Abcdefghijklmn1!", true},
		{"too short", "Ab1!", false},
		{"too long", "Abcdefghijklmno1!", false},
		{"missing uppercase", "str0ng!pass", false},
		{"missing special", "Str0ngPass1", false},
		{"missing both", "weakpassword", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := &Validator{}
			err := v.Password("password", tc.password).Err()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidator_Range(t *testing.T) {
	for score, valid := range map[int]bool{0: false, 1: true, 3: true, 5: true, 6: false} {
		v := &Validator{}
		err := v.Range("score", score, 1, 5).Err()
		if valid {
			assert.NoError(t, err, "score %d", score)
		} else {
			assert.Error(t, err, "score %d", score)
		}
	}
}

func TestValidator_OneOf(t *testing.T) {
	v := &Validator{}
	assert.NoError(t, v.OneOf("role", "ADMIN", "ADMIN", "NORMAL_USER", "STORE_OWNER").Err())

	v = &Validator{}
	assert.Error(t, v.OneOf("role", "ROOT", "ADMIN", "NORMAL_USER", "STORE_OWNER").Err())
}

func TestValidator_Custom(t *testing.T) {
	v := &Validator{}
	err := v.Custom("store_id", true, "Must be a positive store ID").Err()
	require.Error(t, err)
	assert.Equal(t, []string{"store_id"}, fieldsOf(t, err))
}
