package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompatibleDonors(t *testing.T) {
	tests := []struct {
		recipient BloodType
		donors    []BloodType
	}{
		{BloodTypeAPositive, []BloodType{BloodTypeAPositive, BloodTypeANegative, BloodTypeOPositive, BloodTypeONegative}},
		{BloodTypeANegative, []BloodType{BloodTypeANegative, BloodTypeONegative}},
		{BloodTypeBPositive, []BloodType{BloodTypeBPositive, BloodTypeBNegative, BloodTypeOPositive, BloodTypeONegative}},
		{BloodTypeBNegative, []BloodType{BloodTypeBNegative, BloodTypeONegative}},
		{BloodTypeABPositive, AllBloodTypes},
		{BloodTypeABNegative, []BloodType{BloodTypeANegative, BloodTypeBNegative, BloodTypeABNegative, BloodTypeONegative}},
		{BloodTypeOPositive, []BloodType{BloodTypeOPositive, BloodTypeONegative}},
		{BloodTypeONegative, []BloodType{BloodTypeONegative}},
	}

	for _, tt := range tests {
		t.Run(string(tt.recipient), func(t *testing.T) {
			assert.ElementsMatch(t, tt.donors, CompatibleDonors(tt.recipient))
		})
	}
}

func TestCompatibleDonorsUnknownType(t *testing.T) {
	assert.Empty(t, CompatibleDonors(BloodTypeUnknown))
	assert.Empty(t, CompatibleDonors(BloodType("X+")))
	assert.NotNil(t, CompatibleDonors(BloodTypeUnknown))
}

func TestCompatibleDonorsExcludesIncompatibleRh(t *testing.T) {
	// A+ can never donate to an A- recipient
	assert.NotContains(t, CompatibleDonors(BloodTypeANegative), BloodTypeAPositive)
	// O- is the universal donor
	for _, recipient := range AllBloodTypes {
		assert.Contains(t, CompatibleDonors(recipient), BloodTypeONegative)
	}
}

func TestCompatibleDonorsReturnsCopy(t *testing.T) {
	first := CompatibleDonors(BloodTypeOPositive)
	first[0] = BloodTypeABPositive

	second := CompatibleDonors(BloodTypeOPositive)
	assert.Equal(t, BloodTypeOPositive, second[0])
}

func TestIsValidBloodType(t *testing.T) {
	for _, bt := range AllBloodTypes {
		assert.True(t, IsValidBloodType(bt), string(bt))
	}
	assert.False(t, IsValidBloodType(BloodTypeUnknown))
	assert.False(t, IsValidBloodType(BloodType("")))
	assert.False(t, IsValidBloodType(BloodType("a+")))
}
