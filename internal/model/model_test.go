package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverity_Rank(t *testing.T) {
	assert.Equal(t, 4, SeverityCritical.Rank())
	assert.Equal(t, 3, SeverityHigh.Rank())
	assert.Equal(t, 2, SeverityMedium.Rank())
	assert.Equal(t, 1, SeverityLow.Rank())
	assert.Equal(t, 0, Severity("extreme").Rank())
	assert.False(t, Severity("").Valid())
}

func TestRequestStatus_Valid(t *testing.T) {
	for _, s := range RequestStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, RequestStatus("done").Valid())
	assert.False(t, RequestStatus("").Valid())
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Aisha Rahman", (&User{Username: "aisha", FullName: "Aisha Rahman"}).DisplayName())
	assert.Equal(t, "aisha", (&User{Username: "aisha"}).DisplayName())
}
