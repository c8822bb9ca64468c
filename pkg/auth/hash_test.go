package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashKey(t *testing.T) {
	keyService := &KeyService{}

	tests := []struct {
		name        string
		key         string
		expectError bool
	}{
		{
			name:        "Valid Key",
			key:         "secure-api-key",
			expectError: false,
		},
		{
			name:        "Empty Key",
			key:         "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedKey, err := keyService.HashKey(tt.key)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, hashedKey)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, hashedKey)
			}
		})
	}
}

func TestCompareKey(t *testing.T) {
	keyService := &KeyService{}

	tests := []struct {
		name        string
		key         string
		setup       func() string
		expectMatch bool
	}{
		{
			name: "Matching Key",
			key:  "secure-api-key",
			setup: func() string {
				hashedKey, _ := keyService.HashKey("secure-api-key")
				return hashedKey
			},
			expectMatch: true,
		},
		{
			name: "Non-Matching Key",
			key:  "wrong-api-key",
			setup: func() string {
				hashedKey, _ := keyService.HashKey("secure-api-key")
				return hashedKey
			},
			expectMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := keyService.CompareKey(tt.setup(), tt.key)
			assert.Equal(t, tt.expectMatch, match)
		})
	}
}

func TestKeyService_Validate(t *testing.T) {
	first, err := (&KeyService{}).HashKey("first-key")
	require.NoError(t, err)
	second, err := (&KeyService{}).HashKey("second-key")
	require.NoError(t, err)

	keyService := NewKeyService([]string{first, second})

	assert.True(t, keyService.Validate(context.Background(), "first-key"))
	assert.True(t, keyService.Validate(context.Background(), "second-key"))
	assert.False(t, keyService.Validate(context.Background(), "third-key"))
	assert.False(t, NewKeyService(nil).Validate(context.Background(), "first-key"))
}
