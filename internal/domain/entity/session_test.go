package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiresProfileCompletion(t *testing.T) {
	tests := []struct {
		name     string
		provider AuthProvider
		hasAge   bool
		want     bool
	}{
		{"google without age", AuthProviderGoogle, false, true},
		{"google with age", AuthProviderGoogle, true, false},
		{"password without age", AuthProviderPassword, false, false},
		{"password with age", AuthProviderPassword, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &Session{AuthProvider: tt.provider, HasAgeSet: tt.hasAge}
			assert.Equal(t, tt.want, session.RequiresProfileCompletion())
		})
	}
}

func TestHasRole(t *testing.T) {
	session := &Session{Role: RoleDoctor}

	assert.True(t, session.HasRole(RoleDoctor))
	assert.True(t, session.HasRole(RoleDoctor, RoleAdmin))
	assert.False(t, session.HasRole(RolePatient))
	assert.True(t, session.HasRole(), "an empty role set allows any authenticated session")
}
