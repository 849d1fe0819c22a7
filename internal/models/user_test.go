package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
	}{
		{
			name:    "valid user",
			user:    User{Email: "achen@ucdavis.edu", DisplayName: "Alex Chen"},
			wantErr: false,
		},
		{
			name:    "empty email",
			user:    User{Email: "", DisplayName: "Alex Chen"},
			wantErr: true,
		},
		{
			name:    "email without at sign",
			user:    User{Email: "not-an-email", DisplayName: "Alex Chen"},
			wantErr: true,
		},
		{
			name:    "empty display name",
			user:    User{Email: "achen@ucdavis.edu", DisplayName: ""},
			wantErr: true,
		},
		{
			name:    "display name too short",
			user:    User{Email: "achen@ucdavis.edu", DisplayName: "A"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUser_CloneCopiesSkills(t *testing.T) {
	user := User{Email: "achen@ucdavis.edu", DisplayName: "Alex Chen", Skills: []string{"Python", "React"}}

	clone := user.Clone()
	clone.Skills[0] = "Figma"

	assert.Equal(t, "Python", user.Skills[0])
}
