package validatorx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnyFilled(t *testing.T) {
	type form struct {
		Services []string `validate:"anyfilled"`
	}

	tests := []struct {
		name     string
		services []string
		wantErr  bool
	}{
		{name: "one entry", services: []string{"Tailoring"}},
		{name: "blank entries next to a filled one", services: []string{" ", "Tailoring", ""}},
		{name: "only blank entries", services: []string{"", "  "}, wantErr: true},
		{name: "empty", services: []string{}, wantErr: true},
		{name: "nil", services: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(form{Services: tt.services})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStrongPassword(t *testing.T) {
	type form struct {
		Password string `validate:"strongpassword"`
	}

	assert.NoError(t, ValidateStruct(form{Password: "Abcde1"}))
	assert.Error(t, ValidateStruct(form{Password: "Ab1"}))
	assert.Error(t, ValidateStruct(form{Password: "abcdef1"}))
	assert.Error(t, ValidateStruct(form{Password: "ABCDEF1"}))
	assert.Error(t, ValidateStruct(form{Password: "Abcdefg"}))
}
