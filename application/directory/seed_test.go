package directory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/muhammadheryan/fashion-directory/application/directory"
	validatorx "github.com/muhammadheryan/fashion-directory/utils/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeed_Embedded(t *testing.T) {
	designers, err := directory.LoadSeed("")
	require.NoError(t, err)
	require.Len(t, designers, 13)

	assert.Equal(t, "Jaka Designs", designers[0].Name)
	assert.Equal(t, "BRIDAL & FORMAL WEAR", designers[0].Specialty)
	assert.Equal(t, "8MMC+F59, Sunyani", designers[0].Location)
	assert.InDelta(t, 4.9, designers[0].Rating, 0.001)

	seen := map[uint64]bool{}
	for _, d := range designers {
		assert.False(t, seen[d.ID], "duplicate id %d", d.ID)
		seen[d.ID] = true
		assert.True(t, d.CreatedAt.IsZero())
		assert.NoError(t, validatorx.ValidateStruct(d), d.Name)
	}
}

func TestLoadSeed_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- id: 42
  name: Kente House
  specialty: Traditional African Wear
  location: Techiman
  phone: "+233 20 111 1111"
  email: kente@example.com
  experience: 2 years
  description: Hand woven kente.
  services: [Weaving]
  working_hours: 9am-5pm
  rating: 3.5
`), 0o600))

	designers, err := directory.LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, designers, 1)
	assert.Equal(t, uint64(42), designers[0].ID)
	assert.Equal(t, []string{"Weaving"}, designers[0].Services)
}

func TestLoadSeed_Errors(t *testing.T) {
	_, err := directory.LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unclosed"), 0o600))
	_, err = directory.LoadSeed(path)
	assert.Error(t, err)
}
