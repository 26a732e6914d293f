package directory

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/muhammadheryan/fashion-directory/model"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// LoadSeed returns the seed designers from path, or the embedded list when
// path is empty.
func LoadSeed(path string) ([]model.Designer, error) {
	data := defaultSeed
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	}

	var designers []model.Designer
	if err := yaml.Unmarshal(data, &designers); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	if designers == nil {
		designers = []model.Designer{}
	}
	return designers, nil
}
