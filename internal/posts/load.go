package posts

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"bizpulse/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Load reads a JSON array of posts from path. A missing file returns an
// error satisfying errors.Is(err, fs.ErrNotExist).
func Load(path string) ([]models.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read posts file: %w", err)
	}

	var out []models.Post
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse posts file %s: %w", path, err)
	}
	return out, nil
}
