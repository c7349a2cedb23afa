package translate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Cache is an on-disk map from Japanese sentence to English
// translation, consulted before the translate API is called.
type Cache struct {
	path string
	dict map[string]string
}

func LoadCache(path string) (*Cache, error) {
	dict := map[string]string{}
	b, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(b, &dict); err != nil {
			return nil, fmt.Errorf("could not unmarshal translations file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not open translations file: %w", err)
	}
	return &Cache{path: path, dict: dict}, nil
}

func (c *Cache) Lookup(s string) (string, bool) {
	t, ok := c.dict[s]
	return t, ok
}

func (c *Cache) Update(s, translation string) {
	c.dict[s] = translation
}

// Write persists the cache back to disk.
func (c *Cache) Write() error {
	data, err := yaml.Marshal(c.dict)
	if err != nil {
		return fmt.Errorf("could not marshal translations: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("could not write translations file: %w", err)
	}
	return nil
}
