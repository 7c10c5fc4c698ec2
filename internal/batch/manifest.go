package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one rendered model in the output manifest.
type ManifestEntry struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Cubes int    `json:"cubes"`
}

// WriteManifest writes manifest.json for the successfully rendered models.
func WriteManifest(path string, results []Result) error {
	var entries []ManifestEntry
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{Name: r.Name, Image: r.Image, Cubes: r.Cubes})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
