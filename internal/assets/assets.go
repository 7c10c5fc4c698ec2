// Package assets fetches the two inputs of a load pass — geometry JSON and
// texture atlas — from local paths or HTTP URLs. The two fetches have no
// ordering dependency and run concurrently; the load blocks until both
// complete. No retries: a failed load attempt is terminal.
package assets

import (
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/idkyet312/minecraftviewer/internal/geometry"
	"github.com/idkyet312/minecraftviewer/internal/texture"
)

// LoadError reports a failed asset fetch or decode. Fatal for the load
// attempt; the message is the user-facing status string.
type LoadError struct {
	Asset  string // "model" or "texture"
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("assets: load %s from %s: %v", e.Asset, e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Fetch reads an asset from an http(s) URL or a filesystem path.
func Fetch(source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(source)
}

// LoadPair fetches and decodes the model and its atlas concurrently.
// Either failure aborts the load: fetch/decode problems surface as
// *LoadError, structural model problems as *geometry.MalformedModelError.
func LoadPair(modelSrc, atlasSrc string) (*geometry.ModelDescription, *image.NRGBA, error) {
	var (
		wg       sync.WaitGroup
		model    *geometry.ModelDescription
		modelErr error
		atlas    *image.NRGBA
		atlasErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		raw, err := Fetch(modelSrc)
		if err != nil {
			modelErr = &LoadError{Asset: "model", Source: modelSrc, Err: err}
			return
		}
		model, modelErr = geometry.Parse(raw)
	}()
	go func() {
		defer wg.Done()
		raw, err := Fetch(atlasSrc)
		if err != nil {
			atlasErr = &LoadError{Asset: "texture", Source: atlasSrc, Err: err}
			return
		}
		img, err := texture.Decode(raw)
		if err != nil {
			atlasErr = &LoadError{Asset: "texture", Source: atlasSrc, Err: err}
			return
		}
		atlas = img
	}()
	wg.Wait()

	if modelErr != nil {
		return nil, nil, modelErr
	}
	if atlasErr != nil {
		return nil, nil, atlasErr
	}
	return model, atlas, nil
}
