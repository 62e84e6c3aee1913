package util

import (
	"fmt"
	"os"

	"github.com/google/pprof/profile"
)

// GetProfileDataFromFile reads a pprof profile (gzipped or not) from path.
func GetProfileDataFromFile(path string) (*profile.Profile, error) {
	rawProfile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profile: %w", err)
	}
	defer rawProfile.Close()
	prof, err := profile.Parse(rawProfile)
	if err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return prof, nil
}
