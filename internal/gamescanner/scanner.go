// Package gamescanner discovers room libraries under the data directory.
package gamescanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"chosenoffset.com/chorehouse/room"
)

// LibraryEntry is one room library file found in a house directory
type LibraryEntry struct {
	File    string // File name inside the house directory
	Path    string // Path the library was loaded from
	Library *room.Library
	Err     error // Set when the file exists but does not load or validate
}

// HouseEntry represents a house directory in the data directory
type HouseEntry struct {
	Name      string // Display name (directory name)
	Dir       string // Directory path relative to data/
	Libraries []LibraryEntry
}

// Valid returns the libraries that loaded without error
func (h HouseEntry) Valid() []LibraryEntry {
	var valid []LibraryEntry
	for _, lib := range h.Libraries {
		if lib.Err == nil {
			valid = append(valid, lib)
		}
	}
	return valid
}

// ScanDataDirectory scans the data directory for houses.
// Returns one HouseEntry for each directory holding at least one room library.
func ScanDataDirectory(dataPath string) ([]HouseEntry, error) {
	entries, err := os.ReadDir(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var houses []HouseEntry
	for _, entry := range entries {
		dirName := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(dirName, ".") {
			continue
		}

		libraries, err := scanRoomLibraries(filepath.Join(dataPath, dirName))
		if err != nil {
			// Skip directories that can't be read
			continue
		}
		if len(libraries) > 0 {
			houses = append(houses, HouseEntry{
				Name:      dirName,
				Dir:       dirName,
				Libraries: libraries,
			})
		}
	}

	sort.Slice(houses, func(i, j int) bool { return houses[i].Name < houses[j].Name })
	return houses, nil
}

// scanRoomLibraries loads every JSON file with "room" in its name
func scanRoomLibraries(housePath string) ([]LibraryEntry, error) {
	entries, err := os.ReadDir(housePath)
	if err != nil {
		return nil, err
	}

	var libraries []LibraryEntry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		if !strings.HasSuffix(name, ".json") || !strings.Contains(name, "room") {
			continue
		}

		path := filepath.Join(housePath, entry.Name())
		lib, err := room.LoadLibrary(path)
		libraries = append(libraries, LibraryEntry{
			File:    entry.Name(),
			Path:    path,
			Library: lib,
			Err:     err,
		})
	}

	return libraries, nil
}
