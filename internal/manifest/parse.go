package manifest

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// fieldCount is the fixed field order of a manifest line:
// code_link, dataset_link, model_link.
const fieldCount = 3

// ParseFile reads the manifest at path and returns one Group per
// non-blank line, in file order. Short lines are padded with empty
// fields. A malformed model or dataset URL fails the whole parse; no
// partial manifest is returned.
func ParseFile(path string) ([]Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	var groups []Group
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		group, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("manifest line %d: %w", lineNo, err)
		}
		groups = append(groups, group)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return groups, nil
}

func parseLine(line string) (Group, error) {
	parts := strings.Split(line, ",")
	if len(parts) > fieldCount {
		return Group{}, fmt.Errorf("too many fields: got %d, want at most %d", len(parts), fieldCount)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	for len(parts) < fieldCount {
		parts = append(parts, "")
	}
	codeLink, datasetLink, modelLink := parts[0], parts[1], parts[2]

	var group Group

	if codeLink != "" {
		group.Code = &CodeRef{Link: codeLink}
	}

	if datasetLink != "" {
		name, err := ResolveDatasetName(datasetLink)
		if err != nil {
			return Group{}, err
		}
		group.Dataset = &DatasetRef{Link: datasetLink, Name: name}
	}

	if modelLink != "" {
		id, err := ResolveModelIdentity(modelLink)
		if err != nil {
			return Group{}, err
		}
		group.Model = &ModelRef{Link: modelLink, Identity: id}
	}

	return group, nil
}
