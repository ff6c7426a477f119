// Package parser loads explicit VLAN mapping tables from files. It supports
// JSON, CSV and YAML formats, converting each into the same immutable
// ExplicitMapping used by the replacement engine.
package parser

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/petrosquatr/vlan-replacer/internal/errors"
	"github.com/petrosquatr/vlan-replacer/internal/vlan"
)

// Mapping file formats accepted by LoadMappingFile.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

// KnownFormat reports whether format names a supported mapping file format.
func KnownFormat(format string) bool {
	switch format {
	case FormatJSON, FormatCSV, FormatYAML:
		return true
	}
	return false
}

// DetectFormat picks a format from the file extension. JSON is the canonical
// format and covers unknown extensions.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadMappingFile loads and parses an explicit VLAN mapping table from a
// file. An empty format string means detect by extension. Every key and
// value is validated as a VLAN ID; the returned errors name the offending
// entry and carry the file path.
func LoadMappingFile(path, format string) (*vlan.ExplicitMapping, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapFileError(path, err)
	}
	defer file.Close()

	if format == "" {
		format = DetectFormat(path)
	}

	switch format {
	case FormatJSON:
		return parseJSONMappings(file, path)
	case FormatCSV:
		return parseCSVMappings(file, path)
	case FormatYAML:
		return parseYAMLMappings(file, path)
	default:
		return nil, errors.NewParsingError(path, fmt.Sprintf("unsupported format: %s", format), nil)
	}
}

// parseJSONMappings decodes a JSON object whose keys are decimal VLAN IDs
// and whose values are integer VLAN IDs, e.g. {"160": 2500}.
func parseJSONMappings(reader io.Reader, path string) (*vlan.ExplicitMapping, error) {
	var raw map[string]int

	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&raw); err != nil {
		return nil, errors.NewParsingError(path, "failed to parse JSON", err)
	}

	return buildMapping(raw, path)
}

// parseYAMLMappings decodes the same object shape as JSON from YAML.
// The YAML document is converted to JSON first, so integer keys arrive as
// strings and follow the JSON path.
func parseYAMLMappings(reader io.Reader, path string) (*vlan.ExplicitMapping, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewParsingError(path, "failed to read YAML content", err)
	}

	var raw map[string]int
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, errors.NewParsingError(path, "failed to parse YAML", err)
	}

	return buildMapping(raw, path)
}

func parseCSVMappings(reader io.Reader, path string) (*vlan.ExplicitMapping, error) {
	records, err := readCSVRecords(reader, path)
	if err != nil {
		return nil, err
	}

	startIndex := determineCSVStartIndex(records)
	pairs := make(map[string]int, len(records))

	for i := startIndex; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			return nil, errors.NewParsingError(path, fmt.Sprintf("invalid CSV row %d: expected 2 columns (old,new)", i+1), nil)
		}

		oldField := strings.TrimSpace(record[0])
		newField := strings.TrimSpace(record[1])
		if oldField == "" {
			continue
		}

		newID, err := strconv.Atoi(newField)
		if err != nil {
			return nil, errors.NewParsingError(path, fmt.Sprintf("invalid CSV row %d: new VLAN ID %q is not a number", i+1, newField), nil)
		}
		if _, dup := pairs[oldField]; dup {
			return nil, errors.NewParsingError(path, fmt.Sprintf("invalid CSV row %d: duplicate mapping for VLAN %s", i+1, oldField), nil)
		}
		pairs[oldField] = newID
	}

	return buildMapping(pairs, path)
}

func readCSVRecords(reader io.Reader, path string) ([][]string, error) {
	// Read all content first to filter comment lines
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewParsingError(path, "failed to read CSV content", err)
	}

	lines := strings.Split(string(content), "\n")
	var filteredLines []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		filteredLines = append(filteredLines, line)
	}

	if len(filteredLines) == 0 {
		return nil, errors.NewParsingError(path, "CSV file contains no data after filtering comments", nil)
	}

	filteredContent := strings.Join(filteredLines, "\n")
	csvReader := csv.NewReader(strings.NewReader(filteredContent))
	csvReader.TrimLeadingSpace = true

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, errors.NewParsingError(path, "failed to parse CSV", err)
	}

	return records, nil
}

func determineCSVStartIndex(records [][]string) int {
	if len(records) == 0 || len(records[0]) < 2 {
		return 0
	}
	if isHeaderRow(records[0]) {
		return 1
	}
	return 0
}

// isHeaderRow treats a first row whose old column is not numeric as a
// header, covering old,new / source,destination style headings.
func isHeaderRow(row []string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(row[0]))
	return err != nil
}

// buildMapping converts decimal-string keys into VLAN IDs and constructs the
// validated table.
func buildMapping(raw map[string]int, path string) (*vlan.ExplicitMapping, error) {
	if len(raw) == 0 {
		return nil, errors.NewParsingError(path, "no VLAN mappings found", nil)
	}

	pairs := make(map[int]int, len(raw))
	for key, value := range raw {
		oldID, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, errors.NewParsingError(path, fmt.Sprintf("mapping key %q is not a VLAN ID", key), err)
		}
		pairs[oldID] = value
	}

	mapping, err := vlan.NewExplicitMapping(pairs)
	if err != nil {
		return nil, errors.NewParsingError(path, err.Error(), err)
	}
	return mapping, nil
}
