package wordcloud

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SurveyQuestion bundles one question's raw answers with the label
// used for palette selection. For CSV input the label defaults to the
// response column's header.
type SurveyQuestion struct {
	Label     string
	Responses []string
}

// ResponseParseOptions allows callers to choose which CSV columns map
// to responses and the question label. Values are header names or
// 1-based "#N" indices.
type ResponseParseOptions struct {
	ResponseColumn string
	LabelColumn    string
}

// ResponseFileMetadata provides header information and automatic
// column suggestions for the UI column chooser.
type ResponseFileMetadata struct {
	Columns   []string
	Suggested ResponseParseOptions
}

// ParseResponseFile reads survey answers from a CSV, TSV or plain-text
// file using automatic column detection.
func ParseResponseFile(path string) (SurveyQuestion, error) {
	return ParseResponseFileWithOptions(path, ResponseParseOptions{})
}

// ParseResponseFileWithOptions reads survey answers honoring a caller
// provided column selection.
func ParseResponseFileWithOptions(path string, opts ResponseParseOptions) (SurveyQuestion, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return parseDelimitedResponses(path, ',', opts)
	case ".tsv":
		return parseDelimitedResponses(path, '\t', opts)
	default:
		return parsePlainTextResponses(path)
	}
}

func parsePlainTextResponses(path string) (SurveyQuestion, error) {
	f, err := os.Open(path)
	if err != nil {
		return SurveyQuestion{}, fmt.Errorf("open text file: %w", err)
	}
	defer f.Close()
	var q SurveyQuestion
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := cleanCell(scanner.Text())
		if line == "" {
			continue
		}
		q.Responses = append(q.Responses, line)
	}
	if err := scanner.Err(); err != nil {
		return SurveyQuestion{}, fmt.Errorf("scan text file: %w", err)
	}
	return q, nil
}

func parseDelimitedResponses(path string, comma rune, opts ResponseParseOptions) (SurveyQuestion, error) {
	f, err := os.Open(path)
	if err != nil {
		return SurveyQuestion{}, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	reader := csv.NewReader(f)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return SurveyQuestion{}, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if len(rows) == 0 {
		return SurveyQuestion{}, errors.New("empty file")
	}
	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = cleanCell(cell)
	}

	respCol, fromHeader, err := resolveResponseColumn(header, opts.ResponseColumn)
	if err != nil {
		return SurveyQuestion{}, err
	}

	q := SurveyQuestion{}
	if fromHeader && respCol < len(header) {
		q.Label = header[respCol]
	}
	if lbl, ok, err := resolveLabelValue(rows, header, opts.LabelColumn); err != nil {
		return SurveyQuestion{}, err
	} else if ok {
		q.Label = lbl
	}

	start := 0
	if fromHeader {
		start = 1
	}
	for _, row := range rows[start:] {
		if respCol >= len(row) {
			continue
		}
		value := cleanCell(row[respCol])
		if value == "" {
			continue
		}
		q.Responses = append(q.Responses, value)
	}
	return q, nil
}

// resolveResponseColumn picks the response column: an explicit header
// name or #N override wins, then the candidate list, then column 0
// treated as headerless data.
func resolveResponseColumn(header []string, explicit string) (int, bool, error) {
	if strings.TrimSpace(explicit) != "" {
		return matchExplicitColumn(header, explicit)
	}
	candidates := getColumnCandidates()
	if idx := findColumn(header, candidates.Response); idx >= 0 {
		return idx, true, nil
	}
	if len(header) == 0 {
		return -1, false, errors.New("no usable response column found")
	}
	return 0, false, nil
}

// resolveLabelValue extracts the question label from a dedicated label
// column when one exists; the first non-empty data cell wins.
func resolveLabelValue(rows [][]string, header []string, explicit string) (string, bool, error) {
	col := -1
	if strings.TrimSpace(explicit) != "" {
		idx, _, err := matchExplicitColumn(header, explicit)
		if err != nil {
			return "", false, err
		}
		col = idx
	} else {
		candidates := getColumnCandidates()
		col = findColumn(header, candidates.Label)
	}
	if col < 0 {
		return "", false, nil
	}
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		if v := cleanCell(row[col]); v != "" {
			return v, true, nil
		}
	}
	return "", false, nil
}

// ReadResponseFileMetadata returns header information and automatic
// suggestions for structured files. Plain-text files yield empty
// metadata.
func ReadResponseFileMetadata(path string) (ResponseFileMetadata, error) {
	meta := ResponseFileMetadata{}
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".tsv" {
		return meta, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return meta, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	reader := csv.NewReader(f)
	if ext == ".tsv" {
		reader.Comma = '\t'
	}
	reader.FieldsPerRecord = -1
	row, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return meta, nil
		}
		return meta, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	header := make([]string, len(row))
	for i, cell := range row {
		header[i] = cleanCell(cell)
	}
	meta.Columns = header
	candidates := getColumnCandidates()
	if idx := findColumn(header, candidates.Response); idx >= 0 {
		meta.Suggested.ResponseColumn = headerNameForIndex(header, idx)
	}
	if idx := findColumn(header, candidates.Label); idx >= 0 {
		meta.Suggested.LabelColumn = headerNameForIndex(header, idx)
	}
	return meta, nil
}

func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "\ufeff")
	return v
}

func findColumn(header []string, candidates []string) int {
	for i, col := range header {
		for _, cand := range candidates {
			if strings.EqualFold(col, cand) {
				return i
			}
		}
	}
	return -1
}

func matchExplicitColumn(header []string, explicit string) (int, bool, error) {
	trimmed := strings.TrimSpace(explicit)
	if trimmed == "" {
		return -1, false, nil
	}
	for i, col := range header {
		if strings.EqualFold(col, trimmed) {
			return i, true, nil
		}
	}
	if strings.HasPrefix(trimmed, "#") {
		idx, err := parseColumnIndex(trimmed)
		if err != nil {
			return -1, false, err
		}
		if idx >= len(header) {
			return -1, false, fmt.Errorf("column index %s is out of range", trimmed)
		}
		return idx, false, nil
	}
	return -1, false, fmt.Errorf("column %q not found", explicit)
}

func parseColumnIndex(token string) (int, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(token, "#"))
	if trimmed == "" {
		return -1, fmt.Errorf("invalid column index %q", token)
	}
	idx, err := strconv.Atoi(trimmed)
	if err != nil {
		return -1, fmt.Errorf("invalid column index %q", token)
	}
	if idx <= 0 {
		return -1, fmt.Errorf("column indices are 1-based: %q", token)
	}
	return idx - 1, nil
}

func headerNameForIndex(header []string, idx int) string {
	if idx < 0 {
		return ""
	}
	if idx < len(header) && header[idx] != "" {
		return header[idx]
	}
	return fmt.Sprintf("#%d", idx+1)
}
