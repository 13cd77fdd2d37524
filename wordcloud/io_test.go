package wordcloud

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSurveyFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseResponseFileCSVAutoDetect(t *testing.T) {
	path := writeSurveyFile(t, "survey.csv",
		"id,What do you like most?,score\n"+
			"1,great product,5\n"+
			"2,,3\n"+
			"3,fast shipping,4\n")
	// The second column does not match a candidate name, so detection
	// needs a candidate header.
	path2 := writeSurveyFile(t, "survey2.csv",
		"id,response,score\n"+
			"1,great product,5\n"+
			"2,,3\n"+
			"3,fast shipping,4\n")

	q, err := ParseResponseFile(path2)
	if err != nil {
		t.Fatalf("ParseResponseFile: %v", err)
	}
	if q.Label != "response" {
		t.Fatalf("label = %q, want header name", q.Label)
	}
	if len(q.Responses) != 2 || q.Responses[0] != "great product" || q.Responses[1] != "fast shipping" {
		t.Fatalf("responses = %v", q.Responses)
	}

	// Without a candidate header the first column is treated as
	// headerless data.
	q, err = ParseResponseFile(path)
	if err != nil {
		t.Fatalf("ParseResponseFile fallback: %v", err)
	}
	if q.Label != "" {
		t.Fatalf("fallback label = %q, want empty", q.Label)
	}
	if len(q.Responses) != 4 || q.Responses[0] != "id" {
		t.Fatalf("fallback should read column 0 including the header row: %v", q.Responses)
	}
}

func TestParseResponseFileExplicitColumns(t *testing.T) {
	path := writeSurveyFile(t, "survey.csv",
		"question,free text\n"+
			"What do you dislike most?,slow loading\n"+
			",crashes often\n")

	q, err := ParseResponseFileWithOptions(path, ResponseParseOptions{
		ResponseColumn: "free text",
		LabelColumn:    "question",
	})
	if err != nil {
		t.Fatalf("ParseResponseFileWithOptions: %v", err)
	}
	if q.Label != "What do you dislike most?" {
		t.Fatalf("label = %q", q.Label)
	}
	if len(q.Responses) != 2 || q.Responses[0] != "slow loading" || q.Responses[1] != "crashes often" {
		t.Fatalf("responses = %v", q.Responses)
	}
}

func TestParseResponseFileIndexOverride(t *testing.T) {
	path := writeSurveyFile(t, "raw.csv",
		"1,great product\n"+
			"2,fast shipping\n")

	q, err := ParseResponseFileWithOptions(path, ResponseParseOptions{ResponseColumn: "#2"})
	if err != nil {
		t.Fatalf("index override: %v", err)
	}
	if len(q.Responses) != 2 || q.Responses[0] != "great product" {
		t.Fatalf("responses = %v", q.Responses)
	}

	if _, err := ParseResponseFileWithOptions(path, ResponseParseOptions{ResponseColumn: "#9"}); err == nil {
		t.Fatal("out-of-range index should fail")
	}
	if _, err := ParseResponseFileWithOptions(path, ResponseParseOptions{ResponseColumn: "#0"}); err == nil {
		t.Fatal("indices are 1-based, #0 should fail")
	}
	if _, err := ParseResponseFileWithOptions(path, ResponseParseOptions{ResponseColumn: "missing"}); err == nil {
		t.Fatal("unknown column name should fail")
	}
}

func TestParseResponseFileTSVAndBOM(t *testing.T) {
	path := writeSurveyFile(t, "survey.tsv",
		"\ufeffanswer\tscore\n"+
			"great product\t5\n"+
			"fast shipping\t4\n")

	q, err := ParseResponseFile(path)
	if err != nil {
		t.Fatalf("ParseResponseFile tsv: %v", err)
	}
	if q.Label != "answer" {
		t.Fatalf("BOM not stripped from header: %q", q.Label)
	}
	if len(q.Responses) != 2 {
		t.Fatalf("responses = %v", q.Responses)
	}
}

func TestParseResponseFilePlainText(t *testing.T) {
	path := writeSurveyFile(t, "answers.txt",
		"great product\n\n  fast shipping  \n")

	q, err := ParseResponseFile(path)
	if err != nil {
		t.Fatalf("ParseResponseFile txt: %v", err)
	}
	if q.Label != "" {
		t.Fatalf("plain text should carry no label, got %q", q.Label)
	}
	if len(q.Responses) != 2 || q.Responses[1] != "fast shipping" {
		t.Fatalf("responses = %v", q.Responses)
	}
}

func TestReadResponseFileMetadata(t *testing.T) {
	path := writeSurveyFile(t, "survey.csv",
		"question,answer,score\nQ1,great,5\n")

	meta, err := ReadResponseFileMetadata(path)
	if err != nil {
		t.Fatalf("ReadResponseFileMetadata: %v", err)
	}
	if len(meta.Columns) != 3 || meta.Columns[1] != "answer" {
		t.Fatalf("columns = %v", meta.Columns)
	}
	if meta.Suggested.ResponseColumn != "answer" {
		t.Fatalf("suggested response column = %q", meta.Suggested.ResponseColumn)
	}
	if meta.Suggested.LabelColumn != "question" {
		t.Fatalf("suggested label column = %q", meta.Suggested.LabelColumn)
	}

	txt := writeSurveyFile(t, "answers.txt", "anything\n")
	meta, err = ReadResponseFileMetadata(txt)
	if err != nil {
		t.Fatalf("metadata for txt: %v", err)
	}
	if len(meta.Columns) != 0 {
		t.Fatalf("plain text should have no columns: %v", meta.Columns)
	}
}

func TestSetColumnCandidates(t *testing.T) {
	defer SetColumnCandidates(ColumnCandidates{})

	SetColumnCandidates(ColumnCandidates{Response: []string{"opinion"}})
	path := writeSurveyFile(t, "survey.csv",
		"opinion\ngreat product\n")
	q, err := ParseResponseFile(path)
	if err != nil {
		t.Fatalf("ParseResponseFile: %v", err)
	}
	if q.Label != "opinion" || len(q.Responses) != 1 {
		t.Fatalf("custom candidate ignored: %+v", q)
	}
}
