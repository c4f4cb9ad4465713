package extractor

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/pvolkov/briefly/internal/core/domain"
)

type runnerFake struct {
	name   string
	args   []string
	stdout string
	stderr string
	err    error
}

func (f *runnerFake) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.name = name
	f.args = args
	return []byte(f.stdout), []byte(f.stderr), f.err
}

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestExtractPlaintextFallback(t *testing.T) {
	path := writeTempFile(t, "notes.txt", []byte("plain  content\nwith lines"))
	d := NewDispatcher(Config{})

	text, err := d.Extract(context.Background(), path, domain.ExtractOptions{})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if text != "plain  content\nwith lines" {
		t.Fatalf("expected verbatim content, got %q", text)
	}
}

func TestExtractPlaintextRejectsBinaryContent(t *testing.T) {
	path := writeTempFile(t, "blob.bin", []byte{0xff, 0xfe, 0x00, 0x80})
	d := NewDispatcher(Config{})

	_, err := d.Extract(context.Background(), path, domain.ExtractOptions{})
	if !domain.IsKind(err, domain.ErrCorruptFile) {
		t.Fatalf("expected corrupt file error, got %v", err)
	}
}

func TestExtractPlaintextMissingFileIsIOError(t *testing.T) {
	d := NewDispatcher(Config{})

	_, err := d.Extract(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), domain.ExtractOptions{})
	if !domain.IsKind(err, domain.ErrExtractionIO) {
		t.Fatalf("expected io error, got %v", err)
	}
}

func TestExtractImagePassesOCRLanguage(t *testing.T) {
	path := writeTempFile(t, "scan.png", []byte("fake png"))
	runner := &runnerFake{stdout: "recognized text\n"}
	d := NewDispatcherWithRunner(Config{TesseractBin: "tesseract"}, runner)

	text, err := d.Extract(context.Background(), path, domain.ExtractOptions{OCRLanguage: "deu"})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if text != "recognized text\n" {
		t.Fatalf("expected runner stdout, got %q", text)
	}
	if runner.name != "tesseract" {
		t.Fatalf("expected tesseract command, got %s", runner.name)
	}
	want := []string{path, "stdout", "-l", "deu"}
	if len(runner.args) != len(want) {
		t.Fatalf("expected args %v, got %v", want, runner.args)
	}
	for i := range want {
		if runner.args[i] != want[i] {
			t.Fatalf("expected args %v, got %v", want, runner.args)
		}
	}
}

func TestExtractImageDefaultsOCRLanguage(t *testing.T) {
	path := writeTempFile(t, "scan.png", []byte("fake png"))
	runner := &runnerFake{stdout: "ok"}
	d := NewDispatcherWithRunner(Config{}, runner)

	if _, err := d.Extract(context.Background(), path, domain.ExtractOptions{}); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got := runner.args[len(runner.args)-1]; got != "eng" {
		t.Fatalf("expected default ocr language eng, got %s", got)
	}
}

func TestExtractImageMissingToolIsIOError(t *testing.T) {
	path := writeTempFile(t, "scan.png", []byte("fake png"))
	runner := &runnerFake{err: exec.ErrNotFound}
	d := NewDispatcherWithRunner(Config{}, runner)

	_, err := d.Extract(context.Background(), path, domain.ExtractOptions{})
	if !domain.IsKind(err, domain.ErrExtractionIO) {
		t.Fatalf("expected io error for missing tool, got %v", err)
	}
}

func TestExtractImageFailureCarriesStderr(t *testing.T) {
	path := writeTempFile(t, "scan.png", []byte("fake png"))
	runner := &runnerFake{err: errors.New("exit status 1"), stderr: "unsupported image depth"}
	d := NewDispatcherWithRunner(Config{}, runner)

	_, err := d.Extract(context.Background(), path, domain.ExtractOptions{})
	if !domain.IsKind(err, domain.ErrCorruptFile) {
		t.Fatalf("expected corrupt file error, got %v", err)
	}
	if !strings.Contains(err.Error(), "unsupported image depth") {
		t.Fatalf("expected stderr in error, got %v", err)
	}
}

func TestExtractAudioRunsTranscriber(t *testing.T) {
	path := writeTempFile(t, "call.wav", []byte("fake wav"))
	runner := &runnerFake{stdout: "hello from the call"}
	d := NewDispatcherWithRunner(Config{TranscriberBin: "whisper-cli"}, runner)

	text, err := d.Extract(context.Background(), path, domain.ExtractOptions{})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if text != "hello from the call" {
		t.Fatalf("expected transcript, got %q", text)
	}
	if runner.name != "whisper-cli" {
		t.Fatalf("expected whisper-cli command, got %s", runner.name)
	}
	if len(runner.args) != 1 || runner.args[0] != path {
		t.Fatalf("expected path as only arg, got %v", runner.args)
	}
}

func TestExtractSlidesReadsDeckInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	zw := zip.NewWriter(f)
	slides := map[string]string{
		"ppt/slides/slide2.xml": `<p:sld xmlns:a="urn:a"><a:t>second slide</a:t></p:sld>`,
		"ppt/slides/slide1.xml": `<p:sld xmlns:a="urn:a"><a:t>first</a:t><a:t>slide</a:t></p:sld>`,
		"ppt/notes/note1.xml":   `<p:note><a:t>ignored</a:t></p:note>`,
	}
	for name, content := range slides {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry: %v", err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close fixture: %v", err)
	}

	d := NewDispatcher(Config{})
	text, err := d.Extract(context.Background(), path, domain.ExtractOptions{})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if text != "first slide\nsecond slide" {
		t.Fatalf("expected slides in deck order, got %q", text)
	}
}

func TestExtractSlidesRejectsNonArchive(t *testing.T) {
	path := writeTempFile(t, "deck.pptx", []byte("not a zip"))
	d := NewDispatcher(Config{})

	_, err := d.Extract(context.Background(), path, domain.ExtractOptions{})
	if !domain.IsKind(err, domain.ErrCorruptFile) {
		t.Fatalf("expected corrupt file error, got %v", err)
	}
}

func TestExtractSpreadsheetJoinsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbers.xlsx")
	book := excelize.NewFile()
	if err := book.SetSheetRow("Sheet1", "A1", &[]any{"item", "count"}); err != nil {
		t.Fatalf("set header row: %v", err)
	}
	if err := book.SetSheetRow("Sheet1", "A2", &[]any{"widgets", 42}); err != nil {
		t.Fatalf("set data row: %v", err)
	}
	if err := book.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}

	d := NewDispatcher(Config{})
	text, err := d.Extract(context.Background(), path, domain.ExtractOptions{})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if text != "item count\nwidgets 42" {
		t.Fatalf("unexpected spreadsheet text: %q", text)
	}
}

func TestExtractWebpageStripsMarkup(t *testing.T) {
	path := writeTempFile(t, "page.html", []byte("<html><body><h1>Title</h1><p>Body text.</p></body></html>"))
	d := NewDispatcher(Config{})

	text, err := d.Extract(context.Background(), path, domain.ExtractOptions{})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !strings.Contains(text, "Title") || !strings.Contains(text, "Body text.") {
		t.Fatalf("expected readable text, got %q", text)
	}
	if strings.Contains(text, "<p>") {
		t.Fatalf("expected markup stripped, got %q", text)
	}
}

func TestExtractReportsOutcome(t *testing.T) {
	path := writeTempFile(t, "notes.txt", []byte("content"))
	d := NewDispatcher(Config{})

	var gotFormat, gotStatus string
	d.Observe = func(format, status string) {
		gotFormat, gotStatus = format, status
	}

	if _, err := d.Extract(context.Background(), path, domain.ExtractOptions{}); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if gotFormat != "plaintext" || gotStatus != "ok" {
		t.Fatalf("expected plaintext/ok, got %s/%s", gotFormat, gotStatus)
	}

	_, _ = d.Extract(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), domain.ExtractOptions{})
	if gotStatus != "error" {
		t.Fatalf("expected error status recorded, got %s", gotStatus)
	}
}
