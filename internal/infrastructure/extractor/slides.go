package extractor

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pvolkov/briefly/internal/core/domain"
)

var slidePartRe = regexp.MustCompile(`^ppt/slides/slide([0-9]+)\.xml$`)

// extractSlides walks the OOXML archive and concatenates the text runs of
// every slide in deck order.
func extractSlides(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		if _, statErr := os.Stat(path); statErr != nil {
			return "", domain.WrapError(domain.ErrExtractionIO, "open slides", statErr)
		}
		return "", domain.WrapError(domain.ErrCorruptFile, "open slides archive", err)
	}
	defer archive.Close()

	type slidePart struct {
		number int
		file   *zip.File
	}
	var parts []slidePart
	for _, file := range archive.File {
		m := slidePartRe.FindStringSubmatch(file.Name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		parts = append(parts, slidePart{number: n, file: file})
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].number < parts[j].number })

	var b strings.Builder
	for _, part := range parts {
		text, err := slideText(part.file)
		if err != nil {
			return "", domain.WrapError(domain.ErrCorruptFile, "parse slide xml", err)
		}
		if text != "" {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(text)
		}
	}
	return b.String(), nil
}

// slideText collects character data inside <a:t> elements, the DrawingML
// text runs.
func slideText(file *zip.File) (string, error) {
	rc, err := file.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	var b strings.Builder
	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				depth++
			}
		case xml.EndElement:
			if t.Name.Local == "t" && depth > 0 {
				depth--
			}
		case xml.CharData:
			if depth > 0 {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
