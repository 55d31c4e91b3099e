package tracklist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ikirmitz/mixcloud-backup/internal/model"
)

// Extension is the sidecar file extension for rendered documents.
const Extension = ".lrc"

// FormatTimestamp renders seconds as an LRC timestamp tag body,
// "MM:SS.CC". The fractional part is truncated rather than rounded so
// that timestamps stay monotonic with the input even under float
// imprecision. Minutes grow past two digits for files longer than 99
// minutes instead of wrapping.
//
// Example:
//
//	FormatTimestamp(65.5)   // "01:05.50"
//	FormatTimestamp(6000.0) // "100:00.00"
func FormatTimestamp(seconds float64) string {
	total := int(seconds * 100)
	m := total / 6000
	s := (total % 6000) / 100
	c := total % 100
	return fmt.Sprintf("%02d:%02d.%02d", m, s, c)
}

// Render serializes a document into LRC text: an artist header line,
// a title header line, a blank separator, then one timestamped line
// per entry in document order. The output is byte-for-byte stable for
// the same input.
func Render(doc model.Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[ar:%s]\n", doc.Owner)
	fmt.Fprintf(&b, "[ti:%s]\n", doc.Title)
	b.WriteString("\n")

	for _, e := range doc.Entries {
		fmt.Fprintf(&b, "[%s] %s\n", FormatTimestamp(e.Seconds), e.Text)
	}

	return b.String()
}

// entryLine matches one timestamped LRC line, capturing minutes,
// seconds, centiseconds and the text remainder.
var entryLine = regexp.MustCompile(`^\[(\d{2,}):(\d{2})\.(\d{2})\] ?(.*)$`)

// Parse reads LRC text back into a document. Header tags [ar:] and
// [ti:] populate the owner and title, unrecognized lines are ignored.
// Entry order follows line order.
func Parse(text string) model.Document {
	var doc model.Document

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")

		if v, ok := headerValue(line, "ar"); ok {
			doc.Owner = v
			continue
		}
		if v, ok := headerValue(line, "ti"); ok {
			doc.Title = v
			continue
		}

		m := entryLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		minutes, _ := strconv.Atoi(m[1])
		secs, _ := strconv.Atoi(m[2])
		centis, _ := strconv.Atoi(m[3])

		doc.Entries = append(doc.Entries, model.Entry{
			Seconds: float64(minutes*60+secs) + float64(centis)/100,
			Text:    m[4],
		})
	}

	return doc
}

// headerValue extracts the value of a "[tag:value]" header line.
func headerValue(line, tag string) (string, bool) {
	prefix := "[" + tag + ":"
	if strings.HasPrefix(line, prefix) && strings.HasSuffix(line, "]") {
		return line[len(prefix) : len(line)-1], true
	}
	return "", false
}
