// Package render writes most-active cookie reports for people and programs.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/valyala/fastjson"
)

// Format names accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Report is the outcome of one most-active query.
type Report struct {
	File     string
	Date     string
	MaxCount int
	Cookies  []string
}

var arenas fastjson.ArenaPool

// Write renders report in the named format.
func Write(w io.Writer, format string, report Report) error {
	switch strings.ToLower(format) {
	case FormatText, "":
		return Text(w, report)
	case FormatJSON:
		return JSON(w, report)
	default:
		return fmt.Errorf("unsupported output format %q: must be %q or %q", format, FormatText, FormatJSON)
	}
}

// ValidFormat reports whether Write accepts format.
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// Text writes each cookie on its own line. Nothing is written for an empty report.
func Text(w io.Writer, report Report) error {
	bw := bufio.NewWriter(w)
	for _, cookie := range report.Cookies {
		bw.WriteString(cookie)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// JSON writes the report as a single JSON object followed by a newline:
//
//	{"file":"cookies.csv","date":"2021-12-09","max_count":2,"cookies":["cookie1"]}
func JSON(w io.Writer, report Report) error {
	_, err := w.Write(AppendJSON(nil, report))
	return err
}

// AppendJSON appends the JSON form of report and a newline to dst.
func AppendJSON(dst []byte, report Report) []byte {
	a := arenas.Get()
	defer arenas.Put(a)

	cookies := a.NewArray()
	for i, cookie := range report.Cookies {
		cookies.SetArrayItem(i, a.NewString(cookie))
	}

	obj := a.NewObject()
	obj.Set("file", a.NewString(report.File))
	obj.Set("date", a.NewString(report.Date))
	obj.Set("max_count", a.NewNumberInt(report.MaxCount))
	obj.Set("cookies", cookies)

	dst = obj.MarshalTo(dst)
	return append(dst, '\n')
}
