package spantext

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

var unixEpoch = time.Unix(0, 0)

// Format renders one finished span with its resource as a multi-line text
// block. The output is deterministic: the same span and resource always
// produce byte-identical text. Section headers are always written; sections
// without entries have no lines after the header. Names and values are
// written as-is; embedded quotes or newlines are not escaped.
//
// Rendering fails with a *TimeError when the span's start or end time is
// before the Unix epoch. No partial output is returned on failure.
func Format(span sdktrace.ReadOnlySpan, res *resource.Resource) ([]byte, error) {
	start, err := unixSeconds("start", span.StartTime())
	if err != nil {
		return nil, err
	}
	end, err := unixSeconds("end", span.EndTime())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Span: %q\n", span.Name())

	status := span.Status()
	switch status.Code {
	case codes.Ok:
		buf.WriteString("- Status: Ok\n")
	case codes.Error:
		buf.WriteString("- Status: Error\n")
		fmt.Fprintf(&buf, "- Error: %s\n", status.Description)
	}

	fmt.Fprintf(&buf, "- Start: %d\n", start)
	fmt.Fprintf(&buf, "- End: %d\n", end)

	buf.WriteString("- Resource:\n")
	iter := res.Iter()
	for iter.Next() {
		attr := iter.Attribute()
		fmt.Fprintf(&buf, "  - %s: %s\n", attr.Key, attr.Value.Emit())
	}

	buf.WriteString("- Attributes:\n")
	for _, attr := range span.Attributes() {
		fmt.Fprintf(&buf, "  - %s: %s\n", attr.Key, attr.Value.Emit())
	}

	buf.WriteString("- Events:\n")
	for _, event := range span.Events() {
		writeEvent(&buf, event)
	}

	buf.WriteString("- Links:\n")
	for _, link := range span.Links() {
		fmt.Fprintf(&buf, "  - %+v\n", link)
	}

	return buf.Bytes(), nil
}

// unixSeconds converts a timestamp to whole seconds since the Unix epoch.
func unixSeconds(field string, t time.Time) (int64, error) {
	if t.Before(unixEpoch) {
		return 0, &TimeError{Field: field, Time: t}
	}
	return t.Unix(), nil
}

func writeEvent(buf *bytes.Buffer, event sdktrace.Event) {
	fmt.Fprintf(buf, "  - %q", event.Name)
	if len(event.Attributes) > 0 {
		pairs := make([]string, len(event.Attributes))
		for i, attr := range event.Attributes {
			pairs[i] = fmt.Sprintf("%s=%s", attr.Key, attr.Value.Emit())
		}
		fmt.Fprintf(buf, " {%s}", strings.Join(pairs, ", "))
	}
	buf.WriteByte('\n')
}
