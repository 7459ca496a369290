// internal/domain/models/flextime.go
package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// timestampLayouts are the string shapes that appear in documents written by
// older clients. Tried in order; first match wins.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FlexTime is a timestamp field that tolerates the three representations
// found in the collections: a native BSON datetime, a BSON timestamp, or a
// string (RFC3339 or a date-only form). Different write paths produced
// different shapes over time; everything downstream (sorting, the 7-day
// dashboard deltas, relative-time display) assumes one canonical form, so the
// coercion happens here at the decode boundary and nowhere else.
//
// The zero value renders as "-" and marshals as BSON null.
type FlexTime struct {
	time.Time
}

// NewFlexTime wraps a time.Time, normalized to UTC.
func NewFlexTime(t time.Time) FlexTime {
	return FlexTime{Time: t.UTC()}
}

// Now returns the current time as a FlexTime.
func Now() FlexTime {
	return NewFlexTime(time.Now())
}

// ParseTimestamp coerces a string timestamp into a time.Time.
// An empty string is treated as an absent value, not an error.
func ParseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (ft *FlexTime) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.DateTime:
		ft.Time = rv.Time().UTC()
	case bsontype.String:
		s, ok := rv.StringValueOK()
		if !ok {
			return fmt.Errorf("malformed string timestamp")
		}
		parsed, err := ParseTimestamp(s)
		if err != nil {
			return err
		}
		ft.Time = parsed
	case bsontype.Timestamp:
		sec, _, ok := rv.TimestampOK()
		if !ok {
			return fmt.Errorf("malformed bson timestamp")
		}
		ft.Time = time.Unix(int64(sec), 0).UTC()
	case bsontype.Null, bsontype.Undefined:
		ft.Time = time.Time{}
	default:
		return fmt.Errorf("cannot decode %s as a timestamp", t)
	}
	return nil
}

// MarshalBSONValue implements bson.ValueMarshaler. Absent values are written
// as null so a round trip never invents a timestamp.
func (ft FlexTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if ft.Time.IsZero() {
		return bsontype.Null, nil, nil
	}
	return bson.MarshalValue(ft.Time.UTC())
}

// String returns the canonical RFC3339 form, or "" when absent.
func (ft FlexTime) String() string {
	if ft.Time.IsZero() {
		return ""
	}
	return ft.Time.UTC().Format(time.RFC3339)
}

// Display returns a short human form for tables, or "-" when absent.
func (ft FlexTime) Display() string {
	if ft.Time.IsZero() {
		return "-"
	}
	return ft.Time.UTC().Format("02/01/2006 15:04")
}
