package models

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func mustMarshalValue(t *testing.T, v any) (bsontype.Type, []byte) {
	t.Helper()
	bt, data, err := bson.MarshalValue(v)
	if err != nil {
		t.Fatalf("bson.MarshalValue(%v): %v", v, err)
	}
	return bt, data
}

func TestFlexTimeUnmarshal_DateTime(t *testing.T) {
	want := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	bt, data := mustMarshalValue(t, want)

	var ft FlexTime
	if err := ft.UnmarshalBSONValue(bt, data); err != nil {
		t.Fatalf("UnmarshalBSONValue: %v", err)
	}
	if !ft.Time.Equal(want) {
		t.Errorf("got %v, want %v", ft.Time, want)
	}
}

func TestFlexTimeUnmarshal_String(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"rfc3339", "2024-05-01T10:30:00Z", time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)},
		{"rfc3339 with offset", "2024-05-01T17:30:00+07:00", time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)},
		{"no zone", "2024-05-01T10:30:00", time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)},
		{"date only", "2024-05-01", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"empty means absent", "", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bt, data := mustMarshalValue(t, tt.value)
			var ft FlexTime
			if err := ft.UnmarshalBSONValue(bt, data); err != nil {
				t.Fatalf("UnmarshalBSONValue(%q): %v", tt.value, err)
			}
			if !ft.Time.Equal(tt.want) {
				t.Errorf("got %v, want %v", ft.Time, tt.want)
			}
		})
	}
}

func TestFlexTimeUnmarshal_StringMalformed(t *testing.T) {
	bt, data := mustMarshalValue(t, "next tuesday")
	var ft FlexTime
	if err := ft.UnmarshalBSONValue(bt, data); err == nil {
		t.Error("expected an error for an unrecognized timestamp string")
	}
}

func TestFlexTimeUnmarshal_Timestamp(t *testing.T) {
	want := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	bt, data := mustMarshalValue(t, primitive.Timestamp{T: uint32(want.Unix())})

	var ft FlexTime
	if err := ft.UnmarshalBSONValue(bt, data); err != nil {
		t.Fatalf("UnmarshalBSONValue: %v", err)
	}
	if !ft.Time.Equal(want) {
		t.Errorf("got %v, want %v", ft.Time, want)
	}
}

func TestFlexTimeUnmarshal_Null(t *testing.T) {
	var ft FlexTime
	if err := ft.UnmarshalBSONValue(bsontype.Null, nil); err != nil {
		t.Fatalf("UnmarshalBSONValue(null): %v", err)
	}
	if !ft.Time.IsZero() {
		t.Errorf("null should decode to the zero time, got %v", ft.Time)
	}
}

func TestFlexTimeRoundTrip(t *testing.T) {
	type doc struct {
		CreatedAt FlexTime `bson:"created_at"`
	}

	want := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	raw, err := bson.Marshal(doc{CreatedAt: NewFlexTime(want)})
	if err != nil {
		t.Fatalf("bson.Marshal: %v", err)
	}

	var got doc
	if err := bson.Unmarshal(raw, &got); err != nil {
		t.Fatalf("bson.Unmarshal: %v", err)
	}
	if !got.CreatedAt.Time.Equal(want) {
		t.Errorf("round trip: got %v, want %v", got.CreatedAt.Time, want)
	}
}

func TestFlexTimeStrings(t *testing.T) {
	var zero FlexTime
	if zero.String() != "" {
		t.Errorf("zero String() = %q, want \"\"", zero.String())
	}
	if zero.Display() != "-" {
		t.Errorf("zero Display() = %q, want \"-\"", zero.Display())
	}

	ft := NewFlexTime(time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC))
	if ft.String() != "2024-05-01T10:30:00Z" {
		t.Errorf("String() = %q", ft.String())
	}
	if ft.Display() != "01/05/2024 10:30" {
		t.Errorf("Display() = %q", ft.Display())
	}
}

func TestInferMaterialType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"syllabus.pdf", MaterialPDF},
		{"notes.DOCX", MaterialDoc},
		{"essay.doc", MaterialDoc},
		{"photo.JPG", MaterialImage},
		{"scan.png", MaterialImage},
		{"archive.zip", MaterialOther},
		{"noextension", MaterialOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferMaterialType(tt.name); got != tt.want {
				t.Errorf("InferMaterialType(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestMaterialKind(t *testing.T) {
	m := Material{Name: "scan.png", URL: "materials/abc", Type: "pdf"}
	if m.Kind() != MaterialPDF {
		t.Errorf("explicit type should win, got %q", m.Kind())
	}

	m = Material{Name: "scan.png", URL: "materials/abc"}
	if m.Kind() != MaterialImage {
		t.Errorf("inferred from name: got %q", m.Kind())
	}

	m = Material{URL: "materials/abc.pdf"}
	if m.Kind() != MaterialPDF {
		t.Errorf("inferred from key: got %q", m.Kind())
	}
}
