package payload_test

import (
	"testing"

	"github.com/jrazmi/join/bridge/scaffolding/payload"
	"github.com/jrazmi/join/sdk/validation"
)

func TestPK(t *testing.T) {
	tests := []struct {
		name string
		raw  payload.Field
		want int64
		msg  string
	}{
		{name: "number", raw: payload.Field(`5`), want: 5},
		{name: "numeric string", raw: payload.Field(`"12"`), want: 12},
		{name: "word", raw: payload.Field(`"abc"`), msg: "Incorrect type. Expected pk value, received str."},
		{name: "bool", raw: payload.Field(`true`), msg: "Incorrect type. Expected pk value, received bool."},
		{name: "null", raw: payload.Field(`null`), msg: payload.MsgNull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := validation.FieldErrors{}
			got := payload.PK(fe, "task", tt.raw)

			if tt.msg != "" {
				if got != nil || len(fe["task"]) != 1 || fe["task"][0] != tt.msg {
					t.Fatalf("got %v, errors %v, want %q", got, fe, tt.msg)
				}
				return
			}
			if got == nil || *got != tt.want || len(fe) != 0 {
				t.Fatalf("got %v, errors %v, want %d", got, fe, tt.want)
			}
		})
	}
}

func TestBool(t *testing.T) {
	for raw, want := range map[string]bool{`true`: true, `false`: false, `"true"`: true, `"False"`: false, `"1"`: true, `0`: false} {
		fe := validation.FieldErrors{}
		got := payload.Bool(fe, "isDone", payload.Field(raw))
		if got == nil || *got != want {
			t.Errorf("Bool(%s) = %v, want %v (%v)", raw, got, want, fe)
		}
	}

	fe := validation.FieldErrors{}
	if got := payload.Bool(fe, "isDone", payload.Field(`"maybe"`)); got != nil || fe["isDone"][0] != payload.MsgInvalidBool {
		t.Fatalf("got %v, errors %v", got, fe)
	}
}

func TestAbsentFieldsDecodeToNil(t *testing.T) {
	fe := validation.FieldErrors{}
	if payload.String(fe, "title", nil) != nil || payload.PK(fe, "task", nil) != nil ||
		payload.Bool(fe, "isDone", nil) != nil || payload.Date(fe, "due_date", nil) != nil {
		t.Fatal("absent field decoded to a value")
	}
	if len(fe) != 0 {
		t.Fatalf("unexpected errors %v", fe)
	}
}

func TestStringAcceptsNumbers(t *testing.T) {
	fe := validation.FieldErrors{}
	got := payload.String(fe, "title", payload.Field(`42`))
	if got == nil || *got != "42" {
		t.Fatalf("got %v, errors %v", got, fe)
	}
}

func TestDate(t *testing.T) {
	fe := validation.FieldErrors{}
	got := payload.Date(fe, "due_date", payload.Field(`"2024-03-01"`))
	if got == nil || validation.FormatDate(*got) != "2024-03-01" {
		t.Fatalf("got %v, errors %v", got, fe)
	}

	fe = validation.FieldErrors{}
	if payload.Date(fe, "due_date", payload.Field(`"01.03.2024"`)); fe["due_date"][0] != validation.MsgDateFormat {
		t.Fatalf("errors %v", fe)
	}
}
