package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindTruncated,
				Source: "shaders/blit.spv",
				Detail: "instruction runs past end of input",
			},
			contains: []string{"[parse]", "truncated", "shaders/blit.spv", "past end"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseConvert,
				Kind:  KindTypeCycle,
			},
			contains: []string{"[convert]", "type_cycle"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseWrite,
				Kind:   KindIO,
				Detail: "create output",
				Cause:  errors.New("permission denied"),
			},
			contains: []string{"[write]", "io", "create output", "caused by", "permission denied"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseRead,
		Kind:  KindIO,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find cause in chain")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidEnum,
		Detail: "storage class 77",
	}

	if !err.Is(&Error{Phase: PhaseParse, Kind: KindInvalidEnum}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindInvalidEnum}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseParse, Kind: KindTruncated}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseParse, Kind: KindInvalidEnum}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestError_WithSource(t *testing.T) {
	err := TypeCycle(7)
	attributed := err.WithSource("a.spv")
	if attributed.Source != "a.spv" {
		t.Errorf("Source = %q, want a.spv", attributed.Source)
	}
	if err.Source != "" {
		t.Error("WithSource must not mutate the receiver")
	}
	if again := attributed.WithSource("b.spv"); again.Source != "a.spv" {
		t.Errorf("existing source overwritten: %q", again.Source)
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDecode, KindSerialization).
		Source("out.json").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "object", "array").
		Build()

	if err.Phase != PhaseDecode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDecode)
	}
	if err.Kind != KindSerialization {
		t.Errorf("Kind = %v, want %v", err.Kind, KindSerialization)
	}
	if err.Source != "out.json" {
		t.Errorf("Source = %v, want out.json", err.Source)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected object, got array" {
		t.Errorf("Detail = %v", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("StreamParse", func(t *testing.T) {
		err := StreamParse(KindTruncated, 0x14, "short instruction", nil)
		if err.Phase != PhaseParse || err.Kind != KindTruncated {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
		if !strings.Contains(err.Detail, "0x14") {
			t.Errorf("Detail = %q, should contain offset", err.Detail)
		}
	})

	t.Run("InvalidEnum", func(t *testing.T) {
		err := InvalidEnum(8, 99, "StorageClass")
		if err.Kind != KindInvalidEnum {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidEnum)
		}
		if err.Value != uint32(99) {
			t.Errorf("Value = %v, want 99", err.Value)
		}
	})

	t.Run("IO", func(t *testing.T) {
		err := IO(PhaseRead, "in.spv", errors.New("no such file"))
		if err.Source != "in.spv" || err.Kind != KindIO {
			t.Errorf("unexpected %+v", err)
		}
	})

	t.Run("ShortWrite", func(t *testing.T) {
		err := ShortWrite("out.json", 3, 10)
		if err.Phase != PhaseWrite || err.Kind != KindShortWrite {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
		if !strings.Contains(err.Detail, "3 of 10") {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("ShortRead", func(t *testing.T) {
		err := ShortRead("in.spv", 4, 20)
		if err.Phase != PhaseRead || err.Kind != KindShortRead {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
	})

	t.Run("Serialization", func(t *testing.T) {
		err := Serialization(PhaseEncode, "yaml", errors.New("bad"))
		if err.Kind != KindSerialization || err.Detail != "yaml" {
			t.Errorf("unexpected %+v", err)
		}
	})

	t.Run("TypeCycle", func(t *testing.T) {
		err := TypeCycle(12)
		if err.Phase != PhaseConvert || err.Kind != KindTypeCycle {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
		if !strings.Contains(err.Error(), "%12") {
			t.Errorf("message %q should name the id", err.Error())
		}
	})
	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("underlying")
		err := Wrap(PhaseConvert, KindInvalidData, cause, "assembling")
		if err.Phase != PhaseConvert || err.Kind != KindInvalidData || err.Detail != "assembling" {
			t.Errorf("unexpected %+v", err)
		}
		if !errors.Is(err, cause) {
			t.Error("Wrap should keep the cause in the chain")
		}
	})
}
