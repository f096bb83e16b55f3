package lead

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		form  FormState
		field string
	}{
		{"valid", FormState{Email: "jane@example.com", Phone: "(813) 555-0100"}, ""},
		{"valid plus address", FormState{Email: "jane+tips@mail.example.co", Phone: "8135550100"}, ""},
		{"tel is not pattern checked", FormState{Email: "a@b", Phone: "call me"}, ""},
		{"empty email", FormState{Email: "", Phone: "8135550100"}, "email"},
		{"email without at", FormState{Email: "jane.example.com", Phone: "8135550100"}, "email"},
		{"email with space", FormState{Email: "jane @example.com", Phone: "8135550100"}, "email"},
		{"email trailing dot domain", FormState{Email: "jane@example.", Phone: "8135550100"}, "email"},
		{"empty phone", FormState{Email: "jane@example.com"}, "phone"},
		{"phone with newline", FormState{Email: "jane@example.com", Phone: "813\n555"}, "phone"},
		{"both empty reports email first", FormState{}, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.form)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.field, ve.Field)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestEmpty(t *testing.T) {
	assert.True(t, FormState{}.Empty())
	assert.False(t, FormState{Email: "x"}.Empty())
	assert.False(t, FormState{Phone: "1"}.Empty())
}

func TestNormalize(t *testing.T) {
	f := Normalize(FormState{Email: "  jane@example.com ", Phone: " 813 "})
	assert.Equal(t, "jane@example.com", f.Email)
	assert.Equal(t, " 813 ", f.Phone)
}

func TestNormalizeStripsLineBreaks(t *testing.T) {
	f := Normalize(FormState{Email: "jane@exa\r\nmple.com\n", Phone: "813\n5550100"})
	assert.Equal(t, "jane@example.com", f.Email)
	assert.Equal(t, "8135550100", f.Phone)
	assert.NoError(t, Validate(f))
}

func TestNormalizeKeepsNonASCIISpace(t *testing.T) {
	// U+00A0 is not ASCII whitespace, so the browser keeps it and rejects the value
	f := Normalize(FormState{Email: "\u00a0jane@example.com", Phone: "813"})
	assert.Equal(t, "\u00a0jane@example.com", f.Email)
	assert.Error(t, Validate(f))
}

func TestPlaceholderSubmit(t *testing.T) {
	r1, err := Placeholder{}.Submit(context.Background(), FormState{Email: "jane@example.com", Phone: "8135550100"})
	require.NoError(t, err)
	assert.Equal(t, PlaceholderNotice, r1.Notice)
	assert.NotEmpty(t, r1.ID)

	r2, err := Placeholder{}.Submit(context.Background(), FormState{Email: "jane@example.com", Phone: "8135550100"})
	require.NoError(t, err)
	assert.NotEqual(t, r1.ID, r2.ID)
}

func TestPlaceholderSubmitCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Placeholder{}.Submit(ctx, FormState{Email: "jane@example.com", Phone: "1"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMasking(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("jane@example.com"))
	assert.Equal(t, "***", MaskEmail("@example.com"))
	assert.Equal(t, "***", MaskEmail("nobody"))
	assert.Equal(t, "***00", MaskPhone("(813) 555-0100"))
	assert.Equal(t, "***", MaskPhone("1"))
}
