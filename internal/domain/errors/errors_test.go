package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_HTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{kind: KindNotFound, want: http.StatusNotFound},
		{kind: KindInvalidInput, want: http.StatusBadRequest},
		{kind: KindConflict, want: http.StatusConflict},
		{kind: KindIOFailure, want: http.StatusInternalServerError},
		{kind: KindInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.HTTPStatus())
		})
	}
}

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrProductNotFound.WithDetails("id 42")

	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.NotErrorIs(t, err, ErrOrderNotFound)
	assert.Equal(t, "Product not found: id 42", err.Error())
	assert.Equal(t, "id 42", err.Details())
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("failed to get order: %w", ErrOrderNotFound)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, KindInvalidInput, KindOf(ErrInvalidDate.WrapMessage("parse")))
	assert.Equal(t, KindInternal, KindOf(fmt.Errorf("boom")))
	assert.Equal(t, KindInternal, KindOf(NewDatabaseExecuteError(fmt.Errorf("conn reset"), "")))
}
