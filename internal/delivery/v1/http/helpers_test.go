package http

import (
	"net/http"
	"testing"

	"github.com/easy-order/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{name: "integer", input: "600", want: 60000},
		{name: "two decimals", input: "599.99", want: 59999},
		{name: "one decimal", input: "19.9", want: 1990},
		{name: "zero is parseable", input: "0", want: 0},
		{name: "empty", input: "", wantErr: e.ErrInvalidPrice},
		{name: "not a number", input: "abc", wantErr: e.ErrInvalidPrice},
		{name: "negative", input: "-1", wantErr: e.ErrInvalidPrice},
		{name: "too many decimals", input: "12.345", wantErr: e.ErrPricePrecision},
		{name: "over limit", input: "1000000001", wantErr: e.ErrInvalidPrice},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parsePriceToCents(tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "599.99", formatPrice(59999))
	assert.Equal(t, "600.00", formatPrice(60000))
	assert.Equal(t, "3.00", formatPrice(300))
	assert.Equal(t, "0.00", formatPrice(0))
}

func TestParsePriceFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"199.90", "0.01", "45.90"} {
		cents, err := parsePriceToCents(s)
		require.NoError(t, err)
		assert.Equal(t, s, formatPrice(cents))
	}
}

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
	}{
		{e.ErrPriceMustBePositive, http.StatusBadRequest},
		{e.ErrProductNameRequired, http.StatusBadRequest},
		{e.ErrUnknownCategory, http.StatusBadRequest},
		{e.ErrOrderItemsRequired, http.StatusBadRequest},
		{e.ErrUnknownOrderStatus, http.StatusBadRequest},
		{e.ErrInvalidProductID, http.StatusBadRequest},
		{e.ErrProductNotFound, http.StatusNotFound},
		{e.ErrProductUnavailable, http.StatusNotFound},
		{e.ErrOrderNotFound, http.StatusNotFound},
		{e.ErrOrderNotUpdatable, http.StatusUnauthorized},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		// Ошибки доходят до транспорта обёрнутыми
		code, _ := ToHTTPResponse(e.Wrap("SomeUseCase.SomeOp", tc.err))
		assert.Equal(t, tc.wantCode, code, "error %v", tc.err)
	}
}

func TestToHTTPResponse_HidesInternalMessage(t *testing.T) {
	_, msg := ToHTTPResponse(assert.AnError)
	assert.Equal(t, e.ErrInternalServerError.Error(), msg)
}
