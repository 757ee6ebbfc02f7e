package payment

import (
	"errors"
	"testing"
)

func TestAmountInCents(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{price: 1, want: 100},
		{price: 19.99, want: 1998}, // truncation, not rounding
		{price: 250, want: 25000},
		{price: 0.5, want: 50},
	}
	for _, tc := range cases {
		if got := AmountInCents(tc.price); got != tc.want {
			t.Errorf("AmountInCents(%v) = %d, want %d", tc.price, got, tc.want)
		}
	}
}

func TestCreateIntentRejectsNonPositivePrice(t *testing.T) {
	svc := &DefaultPaymentService{}
	if _, err := svc.CreateIntent(0); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice for zero, got %v", err)
	}
	if _, err := svc.CreateIntent(-5); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice for negative, got %v", err)
	}
}
