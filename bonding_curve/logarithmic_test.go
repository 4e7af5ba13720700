package bonding_curve

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewLogarithmic(t *testing.T) {
	if _, err := NewLogarithmic(d("2"), d("1")); err != nil {
		t.Fatal("NewLogarithmic() fail", err)
	}

	if _, err := NewLogarithmic(decimal.Zero, d("1")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero coefficient: got %v, want ErrInvalidInput", err)
	}
	if _, err := NewLogarithmic(d("2"), decimal.Zero); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero constant: got %v, want ErrInvalidInput", err)
	}
	if _, err := NewLogarithmic(d("2"), d("-1")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative constant: got %v, want ErrInvalidInput", err)
	}
}

func TestLogarithmicGetPrice(t *testing.T) {
	curve, err := NewLogarithmic(d("2"), d("1"))
	if err != nil {
		t.Fatal("NewLogarithmic() fail", err)
	}

	// 2 * ln(0 + 1) = 0
	price, err := curve.GetPrice()
	if err != nil {
		t.Fatal("GetPrice() fail", err)
	}
	if !price.Equal(decimal.Zero) {
		t.Fatalf("price at zero supply: got %s, want 0", price)
	}

	if _, err := curve.BuyToken(d("10")); err != nil {
		t.Fatal("BuyToken() fail", err)
	}
	// 2 * ln(11)
	price, err = curve.GetPrice()
	if err != nil {
		t.Fatal("GetPrice() fail", err)
	}
	assertApproxEq(t, price, d("4.795790545596741088"), d("0.000000001"), "price at supply 10")
}

func TestLogarithmicBuyToken(t *testing.T) {
	curve, err := NewLogarithmic(d("2"), d("1"))
	if err != nil {
		t.Fatal("NewLogarithmic() fail", err)
	}

	// 2 * [(11*ln(11) - 11) - (1*ln(1) - 1)]
	cost, err := curve.BuyToken(d("10"))
	if err != nil {
		t.Fatal("BuyToken() fail", err)
	}
	assertApproxEq(t, cost, d("32.753696001564152"), d("0.000000001"), "cost for 10 tokens")

	if _, err := curve.BuyToken(d("-1")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative amount: got %v, want ErrInvalidInput", err)
	}
}

func TestLogarithmicSellToken(t *testing.T) {
	curve, err := NewLogarithmic(d("2"), d("1"))
	if err != nil {
		t.Fatal("NewLogarithmic() fail", err)
	}
	cost, err := curve.BuyToken(d("10"))
	if err != nil {
		t.Fatal("BuyToken() fail", err)
	}

	refund, err := curve.SellToken(d("10"))
	if err != nil {
		t.Fatal("SellToken() fail", err)
	}
	assertApproxEq(t, refund, cost, d("0.000000000000001"), "round-trip refund")
	if !curve.GetSupply().Equal(decimal.Zero) {
		t.Fatalf("supply after round trip: got %s, want 0", curve.GetSupply())
	}
}

func TestLogarithmicOversell(t *testing.T) {
	curve, err := NewLogarithmic(d("2"), d("1"))
	if err != nil {
		t.Fatal("NewLogarithmic() fail", err)
	}
	if _, err := curve.BuyToken(d("10")); err != nil {
		t.Fatal("BuyToken() fail", err)
	}

	if _, err := curve.SellToken(d("11")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("oversell: got %v, want ErrInvalidInput", err)
	}
	if !curve.GetSupply().Equal(d("10")) {
		t.Fatalf("supply after failed sell: got %s, want 10", curve.GetSupply())
	}
}

func TestLogarithmicPriceMonotonic(t *testing.T) {
	curve, err := NewLogarithmic(d("2"), d("1"))
	if err != nil {
		t.Fatal("NewLogarithmic() fail", err)
	}

	previous, err := curve.GetPrice()
	if err != nil {
		t.Fatal("GetPrice() fail", err)
	}
	for i := 0; i < 5; i++ {
		if _, err := curve.BuyToken(d("20")); err != nil {
			t.Fatal("BuyToken() fail", err)
		}
		price, err := curve.GetPrice()
		if err != nil {
			t.Fatal("GetPrice() fail", err)
		}
		if price.LessThan(previous) {
			t.Fatalf("price decreased: %s -> %s", previous, price)
		}
		previous = price
	}
}
