package testutil_test

import (
	"context"
	"errors"
	"testing"

	apperrors "cryptoex/internal/errors"
	"cryptoex/internal/testutil"
)

func TestSeedData(t *testing.T) {
	data := testutil.SeedData(t)
	if len(data.Holdings) == 0 {
		t.Fatal("expected seeded holdings")
	}
}

func TestPriceSnapshotCoversHoldings(t *testing.T) {
	data := testutil.SeedData(t)
	ids := make(map[string]bool)
	for _, p := range testutil.PriceSnapshot() {
		ids[p.ID] = true
	}
	for _, h := range data.Holdings {
		if !ids[h.ID] {
			t.Errorf("snapshot missing holding %s", h.ID)
		}
	}

	without := testutil.PriceSnapshotWithout("solana")
	for _, p := range without {
		if p.ID == "solana" {
			t.Error("solana should have been removed")
		}
	}
}

func TestStubPrices(t *testing.T) {
	stub := &testutil.StubPrices{Assets: testutil.PriceSnapshot()}

	assets, err := stub.Markets(context.Background(), 2)
	testutil.AssertNoError(t, err)
	if len(assets) != 2 {
		t.Errorf("expected 2 assets, got %d", len(assets))
	}

	stub.Err = errors.New("boom")
	if got := stub.MarketsOrEmpty(context.Background(), 10); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", got)
	}
	if reqs := stub.Requests(); len(reqs) != 2 || reqs[1] != 10 {
		t.Errorf("unexpected recorded requests %v", reqs)
	}
}

func TestAssertAppError(t *testing.T) {
	testutil.AssertAppError(t, apperrors.Wrap(apperrors.ErrUpstreamUnavailable, errors.New("x")), "UPSTREAM_UNAVAILABLE")
}
