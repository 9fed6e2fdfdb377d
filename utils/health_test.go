package utils

import (
	"context"
	"errors"
	"testing"
)

func TestCollectHealth(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name   string
		probes healthProbes
		want   HealthStatus
	}{
		{
			"all services up",
			healthProbes{mongo: up, slotCache: up, authCache: up},
			HealthStatus{Mongo: true, SlotCache: true, AuthCache: true},
		},
		{
			"store down, caches up",
			healthProbes{mongo: down, slotCache: up, authCache: up},
			HealthStatus{Mongo: false, SlotCache: true, AuthCache: true},
		},
		{
			"one cache down",
			healthProbes{mongo: up, slotCache: down, authCache: up},
			HealthStatus{Mongo: true, SlotCache: false, AuthCache: true},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := collectHealth(context.Background(), tc.probes)
			if got.Mongo != tc.want.Mongo || got.SlotCache != tc.want.SlotCache || got.AuthCache != tc.want.AuthCache {
				t.Fatalf("collectHealth = %+v, want %+v", got, tc.want)
			}
			if got.CheckedAt.IsZero() {
				t.Fatal("collectHealth did not stamp CheckedAt")
			}
		})
	}
}

func TestHealthSnapshot(t *testing.T) {
	status := HealthStatus{Mongo: true, SlotCache: true, AuthCache: false}
	setHealth(status)

	got := GetHealthStatus()
	if got.Mongo != status.Mongo || got.SlotCache != status.SlotCache || got.AuthCache != status.AuthCache {
		t.Fatalf("GetHealthStatus = %+v, want %+v", got, status)
	}
}
