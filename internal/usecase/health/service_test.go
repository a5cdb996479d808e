package health

import (
	"context"
	"errors"
	"testing"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

func TestCheck_Healthy(t *testing.T) {
	svc := New(&mockPinger{})

	report := svc.Check(context.Background())

	if report.Status != Healthy {
		t.Errorf("expected %s, got %s", Healthy, report.Status)
	}
	if report.Checks["store"] != CheckOK {
		t.Errorf("expected store check ok, got %s", report.Checks["store"])
	}
}

func TestCheck_StoreFailure(t *testing.T) {
	svc := New(&mockPinger{err: errors.New("unavailable")})

	report := svc.Check(context.Background())

	if report.Status != Degraded {
		t.Errorf("expected %s, got %s", Degraded, report.Status)
	}
	if report.Checks["store"] != CheckError {
		t.Errorf("expected store check error, got %s", report.Checks["store"])
	}
}
