package utils

import (
	"context"
	"fmt"
	"testing"
)

type fakePinger struct{ err error }

func (p fakePinger) ping(ctx context.Context) error { return p.err }

func TestBuildHealthStatus_AllUp(t *testing.T) {
	status := buildHealthStatus(context.Background(), fakePinger{}, map[string]pinger{
		"cache": fakePinger{},
		"timer": fakePinger{},
	})

	if !status.Mongo || !status.Healthy {
		t.Fatalf("expected healthy snapshot, got %+v", status)
	}
	if !status.Redis["cache"] || !status.Redis["timer"] {
		t.Errorf("expected all redis concerns up, got %v", status.Redis)
	}
	if status.CheckedAt.IsZero() {
		t.Error("expected CheckedAt to be stamped")
	}
}

func TestBuildHealthStatus_NamesFailingConcern(t *testing.T) {
	down := fakePinger{err: fmt.Errorf("connection refused")}
	status := buildHealthStatus(context.Background(), fakePinger{}, map[string]pinger{
		"cache": fakePinger{},
		"auth":  down,
	})

	if status.Healthy {
		t.Fatal("expected unhealthy snapshot when a redis concern is down")
	}
	if !status.Redis["cache"] || status.Redis["auth"] {
		t.Errorf("expected only auth down, got %v", status.Redis)
	}
	if !status.Mongo {
		t.Error("mongo should still report up")
	}
}

func TestBuildHealthStatus_MongoDown(t *testing.T) {
	down := fakePinger{err: fmt.Errorf("no reachable servers")}
	status := buildHealthStatus(context.Background(), down, map[string]pinger{
		"cache": fakePinger{},
	})

	if status.Mongo || status.Healthy {
		t.Fatalf("expected mongo down to mark snapshot unhealthy, got %+v", status)
	}
}
