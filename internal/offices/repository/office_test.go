package repository

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"offices/pkg/config"
	"offices/pkg/model"
)

func TestPredicateFilter(t *testing.T) {
	tests := []struct {
		name      string
		predicate Predicate
		want      bson.M
	}{
		{
			name:      "empty predicate matches everything",
			predicate: Predicate{},
			want:      bson.M{},
		},
		{
			name:      "by id",
			predicate: ByID("0f8fad5b-d9cb-469f-a165-70867728950e"),
			want:      bson.M{"_id": "0f8fad5b-d9cb-469f-a165-70867728950e"},
		},
		{
			name:      "by status",
			predicate: ByStatus(model.OfficeStatusInactive),
			want:      bson.M{"status": model.OfficeStatusInactive},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.predicate.filter()
			if len(got) != len(tt.want) {
				t.Fatalf("filter() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("filter()[%q] = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestWithTimeout(t *testing.T) {
	r := &mongoOfficeRepository{cfg: &config.Config{ReadTimeout: time.Second}}

	t.Run("no caller deadline uses configured timeout", func(t *testing.T) {
		ctx, cancel := r.withTimeout(context.Background(), time.Second)
		defer cancel()

		deadline, ok := ctx.Deadline()
		if !ok {
			t.Fatal("expected deadline to be set")
		}
		if remaining := time.Until(deadline); remaining > time.Second || remaining < 500*time.Millisecond {
			t.Errorf("unexpected remaining time %v", remaining)
		}
	})

	t.Run("shorter caller deadline is kept", func(t *testing.T) {
		parent, parentCancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer parentCancel()

		ctx, cancel := r.withTimeout(parent, time.Minute)
		defer cancel()

		parentDeadline, _ := parent.Deadline()
		deadline, ok := ctx.Deadline()
		if !ok {
			t.Fatal("expected deadline to be set")
		}
		if !deadline.Equal(parentDeadline) {
			t.Errorf("deadline = %v, want caller deadline %v", deadline, parentDeadline)
		}
	})

	t.Run("longer caller deadline is shortened", func(t *testing.T) {
		parent, parentCancel := context.WithTimeout(context.Background(), time.Hour)
		defer parentCancel()

		ctx, cancel := r.withTimeout(parent, time.Second)
		defer cancel()

		deadline, _ := ctx.Deadline()
		if time.Until(deadline) > time.Second {
			t.Errorf("expected deadline within 1s, got %v", time.Until(deadline))
		}
	})
}
