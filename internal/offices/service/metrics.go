package service

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	officeserrors "offices/internal/offices/errors"
)

const (
	opGetAll       = "get_all"
	opGet          = "get"
	opCreate       = "create"
	opUpdate       = "update"
	opChangeStatus = "change_status"
)

var operationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "offices_operations_total",
		Help: "Office lifecycle operations by result",
	},
	[]string{"operation", "result"},
)

func observe(operation string, err error) {
	operationsTotal.WithLabelValues(operation, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, officeserrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, officeserrors.ErrInvalidID):
		return "invalid_id"
	case errors.Is(err, officeserrors.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}
