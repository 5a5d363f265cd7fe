package status

import (
	"errors"
	"net/http"

	"github.com/weverton790458597/DashBoard/internal/logging"
)

type stopper interface {
	Stopped() bool
}

type Handler struct {
	Operator stopper
}

func NewHandler(op stopper) Handler {
	return Handler{Operator: op}
}

// Handler answers 200 while the operator accepts mutations and 503 once it
// has been stopped.
func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	stopped := h.Operator.Stopped()
	logData.AddData("operatorStopped", stopped)
	if stopped {
		w.WriteHeader(http.StatusServiceUnavailable)
		return nil
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
