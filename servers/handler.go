package servers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/reusee/ngl/actions"
	"github.com/reusee/ngl/logs"
	"github.com/reusee/ngl/nglconfigs"
	"github.com/reusee/ngl/syncs"
)

const RunPath = "/api/run"

type request struct {
	Action    string `json:"action"`
	Code      string `json:"code"`
	Input     string `json:"input"`
	Plaintext string `json:"plaintext"`
	MaxSteps  *int   `json:"maxSteps"`
}

type runResponse struct {
	Success   bool   `json:"success"`
	Output    string `json:"output"`
	Steps     int    `json:"steps"`
	Truncated bool   `json:"truncated"`
}

type reverseResponse struct {
	Success bool   `json:"success"`
	Lyrics  string `json:"lyrics"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type Mux = *http.ServeMux

func (Module) Mux(
	dispatch actions.Dispatch,
	logger logs.Logger,
	newSpan logs.NewSpan,
	maxRunning nglconfigs.MaxRunning,
) Mux {
	sem := syncs.NewSemaphore(int(maxRunning))
	mux := http.NewServeMux()

	mux.HandleFunc(RunPath, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{
				Error: "method not allowed",
			})
			return
		}

		ctx, _ := newSpan(r.Context(), "")

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WarnContext(ctx, "decode request", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Error: err.Error(),
			})
			return
		}

		if err := sem.AcquireContext(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{
				Error: err.Error(),
			})
			return
		}
		resp, err := dispatch(ctx, actions.Request{
			Action:    req.Action,
			Code:      req.Code,
			Input:     req.Input,
			Plaintext: req.Plaintext,
			MaxSteps:  req.MaxSteps,
		})
		sem.Release()

		if errors.Is(err, actions.ErrUnrecognizedOperation) {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error: "Unknown action",
			})
			return
		} else if err != nil {
			logger.ErrorContext(ctx, "dispatch", "error", logs.WrapSpan(ctx, err))
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Error: err.Error(),
			})
			return
		}

		switch resp.Action {
		case actions.ActionReverse:
			writeJSON(w, http.StatusOK, reverseResponse{
				Success: true,
				Lyrics:  resp.Phrases,
			})
		default:
			writeJSON(w, http.StatusOK, runResponse{
				Success:   true,
				Output:    resp.Output,
				Steps:     resp.Steps,
				Truncated: resp.Truncated,
			})
		}
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
