package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/hushh-labs/concierge/pkg/domain/types"
	"github.com/hushh-labs/concierge/pkg/usecase"
	"github.com/hushh-labs/concierge/pkg/utils/errutil"
	"github.com/hushh-labs/concierge/pkg/utils/logging"
	"github.com/hushh-labs/concierge/pkg/utils/safe"
)

type runRequest struct {
	UserID    string `json:"user_id"`
	Message   string `json:"message" masq:"secret"`
	SessionID string `json:"session_id"`
}

type clearRequest struct {
	SessionID string `json:"session_id"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

// handleRun routes the message by intent: styling phrases go to the
// stylist, everything else runs the shopping loop.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode run request"), http.StatusBadRequest)
		return
	}

	if usecase.IsStylingIntent(req.Message) {
		logging.From(ctx).Info("routing to stylist", "user_id", req.UserID)
		resp := s.uc.HandleStyle(ctx, types.UserID(req.UserID), req.Message)
		writeJSON(w, r, http.StatusOK, resp)
		return
	}

	resp := s.uc.HandleShopping(ctx, types.UserID(req.UserID), types.SessionID(req.SessionID), req.Message)
	writeJSON(w, r, http.StatusOK, resp)
}

// handleClear drops a conversation session, typically when the UI starts
// a new chat.
func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req clearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode clear request"), http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		errutil.HandleHTTP(ctx, w, goerr.New("session_id is required"), http.StatusBadRequest)
		return
	}

	cleared := s.uc.ClearSession(ctx, types.SessionID(req.SessionID))

	message := "No conversation found for this session"
	if cleared {
		message = "Conversation cleared"
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"success":    cleared,
		"message":    message,
		"session_id": req.SessionID,
	})
}

func (s *Server) handleSessionInfo(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	count, hasHistory := s.uc.SessionInfo(r.Context(), types.SessionID(sessionID))

	writeJSON(w, r, http.StatusOK, map[string]any{
		"session_id":    sessionID,
		"message_count": count,
		"has_history":   hasHistory,
	})
}

func (s *Server) handleShortlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := types.UserID(chi.URLParam(r, "userID"))

	if err := userID.Validate(); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	products, err := s.uc.GetShortlist(ctx, userID)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to load shortlist"), http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"user_id":   userID,
		"shortlist": products,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":   "healthy",
		"platform": "hushh-concierge",
	})
}
