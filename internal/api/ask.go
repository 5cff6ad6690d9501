package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sage-agent/sage/internal/session"
)

const sessionCookie = "sage_session"

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ask runs one conversational turn for the caller's session.
func (s *Server) ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Question == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "question is required"})
		return
	}

	id := s.sessionID(w, r)
	st := s.sessions.GetOrCreate(id)

	res := s.answerer.Answer(r.Context(), req.Question, st.LastEntity)

	st.History = append(st.History, session.Exchange{Question: req.Question, Answer: res.FinalAnswer})
	if res.UpdatedEntity != "" {
		st.LastEntity = res.UpdatedEntity
	}
	s.sessions.Save(id, st)

	writeJSON(w, http.StatusOK, askResponse{Question: req.Question, Answer: res.FinalAnswer})
}

func (s *Server) history(w http.ResponseWriter, r *http.Request) {
	exchanges := []session.Exchange{}
	if c, err := r.Cookie(sessionCookie); err == nil {
		if st, found := s.sessions.Get(c.Value); found {
			exchanges = st.History
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": exchanges})
}

// reset clears the caller's history and last entity. Idempotent.
func (s *Server) reset(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		s.sessions.Reset(c.Value)
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// sessionID returns the caller's session id, minting a cookie on first
// contact.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}
