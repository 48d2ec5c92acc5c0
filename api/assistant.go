package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/hellman53/book-my-doctor-sub000/assistant"
)

type generateRequest struct {
	Messages []assistant.Message `json:"messages"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// generate forwards the conversation to the generative-text collaborator.
// Single call, no retry, no streaming.
func (a *API) generate(w http.ResponseWriter, r *http.Request) {
	if a.assistant == nil {
		respond(w, http.StatusInternalServerError, errorResponse{Error: "assistant is not configured"})
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
		respond(w, http.StatusBadRequest, errorResponse{Error: "messages are required"})
		return
	}

	text, err := a.assistant.Generate(r.Context(), req.Messages)
	if err != nil {
		log.Error().Err(err).Msg("assistant generation failed")
		respond(w, http.StatusInternalServerError, errorResponse{Error: "generation failed"})
		return
	}

	respond(w, http.StatusOK, generateResponse{Text: text})
}
