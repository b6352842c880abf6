package messages

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func RegisterRoutes(r chi.Router, svc *Service, logger *zap.SugaredLogger) {
	r.Post("/sendMessage", sendMessageHandler(svc, logger))
	r.Put("/respondToMessage/{id}", respondToMessageHandler(svc, logger))
	r.Delete("/deleteMessage/{id}", deleteMessageHandler(svc, logger))
	r.Get("/getAllMessages", listMessagesHandler(svc, logger))
	r.Get("/getMessages/{id}", getMessageHandler(svc, logger))
}

type messageResponse struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Recipient string    `json:"recipient,omitempty"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

type sendMessageRequest struct {
	Sender    string `json:"sender"`
	Message   string `json:"message"`
	Recipient string `json:"recipient,omitempty"`
}

// sendMessageHandler godoc
// @Summary Send a message
// @Accept json
// @Produce json
// @Success 201 {object} messages.messageResponse
// @Router /sendMessage [post]
func sendMessageHandler(svc *Service, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
			return
		}

		m, err := svc.Send(r.Context(), SendInput{
			Sender:    req.Sender,
			Body:      req.Message,
			Recipient: req.Recipient,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "VALIDATION", "sender and message are required")
				return
			}
			logger.Errorf("sending message: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, toMessageResponse(m))
	}
}

type respondRequest struct {
	Recipient string `json:"recipient"`
	Response  string `json:"response"`
}

// respondToMessageHandler godoc
// @Summary Respond to a message
// @Param id path string true "ID of the message"
// @Accept json
// @Produce json
// @Success 200 {object} messages.messageResponse
// @Router /respondToMessage/{id} [put]
func respondToMessageHandler(svc *Service, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req respondRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
			return
		}

		m, err := svc.Respond(r.Context(), chi.URLParam(r, "id"), RespondInput{
			Recipient: req.Recipient,
			Response:  req.Response,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "VALIDATION", "recipient and response are required")
			case errors.Is(err, ErrNotFound):
				writeJSON(w, http.StatusOK, nil)
			default:
				logger.Errorf("responding to message: %v", err)
				writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toMessageResponse(m))
	}
}

// deleteMessageHandler godoc
// @Summary Delete a message
// @Param id path string true "ID of the message"
// @Produce json
// @Success 200 {object} messages.messageResponse
// @Router /deleteMessage/{id} [delete]
func deleteMessageHandler(svc *Service, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusOK, nil)
				return
			}
			logger.Errorf("deleting message: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
			return
		}

		writeJSON(w, http.StatusOK, toMessageResponse(m))
	}
}

// listMessagesHandler godoc
// @Summary Get all messages
// @Produce json
// @Success 200 {array} messages.messageResponse
// @Router /getAllMessages [get]
func listMessagesHandler(svc *Service, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			logger.Errorf("listing messages: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
			return
		}

		out := make([]messageResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMessageResponse(m))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getMessageHandler godoc
// @Summary Get a message by ID
// @Param id path string true "ID of the message"
// @Produce json
// @Success 200 {object} messages.messageResponse
// @Router /getMessages/{id} [get]
func getMessageHandler(svc *Service, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusOK, nil)
				return
			}
			logger.Errorf("getting message: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
			return
		}

		writeJSON(w, http.StatusOK, toMessageResponse(m))
	}
}

func toMessageResponse(m Message) messageResponse {
	return messageResponse{
		ID:        m.ID,
		Sender:    m.Sender,
		Recipient: m.Recipient,
		Message:   m.Body,
		Response:  m.Response,
		Timestamp: m.Timestamp,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
