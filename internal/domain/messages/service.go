package messages

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("message not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type SendInput struct {
	Sender string
	Body   string
	// Recipient es opcional al enviar: normalmente se fija recién al
	// responder. Se acepta acá por si el cliente ya sabe el destino.
	Recipient string
}

func (s *Service) Send(ctx context.Context, in SendInput) (Message, error) {
	if strings.TrimSpace(in.Sender) == "" || strings.TrimSpace(in.Body) == "" {
		return Message{}, ErrInvalidInput
	}

	m := Message{
		ID:        uuid.NewString(),
		Sender:    strings.TrimSpace(in.Sender),
		Recipient: strings.TrimSpace(in.Recipient),
		Body:      in.Body,
		Response:  "",
		Timestamp: s.now(),
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Message{}, err
	}
	return m, nil
}

type RespondInput struct {
	Recipient string
	Response  string
}

// Respond fija recipient y response sobre el mensaje existente;
// sender, body y timestamp no se tocan.
func (s *Service) Respond(ctx context.Context, id string, in RespondInput) (Message, error) {
	if strings.TrimSpace(in.Recipient) == "" || strings.TrimSpace(in.Response) == "" {
		return Message{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Message{}, err
	}

	current.Recipient = strings.TrimSpace(in.Recipient)
	current.Response = in.Response

	if err := s.repo.Update(ctx, current); err != nil {
		return Message{}, err
	}
	return current, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Message, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Message, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) (Message, error) {
	return s.repo.Delete(ctx, id)
}
