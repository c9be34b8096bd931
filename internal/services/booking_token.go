package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// BookingTokenService signs candidate booking links so the public booking
// endpoints can run without an authenticated session.
type BookingTokenService interface {
	Generate(interviewID uuid.UUID) string
	Verify(interviewID uuid.UUID, token string) bool
	BookingLink(interviewID uuid.UUID) string
}

type bookingTokenService struct {
	secret      []byte
	frontendURL string
}

func NewBookingTokenService(secret, frontendURL string) BookingTokenService {
	return &bookingTokenService{
		secret:      []byte(secret),
		frontendURL: frontendURL,
	}
}

func (s *bookingTokenService) Generate(interviewID uuid.UUID) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(interviewID.String()))
	return hex.EncodeToString(mac.Sum(nil))[:32]
}

func (s *bookingTokenService) Verify(interviewID uuid.UUID, token string) bool {
	expected := s.Generate(interviewID)
	return hmac.Equal([]byte(expected), []byte(token))
}

func (s *bookingTokenService) BookingLink(interviewID uuid.UUID) string {
	return fmt.Sprintf("%s/book/%s/%s", s.frontendURL, interviewID, s.Generate(interviewID))
}
