package services

import "github.com/gofiber/fiber/v2"

// ErrorKind is the closed set of business failure categories.
type ErrorKind string

const (
	KindUserNotFound       ErrorKind = "user_not_found"
	KindAnswerNotFound     ErrorKind = "answer_not_found"
	KindResponseExists     ErrorKind = "response_exists"
	KindEmailTaken         ErrorKind = "email_taken"
	KindChallengeNotFound  ErrorKind = "challenge_not_found"
	KindQuestionNotFound   ErrorKind = "question_not_found"
	KindInvalidCredentials ErrorKind = "invalid_credentials"
	KindReleaseNotFound    ErrorKind = "release_not_found"
	KindAssetNotFound      ErrorKind = "asset_not_found"
)

// Error is a tagged business failure carrying the HTTP status it maps to.
// The status is fixed at the raise site so handlers never have to match on
// message content.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrUserNotFound       = &Error{Kind: KindUserNotFound, Status: fiber.StatusNotFound, Message: "User not found"}
	ErrAnswerNotFound     = &Error{Kind: KindAnswerNotFound, Status: fiber.StatusNotFound, Message: "One or more answers not found"}
	ErrResponseExists     = &Error{Kind: KindResponseExists, Status: fiber.StatusConflict, Message: "One or more responses already exist"}
	ErrEmailTaken         = &Error{Kind: KindEmailTaken, Status: fiber.StatusConflict, Message: "Email is already registered"}
	ErrChallengeNotFound  = &Error{Kind: KindChallengeNotFound, Status: fiber.StatusNotFound, Message: "Challenge not found"}
	ErrQuestionNotFound   = &Error{Kind: KindQuestionNotFound, Status: fiber.StatusNotFound, Message: "Question not found"}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Status: fiber.StatusUnauthorized, Message: "Invalid credentials"}
	ErrReleaseNotFound    = &Error{Kind: KindReleaseNotFound, Status: fiber.StatusNotFound, Message: "No release found"}
	ErrAssetNotFound      = &Error{Kind: KindAssetNotFound, Status: fiber.StatusNotFound, Message: "No APK found in the release"}
)
