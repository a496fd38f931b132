package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dimitrije/teampulse-api/internal/models"
)

var (
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrInvalidField      = errors.New("invalid field")
)

// Error carries a client-facing message and one of the sentinel kinds above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

const (
	maxIdentifierLen = 100
	maxEmojiLen      = 10
	maxLabelLen      = 50
	maxUsernameLen   = 50
	maxMemberTextLen = 100
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Kept in alphabetical order; the list is echoed in error messages.
var validStatuses = []string{models.StatusActive, models.StatusAway, models.StatusOffline}

func invalidIdentifier(format string, args ...any) error {
	return &Error{Kind: ErrInvalidIdentifier, Message: fmt.Sprintf(format, args...)}
}

func invalidField(format string, args ...any) error {
	return &Error{Kind: ErrInvalidField, Message: fmt.Sprintf(format, args...)}
}

// MemberID trims raw and checks it is a usable team member key.
func MemberID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", invalidIdentifier("Member ID must not be empty")
	}
	if !identifierPattern.MatchString(id) {
		return "", invalidIdentifier("Member ID must contain only alphanumeric characters, hyphens, and underscores")
	}
	if utf8.RuneCountInString(id) > maxIdentifierLen {
		return "", invalidIdentifier("Member ID must be %d characters or fewer", maxIdentifierLen)
	}
	return id, nil
}

// MoodEmoji counts code points, so a compound emoji can use several of the
// ten available.
func MoodEmoji(raw string) (string, error) {
	return boundedText("Mood emoji", raw, maxEmojiLen)
}

func MoodLabel(raw string) (string, error) {
	return boundedText("Mood label", raw, maxLabelLen)
}

func MemberName(raw string) (string, error) {
	return boundedText("Name", raw, maxMemberTextLen)
}

func MemberRole(raw string) (string, error) {
	return boundedText("Role", raw, maxMemberTextLen)
}

func Username(raw string) (string, error) {
	return boundedText("Username", raw, maxUsernameLen)
}

// Status normalizes case and surrounding whitespace.
func Status(raw string) (string, error) {
	status := strings.ToLower(strings.TrimSpace(raw))
	for _, s := range validStatuses {
		if status == s {
			return status, nil
		}
	}
	return "", invalidField("Status must be one of: %s", strings.Join(validStatuses, ", "))
}

// UserID is not trimmed: preference keys are taken verbatim from the path.
func UserID(raw string) (string, error) {
	if !identifierPattern.MatchString(raw) {
		return "", invalidIdentifier("User ID must contain only alphanumeric characters, hyphens, and underscores")
	}
	if utf8.RuneCountInString(raw) > maxIdentifierLen {
		return "", invalidIdentifier("User ID must be %d characters or fewer", maxIdentifierLen)
	}
	return raw, nil
}

func boundedText(field, raw string, limit int) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", invalidField("%s must not be empty", field)
	}
	if utf8.RuneCountInString(value) > limit {
		return "", invalidField("%s must be %d characters or fewer", field, limit)
	}
	return value, nil
}
