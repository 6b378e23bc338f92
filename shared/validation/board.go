package validation

import (
	"regexp"
	"strings"

	"github.com/bagooon/chatease-go/shared/domain"
	"github.com/bagooon/chatease-go/shared/errors"
	"github.com/go-playground/validator/v10"
)

const (
	dateLayout = "2006-01-02"

	tagPresent  = "required"
	tagEmail    = "email"
	tagBoardKey = "board_key"
	tagDate     = "omitempty,datetime=" + dateLayout
)

var boardKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// BoardValidator checks board creation requests before they leave the process.
// Every check returns *errors.ValidationError naming the field in dot notation.
type BoardValidator struct {
	validate *validator.Validate
}

func New() *BoardValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation(tagBoardKey, isBoardKey); err != nil {
		panic("cannot register board key validation: " + err.Error())
	}
	return &BoardValidator{validate: v}
}

func isBoardKey(fl validator.FieldLevel) bool {
	return boardKeyPattern.MatchString(fl.Field().String())
}

func (b *BoardValidator) check(value, tag, field, message string) error {
	if err := b.validate.Var(value, tag); err != nil {
		return &errors.ValidationError{Field: field, Message: message}
	}
	return nil
}

func (b *BoardValidator) Title(title string) error {
	return b.check(strings.TrimSpace(title), tagPresent, "title", "title is required")
}

func (b *BoardValidator) GuestName(name string) error {
	return b.check(strings.TrimSpace(name), tagPresent, "guest.name", "guest.name is required")
}

func (b *BoardValidator) Email(email string) error {
	return b.check(email, tagEmail, "guest.email", "guest.email is invalid")
}

func (b *BoardValidator) BoardUniqueKey(key string) error {
	return b.check(key, tagBoardKey, "boardUniqueKey", "boardUniqueKey is invalid")
}

func (b *BoardValidator) StatusKey(key string) error {
	return b.check(strings.TrimSpace(key), tagPresent, "initialStatus.statusKey", "initialStatus.statusKey is required")
}

// TimeLimit accepts an empty value. Anything else must be a real calendar
// day; "2026-02-31" fails instead of rolling over into March.
func (b *BoardValidator) TimeLimit(date string) error {
	return b.check(date, tagDate, "initialStatus.timeLimit", "initialStatus.timeLimit must be a valid date")
}

// Board runs the field checks shared by every create call, stopping at the
// first failure: title, guest.name, guest.email, boardUniqueKey.
func (b *BoardValidator) Board(req domain.BoardCreationRequest) error {
	if err := b.Title(req.Title); err != nil {
		return err
	}
	if err := b.GuestName(req.Guest.Name); err != nil {
		return err
	}
	if err := b.Email(req.Guest.Email); err != nil {
		return err
	}
	return b.BoardUniqueKey(req.BoardUniqueKey)
}

// BoardWithoutStatus runs Board and then rejects a present initialStatus,
// which only the status-aware create call validates and sends.
func (b *BoardValidator) BoardWithoutStatus(req domain.BoardCreationRequest) error {
	if err := b.Board(req); err != nil {
		return err
	}
	if req.InitialStatus != nil {
		return &errors.ValidationError{
			Field:   "initialStatus",
			Message: "initialStatus is not accepted by CreateBoard, use CreateBoardWithStatus",
		}
	}
	return nil
}

func (b *BoardValidator) InitialStatus(status *domain.InitialStatus) error {
	if status == nil {
		return &errors.ValidationError{Field: "initialStatus", Message: "initialStatus is required"}
	}
	if err := b.StatusKey(status.StatusKey); err != nil {
		return err
	}
	return b.TimeLimit(status.TimeLimit)
}

// BoardWithStatus runs Board and then the initialStatus checks.
func (b *BoardValidator) BoardWithStatus(req domain.BoardCreationRequest) error {
	if err := b.Board(req); err != nil {
		return err
	}
	return b.InitialStatus(req.InitialStatus)
}
