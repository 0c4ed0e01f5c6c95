package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAddDeliveryNoteCommandIsNotConstructed = errors.New(
		"AddDeliveryNoteCommand must be created via NewAddDeliveryNoteCommand constructor",
	)
	ErrNoteIsRequired = errs.NewValueIsRequiredError("note")
)

// AddDeliveryNoteCommand represents a note attached to a shipment through
// its public verification code. The note replaces the cargo description.
type AddDeliveryNoteCommand struct { //nolint:recvcheck //using for validation
	verificationCode string
	note             string

	guard guard.ConstructorGuard
}

// NewAddDeliveryNoteCommand creates a command to attach a delivery note.
func NewAddDeliveryNoteCommand(verificationCode, note string) (AddDeliveryNoteCommand, error) {
	cmd := AddDeliveryNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVerificationCode(verificationCode),
		cmd.setNote(note),
	); err != nil {
		return AddDeliveryNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDeliveryNoteCommand) Validate() error {
	return c.guard.Validate(ErrAddDeliveryNoteCommandIsNotConstructed)
}

// VerificationCode returns the shipment's handover code.
func (c AddDeliveryNoteCommand) VerificationCode() string { return c.verificationCode }

// Note returns the note text.
func (c AddDeliveryNoteCommand) Note() string { return c.note }

func (c *AddDeliveryNoteCommand) setVerificationCode(code string) error {
	if code == "" {
		return ErrVerificationCodeIsRequired
	}
	c.verificationCode = code
	return nil
}

func (c *AddDeliveryNoteCommand) setNote(note string) error {
	if note == "" {
		return ErrNoteIsRequired
	}
	c.note = note
	return nil
}
