// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package waitlist

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ImranJeferly/teletebib/internal/platform/validate"
	"github.com/ImranJeferly/teletebib/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates the waitlist business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Public Signups

/*
AddPatient registers a patient email on the waitlist.

Description: The email is normalized (trimmed, lowercased) before storage so
duplicate detection is case-insensitive. A repeat signup returns the
distinguished ALREADY_ON_WAITLIST conflict so the form can tell the visitor
they are already registered rather than showing a failure.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *Entry: The stored signup
  - error: Validation error, ALREADY_ON_WAITLIST, or persistence errors
*/
func (service *Service) AddPatient(context context.Context, email string) (*Entry, error) {

	email = strings.ToLower(strings.TrimSpace(email))

	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).Email(FieldEmail, email)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	entry := &Entry{
		ID:    uuidv7.New(),
		Kind:  KindPatient,
		Email: email,
	}

	if err := service.repo.Create(context, entry); err != nil {
		return nil, err
	}

	service.logger.Info("waitlist_patient_added", slog.String("entry_id", entry.ID))

	return entry, nil
}

/*
AddDoctor registers a doctor on the waitlist.

Description: Doctors provide their name, surname, mobile number and medical
license number. There is no duplicate check for doctors — a practitioner may
submit again, e.g. after changing their contact details.

Parameters:
  - context: context.Context
  - input: *Entry (Name, Surname, MobileNumber, LicenseNumber populated)

Returns:
  - *Entry: The stored signup
  - error: Validation or persistence errors
*/
func (service *Service) AddDoctor(context context.Context, input *Entry) (*Entry, error) {

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 100)
	validator.Required(FieldSurname, input.Surname).MaxLen(FieldSurname, input.Surname, 100)
	validator.Required(FieldMobileNumber, input.MobileNumber).MaxLen(FieldMobileNumber, input.MobileNumber, 30)
	validator.Required(FieldLicenseNumber, input.LicenseNumber).MaxLen(FieldLicenseNumber, input.LicenseNumber, 50)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	entry := &Entry{
		ID:            uuidv7.New(),
		Kind:          KindDoctor,
		Name:          strings.TrimSpace(input.Name),
		Surname:       strings.TrimSpace(input.Surname),
		MobileNumber:  strings.TrimSpace(input.MobileNumber),
		LicenseNumber: strings.TrimSpace(input.LicenseNumber),
	}

	if err := service.repo.Create(context, entry); err != nil {
		return nil, err
	}

	service.logger.Info("waitlist_doctor_added", slog.String("entry_id", entry.ID))

	return entry, nil
}

/*
Count returns the total waitlist size across both audiences.

Description: Displayed on the public landing page as social proof.
*/
func (service *Service) Count(context context.Context) (int, error) {
	return service.repo.Count(context)
}

// # Admin Review

/*
ListEntries retrieves a paginated page of signups for the admin review screen.

Parameters:
  - context: context.Context
  - filter: Filter (optional audience restriction)
  - limit: int
  - offset: int

Returns:
  - []*Entry: Signups, newest first
  - int: Total count matching the filter
  - error: Validation or persistence errors
*/
func (service *Service) ListEntries(context context.Context, filter Filter, limit, offset int) ([]*Entry, int, error) {

	if filter.Kind != "" {
		validator := &validate.Validator{}
		validator.OneOf(FieldKind, string(filter.Kind), string(KindPatient), string(KindDoctor))
		if err := validator.Err(); err != nil {
			return nil, 0, err
		}
	}

	return service.repo.List(context, filter, limit, offset)
}

/*
DeleteEntry removes one signup.
*/
func (service *Service) DeleteEntry(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("waitlist_entry_deleted", slog.String("entry_id", id))

	return nil
}
