// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package waitlist

import (
	"context"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImranJeferly/teletebib/internal/platform/apperr"
)

// memoryRepository is an in-memory Repository double mirroring the partial
// unique index on patient emails.
type memoryRepository struct {
	entries map[string]*Entry
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{entries: map[string]*Entry{}}
}

func (m *memoryRepository) Create(_ context.Context, entry *Entry) error {
	if entry.Kind == KindPatient {
		for _, existing := range m.entries {
			if existing.Kind == KindPatient && existing.Email == entry.Email {
				return apperr.AlreadyOnWaitlist()
			}
		}
	}
	entry.CreatedAt = time.Now().UTC()
	copied := *entry
	m.entries[entry.ID] = &copied
	return nil
}

func (m *memoryRepository) List(_ context.Context, filter Filter, limit, offset int) ([]*Entry, int, error) {
	var out []*Entry
	for _, e := range m.entries {
		if filter.Kind != "" && e.Kind != filter.Kind {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	total := len(out)
	if offset >= total {
		return []*Entry{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return out[offset:end], total, nil
}

func (m *memoryRepository) Count(_ context.Context) (int, error) {
	return len(m.entries), nil
}

func (m *memoryRepository) Delete(_ context.Context, id string) error {
	if _, ok := m.entries[id]; !ok {
		return apperr.NotFound("Resource")
	}
	delete(m.entries, id)
	return nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.Default())
}

/*
TestService_AddPatient covers normalization, validation and the
distinguished duplicate outcome.
*/
func TestService_AddPatient(t *testing.T) {
	t.Run("stores_normalized_email", func(t *testing.T) {
		service := newTestService(newMemoryRepository())

		entry, err := service.AddPatient(context.Background(), "  Aysel@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "aysel@example.com", entry.Email)
		assert.Equal(t, KindPatient, entry.Kind)
		assert.Len(t, entry.ID, 36)
	})

	t.Run("duplicate_is_distinguished", func(t *testing.T) {
		service := newTestService(newMemoryRepository())

		_, err := service.AddPatient(context.Background(), "aysel@example.com")
		require.NoError(t, err)

		// Case differences collapse to the same normalized email.
		_, err = service.AddPatient(context.Background(), "AYSEL@example.com")
		require.Error(t, err)
		assert.True(t, apperr.IsCode(err, "ALREADY_ON_WAITLIST"))
	})

	t.Run("invalid_email", func(t *testing.T) {
		service := newTestService(newMemoryRepository())

		_, err := service.AddPatient(context.Background(), "not-an-email")
		require.Error(t, err)
		assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
	})
}

/*
TestService_AddDoctor covers required fields and the absence of a duplicate
check for doctors.
*/
func TestService_AddDoctor(t *testing.T) {
	doctor := func() *Entry {
		return &Entry{
			Name:          "Orxan",
			Surname:       "Quliyev",
			MobileNumber:  "+994501234567",
			LicenseNumber: "AZ-MED-12345",
		}
	}

	t.Run("valid_signup", func(t *testing.T) {
		service := newTestService(newMemoryRepository())

		entry, err := service.AddDoctor(context.Background(), doctor())
		require.NoError(t, err)
		assert.Equal(t, KindDoctor, entry.Kind)
		assert.Equal(t, "AZ-MED-12345", entry.LicenseNumber)
	})

	t.Run("doctors_may_repeat", func(t *testing.T) {
		service := newTestService(newMemoryRepository())

		_, err := service.AddDoctor(context.Background(), doctor())
		require.NoError(t, err)

		_, err = service.AddDoctor(context.Background(), doctor())
		assert.NoError(t, err)
	})

	t.Run("missing_fields", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*Entry)
			field  string
		}{
			{"no_name", func(e *Entry) { e.Name = "" }, FieldName},
			{"no_surname", func(e *Entry) { e.Surname = "" }, FieldSurname},
			{"no_mobile", func(e *Entry) { e.MobileNumber = "" }, FieldMobileNumber},
			{"no_license", func(e *Entry) { e.LicenseNumber = "" }, FieldLicenseNumber},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				service := newTestService(newMemoryRepository())

				input := doctor()
				tt.mutate(input)

				_, err := service.AddDoctor(context.Background(), input)
				require.Error(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			})
		}
	})
}

/*
TestService_ListEntries covers the kind filter and its validation.
*/
func TestService_ListEntries(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	_, err := service.AddPatient(context.Background(), "p1@example.com")
	require.NoError(t, err)
	_, err = service.AddPatient(context.Background(), "p2@example.com")
	require.NoError(t, err)
	_, err = service.AddDoctor(context.Background(), &Entry{
		Name: "Orxan", Surname: "Quliyev", MobileNumber: "+994501234567", LicenseNumber: "AZ-1",
	})
	require.NoError(t, err)

	t.Run("all", func(t *testing.T) {
		entries, total, err := service.ListEntries(context.Background(), Filter{}, 20, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, entries, 3)
	})

	t.Run("patients_only", func(t *testing.T) {
		_, total, err := service.ListEntries(context.Background(), Filter{Kind: KindPatient}, 20, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("doctors_only", func(t *testing.T) {
		_, total, err := service.ListEntries(context.Background(), Filter{Kind: KindDoctor}, 20, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	t.Run("invalid_kind", func(t *testing.T) {
		_, _, err := service.ListEntries(context.Background(), Filter{Kind: "nurse"}, 20, 0)
		assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
	})

	t.Run("count", func(t *testing.T) {
		total, err := service.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, total)
	})
}
