// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

// Package waitlist implements the pre-launch signup lists.
//
// Patients and doctors register through separate public forms but land in
// one table, discriminated by kind. Patients sign up with an email only and
// are protected against duplicate signups; doctors provide their contact
// and license details and may submit more than once.
package waitlist

import "time"

// Kind discriminates the two signup audiences.
type Kind string

const (
	KindPatient Kind = "patient"
	KindDoctor  Kind = "doctor"
)

// Entry is one waitlist signup.
//
// Email is populated for patients; Name, Surname, MobileNumber and
// LicenseNumber for doctors. The unused columns stay empty strings.
type Entry struct {
	ID            string    `json:"id"`
	Kind          Kind      `json:"kind"`
	Email         string    `json:"email,omitempty"`
	Name          string    `json:"name,omitempty"`
	Surname       string    `json:"surname,omitempty"`
	MobileNumber  string    `json:"mobile_number,omitempty"`
	LicenseNumber string    `json:"license_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Filter restricts a waitlist listing to one audience; empty means all.
type Filter struct {
	Kind Kind
}

// Global field names for validation
const (
	FieldEmail         = "email"
	FieldName          = "name"
	FieldSurname       = "surname"
	FieldMobileNumber  = "mobile_number"
	FieldLicenseNumber = "license_number"
	FieldKind          = "kind"
)
