package schema

// WaitlistEntryTable represents the 'waitlist.entry' table
type WaitlistEntryTable struct {
	Table         string
	ID            string
	Kind          string
	Email         string
	Name          string
	Surname       string
	MobileNumber  string
	LicenseNumber string
	CreatedAt     string
}

// WaitlistEntry is the schema definition for waitlist.entry
//
// Patient and doctor signups share one table, discriminated by Kind.
// Patients register with an email only; doctors with their name, surname,
// mobile number and medical license number. A partial unique index on
// (email) WHERE kind = 'patient' backs the duplicate-signup detection;
// doctors may re-register freely.
var WaitlistEntry = WaitlistEntryTable{
	Table:         "waitlist.entry",
	ID:            "id",
	Kind:          "kind",
	Email:         "email",
	Name:          "name",
	Surname:       "surname",
	MobileNumber:  "mobilenumber",
	LicenseNumber: "licensenumber",
	CreatedAt:     "createdat",
}

// PatientEmailConstraint is the name of the partial unique index enforcing
// one patient signup per email.
const PatientEmailConstraint = "entry_patient_email_key"

// Columns returns all standard column names
func (t WaitlistEntryTable) Columns() []string {
	return []string{
		t.ID, t.Kind, t.Email, t.Name, t.Surname,
		t.MobileNumber, t.LicenseNumber, t.CreatedAt,
	}
}
