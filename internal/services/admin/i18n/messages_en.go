package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, "nav.dashboard", "Dashboard")
	message.SetString(lang, "nav.doctors", "Doctors")
	message.SetString(lang, "nav.patients", "Patients")
	message.SetString(lang, "nav.appointments", "Appointments")
	message.SetString(lang, "nav.treatments", "Treatments")
	message.SetString(lang, "nav.console", "SQL Console")

	message.SetString(lang, "title.dashboard", "Dashboard")
	message.SetString(lang, "title.doctors", "Doctors")
	message.SetString(lang, "title.patients", "Patients")
	message.SetString(lang, "title.appointments", "Appointments")
	message.SetString(lang, "title.treatments", "Treatments")
	message.SetString(lang, "title.console", "SQL Console")

	message.SetString(lang, "dashboard.doctors", "Doctors")
	message.SetString(lang, "dashboard.patients", "Patients")
	message.SetString(lang, "dashboard.appointments", "Appointments")
	message.SetString(lang, "dashboard.treatments", "Treatments")
	message.SetString(lang, "dashboard.scheduled", "Scheduled visits")
	message.SetString(lang, "dashboard.revenue", "Revenue")
	message.SetString(lang, "dashboard.recent", "Recent appointments")

	message.SetString(lang, "doctors.add", "Add new doctor")
	message.SetString(lang, "doctors.first_name", "First name")
	message.SetString(lang, "doctors.specialty", "Specialty")
	message.SetString(lang, "doctors.hourly_rate", "Hourly rate ($)")
	message.SetString(lang, "doctors.save", "Save doctor")

	message.SetString(lang, "patients.register", "Register new patient")
	message.SetString(lang, "patients.name", "Full name")
	message.SetString(lang, "patients.phone", "Phone")
	message.SetString(lang, "patients.save", "Register patient")

	message.SetString(lang, "appointments.book", "Book new appointment")
	message.SetString(lang, "appointments.patient", "Patient")
	message.SetString(lang, "appointments.doctor", "Doctor")
	message.SetString(lang, "appointments.date", "Appointment date")
	message.SetString(lang, "appointments.status", "Status")
	message.SetString(lang, "appointments.save", "Book appointment")
	message.SetString(lang, "appointments.update_status", "Update status")
	message.SetString(lang, "appointments.appointment", "Appointment")
	message.SetString(lang, "appointments.apply", "Apply")

	message.SetString(lang, "treatments.record", "Add treatment (after appointment)")
	message.SetString(lang, "treatments.appointment", "Appointment")
	message.SetString(lang, "treatments.service", "Service name")
	message.SetString(lang, "treatments.cost", "Cost ($)")
	message.SetString(lang, "treatments.save", "Record treatment")

	message.SetString(lang, "console.query", "Query")
	message.SetString(lang, "console.run", "Run query")
	message.SetString(lang, "console.warning", "Danger zone - full SQL access against the live database.")
	message.SetString(lang, "console.rows_returned", "%d rows returned.")

	message.SetString(lang, "table.empty", "No records yet.")

	message.SetString(lang, "error.required_fields", "All required fields must be filled in.")
	message.SetString(lang, "error.invalid_date", "Appointment date must use the yyyy-mm-dd format.")
	message.SetString(lang, "error.invalid_selection", "Select a valid entry from the list.")
	message.SetString(lang, "error.invalid_number", "Enter a valid non-negative number.")
	message.SetString(lang, "error.database", "Database error: %v")

	message.SetString(lang, "success.doctor_added", "Doctor added!")
	message.SetString(lang, "success.patient_registered", "Patient %s registered!")
	message.SetString(lang, "success.appointment_booked", "Appointment booked!")
	message.SetString(lang, "success.status_updated", "Appointment status updated!")
	message.SetString(lang, "success.treatment_recorded", "Treatment recorded!")
}
