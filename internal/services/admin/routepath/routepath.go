// Package routepath centralizes the admin panel URL space.
package routepath

const (
	Root = "/"
)

const (
	StaticPrefix = "/static/"
)

const (
	Doctors       = "/doctors"
	DoctorsTable  = "/doctors/table"
	DoctorsCreate = "/doctors/create"
)

const (
	Patients       = "/patients"
	PatientsTable  = "/patients/table"
	PatientsCreate = "/patients/create"
)

const (
	Appointments       = "/appointments"
	AppointmentsTable  = "/appointments/table"
	AppointmentsCreate = "/appointments/create"
	AppointmentsStatus = "/appointments/status"
)

const (
	Treatments       = "/treatments"
	TreatmentsTable  = "/treatments/table"
	TreatmentsCreate = "/treatments/create"
)

const (
	Console    = "/console"
	ConsoleRun = "/console/run"
)
