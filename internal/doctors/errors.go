package doctors

import "errors"

// ErrDoctorNotFound is returned when an identifier resolves to no doctor.
var ErrDoctorNotFound = errors.New("doctor not found")
