package appointments

import "github.com/careportal/careportal/internal/doctors"

// ErrDoctorNotFound is the only failure Create signals: the referenced
// doctor does not exist in the reference directory. Mutations against an
// unknown appointment id degrade to no-ops instead of erroring.
var ErrDoctorNotFound = doctors.ErrDoctorNotFound
