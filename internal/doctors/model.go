package doctors

// Doctor is reference data from the appointment store's perspective: it is
// read at booking time and embedded into appointments as a snapshot, so later
// profile edits never rewrite history.
type Doctor struct {
	ID             string   `json:"id"`
	PublicID       string   `json:"public_id,omitempty"`
	Name           string   `json:"name"`
	Specialty      string   `json:"specialty"`
	Location       string   `json:"location"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"review_count"`
	Image          string   `json:"image,omitempty"`
	About          string   `json:"about,omitempty"`
	SubSpecialties []string `json:"sub_specialties,omitempty"`

	// Availability maps an ISO calendar date ("2024-08-15") to the ordered
	// slot labels offered that day. Slot labels are opaque strings such as
	// "09:00 AM"; nothing parses them as times.
	Availability map[string][]string `json:"availability,omitempty"`
}

// Clone returns a deep copy suitable for embedding as a snapshot.
func (d *Doctor) Clone() Doctor {
	out := *d
	if d.SubSpecialties != nil {
		out.SubSpecialties = append([]string(nil), d.SubSpecialties...)
	}
	if d.Availability != nil {
		out.Availability = make(map[string][]string, len(d.Availability))
		for date, slots := range d.Availability {
			out.Availability[date] = append([]string(nil), slots...)
		}
	}
	return out
}

// SlotsOn returns the slot labels the doctor offers on the given date.
func (d *Doctor) SlotsOn(date string) []string {
	if d.Availability == nil {
		return nil
	}
	return d.Availability[date]
}
