package model

import "time"

// Profile is the accumulated per-patient summary built from all of that
// patient's sessions. Identity fields are copied from the first session seen
// for the RUT and never re-merged from later rows; that first-seen behavior
// is part of the contract with the upstream export.
type Profile struct {
	PatientID string `json:"rut"`
	Name      string `json:"nombre"`
	Email     string `json:"correo"`
	Phone     string `json:"celular"`

	FirstVisit    time.Time `json:"primeraVisita"`
	LastVisit     time.Time `json:"ultimaVisita"`
	VisitCount    int       `json:"totalAtenciones"`
	LifetimeSpend float64   `json:"totalGastado"`

	// Distinct service labels in first-seen order. Treated as a set: no
	// duplicates, ordering carries no meaning.
	Services []string `json:"servicios"`
}

// HasService reports whether the profile already carries the service label.
func (p *Profile) HasService(name string) bool {
	for _, s := range p.Services {
		if s == name {
			return true
		}
	}
	return false
}
