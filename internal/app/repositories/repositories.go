// Package repositories implements collection access on top of the key-value
// store. Every operation reads the full collection, mutates it in memory and
// writes the full collection back. That is O(collection) per call, which is
// acceptable at the classroom scale this system targets.
package repositories

import "github.com/kaanyilmaz/placehub/internal/store"

// Repositories is a container for all repository instances
type Repositories struct {
	CompanyRepository      *CompanyRepository
	StudentRepository      *StudentRepository
	RoundRepository        *RoundRepository
	RegistrationRepository *RegistrationRepository
	UserRepository         *UserRepository
}

// NewRepositories creates all repositories sharing one store handle
func NewRepositories(st store.Store) *Repositories {
	return &Repositories{
		CompanyRepository:      NewCompanyRepository(st),
		StudentRepository:      NewStudentRepository(st),
		RoundRepository:        NewRoundRepository(st),
		RegistrationRepository: NewRegistrationRepository(st),
		UserRepository:         NewUserRepository(st),
	}
}
