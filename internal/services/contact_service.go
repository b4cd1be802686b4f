package services

import (
	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
	"hotelbooking/internal/repositories"
	"hotelbooking/internal/utils"
)

type ContactService struct {
	ContactRepo repositories.ContactRepository
	RequestID   string
}

// Submit stores a visitor message. All three fields are required; a partial
// submission is a validation failure, never a silent no-op.
func (s ContactService) Submit(name, email, message string) (models.Contact, error) {
	name = utils.TrimOrEmpty(name)
	email = utils.TrimOrEmpty(email)
	message = utils.TrimOrEmpty(message)

	switch {
	case name == "":
		return models.Contact{}, domain.ValidationError{Field: "name", Msg: "required"}
	case email == "":
		return models.Contact{}, domain.ValidationError{Field: "email", Msg: "required"}
	case message == "":
		return models.Contact{}, domain.ValidationError{Field: "message", Msg: "required"}
	}

	id, err := s.ContactRepo.Create(name, email, message)
	if err != nil {
		return models.Contact{}, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "contact", "submit", "message stored")
	return models.Contact{ID: id, Name: name, Email: email, Message: message}, nil
}
