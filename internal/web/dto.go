package web

import (
	"errors"
	"net/mail"
	"time"
	"unicode/utf8"

	"github.com/assodanse/assoserver/auth/users"
	"github.com/assodanse/assoserver/internal/domain"

	"github.com/google/uuid"
)

var (
	errEmailRequired    = errors.New("l'adresse e-mail est obligatoire")
	errEmailInvalid     = errors.New("l'adresse e-mail est invalide")
	errPasswordRequired = errors.New("le mot de passe est obligatoire")
	errNameRequired     = errors.New("le nom est obligatoire")
	errMessageRequired  = errors.New("le message est obligatoire")
	errMessageTooLong   = errors.New("le message est trop long")
	errTitleRequired    = errors.New("le titre est obligatoire")
	errStartsAtRequired = errors.New("la date de début est obligatoire")
)

const maxContactMessageLen = 4000

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	var err error
	if r.Email == "" {
		err = errors.Join(err, errEmailRequired)
	}
	if r.Password == "" {
		err = errors.Join(err, errPasswordRequired)
	}
	return err
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (r changePasswordRequest) Validate() error {
	var err error
	if r.OldPassword == "" {
		err = errors.Join(err, errPasswordRequired)
	}
	if r.NewPassword == "" {
		err = errors.Join(err, errPasswordRequired)
	}
	return err
}

type eventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"startsAt"`
	Published   bool      `json:"published"`
}

func (r eventRequest) Validate() error {
	var err error
	if r.Title == "" {
		err = errors.Join(err, errTitleRequired)
	}
	if r.StartsAt.IsZero() {
		err = errors.Join(err, errStartsAtRequired)
	}
	return err
}

func (r eventRequest) convertToDomainEvent(id uuid.UUID) domain.Event {
	return domain.Event{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		StartsAt:    r.StartsAt,
		Published:   r.Published,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (r contactRequest) Validate() error {
	var err error
	if r.Name == "" {
		err = errors.Join(err, errNameRequired)
	}
	switch {
	case r.Email == "":
		err = errors.Join(err, errEmailRequired)
	default:
		if _, mailErr := mail.ParseAddress(r.Email); mailErr != nil {
			err = errors.Join(err, errEmailInvalid)
		}
	}
	switch {
	case r.Message == "":
		err = errors.Join(err, errMessageRequired)
	case utf8.RuneCountInString(r.Message) > maxContactMessageLen:
		err = errors.Join(err, errMessageTooLong)
	}
	return err
}

func (r contactRequest) convertToDomainMessage() domain.ContactMessage {
	return domain.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Message: r.Message,
	}
}

type infoRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

func (r infoRequest) Validate() error {
	var err error
	if r.Name == "" {
		err = errors.Join(err, errNameRequired)
	}
	if r.Email != "" {
		if _, mailErr := mail.ParseAddress(r.Email); mailErr != nil {
			err = errors.Join(err, errEmailInvalid)
		}
	}
	return err
}

func (r infoRequest) convertToDomainInfo() domain.AssociationInfo {
	return domain.AssociationInfo{
		Name:        r.Name,
		Description: r.Description,
		Address:     r.Address,
		Email:       r.Email,
		Phone:       r.Phone,
	}
}

type userResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

func convertUser(user users.User) userResponse {
	resp := userResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}
	if !user.LastLogin.IsZero() {
		lastLogin := user.LastLogin
		resp.LastLogin = &lastLogin
	}
	return resp
}

type eventResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"startsAt"`
	Published   bool      `json:"published"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func convertEvent(event domain.Event) eventResponse {
	return eventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		StartsAt:    event.StartsAt,
		Published:   event.Published,
		UpdatedAt:   event.UpdatedAt,
	}
}

func convertEvents(events []domain.Event) []eventResponse {
	converted := make([]eventResponse, 0, len(events))
	for _, event := range events {
		converted = append(converted, convertEvent(event))
	}
	return converted
}

type messageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func convertMessages(msgs []domain.ContactMessage) []messageResponse {
	converted := make([]messageResponse, 0, len(msgs))
	for _, msg := range msgs {
		converted = append(converted, messageResponse{
			ID:        msg.ID,
			Name:      msg.Name,
			Email:     msg.Email,
			Message:   msg.Message,
			Read:      msg.Read,
			CreatedAt: msg.CreatedAt,
		})
	}
	return converted
}

type infoResponse struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func convertInfo(info domain.AssociationInfo) infoResponse {
	return infoResponse{
		Name:        info.Name,
		Description: info.Description,
		Address:     info.Address,
		Email:       info.Email,
		Phone:       info.Phone,
		UpdatedAt:   info.UpdatedAt,
	}
}

type statsResponse struct {
	TotalEvents    int `json:"totalEvents"`
	UpcomingEvents int `json:"upcomingEvents"`
	UnreadMessages int `json:"unreadMessages"`
}
