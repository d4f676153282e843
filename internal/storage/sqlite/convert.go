package sqlite

import (
	"github.com/assodanse/assoserver/gen/model"
	"github.com/assodanse/assoserver/internal/domain"

	"github.com/google/uuid"
)

func convertEvent(event model.Events) (domain.Event, error) {
	id, err := uuid.Parse(event.ID)
	if err != nil {
		return domain.Event{}, err
	}
	return domain.Event{
		ID:          id,
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		StartsAt:    event.StartsAt,
		Published:   event.Published,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}, nil
}

func convertEvents(events []model.Events) ([]domain.Event, error) {
	converted := make([]domain.Event, 0, len(events))
	for _, event := range events {
		e, err := convertEvent(event)
		if err != nil {
			return nil, err
		}
		converted = append(converted, e)
	}
	return converted, nil
}

func convertEventFromDomain(event domain.Event) model.Events {
	return model.Events{
		ID:          event.ID.String(),
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		StartsAt:    event.StartsAt,
		Published:   event.Published,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}

func convertMessage(msg model.ContactMessages) (domain.ContactMessage, error) {
	id, err := uuid.Parse(msg.ID)
	if err != nil {
		return domain.ContactMessage{}, err
	}
	return domain.ContactMessage{
		ID:        id,
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Message,
		Read:      msg.Read,
		CreatedAt: msg.CreatedAt,
	}, nil
}

func convertMessages(msgs []model.ContactMessages) ([]domain.ContactMessage, error) {
	converted := make([]domain.ContactMessage, 0, len(msgs))
	for _, msg := range msgs {
		m, err := convertMessage(msg)
		if err != nil {
			return nil, err
		}
		converted = append(converted, m)
	}
	return converted, nil
}

func convertMessageFromDomain(msg domain.ContactMessage) model.ContactMessages {
	return model.ContactMessages{
		ID:        msg.ID.String(),
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Message,
		Read:      msg.Read,
		CreatedAt: msg.CreatedAt,
	}
}

func convertInfo(info model.AssociationInfo) domain.AssociationInfo {
	return domain.AssociationInfo{
		Name:        info.Name,
		Description: info.Description,
		Address:     info.Address,
		Email:       info.Email,
		Phone:       info.Phone,
		UpdatedAt:   info.UpdatedAt,
	}
}

func convertInfoFromDomain(info domain.AssociationInfo) model.AssociationInfo {
	return model.AssociationInfo{
		ID:          infoRowID,
		Name:        info.Name,
		Description: info.Description,
		Address:     info.Address,
		Email:       info.Email,
		Phone:       info.Phone,
		UpdatedAt:   info.UpdatedAt,
	}
}
