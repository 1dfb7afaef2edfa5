package order_log

import (
	"github.com/google/uuid"
	"orders/internal/entities"
)

func ToDomain(l *OrderLogDB) *entities.OrderLog {
	if l == nil {
		return nil
	}

	return &entities.OrderLog{
		ID:           l.ID,
		OrderID:      l.OrderID,
		UserID:       l.UserID.UUID,
		PrevStatusID: l.PrevStatusID,
		StatusID:     l.StatusID,
		Variant:      entities.OrderLogVariant(l.Variant),
		Diff:         l.Diff,
		Comment:      l.Comment,
		User: entities.LogUser{
			ID:       l.UserID.UUID,
			Name:     l.UserName,
			LastName: l.UserLastName,
			Email:    l.UserEmail,
			Phone:    l.UserPhone,
		},
		CreatedAt: l.CreatedAt,
	}
}

func ToDomainList(logsDB []OrderLogDB) []entities.OrderLog {
	result := make([]entities.OrderLog, len(logsDB))
	for i := range logsDB {
		result[i] = *ToDomain(&logsDB[i])
	}
	return result
}

func FromDomain(l *entities.OrderLog) *OrderLogDB {
	if l == nil {
		return nil
	}

	return &OrderLogDB{
		ID:           l.ID,
		OrderID:      l.OrderID,
		UserID:       uuid.NullUUID{UUID: l.UserID, Valid: l.UserID != uuid.Nil},
		PrevStatusID: l.PrevStatusID,
		StatusID:     l.StatusID,
		Variant:      l.Variant.String(),
		Diff:         l.Diff,
		Comment:      l.Comment,
		UserName:     l.User.Name,
		UserLastName: l.User.LastName,
		UserEmail:    l.User.Email,
		UserPhone:    l.User.Phone,
		CreatedAt:    l.CreatedAt,
	}
}
