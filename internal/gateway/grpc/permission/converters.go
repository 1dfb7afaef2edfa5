package permission

import (
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/structpb"
	"orders/internal/entities"
)

func toRequest(slug, token string) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"slug":  slug,
		"token": token,
	})
}

// toGrant разбирает ответ {allow, message, user{id, name, lastName, email, phone}}.
func toGrant(resp *structpb.Struct) (entities.Grant, error) {
	if resp == nil {
		return entities.Grant{}, ErrInvalidResponse
	}

	fields := resp.GetFields()
	allow, ok := fields["allow"]
	if !ok {
		return entities.Grant{}, fmt.Errorf("%w: allow is missing", ErrInvalidResponse)
	}

	grant := entities.Grant{
		Allow:   allow.GetBoolValue(),
		Message: fields["message"].GetStringValue(),
	}

	userValue, ok := fields["user"]
	if !ok || userValue.GetStructValue() == nil {
		return grant, nil
	}

	user, err := toIdentity(userValue.GetStructValue())
	if err != nil {
		return entities.Grant{}, err
	}
	grant.User = user
	return grant, nil
}

func toIdentity(s *structpb.Struct) (*entities.Identity, error) {
	fields := s.GetFields()

	identity := &entities.Identity{
		Name:     fields["name"].GetStringValue(),
		LastName: fields["lastName"].GetStringValue(),
		Email:    fields["email"].GetStringValue(),
		Phone:    fields["phone"].GetStringValue(),
	}

	if rawID := fields["id"].GetStringValue(); rawID != "" {
		id, err := uuid.Parse(rawID)
		if err != nil {
			return nil, fmt.Errorf("%w: user id: %v", ErrInvalidResponse, err)
		}
		identity.ID = id
	}
	return identity, nil
}
