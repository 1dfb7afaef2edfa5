package entities

import (
	"context"

	"github.com/google/uuid"
)

// Identity - пользователь, которого вернул сервис прав.
type Identity struct {
	ID       uuid.UUID
	Name     string
	LastName string
	Email    string
	Phone    string
}

func (i Identity) LogUser() LogUser {
	return LogUser(i)
}

type Grant struct {
	Allow   bool
	Message string
	User    *Identity
}

// Caller - то, что транспорт знает о вызывающем: токен и язык ответа.
type Caller struct {
	Token  string
	Locale string
}

type callerKey struct{}

func WithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

func CallerFromContext(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(Caller)
	return caller, ok
}
