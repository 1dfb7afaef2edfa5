package config

import (
	"errors"
	"os"
	"strings"
)

// PermissionStub - локальная замена сервиса прав для разработки.
type PermissionStub struct {
	Port        string
	// операции, на которые заглушка всегда отвечает отказом
	DeniedSlugs []string
	UserID      string
	UserName    string
	UserEmail   string
}

const (
	defaultStubUserID   = "00000000-0000-4000-8000-000000000001"
	defaultStubUserName = "Developer"
)

func LoadPermissionStub() (*PermissionStub, error) {
	cfg := &PermissionStub{
		Port:        os.Getenv("PERMISSION_STUB_PORT"),
		DeniedSlugs: splitList(os.Getenv("PERMISSION_STUB_DENIED_SLUGS")),
		UserID:      os.Getenv("PERMISSION_STUB_USER_ID"),
		UserName:    os.Getenv("PERMISSION_STUB_USER_NAME"),
		UserEmail:   os.Getenv("PERMISSION_STUB_USER_EMAIL"),
	}

	if cfg.Port == "" {
		return nil, errors.New("PERMISSION_STUB_PORT is required")
	}
	if cfg.UserID == "" {
		cfg.UserID = defaultStubUserID
	}
	if cfg.UserName == "" {
		cfg.UserName = defaultStubUserName
	}
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
