package messages

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

type key struct {
	slug   string
	locale string
}

// Provider отдаёт тексты сообщений по slug и языку. Тексты из базы
// перекрывают встроенные английские, неизвестный slug возвращается как есть.
type Provider struct {
	repo          Repository
	defaultLocale string

	mu        sync.RWMutex
	catalogue map[key]string
}

func New(repo Repository, defaultLocale string) *Provider {
	return &Provider{
		repo:          repo,
		defaultLocale: normalizeLocale(defaultLocale),
		catalogue:     make(map[key]string),
	}
}

// Get ищет текст по цепочке языков: запрошенный, язык по умолчанию,
// английский. Для английского встроенные тексты идут сразу после базы,
// иначе каталог только с русскими строками отвечал бы по-русски и на "en".
func (p *Provider) Get(slug, locale string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, candidate := range []string{normalizeLocale(locale), p.defaultLocale, fallbackLocale} {
		if candidate == "" {
			continue
		}
		if value, ok := p.catalogue[key{slug: slug, locale: candidate}]; ok {
			return value
		}
		if candidate == fallbackLocale {
			if value, ok := defaults[slug]; ok {
				return value
			}
		}
	}
	return slug
}

// Refresh целиком заменяет каталог содержимым таблицы messages.
// При ошибке чтения остаётся прежний каталог.
func (p *Provider) Refresh(ctx context.Context) (int, error) {
	rows, err := p.repo.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("messages refresh: %w", err)
	}

	catalogue := make(map[key]string, len(rows))
	for _, row := range rows {
		catalogue[key{slug: row.Slug, locale: normalizeLocale(row.Locale)}] = row.Value
	}

	p.mu.Lock()
	p.catalogue = catalogue
	p.mu.Unlock()

	return len(catalogue), nil
}

// normalizeLocale оставляет только основной язык: "ru-RU" -> "ru".
func normalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "-_"); i >= 0 {
		locale = locale[:i]
	}
	return locale
}
