package entities

// Message - локализованный текст, который отдаётся клиенту.
type Message struct {
	Slug   string
	Locale string
	Value  string
}
