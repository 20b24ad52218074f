package core

import "encoding/json"

// Card message payload. The platform expects an array of cards serialized
// into the message content.
// https://developer.kookapp.cn/doc/cardmessage

const (
	CardThemePrimary = "primary"
	CardThemeWarning = "warning"

	ModuleTypeHeader  = "header"
	ModuleTypeSection = "section"
	ModuleTypeContext = "context"
	ModuleTypeDivider = "divider"

	ElementTypePlainText = "plain-text"
	ElementTypeKMarkdown = "kmarkdown"
	ElementTypeImage     = "image"
)

type Card struct {
	Type    string       `json:"type"`
	Theme   string       `json:"theme,omitempty"`
	Size    string       `json:"size,omitempty"`
	Modules []CardModule `json:"modules"`
}

type CardModule struct {
	Type     string        `json:"type"`
	Text     *CardElement  `json:"text,omitempty"`
	Elements []CardElement `json:"elements,omitempty"`
}

type CardElement struct {
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
	Src     string `json:"src,omitempty"`
}

func NewCard(theme string) *Card {
	return &Card{Type: "card", Theme: theme, Size: "lg"}
}

func (c *Card) AddHeader(title string) *Card {
	c.Modules = append(c.Modules, CardModule{
		Type: ModuleTypeHeader,
		Text: &CardElement{Type: ElementTypePlainText, Content: title},
	})
	return c
}

func (c *Card) AddSection(kmarkdown string) *Card {
	c.Modules = append(c.Modules, CardModule{
		Type: ModuleTypeSection,
		Text: &CardElement{Type: ElementTypeKMarkdown, Content: kmarkdown},
	})
	return c
}

func (c *Card) AddContext(elements ...CardElement) *Card {
	c.Modules = append(c.Modules, CardModule{
		Type:     ModuleTypeContext,
		Elements: elements,
	})
	return c
}

// Marshal serializes the card as a single-element card list, which is the
// form the message API accepts as content.
func (c *Card) Marshal() (string, error) {
	raw, err := json.Marshal([]*Card{c})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
