package core

import (
	"encoding/json"
	"testing"
)

func TestCardMarshal(t *testing.T) {
	card := NewCard(CardThemeWarning).
		AddHeader("相似指令提示").
		AddSection("**.help**").
		AddContext(
			CardElement{Type: ElementTypeImage, Src: "https://example.com/a.png"},
			CardElement{Type: ElementTypeKMarkdown, Content: "触发指令：.hepl"},
		)

	raw, err := card.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded []Card
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("content is not a card list: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 card, got %d", len(decoded))
	}

	got := decoded[0]
	if got.Type != "card" || got.Theme != CardThemeWarning || got.Size != "lg" {
		t.Errorf("unexpected card envelope: %+v", got)
	}
	if len(got.Modules) != 3 {
		t.Fatalf("expected 3 modules, got %d", len(got.Modules))
	}
	if got.Modules[0].Type != ModuleTypeHeader || got.Modules[0].Text.Content != "相似指令提示" {
		t.Errorf("unexpected header module: %+v", got.Modules[0])
	}
	if got.Modules[1].Text.Type != ElementTypeKMarkdown {
		t.Errorf("section text should be kmarkdown, got %q", got.Modules[1].Text.Type)
	}
	if len(got.Modules[2].Elements) != 2 {
		t.Errorf("expected 2 context elements, got %d", len(got.Modules[2].Elements))
	}
}
