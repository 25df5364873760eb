package translate

import "testing"

func TestSanitizeResponse(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		target string
		want   string
	}{
		{
			name:   "clean response untouched",
			raw:    "Olá, mundo!",
			target: "Portuguese",
			want:   "Olá, mundo!",
		},
		{
			name:   "strips label echo",
			raw:    "PORTUGUESE TRANSLATION: Olá, mundo!",
			target: "Portuguese",
			want:   "Olá, mundo!",
		},
		{
			name:   "label echo is case-insensitive",
			raw:    "Portuguese Translation: Olá, mundo!",
			target: "Portuguese",
			want:   "Olá, mundo!",
		},
		{
			name:   "label only stripped at start",
			raw:    "Ele disse PORTUGUESE TRANSLATION: em voz alta",
			target: "Portuguese",
			want:   "Ele disse PORTUGUESE TRANSLATION: em voz alta",
		},
		{
			name:   "drops english explanation paragraph",
			raw:    "Olá, mundo!\n\nThis translation maintains the informal tone of the original.",
			target: "Portuguese",
			want:   "Olá, mundo!",
		},
		{
			name:   "drops portuguese explanation paragraph",
			raw:    "Olá, mundo!\n\nEsta tradução está de acordo com o estilo das referências.",
			target: "Portuguese",
			want:   "Olá, mundo!",
		},
		{
			name:   "drops everything after the lead-in",
			raw:    "Olá!\n\nThe translation is concise.\n\nMore trailing commentary.",
			target: "Portuguese",
			want:   "Olá!",
		},
		{
			name:   "keeps multi-line translations",
			raw:    "Primeira linha.\nSegunda linha.",
			target: "Portuguese",
			want:   "Primeira linha.\nSegunda linha.",
		},
		{
			name:   "trims surrounding whitespace",
			raw:    "  \n Olá! \n ",
			target: "Portuguese",
			want:   "Olá!",
		},
		{
			name:   "empty response stays empty",
			raw:    "   ",
			target: "Portuguese",
			want:   "",
		},
		{
			name:   "label echo plus explanation",
			raw:    "SPANISH TRANSLATION:\nHola.\n\nAdditionally, I kept the greeting short.",
			target: "Spanish",
			want:   "Hola.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeResponse(tt.raw, tt.target); got != tt.want {
				t.Errorf("SanitizeResponse(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
