package dice

import (
	"testing"
)

func tokenStrings(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.String()
	}
	return out
}

func TestParsePostfixOrder(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"(1+2)", []string{"1", "2", "+"}},
		{"2+3*4", []string{"2", "3", "4", "*", "+"}},
		{"1-2*3-4", []string{"1", "2", "3", "*", "-", "4", "-"}},
		{"[2+3*4]^4", []string{"2", "3", "4", "*", "+", "4", "^"}},
		{"2d6*(5d4)", []string{"2d6", "5d4", "*"}},
		{"{1+2}*<3-1>", []string{"1", "2", "+", "3", "1", "-", "*"}},
		{"-2d6", []string{"-2d6"}},
		{"--2", []string{"2"}},
		{"---2d6", []string{"-2d6"}},
		{"3 - -2", []string{"3", "-2", "-"}},
		{"3--2", []string{"3", "-2", "-"}},
		{"3D4", []string{"3d4"}},
		{" 1 + 2 ", []string{"1", "2", "+"}},
		{"2^3^2", []string{"2", "3", "^", "2", "^"}},
		{"007", []string{"7"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			got := tokenStrings(tokens)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestParseOperandFields(t *testing.T) {
	tokens, err := Parse("-12d8")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected one token, got %v", tokens)
	}
	tok := tokens[0]
	if tok.Kind != TokenOperand || tok.Sign != -1 || tok.Count != 12 || tok.Sides != 8 {
		t.Errorf("got %+v, want sign=-1 count=12 sides=8", tok)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		tag   string
	}{
		{"1 2", TagUnexpectedWhitespace},
		{"12  34", TagUnexpectedWhitespace},
		{"1+", TagHangingOperator},
		{"1+ ", TagHangingOperator},
		{"1d", TagDanglingDiceSeparator},
		{"2d +3", TagDanglingDiceSeparator},
		{"(1+2", TagUnbalancedBrackets},
		{"<1+2", TagUnbalancedBrackets},
		{"1+2)", TagUnmatchedCloser},
		{"(1+2]", TagUnmatchedCloser},
		{"2x3", TagUnexpectedCharacter},
		{"d6", TagUnexpectedCharacter},
		{"1+=2", TagUnexpectedCharacter},
		{"-d6", TagEmptyOperand},
		{"1+-d6", TagEmptyOperand},
		{"", TagEmptyOperand},
		{"   ", TagEmptyOperand},
		{"()", TagEmptyOperand},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("expected %s error", tt.tag)
			}
			de, ok := err.(*Error)
			if !ok {
				t.Fatalf("expected *dice.Error, got %T", err)
			}
			if !de.HasTag(tt.tag) {
				t.Errorf("expected tag %s, got %v", tt.tag, de.Tags)
			}
		})
	}
}

func TestParseRejectsBeforeEvaluation(t *testing.T) {
	// A malformed tail must reject the whole expression even though a
	// valid prefix exists.
	inputs := []string{"2d6+", "2d6+1d", "2d6)"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); err == nil {
				t.Errorf("expected parse error for %q", input)
			}
		})
	}
}
