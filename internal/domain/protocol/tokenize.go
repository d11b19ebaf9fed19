package protocol

import (
	"strconv"
	"strings"
)

// token is a whitespace-delimited word with its byte offset, trailing
// sentence punctuation stripped.
type token struct {
	text  string
	start int
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isTrailingPunct(b byte) bool {
	switch b {
	case ',', '.', ';', ':', '!', '?', ')':
		return true
	}
	return false
}

func tokenize(text string) []token {
	var toks []token
	i := 0
	for i < len(text) {
		for i < len(text) && isSpace(text[i]) {
			i++
		}
		if i >= len(text) {
			break
		}
		j := i
		for j < len(text) && !isSpace(text[j]) {
			j++
		}

		word := text[i:j]
		lead := 0
		for lead < len(word) && word[lead] == '(' {
			lead++
		}
		word = word[lead:]
		for len(word) > 0 && isTrailingPunct(word[len(word)-1]) {
			word = word[:len(word)-1]
		}
		if word != "" {
			toks = append(toks, token{text: word, start: i + lead})
		}
		i = j
	}
	return toks
}

// sentences splits on terminal punctuation and line breaks.
func sentences(text string) []string {
	var out []string
	start := 0
	flush := func(end int) {
		if s := strings.TrimSpace(text[start:end]); s != "" {
			out = append(out, s)
		}
	}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.', '!', '?', '\n':
			flush(i)
			start = i + 1
		}
	}
	flush(len(text))
	return out
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
