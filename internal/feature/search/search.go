// Package search builds structured filter predicates from user-typed search
// words that may mix ordinary characters with bare Korean initial consonants
// (choseong). A bare consonant such as ㄱ stands for "any syllable starting
// with ㄱ", expressed as a half-open codepoint range on the syllable at that
// position.
package search

// Predicate is a filter over a single text column. It is a closed set of
// node types translated to parameterized queries by the persistence layer;
// predicates never carry SQL text themselves.
type Predicate interface {
	predicate()
}

// Contains matches rows whose column contains Substr anywhere in the value.
type Contains struct {
	Column string
	Substr string
}

// SyllableRange matches rows whose rune at the 1-based position Pos falls in
// the half-open range [Low, High).
type SyllableRange struct {
	Column string
	Pos    int
	Low    rune
	High   rune
}

// And is the conjunction of its members, in order.
type And []Predicate

func (Contains) predicate()      {}
func (SyllableRange) predicate() {}
func (And) predicate()           {}

// consonantBounds maps each of the 19 initial consonants to the first
// syllable of its Hangul block and the first syllable of the next block.
// ㅎ has no next block, so 힣 (the last Hangul syllable) caps it as an
// exclusive ceiling.
var consonantBounds = map[rune][2]rune{
	'ㄱ': {'가', '까'},
	'ㄲ': {'까', '나'},
	'ㄴ': {'나', '다'},
	'ㄷ': {'다', '따'},
	'ㄸ': {'따', '라'},
	'ㄹ': {'라', '마'},
	'ㅁ': {'마', '바'},
	'ㅂ': {'바', '빠'},
	'ㅃ': {'빠', '사'},
	'ㅅ': {'사', '싸'},
	'ㅆ': {'싸', '아'},
	'ㅇ': {'아', '자'},
	'ㅈ': {'자', '짜'},
	'ㅉ': {'짜', '차'},
	'ㅊ': {'차', '카'},
	'ㅋ': {'카', '타'},
	'ㅌ': {'타', '파'},
	'ㅍ': {'파', '하'},
	'ㅎ': {'하', '힣'},
}

// isInitialConsonant reports whether r is one of the 19 bare initial
// consonants the builder treats as a fuzzy syllable token.
func isInitialConsonant(r rune) bool {
	_, ok := consonantBounds[r]
	return ok
}

// Build turns word into a predicate over column. Each rune contributes one
// clause, joined left to right: ordinary runes (including full syllables)
// become substring matches, bare initial consonants become positional
// syllable ranges. Build is a pure function of its inputs.
//
// An empty word yields a nil predicate, which the persistence layer treats
// as "match everything". Callers normally skip the search path entirely for
// empty words.
func Build(word, column string) Predicate {
	if word == "" {
		return nil
	}
	runes := []rune(word)
	clauses := make(And, 0, len(runes))
	for i, r := range runes {
		if isInitialConsonant(r) {
			bounds := consonantBounds[r]
			clauses = append(clauses, SyllableRange{
				Column: column,
				Pos:    i + 1,
				Low:    bounds[0],
				High:   bounds[1],
			})
		} else {
			clauses = append(clauses, Contains{Column: column, Substr: string(r)})
		}
	}
	if len(clauses) == 1 {
		return clauses[0]
	}
	return clauses
}
