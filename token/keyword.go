package token

import "sort"

// keywords is the sorted keyword table for binary search.
// IMPORTANT: This slice MUST remain sorted alphabetically by text.
// ASCII byte order: uppercase letters (A-Z: 65-90) come before
// underscore (95), which comes before lowercase letters (a-z: 97-122).
//
// 'defined?' is absent on purpose: the trailing '?' is only reachable
// through the predicate-suffix path of the identifier scanner, which
// classifies it without consulting this table.
var keywords = []struct {
	text string
	kind Kind
}{
	{"BEGIN", KeywordBeginUpcase},
	{"END", KeywordEndUpcase},
	{"__ENCODING__", KeywordEncoding},
	{"__FILE__", KeywordFile},
	{"__LINE__", KeywordLine},
	{"alias", KeywordAlias},
	{"and", KeywordAnd},
	{"begin", KeywordBegin},
	{"break", KeywordBreak},
	{"case", KeywordCase},
	{"class", KeywordClass},
	{"def", KeywordDef},
	{"do", KeywordDo},
	{"else", KeywordElse},
	{"elsif", KeywordElsif},
	{"end", KeywordEnd},
	{"ensure", KeywordEnsure},
	{"false", KeywordFalse},
	{"for", KeywordFor},
	{"if", KeywordIf},
	{"in", KeywordIn},
	{"module", KeywordModule},
	{"next", KeywordNext},
	{"nil", KeywordNil},
	{"not", KeywordNot},
	{"or", KeywordOr},
	{"redo", KeywordRedo},
	{"rescue", KeywordRescue},
	{"retry", KeywordRetry},
	{"return", KeywordReturn},
	{"self", KeywordSelf},
	{"super", KeywordSuper},
	{"then", KeywordThen},
	{"true", KeywordTrue},
	{"undef", KeywordUndef},
	{"unless", KeywordUnless},
	{"until", KeywordUntil},
	{"when", KeywordWhen},
	{"while", KeywordWhile},
	{"yield", KeywordYield},
}

// LookupKeyword returns the Kind for a keyword, or (Invalid, false) if
// the text is not a keyword.
func LookupKeyword(text string) (Kind, bool) {
	idx := sort.Search(len(keywords), func(i int) bool {
		return keywords[i].text >= text
	})
	if idx < len(keywords) && keywords[idx].text == text {
		return keywords[idx].kind, true
	}
	return Invalid, false
}
