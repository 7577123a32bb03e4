package textproc

// spanishStopWords is the closed set of high-frequency Spanish function words
// dropped during normalization. Articles, prepositions, conjunctions and the
// most common pronouns; anything longer or rarer stays in the text.
var spanishStopWords = map[string]struct{}{
	"el": {}, "la": {}, "de": {}, "en": {}, "y": {}, "a": {}, "los": {}, "del": {}, "se": {}, "las": {},
	"por": {}, "un": {}, "para": {}, "con": {}, "no": {}, "una": {}, "su": {}, "al": {}, "es": {}, "lo": {},
	"como": {}, "más": {}, "o": {}, "pero": {}, "sus": {}, "le": {}, "ya": {}, "fue": {}, "este": {},
	"ha": {}, "si": {}, "porque": {}, "esta": {}, "son": {}, "entre": {}, "cuando": {}, "muy": {},
	"sin": {}, "sobre": {}, "también": {}, "me": {}, "hasta": {}, "donde": {}, "quien": {}, "desde": {},
	"nos": {}, "durante": {}, "todos": {}, "uno": {}, "les": {}, "ni": {}, "contra": {}, "otros": {},
}

// IsStopWord reports whether the token belongs to the stop-word set.
func IsStopWord(token string) bool {
	_, ok := spanishStopWords[token]
	return ok
}
