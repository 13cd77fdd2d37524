package wordcloud

import "strings"

// stopWordList mixes common English function words with domain filler
// words that carry no signal in survey answers ("good", "thing", ...).
var stopWordList = []string{
	// function words
	"the", "and", "but", "for", "nor", "yet", "with", "about", "above",
	"after", "again", "against", "all", "also", "among", "any", "are",
	"aren't", "because", "been", "before", "being", "below", "between",
	"both", "can", "cannot", "can't", "could", "couldn't", "did",
	"didn't", "does", "doesn't", "doing", "don", "down", "during",
	"each", "few", "from", "further", "had", "hadn't", "has", "hasn't",
	"have", "haven't", "having", "her", "here", "hers", "herself",
	"him", "himself", "his", "how", "into", "isn't", "its", "itself",
	"just", "more", "most", "much", "myself", "off", "once", "only",
	"other", "our", "ours", "ourselves", "out", "over", "own", "same",
	"she", "should", "shouldn't", "some", "such", "than", "that",
	"their", "theirs", "them", "themselves", "then", "there", "these",
	"they", "this", "those", "through", "too", "under", "until", "upon",
	"very", "was", "wasn't", "were", "weren't", "what", "when", "where",
	"which", "while", "who", "whom", "why", "will", "won't", "would",
	"wouldn't", "you", "your", "yours", "yourself", "yourselves",
	"one", "two", "many", "lot", "lots", "etc", "per", "via", "way",
	"get", "got", "really", "maybe", "quite", "rather", "still",
	// survey filler
	"good", "great", "bad", "nice", "fine", "okay", "thing", "things",
	"stuff", "something", "anything", "everything", "nothing", "none",
	"yes", "yeah", "sure", "overall", "general", "generally", "kind",
	"sort", "bit", "little", "big", "better", "best", "worse", "worst",
	"not", "specified",
}

var stopWords = func() map[string]struct{} {
	set := make(map[string]struct{}, len(stopWordList))
	for _, w := range stopWordList {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}()

func isStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}
