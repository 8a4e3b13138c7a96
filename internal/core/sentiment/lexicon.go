package sentiment

// lexicon weights polarity words from -4 (strongly negative) to +5 (strongly
// positive).
var lexicon = map[string]int{
	// positive
	"amazing": 4, "awesome": 4, "beautiful": 3, "best": 3, "brilliant": 4,
	"excellent": 3, "exceptional": 4, "fantastic": 4, "outstanding": 5,
	"superb": 5, "wonderful": 4, "perfect": 3, "love": 3, "loved": 3,
	"loves": 3, "lovely": 3, "delight": 3, "delighted": 3, "delightful": 3,
	"enjoy": 2, "enjoyed": 2, "enjoyable": 2, "good": 3, "great": 3,
	"happy": 3, "glad": 3, "pleased": 3, "pleasant": 3, "nice": 3,
	"fine": 2, "fun": 4, "like": 2, "liked": 2, "helpful": 2, "useful": 2,
	"easy": 1, "effective": 2, "efficient": 2, "reliable": 2, "recommend": 2,
	"recommended": 2, "success": 2, "successful": 3, "win": 4, "wins": 4,
	"winner": 4, "benefit": 2, "benefits": 2, "improve": 2, "improved": 2,
	"improvement": 2, "positive": 2, "impressive": 3, "innovative": 2,
	"inspiring": 3, "inspired": 2, "thank": 2, "thanks": 2, "grateful": 3,
	"trust": 1, "trusted": 2, "safe": 1, "secure": 2, "clean": 2, "clear": 1,
	"strong": 2, "favorite": 2, "favourite": 2, "exciting": 3, "excited": 3,
	"hope": 2, "hopeful": 2, "proud": 2, "valuable": 2, "welcome": 2,
	"smart": 1, "support": 2, "supportive": 2, "satisfied": 2, "comfortable": 2,
	"friendly": 2, "kind": 2, "calm": 2, "free": 1, "fresh": 1, "worth": 2,
	"incredible": 4, "remarkable": 2, "thrilled": 5, "joy": 3, "celebrate": 3,

	// negative
	"bad": -3, "worse": -3, "worst": -3, "awful": -3, "terrible": -3,
	"horrible": -3, "poor": -2, "sad": -2, "unhappy": -2, "angry": -3,
	"annoying": -2, "annoyed": -2, "hate": -3, "hated": -3, "hates": -3,
	"disappointing": -2, "disappointed": -2, "disappointment": -2,
	"fail": -2, "failed": -2, "failure": -2, "fails": -2, "broken": -1,
	"problem": -2, "problems": -2, "issue": -1, "issues": -1, "error": -2,
	"errors": -2, "difficult": -1, "hard": -1, "confusing": -2, "confused": -2,
	"slow": -2, "expensive": -2, "useless": -2, "waste": -1, "wasted": -2,
	"risk": -2, "risky": -2, "danger": -2, "dangerous": -2, "harm": -2,
	"harmful": -2, "hurt": -2, "pain": -2, "painful": -2, "fear": -2,
	"afraid": -2, "worry": -3, "worried": -3, "scary": -2, "stress": -1,
	"stressful": -2, "ugly": -3, "boring": -3, "lose": -3, "loss": -3,
	"lost": -3, "weak": -2, "wrong": -2, "unfortunately": -2, "sorry": -1,
	"complain": -2, "complaint": -2, "crisis": -3, "disaster": -2,
	"fraud": -4, "scam": -2, "crap": -3, "damn": -4, "stupid": -2,
	"idiot": -3, "pathetic": -2, "miserable": -3, "nasty": -3, "toxic": -3,
	"kill": -3, "killed": -3, "dead": -3, "die": -3, "abuse": -3,
	"attack": -1, "threat": -2, "violent": -3, "war": -2, "cruel": -3,
}

// stopwords are skipped before lexicon lookup.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "of": {}, "to": {},
	"in": {}, "on": {}, "at": {}, "for": {}, "is": {}, "are": {}, "was": {},
	"were": {}, "it": {}, "this": {}, "that": {}, "with": {}, "as": {},
}

// toxicTriggers flag abusive language regardless of overall polarity.
var toxicTriggers = []string{
	"idiot", "stupid", "moron", "dumb", "shut up", "hate you", "kill yourself",
	"loser", "pathetic", "worthless", "disgusting", "trash", "garbage", "scum",
	"go to hell", "piece of crap", "retard", "imbecile",
}
