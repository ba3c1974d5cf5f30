package wordlist

var defaultWords = []string{
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "I", "it", "for", "not", "on", "with",
	"he", "as", "you", "do", "at", "this", "but", "his", "by", "from", "they", "we", "say", "her",
	"she", "or", "an", "will", "my", "one", "all", "would", "there", "their", "what", "so", "up",
	"out", "if", "about", "who", "get", "which", "go", "me", "when", "make", "can", "like", "time",
	"no", "just", "him", "know", "take", "people", "into", "year", "your", "good", "some", "could",
	"them", "see", "other", "than", "then", "now", "look", "only", "come", "over", "think", "also",
	"back", "after", "use", "two", "how", "our", "work", "first", "well", "way", "even", "new",
	"want", "because", "any", "these", "give", "day", "most", "us", "thing", "man", "find", "part",
	"eye", "place", "week", "case", "point", "government", "company", "number", "group", "problem",
	"fact", "leave", "while", "mean", "keep", "student", "great", "seem", "same", "tell", "begin",
	"help", "talk", "where", "turn", "start", "might", "show", "hear", "play", "run", "move", "live",
	"believe", "hold", "bring", "happen", "must", "write", "provide", "sit", "stand", "lose", "pay",
	"meet", "include", "continue", "set", "learn", "change", "lead", "understand", "watch", "follow",
	"stop", "create", "speak", "read", "allow", "add", "spend", "grow", "open", "walk", "win",
	"offer", "remember", "love", "consider", "appear", "buy", "wait", "serve", "die", "send",
	"expect", "build", "stay", "fall", "cut", "reach", "kill", "remain", "suggest", "raise", "pass",
	"sell", "require", "report", "decide", "pull", "return", "explain", "hope", "develop", "carry",
	"break", "receive", "agree", "support", "hit", "produce", "eat", "cover", "catch", "draw",
	"choose", "cause", "listen", "maybe", "until", "without", "probably", "around", "small", "green",
	"special", "difficult", "available", "likely", "short", "single", "medical", "current", "wrong",
	"private", "past", "foreign", "fine", "common", "poor", "natural", "significant", "similar",
	"hot", "dead", "central", "happy", "serious", "ready", "simple", "left", "physical", "general",
	"environmental", "financial", "blue", "democratic", "dark", "various", "entire", "close", "legal",
	"religious", "cold", "final", "main", "huge", "popular", "traditional", "cultural", "choice",
	"high", "big", "large", "particular", "tiny", "enormous",
}

const defaultText = `The shimmering dragonfly hovered over the tranquil pond. Ancient mountains guard secrets
of a time long forgotten. A melancholic melody drifted from the old, forgotten gramophone.
The bustling city market was a kaleidoscope of colors, sounds, and smells. Through the
fog, a lone lighthouse cast a guiding beam for lost sailors. The philosopher pondered the
intricate dance between fate and free will. A child's laughter echoed in the empty
playground, a ghost of happier times. The weathered fisherman mended his nets, his face a
map of the sea. Cryptic symbols adorned the walls of the newly discovered tomb. The scent
of rain on dry earth filled the air, a promise of renewal. A weary traveler sought refuge
from the relentless storm in a deserted cabin. The artist's canvas held a chaotic
explosion of emotions, rendered in oil and acrylic. Stars, like scattered diamonds,
adorned the velvet canvas of the night sky. The old librarian cherished the silent
companionship of his leather-bound books. A forgotten diary revealed the secret love story
of a bygone era. The chef meticulously arranged the dish, transforming food into a work of
art. In the heart of the forest, a hidden waterfall cascaded into a crystal-clear pool.
The politician's speech was a carefully constructed fortress of half-truths and promises.
A sudden gust of wind scattered the autumn leaves like a flurry of colorful confetti. The
detective followed a labyrinthine trail of clues, each one more perplexing than the last.
The scent of jasmine hung heavy in the humid evening air. Time seemed to slow down in the
sleepy, sun-drenched village. The blacksmith's hammer rang out a rhythmic chorus against
the glowing steel. A lone wolf howled at the full moon, its call a lament for its lost
pack. The mathematician found elegance and beauty in the complex simplicity of equations.
From the ashes of defeat, a spark of resilience began to glow. The antique clock ticked
with a solemn, unhurried rhythm, marking the passage of time. A hummingbird, a jeweled
marvel of nature, darted from flower to flower. The decrepit mansion on the hill was
rumored to be haunted by a benevolent spirit. Sunlight streamed through the stained-glass
windows, painting the cathedral floor in vibrant hues. The aroma of freshly baked bread
wafted from the cozy little bakery. A complex network of roots anchored the ancient oak
tree to the earth. The programmer stared at the screen, searching for the single, elusive
bug in a million lines of code. The waves crashed against the rocky shore in a timeless,
powerful rhythm. A flock of geese flew south in a perfect V-formation, a testament to
their instinctual harmony. The historian pieced together the fragments of the past to tell
a coherent story. In the quiet solitude of the desert, one could hear the whisper of the
wind. The gardener tended to her roses with a gentle, nurturing touch. A crackling
fireplace provided a warm and inviting centerpiece to the rustic living room. The
mountaineer stood at the summit, humbled by the breathtaking vista below. A single,
perfect snowflake landed on the child's outstretched mitten.`

// DefaultWords returns a copy of the built-in word list.
func DefaultWords() []string {
	return append([]string(nil), defaultWords...)
}

// DefaultText returns the built-in text corpus split into tokens.
func DefaultText() []string {
	return Tokenize(defaultText)
}
