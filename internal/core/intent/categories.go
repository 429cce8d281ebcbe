package intent

import (
	"strings"

	"github.com/ewilliams-labs/segue/internal/core/domain"
)

// categoryRule pairs a predicate over the lower-cased message with the
// category it produces. Rules run in order and the first hit wins, so
// combination rules must stay ahead of the single-dimension rules they
// overlap with ("sad bollywood" has to beat both "sad" and "bollywood").
type categoryRule struct {
	name  string
	hint  string
	match func(string) bool
	terms []string
}

func (r categoryRule) build() domain.ClassifiedRequest {
	return domain.ClassifiedRequest{
		Kind:        domain.KindCategory,
		Category:    r.name,
		SearchTerms: r.terms,
		DisplayHint: r.hint,
	}
}

func anyWord(words ...string) func(string) bool {
	return func(msg string) bool {
		for _, w := range words {
			if strings.Contains(msg, w) {
				return true
			}
		}
		return false
	}
}

func has(word string) func(string) bool {
	return func(msg string) bool { return strings.Contains(msg, word) }
}

func both(a, b func(string) bool) func(string) bool {
	return func(msg string) bool { return a(msg) && b(msg) }
}

// Mood and region vocabularies shared by the combination rules.
var (
	koreanWords    = anyWord("kpop", "k-pop", "korean")
	kpopOnlyWords  = anyWord("kpop", "k-pop")
	energeticWords = anyWord("energetic", "pump", "hype", "intense")
	romanticWords  = anyWord("romantic", "love")
)

var categoryRules = []categoryRule{
	// Mood x region combinations.
	{
		name:  "happy_bollywood",
		hint:  "happy Bollywood music",
		match: both(has("happy"), has("bollywood")),
		terms: []string{
			"happy bollywood songs", "upbeat hindi music", "bollywood dance",
			"cheerful hindi", "joyful bollywood", "bollywood party songs",
		},
	},
	{
		name:  "happy_kpop",
		hint:  "happy K-pop music",
		match: both(has("happy"), koreanWords),
		terms: []string{
			"happy kpop", "upbeat korean songs", "cheerful kpop",
			"bts happy songs", "twice upbeat", "kpop dance songs",
		},
	},
	{
		name:  "happy_afrobeats",
		hint:  "happy Afrobeats music",
		match: both(has("happy"), anyWord("afrobeats", "african")),
		terms: []string{
			"happy afrobeats", "upbeat african music", "joyful afrobeats",
			"afrobeats dance", "cheerful nigerian music", "party afrobeats",
		},
	},
	{
		name:  "happy_latin",
		hint:  "happy Latin music",
		match: both(has("happy"), has("latin")),
		terms: []string{
			"happy latin music", "upbeat reggaeton", "joyful salsa",
			"latin dance songs", "cheerful spanish music", "party latin",
		},
	},
	{
		name:  "sad_bollywood",
		hint:  "sad Bollywood music",
		match: both(has("sad"), has("bollywood")),
		terms: []string{
			"sad bollywood songs", "emotional hindi music", "bollywood heartbreak",
			"melancholic hindi", "sad arijit singh", "bollywood breakup songs",
		},
	},
	{
		name:  "sad_kpop",
		hint:  "sad K-pop music",
		match: both(has("sad"), koreanWords),
		terms: []string{
			"sad kpop", "emotional korean songs", "melancholic kpop",
			"bts sad songs", "iu emotional", "kpop ballads",
		},
	},
	{
		name:  "sad_indie",
		hint:  "sad indie music",
		match: both(has("sad"), has("indie")),
		terms: []string{
			"sad indie music", "melancholic indie", "emotional indie rock",
			"indie heartbreak", "sad alternative", "indie folk sad",
		},
	},
	{
		name:  "chill_kpop",
		hint:  "chill K-pop music",
		match: both(has("chill"), koreanWords),
		terms: []string{
			"chill kpop", "relaxing korean music", "calm kpop",
			"lofi kpop", "chill korean r&b", "peaceful kpop",
		},
	},
	{
		name:  "chill_bollywood",
		hint:  "chill Bollywood music",
		match: both(has("chill"), has("bollywood")),
		terms: []string{
			"chill bollywood", "relaxing hindi music", "calm bollywood",
			"peaceful hindi songs", "bollywood acoustic", "soft bollywood",
		},
	},
	{
		name:  "chill_afrobeats",
		hint:  "chill Afrobeats music",
		match: both(has("chill"), has("afrobeats")),
		terms: []string{
			"chill afrobeats", "relaxing african music", "smooth afrobeats",
			"calm nigerian music", "afrobeats r&b", "mellow afrobeats",
		},
	},
	{
		name:  "energetic_bollywood",
		hint:  "energetic Bollywood music",
		match: both(energeticWords, has("bollywood")),
		terms: []string{
			"energetic bollywood", "pump up hindi songs", "high energy bollywood",
			"bollywood workout songs", "intense hindi music", "hype bollywood",
		},
	},
	{
		name:  "energetic_kpop",
		hint:  "energetic K-pop music",
		match: both(energeticWords, kpopOnlyWords),
		terms: []string{
			"energetic kpop", "pump up korean songs", "high energy kpop",
			"kpop workout songs", "intense kpop", "hype korean music",
		},
	},
	{
		name:  "romantic_bollywood",
		hint:  "romantic Bollywood music",
		match: both(romanticWords, has("bollywood")),
		terms: []string{
			"romantic bollywood songs", "love hindi music", "bollywood romantic",
			"hindi love songs", "romantic arijit singh", "bollywood couples songs",
		},
	},
	{
		name:  "romantic_kpop",
		hint:  "romantic K-pop music",
		match: both(romanticWords, kpopOnlyWords),
		terms: []string{
			"romantic kpop", "love korean songs", "kpop love ballads",
			"romantic korean music", "kpop couples songs", "korean love songs",
		},
	},

	// Regional music traditions.
	{
		name:  "bengali",
		hint:  "Bengali and Bangla music",
		match: anyWord("bengali", "bangla", "bengali song", "bengali music", "bangladesh music"),
		terms: []string{
			"bengali songs", "bangla music", "bengali folk", "bengali modern",
			"rabindra sangeet", "nazrul geeti", "bengali romantic", "bengali sad",
			"kishore kumar bengali", "lata mangeshkar bengali", "hemanta mukherjee",
			"manna dey bengali", "sandhya mukherjee", "shyama sangeet",
			"bengali adhunik gan", "bengali basic", "bengali movie songs",
			"calcutta bengali", "dhaka bengali", "bengali classical",
			"bengali devotional", "durga puja songs", "kali puja songs",
			"poila boishakh songs", "bengali new year", "bangla band",
			"fossils band", "cactus band", "chandrabindoo", "bhoomi band",
		},
	},
	{
		name:  "tamil",
		hint:  "Tamil and Kollywood music",
		match: anyWord("tamil", "tamil song", "tamil music", "kollywood", "chennai music"),
		terms: []string{
			"tamil songs", "kollywood music", "tamil movie songs", "tamil folk",
			"a r rahman tamil", "ilaiyaraaja", "harris jayaraj", "anirudh ravichander",
			"yuvan shankar raja", "tamil romantic", "tamil melody", "tamil kuthu",
			"tamil classical", "carnatic music", "tamil devotional", "murugan songs",
			"tamil gaana", "chennai gana", "tamil rap", "hip hop tamizha",
			"tamil independent", "tamil indie", "thalapathy songs", "ajith songs",
			"suriya songs", "dhanush songs", "tamil latest", "tamil hits",
		},
	},
	{
		name:  "telugu",
		hint:  "Telugu and Tollywood music",
		match: anyWord("telugu", "telugu song", "telugu music", "tollywood", "hyderabad music"),
		terms: []string{
			"telugu songs", "tollywood music", "telugu movie songs", "telugu folk",
			"devi sri prasad", "thaman", "mickey j meyer", "gopi sundar telugu",
			"telugu romantic", "telugu melody", "telugu mass", "telugu classical",
			"annamayya songs", "tyagaraja kritis telugu", "telugu devotional",
			"telugu folk songs", "telugu village songs", "telugu indie",
			"pawan kalyan songs", "mahesh babu songs", "ram charan songs",
			"allu arjun songs", "jr ntr songs", "telugu latest", "telugu hits",
		},
	},
	{
		name:  "punjabi",
		hint:  "Punjabi and Bhangra music",
		match: anyWord("punjabi", "punjabi song", "punjabi music", "bhangra", "punjab music"),
		terms: []string{
			"punjabi songs", "bhangra music", "punjabi folk", "punjabi pop",
			"diljit dosanjh", "gurdas maan", "babbu maan", "ammy virk",
			"hardy sandhu", "guru randhawa", "sidhu moose wala", "karan aujla",
			"punjabi romantic", "punjabi sad", "punjabi party", "punjabi dhol",
			"punjabi classical", "gurbani", "punjabi devotional", "punjabi rap",
			"punjabi hip hop", "punjabi indie", "punjabi latest", "punjabi hits",
			"pollywood music", "punjabi movie songs", "sufi punjabi",
		},
	},
	{
		name:  "afrobeats",
		hint:  "Afrobeats and African music",
		match: anyWord("afrobeats", "afro beats", "african", "nigerian", "ghana music", "afro music", "african song"),
		terms: []string{
			"afrobeats", "afro beats", "nigerian music", "ghana music", "african music",
			"burna boy", "wizkid", "davido", "tiwa savage", "yemi alade",
			"mr eazi", "tekno", "runtown", "patoranking", "stonebwoy",
			"shatta wale", "sarkodie", "kcee", "flavour", "phyno",
			"afro pop", "afro fusion", "afro trap", "afro house", "amapiano",
			"highlife", "juju music", "fuji music", "african drums",
			"west african music", "east african music", "south african music",
			"kenyan music", "ethiopian music", "congolese music", "soukous",
		},
	},
	{
		name:  "east_african",
		hint:  "East African and Swahili music",
		match: anyWord("kenyan", "kenya music", "east african", "swahili music", "bongo flava"),
		terms: []string{
			"kenyan music", "bongo flava", "swahili music", "east african music",
			"diamond platnumz", "rayvanny", "harmonize", "ali kiba", "vanessa mdee",
			"sauti sol", "akothee", "bahati", "willy paul", "nyashinski",
			"tanzanian music", "ugandan music", "rwandan music", "ethiopian music",
			"amharic music", "oromo music", "taarab music", "benga music",
			"kapuka music", "genge music", "afro zoom", "singeli",
		},
	},
	{
		name:  "caribbean",
		hint:  "Reggae and Caribbean music",
		match: anyWord("reggae", "jamaican", "caribbean", "dancehall", "soca", "calypso"),
		terms: []string{
			"reggae music", "jamaican music", "caribbean music", "dancehall",
			"bob marley", "jimmy cliff", "toots hibbert", "burning spear",
			"shaggy", "sean paul", "beenie man", "bounty killer", "vybz kartel",
			"chronixx", "protoje", "koffee", "spice dancehall", "popcaan",
			"soca music", "calypso music", "trinidad music", "barbados music",
			"steel drum", "carnival music", "mento music", "ska music",
			"rocksteady", "roots reggae", "dub music", "ragga music",
		},
	},
	{
		name:  "brazilian",
		hint:  "Brazilian and Portuguese music",
		match: anyWord("brazilian", "brazil music", "portuguese music", "bossa nova", "samba", "forró"),
		terms: []string{
			"brazilian music", "bossa nova", "samba", "forró", "mpb",
			"anitta", "ludmilla", "wesley safadão", "gusttavo lima", "marília mendonça",
			"caetano veloso", "gilberto gil", "chico buarque", "maria bethânia",
			"tropicália", "axé music", "pagode", "funk carioca", "brazilian funk",
			"sertanejo", "brazilian pop", "brazilian rock", "brazilian hip hop",
			"baião", "frevo", "choro", "maracatu", "lambada",
		},
	},
	{
		name:  "hindi_bollywood",
		hint:  "Hindi Bollywood music",
		match: anyWord("hindi", "bollywood", "indian music", "hindi song"),
		terms: []string{
			"bollywood music", "hindi songs", "hindi movie songs", "bollywood hits",
			"a r rahman", "arijit singh", "shreya ghoshal", "lata mangeshkar",
			"kishore kumar", "mohammed rafi", "asha bhosle", "sonu nigam",
			"atif aslam", "rahat fateh ali khan", "mohit chauhan", "armaan malik",
			"sunidhi chauhan", "shaan", "kk singer", "udit narayan",
			"hindi romantic songs", "bollywood dance", "hindi pop",
			"indian classical", "qawwali", "devotional hindi", "bollywood old",
			"bollywood new", "hindi indie", "bollywood item songs",
		},
	},
	{
		name:  "anime_japanese",
		hint:  "Japanese anime or J-pop music",
		match: anyWord("anime", "japanese", "jpop", "j-pop", "otaku", "weeb", "manga"),
		terms: []string{
			"japanese anime opening", "anime soundtrack", "jpop", "japanese music",
			"j-rock", "japanese electronic", "anime ost", "naruto opening",
			"studio ghibli", "japanese indie", "visual kei", "shibuya-kei",
			"japanese punk", "japanese metal", "vocaloid", "japanese folk",
		},
	},
	{
		name:  "kpop",
		hint:  "K-pop or Korean music",
		match: anyWord("kpop", "k-pop", "korean", "bts", "blackpink", "twice"),
		terms: []string{
			"kpop", "korean pop", "korean music", "k-indie", "korean rock",
			"korean hip hop", "korean ballad", "korean electronic", "korean r&b",
			"korean folk", "korean alternative", "korean punk", "k-rock",
		},
	},

	// Broad genres.
	{
		name:  "rock",
		hint:  "rock music",
		match: anyWord("rock", "metal", "punk", "grunge", "alternative"),
		terms: []string{
			"rock music", "alternative rock", "indie rock", "classic rock",
			"progressive rock", "punk rock", "grunge", "post-rock",
			"metal", "hard rock", "soft rock", "psychedelic rock",
			"garage rock", "folk rock", "blues rock", "arena rock",
		},
	},
	{
		name:  "hiphop",
		hint:  "hip-hop or rap music",
		match: anyWord("rap", "hip hop", "hip-hop", "trap", "drill"),
		terms: []string{
			"hip hop", "rap music", "hip-hop", "trap music", "drill rap",
			"old school hip hop", "conscious rap", "gangsta rap", "mumble rap",
			"underground hip hop", "boom bap", "trap beats", "rap battles",
			"freestyle rap", "east coast rap", "west coast rap", "southern rap",
		},
	},
	{
		name:  "pop",
		hint:  "pop music",
		match: anyWord("pop", "mainstream", "radio", "chart", "hits"),
		terms: []string{
			"pop music", "mainstream pop", "indie pop", "synth pop", "dance pop",
			"electropop", "pop rock", "teen pop", "adult contemporary",
			"power pop", "art pop", "chamber pop", "dream pop", "pop punk",
		},
	},
	{
		name:  "electronic",
		hint:  "electronic and dance music",
		match: anyWord("electronic", "edm", "techno", "house", "dubstep"),
		terms: []string{
			"electronic music", "edm", "techno", "house music", "dubstep",
			"trance", "drum and bass", "ambient electronic", "chillwave",
			"synthwave", "future bass", "deep house", "progressive house",
			"electro house", "minimal techno", "acid house", "breakbeat",
		},
	},

	// Niche and experimental.
	{
		name:  "post_rock",
		hint:  "post-rock and epic instrumental music",
		match: anyWord("post-rock", "post rock", "instrumental rock", "epic instrumental"),
		terms: []string{
			"post-rock", "instrumental rock", "epic instrumental", "cinematic rock",
			"godspeed you black emperor", "explosions in the sky", "this will destroy you",
			"mono", "russian circles", "sigur ros", "epic guitar", "atmospheric rock",
		},
	},
	{
		name:  "ambient",
		hint:  "ambient and atmospheric music",
		match: anyWord("ambient", "atmospheric", "soundscape", "drone", "minimal"),
		terms: []string{
			"ambient music", "atmospheric music", "drone music", "soundscape",
			"brian eno", "tim hecker", "william basinski", "stars of the lid",
			"minimal ambient", "dark ambient", "field recordings", "sound art",
			"new age", "meditation music", "space music", "ethereal ambient",
		},
	},
	{
		name:  "shoegaze",
		hint:  "shoegaze and dream pop music",
		match: anyWord("shoegaze", "dream pop", "ethereal", "wall of sound"),
		terms: []string{
			"shoegaze", "dream pop", "my bloody valentine", "slowdive", "ride",
			"cocteau twins", "beach house", "mazzy star", "ethereal wave",
			"noise pop", "wall of sound", "reverb heavy", "atmospheric pop",
		},
	},
	{
		name:  "mainstream",
		hint:  "mainstream hits and chart toppers",
		match: anyWord("mainstream", "chart hits", "billboard", "radio hits", "viral"),
		terms: []string{
			"taylor swift", "drake", "billie eilish", "post malone", "ariana grande",
			"the weeknd", "dua lipa", "olivia rodrigo", "harry styles", "bad bunny",
			"chart hits", "billboard top", "mainstream pop", "radio hits", "viral hits",
			"trending songs", "popular music", "hit songs", "top 40",
		},
	},
	{
		name:  "indie",
		hint:  "indie and alternative discoveries",
		match: anyWord("indie", "underground", "alternative", "experimental", "art rock"),
		terms: []string{
			"phoebe bridgers", "tame impala", "mac miller", "clairo", "boy pablo",
			"rex orange county", "beach house", "vampire weekend", "arctic monkeys",
			"indie rock", "indie pop", "indie folk", "indie electronic", "bedroom pop",
			"dream pop", "art rock", "experimental indie", "lo-fi indie", "indie sleaze",
		},
	},

	// Decades.
	{
		name:  "seventies",
		hint:  "1970s music and disco era hits",
		match: anyWord("70s", "1970s", "seventies", "disco era", "classic rock era"),
		terms: []string{
			"70s hits", "1970s music", "seventies", "disco music", "classic rock 70s",
			"funk 70s", "soul 70s", "psychedelic rock", "progressive rock 70s",
			"folk rock 70s", "hard rock 70s", "glam rock", "punk 70s", "reggae 70s",
		},
	},
	{
		name:  "eighties",
		hint:  "1980s new wave and synth pop",
		match: anyWord("80s", "1980s", "eighties", "new wave", "synth pop"),
		terms: []string{
			"80s hits", "1980s music", "eighties", "new wave", "synth pop",
			"post-punk", "new romantic", "hair metal", "glam metal", "freestyle",
			"electronic 80s", "pop rock 80s", "alternative 80s", "dance 80s",
		},
	},
	{
		name:  "nineties",
		hint:  "1990s grunge and alternative rock",
		match: anyWord("90s", "1990s", "nineties", "grunge", "alternative rock"),
		terms: []string{
			"90s hits", "1990s music", "nineties", "grunge", "alternative rock 90s",
			"britpop", "trip-hop", "electronic 90s", "hip hop 90s", "r&b 90s",
			"indie rock 90s", "shoegaze 90s", "post-rock 90s", "rave music",
		},
	},
	{
		name:  "two_thousands",
		hint:  "2000s emo and pop punk era",
		match: anyWord("2000s", "early 2000s", "y2k", "millennium", "emo"),
		terms: []string{
			"2000s hits", "early 2000s", "y2k music", "millennium music", "emo",
			"pop punk 2000s", "nu metal", "garage rock revival", "crunk",
			"teen pop 2000s", "r&b 2000s", "indie rock 2000s", "post-hardcore",
		},
	},

	// Emotions.
	{
		name:  "happy",
		hint:  "happy and uplifting music",
		match: anyWord("happy", "joyful", "cheerful", "sunny", "upbeat", "good mood"),
		terms: []string{
			"happy songs", "feel good music", "upbeat pop", "cheerful music",
			"joyful indie", "sunny reggae", "happy folk", "uplifting soul",
			"positive vibes", "good mood rock", "happy electronic", "cheerful jazz",
			"feel good hip hop", "happy country", "upbeat latin", "joyful gospel",
		},
	},
	{
		name:  "excited",
		hint:  "exciting and energetic music",
		match: anyWord("excited", "thrilled", "pumped", "hyped", "stoked", "energetic"),
		terms: []string{
			"pump up songs", "hype music", "energetic pop", "party anthems",
			"high energy rock", "intense electronic", "adrenaline music",
			"workout songs", "explosive beats", "epic music", "power anthems",
			"motivational rock", "intense rap", "high tempo", "festival bangers",
		},
	},
	{
		name:  "romantic",
		hint:  "romantic and love songs",
		match: anyWord("love", "romantic", "affectionate", "passionate", "tender", "romance"),
		terms: []string{
			"love songs", "romantic ballads", "slow jams", "romantic music",
			"love ballads", "romantic pop", "romantic rock", "romantic r&b",
			"acoustic love songs", "romantic indie", "love duets", "romantic jazz",
			"romantic soul", "romantic country", "romantic folk", "serenades",
		},
	},
	{
		name:  "confident",
		hint:  "confident and empowering music",
		match: anyWord("confident", "empowered", "strong", "bold", "powerful", "badass"),
		terms: []string{
			"empowerment anthems", "confidence boosters", "powerful songs", "boss music",
			"strong female vocals", "empowering hip hop", "confident pop", "bold rock",
			"powerful ballads", "badass songs", "strong anthems", "fierce music",
		},
	},
	{
		name:  "grateful",
		hint:  "grateful and appreciative music",
		match: anyWord("grateful", "thankful", "appreciative", "blessed"),
		terms: []string{
			"grateful songs", "thankful music", "appreciation anthems", "blessing songs",
			"gratitude music", "thankful folk", "grateful rock", "appreciation pop",
		},
	},
	{
		name:  "peaceful",
		hint:  "peaceful and calming music",
		match: anyWord("peaceful", "calm", "serene", "tranquil", "chill", "relaxed"),
		terms: []string{
			"chill music", "relaxing songs", "peaceful acoustic", "ambient chill",
			"calm electronic", "serene folk", "tranquil jazz", "peaceful piano",
			"relaxing indie", "chill hip hop", "peaceful classical", "calm pop",
		},
	},
	{
		name:  "sad",
		hint:  "sad and emotional music",
		match: anyWord("sad", "melancholic", "sorrowful", "heartbroken", "depressed", "down"),
		terms: []string{
			"sad songs", "melancholic music", "heartbreak ballads", "emotional songs",
			"depressing music", "sad indie", "melancholy folk", "sad acoustic",
			"breakup songs", "crying songs", "sad piano", "emotional ballads",
			"sad alternative", "melancholic electronic", "sad country", "blues music",
		},
	},
	{
		name:  "angry",
		hint:  "angry and aggressive music",
		match: anyWord("angry", "furious", "aggressive", "mad", "rage", "pissed"),
		terms: []string{
			"angry music", "aggressive rock", "metal songs", "rage music",
			"hardcore punk", "angry rap", "aggressive electronic", "thrash metal",
			"nu metal", "angry alternative", "hardcore music", "intense rock",
			"angry hip hop", "aggressive indie", "punk rock", "death metal",
		},
	},
	{
		name:  "anxious",
		hint:  "calming music for anxiety relief",
		match: anyWord("anxious", "worried", "nervous", "stressed", "anxiety", "panic"),
		terms: []string{
			"calming music", "anxiety relief songs", "soothing tracks", "stress relief",
			"peaceful ambient", "relaxing classical", "calming indie", "soothing folk",
		},
	},
	{
		name:  "lonely",
		hint:  "music for lonely moments",
		match: anyWord("lonely", "isolated", "empty", "longing", "alone"),
		terms: []string{
			"lonely songs", "isolation music", "longing ballads", "alone time tracks",
			"solitude music", "lonely indie", "melancholy folk", "isolation rock",
		},
	},

	// Latin, checked after the emotion block like the elif chain it came from.
	{
		name:  "latin",
		hint:  "Latin and Spanish music",
		match: anyWord("latin", "spanish", "reggaeton", "salsa", "bachata"),
		terms: []string{
			"latin music", "reggaeton", "salsa", "bachata", "spanish music",
			"merengue", "cumbia", "latin pop", "spanish rock", "latin hip hop",
			"flamenco", "bossa nova", "samba", "tango", "mariachi", "latin jazz",
		},
	},

	// Activities.
	{
		name:  "workout",
		hint:  "workout and fitness music",
		match: anyWord("workout", "gym", "cardio", "strength", "exercise", "fitness"),
		terms: []string{
			"workout music", "gym songs", "cardio tracks", "fitness anthems",
			"running music", "weightlifting songs", "exercise music", "training beats",
			"high energy workout", "intense fitness", "power training", "HIIT music",
			"crossfit music", "spinning music", "marathon music", "athletic anthems",
		},
	},
	{
		name:  "study",
		hint:  "study and focus music",
		match: anyWord("study", "focus", "concentration", "work", "productive"),
		terms: []string{
			"study music", "focus tracks", "concentration songs", "productive vibes",
			"ambient study", "lo-fi hip hop", "classical study", "peaceful instrumental",
			"brain music", "meditation music", "white noise", "nature sounds",
			"minimal electronic", "study beats", "calm piano", "reading music",
		},
	},
	{
		name:  "party",
		hint:  "party and dance music",
		match: anyWord("party", "celebration", "dance", "social", "club"),
		terms: []string{
			"party music", "dance songs", "celebration tracks", "club anthems",
			"party bangers", "dance hits", "club music", "party pop",
			"festival music", "dance floor", "party rock", "upbeat dance",
			"party hip hop", "dance electronic", "party classics", "celebration songs",
		},
	},
	{
		name:  "driving",
		hint:  "driving and road trip music",
		match: anyWord("driving", "road trip", "cruising", "car", "highway"),
		terms: []string{
			"driving music", "road trip songs", "cruising tracks", "highway anthems",
			"car music", "travel songs", "journey music", "road music",
		},
	},
	{
		name:  "gaming",
		hint:  "gaming and epic music",
		match: anyWord("gaming", "games", "video game", "epic", "boss battle", "rpg"),
		terms: []string{
			"gaming music", "epic electronic", "video game soundtracks", "boss battle",
			"epic orchestral", "cinematic music", "dramatic electronic", "intense gaming",
			"rpg music", "fantasy music", "adventure music", "heroic music",
			"epic trailer music", "powerful orchestral", "dramatic scores",
		},
	},
	{
		name:  "lofi",
		hint:  "lo-fi and chill hop music",
		match: anyWord("lofi", "lo-fi", "chill hop", "study beats", "aesthetic"),
		terms: []string{
			"lo-fi hip hop", "chill hop", "study beats", "lofi music",
			"aesthetic music", "chillwave", "lo-fi beats", "relaxing hip hop",
			"calm beats", "peaceful hip hop", "ambient hip hop", "dreamy beats",
			"nostalgic beats", "vintage hip hop", "soft beats", "mellow hip hop",
		},
	},

	// Further regional categories.
	{
		name:  "vietnamese",
		hint:  "Vietnamese and V-pop music",
		match: anyWord("vietnamese", "vietnam music", "vpop", "vietnamese song"),
		terms: []string{
			"vietnamese music", "vpop", "vietnam pop", "vietnamese songs",
			"son tung mtp", "duc phuc", "erik vietnam", "chi pu",
			"vietnamese ballad", "vietnamese rap", "vietnamese indie",
			"vietnamese folk", "vietnamese modern", "ho chi minh music",
		},
	},
	{
		name:  "thai",
		hint:  "Thai music and T-pop",
		match: anyWord("thai", "thailand music", "thai song", "thai pop"),
		terms: []string{
			"thai music", "thai pop", "thailand songs", "thai ballad",
			"bodyslam", "potato", "clash", "silly fools", "big ass",
			"thai indie", "thai rock", "thai hip hop", "thai folk",
			"luk thung", "mor lam", "thai country", "bangkok music",
		},
	},
	{
		name:  "arabic",
		hint:  "Arabic and Middle Eastern music",
		match: anyWord("arabic", "middle eastern", "arabic music", "arab music", "lebanese", "egyptian music"),
		terms: []string{
			"arabic music", "middle eastern music", "arab songs",
			"fairuz", "amr diab", "nancy ajram", "elissa", "tamer hosny",
			"arabic pop", "arabic classical", "oud music", "arabic ballad",
			"egyptian music", "lebanese music", "iraqi music", "syrian music",
			"arabic rap", "arabic folk", "traditional arabic",
		},
	},
	{
		name:  "indonesian",
		hint:  "Indonesian music and Indo-pop",
		match: anyWord("indonesian", "indonesia music", "indo music", "indonesian song"),
		terms: []string{
			"indonesian music", "indo pop", "indonesia songs",
			"raisa", "isyana sarasvati", "afgan", "glenn fredly",
			"indonesian indie", "indonesian rock", "dangdut",
			"indonesian folk", "jakarta music", "indonesian ballad",
		},
	},
	{
		name:  "nordic",
		hint:  "Finnish and Nordic music",
		match: anyWord("finnish", "finland music", "nordic music", "scandinavian music"),
		terms: []string{
			"finnish music", "nordic music", "scandinavian music",
			"sunrise avenue", "nightwish", "him band", "children of bodom",
			"finnish rock", "nordic folk", "finnish metal", "nordic pop",
			"icelandic music", "norwegian music", "danish music", "swedish indie",
		},
	},
	{
		name:  "mexican",
		hint:  "Mexican and Regional Mexican music",
		match: anyWord("mexican", "mexico music", "mariachi", "banda", "ranchera"),
		terms: []string{
			"mexican music", "mariachi", "banda music", "ranchera",
			"vicente fernandez", "juan gabriel", "alejandro fernandez",
			"mexican folk", "regional mexican", "norteño", "corridos",
			"mexican pop", "mexican rock", "mexican indie", "mexico traditional",
		},
	},
	{
		name:  "russian",
		hint:  "Russian and Eastern European music",
		match: anyWord("russian", "russia music", "eastern european", "slavic music"),
		terms: []string{
			"russian music", "russian pop", "russian rock",
			"russian folk", "eastern european music", "slavic music",
			"russian ballad", "russian indie", "soviet music",
			"ukrainian music", "polish music", "czech music",
		},
	},
}

// generalRequest is the default when no rule fires.
func generalRequest() domain.ClassifiedRequest {
	return domain.ClassifiedRequest{
		Kind: domain.KindGeneral,
		SearchTerms: []string{
			"popular music", "trending songs", "chart hits", "radio hits",
			"viral songs", "new releases", "indie hits", "underground hits",
			"international hits", "crossover hits", "breakthrough artists",
			"emerging artists", "hidden gems", "cult classics", "fan favorites",
		},
		DisplayHint: "diverse popular music from around the world",
	}
}
