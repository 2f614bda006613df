package testutils

// Party names used by the synthetic corpus generator.
var PartyNames = []string{
	"KESK", "KOK", "SDP", "PS", "VIHR", "VAS", "RKP", "KD", "LIIK",
}

// CityNames used by the synthetic corpus generator.
var CityNames = []string{
	"Helsinki", "Espoo", "Tampere", "Vantaa", "Oulu", "Turku", "Jyväskylä", "Äänekoski",
}

// QuestionTexts used by the synthetic corpus generator. Generated catalogs
// cycle through them when more questions are requested.
var QuestionTexts = []string{
	"The city should build more rental housing.",
	"Public transport should be free of charge.",
	"Municipal taxes should be lowered.",
	"Schools should receive more funding even at the cost of other services.",
	"The city should sell its shares in the energy company.",
	"Car traffic in the city centre should be restricted.",
	"Elderly care should be provided primarily by the municipality.",
	"The city should grow its population aggressively.",
	"Libraries should be open on Sundays.",
	"New parking spaces should be built downtown.",
}

// AnswerOptions is the five point scale used by generated answers.
var AnswerOptions = []float64{1, 2, 3, 4, 5}
