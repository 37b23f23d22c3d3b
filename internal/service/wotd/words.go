package wotd

import "github.com/heartmarshall/wordexplorer/internal/domain"

// words is the fixed rotation. Order matters: it decides which word falls on
// which date.
var words = []domain.WordOfTheDay{
	{Word: "serendipity", Definition: "the occurrence of events by chance in a happy way"},
	{Word: "ephemeral", Definition: "lasting for a very short time"},
	{Word: "mellifluous", Definition: "sweet or musical; pleasant to hear"},
	{Word: "sonder", Definition: "the realization that each passerby has a life as vivid as your own"},
	{Word: "luminous", Definition: "bright or shining, especially in the dark"},
	{Word: "petrichor", Definition: "the pleasant smell that accompanies the first rain after dry weather"},
	{Word: "ethereal", Definition: "extremely delicate and light in a way that seems not of this world"},
	{Word: "effervescent", Definition: "vivacious and enthusiastic; bubbling with excitement"},
	{Word: "limerence", Definition: "the state of being infatuated with another person"},
	{Word: "susurrus", Definition: "whispering, murmuring, or rustling"},
	{Word: "ineffable", Definition: "too great or extreme to be expressed in words"},
	{Word: "lacuna", Definition: "an unfilled space or interval; a gap"},
	{Word: "diaphanous", Definition: "light, delicate, and translucent"},
	{Word: "halcyon", Definition: "denoting a period of time in the past that was idyllically happy and peaceful"},
	{Word: "opalescent", Definition: "showing varying colors as an opal does"},
	{Word: "verdant", Definition: "green with grass or other rich vegetation"},
	{Word: "resplendent", Definition: "attractive and impressive through being richly colorful or sumptuous"},
	{Word: "imbroglio", Definition: "an extremely confused, complicated, or embarrassing situation"},
	{Word: "cacophony", Definition: "a harsh, discordant mixture of sounds"},
	{Word: "redolent", Definition: "strongly reminiscent or suggestive of something"},
	{Word: "languid", Definition: "displaying or having a disinclination for physical exertion"},
	{Word: "peregrination", Definition: "a long journey, especially on foot"},
	{Word: "obfuscate", Definition: "to make something obscure, unclear, or unintelligible"},
	{Word: "quintessential", Definition: "representing the most perfect example of a quality or class"},
	{Word: "ebullient", Definition: "cheerful and full of energy"},
	{Word: "penumbra", Definition: "the partially shaded outer region of a shadow"},
	{Word: "vicissitude", Definition: "a change of circumstances or fortune, typically one that is unwelcome"},
	{Word: "crepuscular", Definition: "of, resembling, or relating to twilight"},
	{Word: "proclivity", Definition: "a tendency to choose or do something regularly; an inclination"},
	{Word: "zeitgeist", Definition: "the defining spirit or mood of a particular period of history"},
}
