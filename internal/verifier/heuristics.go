package verifier

import (
	"regexp"

	"FactScanner/internal/domain"
)

// heuristicRule matches one well-established claim pattern against a
// lowercased sentence and carries the ground-truth judgment for it.
type heuristicRule struct {
	expr        *regexp.Regexp
	verdict     domain.Verdict
	confidence  float64
	explanation string
}

var heuristicRules = []heuristicRule{
	{
		expr:        regexp.MustCompile(`great wall.*(space|orbit)`),
		verdict:     domain.VerdictFalse,
		confidence:  0.95,
		explanation: "The Great Wall is not visible to the naked eye from orbit; astronauts have repeatedly confirmed this.",
	},
	{
		expr:        regexp.MustCompile(`(water boils at 100|boils at 100 degrees)`),
		verdict:     domain.VerdictTrue,
		confidence:  0.97,
		explanation: "Water boils at 100 degrees Celsius at standard atmospheric pressure (sea level).",
	},
	{
		expr:        regexp.MustCompile(`lightning.*same place`),
		verdict:     domain.VerdictFalse,
		confidence:  0.92,
		explanation: "Lightning strikes the same location often; tall structures are hit dozens of times a year.",
	},
	{
		expr:        regexp.MustCompile(`(ten percent|10 ?(%|percent)).*brain`),
		verdict:     domain.VerdictFalse,
		confidence:  0.93,
		explanation: "Brain imaging shows activity across virtually all regions; the ten-percent figure is a myth.",
	},
	{
		expr:        regexp.MustCompile(`206 bones`),
		verdict:     domain.VerdictTrue,
		confidence:  0.9,
		explanation: "The adult human skeleton has 206 bones.",
	},
	{
		expr:        regexp.MustCompile(`everest.*(tallest|highest) mountain`),
		verdict:     domain.VerdictTrue,
		confidence:  0.9,
		explanation: "Mount Everest is the highest mountain above sea level at 8849 meters.",
	},
	{
		expr:        regexp.MustCompile(`speed of light.*299`),
		verdict:     domain.VerdictTrue,
		confidence:  0.95,
		explanation: "The speed of light in a vacuum is 299792 kilometers per second.",
	},
	{
		expr:        regexp.MustCompile(`pacific.*largest ocean`),
		verdict:     domain.VerdictTrue,
		confidence:  0.9,
		explanation: "The Pacific Ocean is the largest and deepest ocean on Earth.",
	},
	{
		expr:        regexp.MustCompile(`earth is flat`),
		verdict:     domain.VerdictFalse,
		confidence:  0.98,
		explanation: "The Earth is an oblate spheroid; its curvature is directly observable and measured.",
	},
}

const fallbackExplanation = "The reasoning service was unavailable for this claim and no local ground truth matched; treat with caution."
