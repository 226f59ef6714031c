package transcript

const generativePrompt = "Write a short spoken-style educational transcript of eight to ten sentences " +
	"about a well-known science or history topic. Every sentence must contain a specific, " +
	"independently fact-checkable statement. Respond with plain text only, no headings or lists."

// samplePassage is the last-resort transcript used when every acquisition
// strategy and the generative fallback have failed.
const samplePassage = "The Great Wall of China is visible from space with the naked eye. " +
	"Water boils at 100 degrees Celsius at sea level. " +
	"The human body contains 206 bones in adulthood. " +
	"Mount Everest is the tallest mountain on Earth above sea level. " +
	"Lightning never strikes the same place twice. " +
	"The speed of light in a vacuum is about 299792 kilometers per second. " +
	"Humans only use ten percent of their brains. " +
	"The Pacific Ocean is the largest ocean on the planet."
