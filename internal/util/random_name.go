package util

import (
	"fmt"
	"math/rand"
	"time"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var adjectives = []string{
	"Thirsty", "Rowdy", "Sleepy", "Grumpy", "Cheerful", "Wandering", "Singing", "Brooding", "Boastful", "Sneaky",
	"Lucky", "Unlucky", "Generous", "Stingy", "Bold", "Timid", "Weary", "Jolly", "Sturdy", "Wobbly",
	"Parched", "Merry", "Gallant", "Scruffy", "Dapper", "Grizzled", "Spirited", "Drowsy", "Raucous", "Quiet",
}

var patrons = []string{
	"Knight", "Wizard", "Bard", "Rogue", "Cleric", "Barbarian", "Ranger", "Paladin", "Monk", "Druid",
	"Alchemist", "Blacksmith", "Minstrel", "Sellsword", "Squire", "Innkeeper", "Stablehand", "Juggler", "Scribe", "Herbalist",
	"Pirate", "Merchant", "Fortuneteller", "Gravedigger", "Falconer", "Cartographer", "Tinker", "Shepherd", "Brewer", "Wanderer",
}

// GetRandomName returns a random name by combining an adjective with a patron
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	patronsIndex := random.Intn(len(patrons))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], patrons[patronsIndex])
}
