package domain

import "math/rand/v2"

// completionMessages are shown when a task is completed and XP is awarded.
var completionMessages = []string{
	"🌟 Excellent work! Keep it up!",
	"🎯 Goal reached! You're on fire!",
	"💪 One more win! You're unstoppable!",
	"🚀 Nothing can stop you now!",
	"⭐ What amazing productivity!",
	"🏆 A true champion!",
	"✨ Brilliant as always!",
	"🌈 One more step toward success!",
	"🎉 Celebrate your wins! You earned it!",
	"🌺 Blooming with every finished task!",
}

// RandomCompletionMessage returns a random motivational message.
func RandomCompletionMessage() string {
	return completionMessages[rand.IntN(len(completionMessages))]
}
