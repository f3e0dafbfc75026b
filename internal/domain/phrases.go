package domain

// MotivationalPhrases are shown by the Domate mascot on startup, on entering
// work mode and after each finished pomodoro.
var MotivationalPhrases = []string{
	"Excellent work! 🍅 Keep it up.",
	"Domate is proud of you! 🌟",
	"One pomodoro closer to your goals 🚀",
	"Fantastic! Your focus is incredible 💪",
	"Well done! You deserve a break 😊",
	"Domate congratulates you on your dedication! 🎉",
	"Amazing! Every pomodoro counts 🔥",
	"Keep harvesting wins! 🌱",
}

// CelebrationPhrases headline the overlay shown on every completion.
var CelebrationPhrases = []string{
	"Pomodoro complete! 🎯",
	"Mission accomplished! 🏆",
	"Excellent session! ⭐",
	"Time well spent! 💎",
}
